package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/server/http/dto"
	"github.com/polkiloo/encomendas/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. Query parameters busca, status, dataInicio and dataFim filter the history.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := historyFilter(c)
	if !ok {
		return
	}
	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return
	}

	now := h.facade.Now()
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, now))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "requisição inválida")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), req.NewOrder())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order, h.facade.Now()))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "requisição inválida")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, req.Status, req.DataChegada)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, h.facade.Now()))
}

// Update handles PATCH /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "requisição inválida")
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, req.Update())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, h.facade.Now()))
}

// Delete handles DELETE /api/orders/:id. Unknown identifiers succeed.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard handles GET /api/dashboard.
func (h *OrderHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Audit handles GET /api/audit.
func (h *OrderHandler) Audit(c *gin.Context) {
	entries, err := h.facade.AuditLog(c.Request.Context())
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func historyFilter(c *gin.Context) (model.HistoryFilter, bool) {
	status, err := usecase.ParseStatusFilter(c.Query("status"))
	if err != nil {
		WriteError(c, err)
		return model.HistoryFilter{}, false
	}
	from, err := usecase.ParseDateFilter(c.Query("dataInicio"))
	if err != nil {
		badRequest(c, "dataInicio inválida")
		return model.HistoryFilter{}, false
	}
	to, err := usecase.ParseDateFilter(c.Query("dataFim"))
	if err != nil {
		badRequest(c, "dataFim inválida")
		return model.HistoryFilter{}, false
	}
	return model.HistoryFilter{Search: c.Query("busca"), Status: status, From: from, To: to}, true
}

func toOrderResponse(order model.Order, now time.Time) dto.OrderResponse {
	return dto.OrderResponse{Order: order, ETA: model.ETA(order, now)}
}
