package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/encomendas/internal/domain/model"
	"github.com/polkiloo/encomendas/internal/export"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeHTML = "text/html; charset=utf-8"
)

// ExportHandler renders the filtered history as downloadable files.
type ExportHandler struct {
	facade OrderFacade
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(facade OrderFacade) *ExportHandler {
	return &ExportHandler{facade: facade}
}

// CSV handles GET /api/orders/export.csv.
func (h *ExportHandler) CSV(c *gin.Context) {
	h.download(c, "csv", contentTypeCSV, export.WriteCSV)
}

// XLSX handles GET /api/orders/export.xlsx.
func (h *ExportHandler) XLSX(c *gin.Context) {
	h.download(c, "xlsx", contentTypeXLSX, export.WriteXLSX)
}

// Print handles GET /api/orders/print.
func (h *ExportHandler) Print(c *gin.Context) {
	orders, ok := h.orders(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WritePrint(&buf, orders); err != nil {
		WriteError(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

func (h *ExportHandler) download(c *gin.Context, ext, contentType string, write func(io.Writer, []model.Order) error) {
	orders, ok := h.orders(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, orders); err != nil {
		WriteError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(h.facade.Now(), ext)+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ExportHandler) orders(c *gin.Context) ([]model.Order, bool) {
	filter, ok := historyFilter(c)
	if !ok {
		return nil, false
	}
	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		WriteError(c, err)
		return nil, false
	}
	return orders, true
}
