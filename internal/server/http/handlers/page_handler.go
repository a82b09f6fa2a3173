package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/encomendas/internal/session"
)

// SessionStateHeader reports the resolved session state of a served page.
const SessionStateHeader = "X-Session-State"

// PageHandler serves the static pages behind the route guard.
type PageHandler struct {
	dir string
}

// NewPageHandler serves pages from dir.
func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

// Serve handles GET on a page path. The session state is resolved once per request
// before the guard decides between rendering and redirecting.
func (h *PageHandler) Serve(c *gin.Context) {
	_, authenticated := CurrentIdentity(c)
	state := session.StateUnknown.Resolve(authenticated)

	decision := session.Decide(state, c.Request.URL.Path)
	switch decision.Action {
	case session.ActionRedirect:
		c.Redirect(http.StatusFound, "/"+decision.Target)
		return
	case session.ActionHold:
		c.Status(http.StatusServiceUnavailable)
		return
	}

	data, err := os.ReadFile(filepath.Join(h.dir, filepath.Clean("/"+decision.Target)))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Header(SessionStateHeader, state.String())
	c.Data(http.StatusOK, contentTypeHTML, data)
}
