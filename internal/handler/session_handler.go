package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nycdash/taxi-dashboard-go/internal/middleware"
	"github.com/nycdash/taxi-dashboard-go/internal/models"
	"github.com/nycdash/taxi-dashboard-go/internal/session"
	"github.com/nycdash/taxi-dashboard-go/pkg/response"
)

// SessionHandler handles HTTP requests for per-session filter state
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// PutFilter handles PUT /api/v1/session/filter. The filter is
// validated before it is saved; dashboard requests without explicit
// query params reuse it.
func (h *SessionHandler) PutFilter(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		response.InternalError(c, "no session attached to request")
		return
	}

	var f models.TripFilter
	if err := c.ShouldBindJSON(&f); err != nil {
		renderError(c, fmt.Errorf("%w: %v", models.ErrInvalidFilterInput, err))
		return
	}
	if _, err := f.Validate(); err != nil {
		renderError(c, err)
		return
	}

	h.store.SetFilter(sess.ID, &f)
	response.Success(c, f)
}
