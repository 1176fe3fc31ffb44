package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"accountease/internal/core/apperror"
	"accountease/internal/domain/audit"
	"accountease/internal/infrastructure/http/v1/dto"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// AuditHandler exposes the change history recorded for owned entities.
type AuditHandler struct {
	*BaseHandler
	log audit.Log
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(base *BaseHandler, log audit.Log) *AuditHandler {
	return &AuditHandler{
		BaseHandler: base,
		log:         log,
	}
}

// History handles GET /audit/:entityType/:id
func (h *AuditHandler) History(c *gin.Context) {
	ownerID := h.GetUserID(c)
	if ownerID == "" {
		h.Error(c, apperror.NewNotAuthenticated())
		return
	}

	entityID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.Error(c, apperror.NewInvalidArgument("invalid limit: "+raw))
			return
		}
		limit = parsed
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := h.log.EntityHistory(c.Request.Context(), ownerID, c.Param("entityType"), entityID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: entries, Count: len(entries)})
}
