package handlers

import (
	"github.com/gin-gonic/gin"

	"accountease/internal/core/apperror"
	"accountease/internal/core/id"
	"accountease/internal/domain/inventory"
	"accountease/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles stock item and movement endpoints.
type InventoryHandler struct {
	*BaseHandler
	service *inventory.Service
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{
		BaseHandler: base,
		service:     service,
	}
}

// CreateItem handles POST /inventory
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, item)
}

// ListItems handles GET /inventory
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: items, Count: len(items)})
}

// GetItem handles GET /inventory/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, item)
}

// UpdateItem handles PUT /inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateItem(c.Request.Context(), itemID, req.ToInput()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "updated")
}

// DeleteItem handles DELETE /inventory/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// RecordMovement handles POST /inventory/:id/movements
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.MovementRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.ItemID != "" && req.ItemID != itemID.String() {
		h.Error(c, apperror.NewInvalidArgument("body itemId does not match path").
			WithDetail("path", itemID.String()).
			WithDetail("body", req.ItemID))
		return
	}

	m, err := h.service.RecordMovement(c.Request.Context(), req.ToInput(itemID))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, m)
}

// ListMovements handles GET /inventory/movements and
// GET /inventory/:id/movements
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var itemID *id.ID
	if raw := c.Param("id"); raw != "" {
		parsed, ok := h.ParseID(c, "id")
		if !ok {
			return
		}
		itemID = &parsed
	}

	movements, err := h.service.ListMovements(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: movements, Count: len(movements)})
}

// Reconcile handles POST /inventory/:id/reconcile
func (h *InventoryHandler) Reconcile(c *gin.Context) {
	itemID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Reconcile(c.Request.Context(), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, item)
}
