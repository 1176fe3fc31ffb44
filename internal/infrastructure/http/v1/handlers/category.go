package handlers

import (
	"github.com/gin-gonic/gin"

	"accountease/internal/domain/catalogs/category"
	"accountease/internal/infrastructure/http/v1/dto"
)

// CategoryHandler handles category catalog endpoints. One instance serves
// all kinds; the kind comes from the route.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
	kind    category.Kind
}

// NewCategoryHandler creates a category handler for one catalog kind.
func NewCategoryHandler(base *BaseHandler, service *category.Service, kind category.Kind) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler: base,
		service:     service,
		kind:        kind,
	}
}

// Create handles POST /categories/<kind>
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.Create(c.Request.Context(), h.kind, req.Name, req.Description)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cat)
}

// List handles GET /categories/<kind>
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context(), h.kind)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: categories, Count: len(categories)})
}

// Update handles PUT /categories/<kind>/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), categoryID, req.Fields()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "updated")
}

// Delete handles DELETE /categories/<kind>/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), categoryID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
