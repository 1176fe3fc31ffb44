package handlers

import (
	"github.com/gin-gonic/gin"

	"accountease/internal/domain/records"
	"accountease/internal/infrastructure/http/v1/dto"
)

// TransactionHandler handles sale or expense endpoints. One instance is
// mounted per transaction type; the routes differ only in the
// discriminator the handler pins.
type TransactionHandler struct {
	*BaseHandler
	service *records.Service
	typ     records.TransactionType
}

// NewTransactionHandler creates a transaction handler for one type.
func NewTransactionHandler(base *BaseHandler, service *records.Service, typ records.TransactionType) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler: base,
		service:     service,
		typ:         typ,
	}
}

// Create handles POST /sales and POST /expenses
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tx, err := h.service.AddTransaction(c.Request.Context(), h.typ, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tx)
}

// List handles GET /sales and GET /expenses
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.service.ListTransactions(c.Request.Context(), h.typ)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: txs, Count: len(txs)})
}

// Get handles GET /sales/:id and GET /expenses/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.service.GetTransaction(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tx)
}

// Update handles PUT /sales/:id and PUT /expenses/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.UpdateTransaction(c.Request.Context(), txID, fields); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "updated")
}

// Delete handles DELETE /sales/:id and DELETE /expenses/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTransaction(c.Request.Context(), txID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// PurchaseHandler handles purchase endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *records.Service
}

// NewPurchaseHandler creates a new purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *records.Service) *PurchaseHandler {
	return &PurchaseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req dto.PurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	p, err := h.service.AddPurchase(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, p)
}

// List handles GET /purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	purchases, err := h.service.ListPurchases(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: purchases, Count: len(purchases)})
}

// Update handles PUT /purchases/:id
func (h *PurchaseHandler) Update(c *gin.Context) {
	purchaseID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePurchaseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.UpdatePurchase(c.Request.Context(), purchaseID, fields); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "updated")
}

// Delete handles DELETE /purchases/:id
func (h *PurchaseHandler) Delete(c *gin.Context) {
	purchaseID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePurchase(c.Request.Context(), purchaseID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
