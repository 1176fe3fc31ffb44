package handlers

import (
	"github.com/gin-gonic/gin"

	"accountease/internal/domain/catalogs/bankaccount"
	"accountease/internal/infrastructure/http/v1/dto"
)

// BankAccountHandler handles bank account catalog endpoints.
type BankAccountHandler struct {
	*BaseHandler
	service *bankaccount.Service
}

// NewBankAccountHandler creates a new bank account handler.
func NewBankAccountHandler(base *BaseHandler, service *bankaccount.Service) *BankAccountHandler {
	return &BankAccountHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /bank-accounts
func (h *BankAccountHandler) Create(c *gin.Context) {
	var req dto.BankAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, account)
}

// List handles GET /bank-accounts
func (h *BankAccountHandler) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.ListResponse{Items: accounts, Count: len(accounts)})
}

// Get handles GET /bank-accounts/:id
func (h *BankAccountHandler) Get(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	account, err := h.service.Get(c.Request.Context(), accountID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, account)
}

// Update handles PUT /bank-accounts/:id
func (h *BankAccountHandler) Update(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Update(c.Request.Context(), accountID, req.Fields()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "updated")
}

// Delete handles DELETE /bank-accounts/:id
func (h *BankAccountHandler) Delete(c *gin.Context) {
	accountID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), accountID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
