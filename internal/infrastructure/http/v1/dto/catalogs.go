package dto

import (
	"accountease/internal/domain/catalogs/bankaccount"
	"accountease/internal/domain/catalogs/supplier"
)

// BankAccountRequest carries a new bank account.
type BankAccountRequest struct {
	BankName      string  `json:"bankName" binding:"required"`
	AccountNumber string  `json:"accountNumber" binding:"required"`
	AccountHolder string  `json:"accountHolder" binding:"required"`
	Category      string  `json:"category"`
	Branch        *string `json:"branch"`
	SwiftCode     *string `json:"swiftCode"`
}

// ToInput converts to the domain input.
func (r BankAccountRequest) ToInput() bankaccount.Input {
	return bankaccount.Input{
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		AccountHolder: r.AccountHolder,
		Category:      r.Category,
		Branch:        r.Branch,
		SwiftCode:     r.SwiftCode,
	}
}

// UpdateBankAccountRequest carries a partial bank account update.
type UpdateBankAccountRequest struct {
	BankName      *string `json:"bankName"`
	AccountNumber *string `json:"accountNumber"`
	AccountHolder *string `json:"accountHolder"`
	Category      *string `json:"category"`
	Branch        *string `json:"branch"`
	SwiftCode     *string `json:"swiftCode"`
}

// Fields maps present values to storage columns.
func (r UpdateBankAccountRequest) Fields() map[string]any {
	fields := map[string]any{}
	putString(fields, "bank_name", r.BankName)
	putString(fields, "account_number", r.AccountNumber)
	putString(fields, "account_holder", r.AccountHolder)
	putString(fields, "category", r.Category)
	if r.Branch != nil {
		fields["branch"] = r.Branch
	}
	if r.SwiftCode != nil {
		fields["swift_code"] = r.SwiftCode
	}
	return fields
}

// CategoryRequest carries a new category.
type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest carries a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Fields maps present values to storage columns.
func (r UpdateCategoryRequest) Fields() map[string]any {
	fields := map[string]any{}
	putString(fields, "name", r.Name)
	if r.Description != nil {
		fields["description"] = r.Description
	}
	return fields
}

// SupplierRequest carries a new supplier.
type SupplierRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

// ToInput converts to the domain input.
func (r SupplierRequest) ToInput() supplier.Input {
	return supplier.Input{
		Name:     r.Name,
		Category: r.Category,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Notes:    r.Notes,
	}
}

// UpdateSupplierRequest carries a partial supplier update.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

// Fields maps present values to storage columns.
func (r UpdateSupplierRequest) Fields() map[string]any {
	fields := map[string]any{}
	putString(fields, "name", r.Name)
	putString(fields, "category", r.Category)
	if r.Phone != nil {
		fields["phone"] = r.Phone
	}
	if r.Email != nil {
		fields["email"] = r.Email
	}
	if r.Address != nil {
		fields["address"] = r.Address
	}
	if r.Notes != nil {
		fields["notes"] = r.Notes
	}
	return fields
}
