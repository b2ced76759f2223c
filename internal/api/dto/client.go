package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// CreateClientRequest represents a request to onboard a client
type CreateClientRequest struct {
	Name                  string               `json:"name" binding:"required"`
	Email                 string               `json:"email"`
	Phone                 string               `json:"phone"`
	MonthlyFee            decimal.Decimal      `json:"monthly_fee" binding:"required"`
	TotalObligationAmount decimal.Decimal      `json:"total_obligation_amount" binding:"required"`
	TenureMonths          int                  `json:"tenure_months" binding:"required"`
	StartDate             time.Time            `json:"start_date" binding:"required"`
	AllocationType        types.AllocationType `json:"allocation_type" binding:"required"`
}

// ToClient converts the request into a domain client
func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:                    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:                  r.Name,
		Email:                 r.Email,
		Phone:                 r.Phone,
		MonthlyFee:            r.MonthlyFee,
		TotalObligationAmount: r.TotalObligationAmount,
		TenureMonths:          r.TenureMonths,
		StartDate:             r.StartDate.UTC(),
		AllocationType:        r.AllocationType,
		PaidAmount:            decimal.Zero,
		PendingAmount:         r.TotalObligationAmount,
		BaseModel:             types.GetDefaultBaseModel(ctx),
	}
}

// ClientResponse represents a client response
type ClientResponse struct {
	ID                     string               `json:"id"`
	Name                   string               `json:"name"`
	Email                  string               `json:"email,omitempty"`
	Phone                  string               `json:"phone,omitempty"`
	MonthlyFee             decimal.Decimal      `json:"monthly_fee"`
	TotalObligationAmount  decimal.Decimal      `json:"total_obligation_amount"`
	TenureMonths           int                  `json:"tenure_months"`
	StartDate              time.Time            `json:"start_date"`
	AllocationType         types.AllocationType `json:"allocation_type"`
	PaidAmount             decimal.Decimal      `json:"paid_amount"`
	PendingAmount          decimal.Decimal      `json:"pending_amount"`
	PaymentsCompletedCount int                  `json:"payments_completed_count"`
	Status                 types.Status         `json:"status"`
	CreatedAt              time.Time            `json:"created_at"`
	UpdatedAt              time.Time            `json:"updated_at"`
	CreatedBy              string               `json:"created_by"`
	UpdatedBy              string               `json:"updated_by"`
}

// ListClientsResponse represents a paginated list of clients
type ListClientsResponse struct {
	Items      []*ClientResponse        `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}

// NewClientResponse creates a new client response from a domain client
func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		Email:                  c.Email,
		Phone:                  c.Phone,
		MonthlyFee:             c.MonthlyFee,
		TotalObligationAmount:  c.TotalObligationAmount,
		TenureMonths:           c.TenureMonths,
		StartDate:              c.StartDate,
		AllocationType:         c.AllocationType,
		PaidAmount:             c.PaidAmount,
		PendingAmount:          c.PendingAmount,
		PaymentsCompletedCount: c.PaymentsCompletedCount,
		Status:                 c.Status,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
		CreatedBy:              c.CreatedBy,
		UpdatedBy:              c.UpdatedBy,
	}
}
