package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// SubmitPaymentRequestRequest represents a staff claim that a client payment
// was received for a scheduled month
type SubmitPaymentRequestRequest struct {
	ClientID    string          `json:"client_id" binding:"required"`
	MonthNumber int             `json:"month_number" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Notes       string          `json:"notes"`
}

// SubmitExpenseRequestRequest represents an operational expense submitted
// for approval
type SubmitExpenseRequestRequest struct {
	Name                 string          `json:"name" binding:"required"`
	PhoneNumber          string          `json:"phone_number"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	Source               string          `json:"source" binding:"required"`
	ExpenseType          string          `json:"type" binding:"required"`
	MiscellaneousDetails *string         `json:"miscellaneous_details,omitempty"`
	Notes                string          `json:"notes"`
}

// EditAmountRequest overwrites the amount of a request in any status
type EditAmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// RequestResponse is the shared response shape of both workflow instantiations
type RequestResponse[P approval.Payload[P]] struct {
	ID               string               `json:"id"`
	ApprovalStatus   types.ApprovalStatus `json:"approval_status"`
	Notes            string               `json:"notes,omitempty"`
	RequestedBy      string               `json:"requested_by"`
	RequestDate      time.Time            `json:"request_date"`
	ApprovedBy       *string              `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time           `json:"approved_at,omitempty"`
	RejectedBy       *string              `json:"rejected_by,omitempty"`
	RejectedAt       *time.Time           `json:"rejected_at,omitempty"`
	EditedBy         *string              `json:"edited_by,omitempty"`
	EditedAt         *time.Time           `json:"edited_at,omitempty"`
	NotificationSent bool                 `json:"notification_sent"`
	Payload          P                    `json:"payload"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// PaymentRequestResponse is a client payment request response
type PaymentRequestResponse = RequestResponse[approval.PaymentPayload]

// ExpenseRequestResponse is an operational expense request response
type ExpenseRequestResponse = RequestResponse[approval.ExpensePayload]

// ListRequestsResponse is a paginated list of requests
type ListRequestsResponse[P approval.Payload[P]] struct {
	Items      []*RequestResponse[P]    `json:"items"`
	Pagination types.PaginationResponse `json:"pagination"`
}

// NewRequestResponse creates a response from a domain request
func NewRequestResponse[P approval.Payload[P]](r *approval.Request[P]) *RequestResponse[P] {
	return &RequestResponse[P]{
		ID:               r.ID,
		ApprovalStatus:   r.ApprovalStatus,
		Notes:            r.Notes,
		RequestedBy:      r.RequestedBy,
		RequestDate:      r.RequestDate,
		ApprovedBy:       r.ApprovedBy,
		ApprovedAt:       r.ApprovedAt,
		RejectedBy:       r.RejectedBy,
		RejectedAt:       r.RejectedAt,
		EditedBy:         r.EditedBy,
		EditedAt:         r.EditedAt,
		NotificationSent: r.NotificationSent,
		Payload:          r.Payload,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// NewListRequestsResponse creates a paginated response from domain requests
func NewListRequestsResponse[P approval.Payload[P]](requests []*approval.Request[P], total, limit, offset int) *ListRequestsResponse[P] {
	items := make([]*RequestResponse[P], len(requests))
	for i, r := range requests {
		items[i] = NewRequestResponse(r)
	}
	return &ListRequestsResponse[P]{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, limit, offset),
	}
}
