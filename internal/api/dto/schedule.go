package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// PostPaymentRequest posts an approved amount against a scheduled month
type PostPaymentRequest struct {
	MonthNumber int             `json:"month_number" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// ObligationResponse represents one scheduled month
type ObligationResponse struct {
	ClientID         string                 `json:"client_id"`
	MonthNumber      int                    `json:"month_number"`
	DueDate          time.Time              `json:"due_date"`
	DueAmount        decimal.Decimal        `json:"due_amount"`
	PaidAmount       decimal.Decimal        `json:"paid_amount"`
	ObligationStatus types.ObligationStatus `json:"obligation_status"`
	ReminderSent     bool                   `json:"reminder_sent"`
}

// ScheduleResponse represents a client's full obligation schedule
type ScheduleResponse struct {
	ClientID     string                `json:"client_id"`
	Items        []*ObligationResponse `json:"items"`
	TotalDue     decimal.Decimal       `json:"total_due"`
	TotalPaid    decimal.Decimal       `json:"total_paid"`
	TotalPending decimal.Decimal       `json:"total_pending"`
}

// NewObligationResponse creates an obligation response from a domain obligation
func NewObligationResponse(o *schedule.MonthlyObligation) *ObligationResponse {
	return &ObligationResponse{
		ClientID:         o.ClientID,
		MonthNumber:      o.MonthNumber,
		DueDate:          o.DueDate,
		DueAmount:        o.DueAmount,
		PaidAmount:       o.PaidAmount,
		ObligationStatus: o.ObligationStatus,
		ReminderSent:     o.ReminderSent,
	}
}

// NewScheduleResponse creates a schedule response with totals
func NewScheduleResponse(clientID string, obligations []*schedule.MonthlyObligation) *ScheduleResponse {
	resp := &ScheduleResponse{
		ClientID:     clientID,
		Items:        make([]*ObligationResponse, 0, len(obligations)),
		TotalDue:     decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
	}
	for _, o := range obligations {
		resp.Items = append(resp.Items, NewObligationResponse(o))
		resp.TotalDue = resp.TotalDue.Add(o.DueAmount)
		resp.TotalPaid = resp.TotalPaid.Add(o.PaidAmount)
	}
	resp.TotalPending = resp.TotalDue.Sub(resp.TotalPaid)
	return resp
}
