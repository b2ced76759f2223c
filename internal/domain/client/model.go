package client

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// Client represents an onboarded client with an installment funding plan.
// Clients are never deleted, only archived via BaseModel.Status.
type Client struct {
	// Unique identifier for this client
	ID string `db:"id" json:"id"`
	// Full name of the client
	Name string `db:"name" json:"name"`
	// Contact email
	Email string `db:"email" json:"email"`
	// Contact phone number
	Phone string `db:"phone" json:"phone"`
	// The monthly_fee is the default due amount of every scheduled month
	MonthlyFee decimal.Decimal `db:"monthly_fee" json:"monthly_fee"`
	// The total_obligation_amount is the full amount owed over the plan
	TotalObligationAmount decimal.Decimal `db:"total_obligation_amount" json:"total_obligation_amount"`
	// The tenure_months is the number of scheduled months in the plan
	TenureMonths int `db:"tenure_months" json:"tenure_months"`
	// The start_date anchors due date derivation for every month
	StartDate time.Time `db:"start_date" json:"start_date"`
	// Whether the creating staff member is the primary or secondary handler
	AllocationType types.AllocationType `db:"allocation_type" json:"allocation_type"`

	// Derived fields, recomputed from the obligation schedule after every
	// posted payment. Never written directly by callers.
	PaidAmount             decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	PendingAmount          decimal.Decimal `db:"pending_amount" json:"pending_amount"`
	PaymentsCompletedCount int             `db:"payments_completed_count" json:"payments_completed_count"`

	types.BaseModel
}

// Validate validates the client
func (c *Client) Validate() error {
	if c.Name == "" {
		return ierr.NewError("client name is required").
			WithHint("Client name is required").
			Mark(ierr.ErrValidation)
	}
	if c.MonthlyFee.IsNegative() || c.MonthlyFee.IsZero() {
		return ierr.NewError("invalid monthly fee").
			WithHint("Monthly fee must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if c.TenureMonths <= 0 {
		return ierr.NewError("invalid tenure").
			WithHint("Tenure must be at least 1 month").
			Mark(ierr.ErrValidation)
	}
	if c.StartDate.IsZero() {
		return ierr.NewError("start date is required").
			WithHint("Start date is required").
			Mark(ierr.ErrValidation)
	}
	if err := c.AllocationType.Validate(); err != nil {
		return err
	}
	if c.TotalObligationAmount.IsNegative() || c.TotalObligationAmount.IsZero() {
		return ierr.NewError("invalid total obligation amount").
			WithHint("Total obligation amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DueDateForMonth derives the due date of a scheduled month from the plan's
// start date. Month numbers are 1-based.
func (c *Client) DueDateForMonth(monthNumber int) time.Time {
	return c.StartDate.AddDate(0, monthNumber-1, 0)
}
