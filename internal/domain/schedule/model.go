package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// MonthlyObligation is one period's scheduled due amount within a client's
// installment plan, keyed by (client_id, month_number). A month with no
// persisted row is synthesized on read with the plan defaults; reads never
// create rows as a side effect, writes materialize the row explicitly first.
type MonthlyObligation struct {
	// The client this obligation belongs to
	ClientID string `db:"client_id" json:"client_id"`
	// 1-based position of the month within the plan tenure
	MonthNumber int `db:"month_number" json:"month_number"`
	// Date the amount falls due, derived from the plan start date
	DueDate time.Time `db:"due_date" json:"due_date"`
	// Amount due this month; defaults to the client's monthly fee unless a
	// stored override exists
	DueAmount decimal.Decimal `db:"due_amount" json:"due_amount"`
	// Total approved payments posted against this month
	PaidAmount decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	// pending, partial or paid
	ObligationStatus types.ObligationStatus `db:"obligation_status" json:"obligation_status"`
	// Whether a due-date reminder has been dispatched for this month
	ReminderSent bool `db:"reminder_sent" json:"reminder_sent"`

	types.BaseModel
}

// Validate validates the obligation
func (o *MonthlyObligation) Validate() error {
	if o.ClientID == "" {
		return ierr.NewError("client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}
	if o.MonthNumber <= 0 {
		return ierr.NewError("invalid month number").
			WithHint("Month number must be at least 1").
			Mark(ierr.ErrValidation)
	}
	if o.DueAmount.IsNegative() {
		return ierr.NewError("invalid due amount").
			WithHint("Due amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	return o.ObligationStatus.Validate()
}

// ApplyPayment adds amount to the month's paid total and recomputes the
// obligation status from the new totals.
func (o *MonthlyObligation) ApplyPayment(amount decimal.Decimal) {
	o.PaidAmount = o.PaidAmount.Add(amount)
	o.ObligationStatus = StatusFor(o.DueAmount, o.PaidAmount)
}

// IsPaid reports whether the month has been fully collected
func (o *MonthlyObligation) IsPaid() bool {
	return o.ObligationStatus == types.ObligationStatusPaid
}

// StatusFor derives the obligation status from a due/paid pair:
// paid when paidAmount >= dueAmount, partial when 0 < paidAmount < dueAmount,
// pending otherwise.
func StatusFor(dueAmount, paidAmount decimal.Decimal) types.ObligationStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(dueAmount) && paidAmount.IsPositive():
		return types.ObligationStatusPaid
	case paidAmount.IsPositive():
		return types.ObligationStatusPartial
	default:
		return types.ObligationStatusPending
	}
}
