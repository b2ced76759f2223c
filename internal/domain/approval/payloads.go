package approval

import (
	"github.com/shopspring/decimal"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// PaymentPayload is the body of a client payment request. Due and paid
// amounts are snapshotted at submission time so reviewers see the schedule
// as the submitter saw it.
type PaymentPayload struct {
	ClientID           string          `json:"client_id"`
	MonthNumber        int             `json:"month_number"`
	RequestedAmount    decimal.Decimal `json:"requested_amount"`
	DueAmountSnapshot  decimal.Decimal `json:"due_amount_snapshot"`
	PaidAmountSnapshot decimal.Decimal `json:"paid_amount_snapshot"`
}

func (p PaymentPayload) Validate() error {
	if p.ClientID == "" {
		return ierr.NewError("client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}
	if p.MonthNumber <= 0 {
		return ierr.NewError("invalid month number").
			WithHint("Month number must be at least 1").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (p PaymentPayload) Amount() decimal.Decimal {
	return p.RequestedAmount
}

func (p PaymentPayload) WithAmount(amount decimal.Decimal) PaymentPayload {
	p.RequestedAmount = amount
	return p
}

// ExpensePayload is the body of an operational expense request. Approval of
// an expense has no ledger side effect.
type ExpensePayload struct {
	Name                 string          `json:"name"`
	PhoneNumber          string          `json:"phone_number"`
	ExpenseAmount        decimal.Decimal `json:"amount"`
	Source               string          `json:"source"`
	ExpenseType          string          `json:"type"`
	MiscellaneousDetails *string         `json:"miscellaneous_details,omitempty"`
	SubmittedBy          string          `json:"submitted_by"`
}

func (p ExpensePayload) Validate() error {
	if p.Name == "" {
		return ierr.NewError("payee name is required").
			WithHint("Payee name is required").
			Mark(ierr.ErrValidation)
	}
	if p.Source == "" {
		return ierr.NewError("expense source is required").
			WithHint("Expense source is required").
			Mark(ierr.ErrValidation)
	}
	if p.ExpenseType == "" {
		return ierr.NewError("expense type is required").
			WithHint("Expense type is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (p ExpensePayload) Amount() decimal.Decimal {
	return p.ExpenseAmount
}

func (p ExpensePayload) WithAmount(amount decimal.Decimal) ExpensePayload {
	p.ExpenseAmount = amount
	return p
}
