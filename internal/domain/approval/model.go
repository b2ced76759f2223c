package approval

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// Payload is the request-specific body carried through the shared approval
// workflow. WithAmount returns a copy with the monetary amount replaced so
// the workflow can edit amounts without knowing the payload shape.
type Payload[P any] interface {
	Validate() error
	Amount() decimal.Decimal
	WithAmount(amount decimal.Decimal) P
}

// Request is a staff-submitted claim pending reviewer approval. The status
// only ever moves forward (not_approved -> approved | rejected); the record
// itself stays editable after a terminal transition, which routes through
// the audit wrapper and clears the notification flag.
type Request[P Payload[P]] struct {
	// Unique identifier for this request
	ID string `json:"id"`
	// Current state in the approval workflow
	ApprovalStatus types.ApprovalStatus `json:"approval_status"`
	// Freeform notes entered by the submitting staff member
	Notes string `json:"notes,omitempty"`
	// Staff member who submitted the request
	RequestedBy string `json:"requested_by"`
	// When the request was submitted
	RequestDate time.Time `json:"request_date"`
	// Reviewer decision stamps
	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedBy *string    `json:"rejected_by,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	// Post-decision edit stamps
	EditedBy *string    `json:"edited_by,omitempty"`
	EditedAt *time.Time `json:"edited_at,omitempty"`
	// Whether the decision notification has been dispatched; cleared by any
	// subsequent edit so the record is re-notified
	NotificationSent bool       `json:"notification_sent"`
	NotifiedAt       *time.Time `json:"notified_at,omitempty"`
	// Request-specific body
	Payload P `json:"payload"`

	types.BaseModel
}

// Validate validates the request and its payload
func (r *Request[P]) Validate() error {
	if r.RequestedBy == "" {
		return ierr.NewError("requested_by is required").
			WithHint("Submitting staff member is required").
			Mark(ierr.ErrValidation)
	}
	if err := r.ApprovalStatus.Validate(); err != nil {
		return err
	}
	if r.Payload.Amount().IsNegative() || r.Payload.Amount().IsZero() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	return r.Payload.Validate()
}

// MarkApproved transitions the request to approved. Only a request still in
// not_approved may transition; anything else is a state conflict.
func (r *Request[P]) MarkApproved(reviewer string, at time.Time) error {
	if err := r.guardTransition(); err != nil {
		return err
	}
	r.ApprovalStatus = types.ApprovalStatusApproved
	r.ApprovedBy = &reviewer
	r.ApprovedAt = &at
	return nil
}

// MarkRejected transitions the request to rejected under the same guard
func (r *Request[P]) MarkRejected(reviewer string, at time.Time) error {
	if err := r.guardTransition(); err != nil {
		return err
	}
	r.ApprovalStatus = types.ApprovalStatusRejected
	r.RejectedBy = &reviewer
	r.RejectedAt = &at
	return nil
}

func (r *Request[P]) guardTransition() error {
	if r.ApprovalStatus.IsTerminal() {
		return ierr.NewError("request already processed").
			WithHintf("Request %s is already %s", r.ID, r.ApprovalStatus).
			WithReportableDetails(map[string]any{
				"request_id": r.ID,
				"status":     r.ApprovalStatus,
			}).
			Mark(ierr.ErrStateConflict)
	}
	return nil
}
