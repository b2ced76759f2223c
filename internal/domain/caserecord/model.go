package caserecord

import (
	"time"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// CaseRecord tracks one legal case opened for a client against a
// counterparty. The email_sent flag is invalidated by any subsequent edit
// so the case is re-notified with the corrected details.
type CaseRecord struct {
	// Unique identifier for this case
	ID string `db:"id" json:"id"`
	// Short human-facing case number, e.g. CASE-X8Q2A
	CaseNumber string `db:"case_number" json:"case_number"`
	// The client the case belongs to
	ClientID string `db:"client_id" json:"client_id"`
	// Freeform counterparty name as typed by staff
	CounterpartyName string `db:"counterparty_name" json:"counterparty_name"`
	// Canonical registry name the freeform input resolved to, if any
	ResolvedCounterparty *string `db:"resolved_counterparty" json:"resolved_counterparty,omitempty"`
	// Case description used in generated documents
	Description string `db:"description" json:"description"`
	// Whether the case notification email has been dispatched
	EmailSent   bool       `db:"email_sent" json:"email_sent"`
	EmailSentBy *string    `db:"email_sent_by" json:"email_sent_by,omitempty"`
	EmailSentAt *time.Time `db:"email_sent_at" json:"email_sent_at,omitempty"`

	types.BaseModel
}

// Validate validates the case record
func (c *CaseRecord) Validate() error {
	if c.ClientID == "" {
		return ierr.NewError("client id is required").
			WithHint("Client ID is required").
			Mark(ierr.ErrValidation)
	}
	if c.CounterpartyName == "" {
		return ierr.NewError("counterparty name is required").
			WithHint("Counterparty name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
