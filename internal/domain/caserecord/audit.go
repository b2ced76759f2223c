package caserecord

import (
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/audit"
)

// AuditFields exposes the mutable fields of a case for change detection
func (c *CaseRecord) AuditFields() audit.FieldMap {
	fields := audit.FieldMap{
		"counterparty_name": c.CounterpartyName,
		"description":       c.Description,
	}
	if c.ResolvedCounterparty != nil {
		fields["resolved_counterparty"] = *c.ResolvedCounterparty
	}
	return fields
}

// InvalidateNotification clears the email flag and its stamps so the edited
// case is re-notified
func (c *CaseRecord) InvalidateNotification() {
	c.EmailSent = false
	c.EmailSentBy = nil
	c.EmailSentAt = nil
}

// StampModified records the editing staff member on the case
func (c *CaseRecord) StampModified(actor string, at time.Time) {
	c.UpdatedBy = actor
	c.UpdatedAt = at
}
