package approval

import (
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/audit"
)

// AuditFields exposes the mutable fields of a request for change detection.
// Status and decision stamps are workflow-owned and excluded.
func (r *Request[P]) AuditFields() audit.FieldMap {
	return audit.FieldMap{
		"amount": r.Payload.Amount(),
		"notes":  r.Notes,
	}
}

// InvalidateNotification clears the dispatched flag so the edited request is
// re-notified.
func (r *Request[P]) InvalidateNotification() {
	r.NotificationSent = false
	r.NotifiedAt = nil
}

// StampModified records the editing staff member on the request
func (r *Request[P]) StampModified(actor string, at time.Time) {
	r.EditedBy = &actor
	r.EditedAt = &at
	r.UpdatedBy = actor
	r.UpdatedAt = at
}
