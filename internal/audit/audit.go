// Package audit implements the cross-cutting invalidation rule applied to
// any mutable, already-processed record: on a mutating write, every mutable
// field is compared against the previously stored value. Any difference
// clears the record's "notification sent" flag and stamps the modification;
// no difference rejects the write instead of persisting a no-op.
package audit

import (
	"reflect"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// FieldMap is a snapshot of a record's mutable fields, keyed by field name
type FieldMap map[string]any

// Auditable is implemented by records that carry a downstream
// "notification sent" flag subject to invalidation on edit.
type Auditable interface {
	// AuditFields returns the current values of every mutable field
	AuditFields() FieldMap
	// InvalidateNotification clears the notification flag and its stamps
	InvalidateNotification()
	// StampModified records who performed the mutating write and when
	StampModified(actor string, at time.Time)
}

// Diff returns the names of fields whose values differ between before and
// after, sorted for determinism. Fields present in only one map count as
// changed.
func Diff(before, after FieldMap) []string {
	changed := make([]string, 0)
	for name, prev := range before {
		next, ok := after[name]
		if !ok || !equalValues(prev, next) {
			changed = append(changed, name)
		}
	}
	for name := range after {
		if _, ok := before[name]; !ok {
			changed = append(changed, name)
		}
	}
	sort.Strings(changed)
	return changed
}

// ApplyEdit finalizes a mutating write on record. The caller snapshots
// AuditFields before mutating, mutates the record, then calls ApplyEdit with
// the snapshot. An empty diff rejects the write with ErrNoChange and leaves
// the notification flag untouched; otherwise the flag and its stamps are
// cleared and the modification is stamped.
func ApplyEdit(record Auditable, before FieldMap, actor string, at time.Time) ([]string, error) {
	changed := Diff(before, record.AuditFields())
	if len(changed) == 0 {
		return nil, ierr.NewError("no fields changed").
			WithHint("The submitted values are identical to the stored record").
			Mark(ierr.ErrNoChange)
	}

	record.InvalidateNotification()
	record.StampModified(actor, at)
	return changed, nil
}

// equalValues compares two field values. Decimals and times compare by
// value, not representation, so 5000 and 5000.00 are not a change.
func equalValues(a, b any) bool {
	if da, ok := a.(decimal.Decimal); ok {
		if db, ok := b.(decimal.Decimal); ok {
			return da.Equal(db)
		}
		return false
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
