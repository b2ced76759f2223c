package audit

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

type fakeRecord struct {
	fields      FieldMap
	invalidated bool
	stampedBy   string
	stampedAt   time.Time
}

func (f *fakeRecord) AuditFields() FieldMap   { return f.fields }
func (f *fakeRecord) InvalidateNotification() { f.invalidated = true }
func (f *fakeRecord) StampModified(actor string, at time.Time) {
	f.stampedBy = actor
	f.stampedAt = at
}

func TestDiff(t *testing.T) {
	before := FieldMap{
		"amount": decimal.NewFromInt(5000),
		"notes":  "collected in branch",
	}
	after := FieldMap{
		"amount": decimal.NewFromInt(4500),
		"notes":  "collected in branch",
	}

	assert.Equal(t, []string{"amount"}, Diff(before, after))
	assert.Empty(t, Diff(before, before))
}

func TestDiffDecimalByValue(t *testing.T) {
	before := FieldMap{"amount": decimal.NewFromInt(5000)}
	after := FieldMap{"amount": decimal.RequireFromString("5000.00")}

	assert.Empty(t, Diff(before, after))
}

func TestDiffTimeByValue(t *testing.T) {
	utc := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ist := utc.In(time.FixedZone("IST", 5*3600+1800))

	before := FieldMap{"due_date": utc}
	after := FieldMap{"due_date": ist}

	assert.Empty(t, Diff(before, after))
}

func TestDiffAddedAndRemovedFields(t *testing.T) {
	before := FieldMap{"notes": "x"}
	after := FieldMap{"resolved_counterparty": "HDFC Bank"}

	assert.Equal(t, []string{"notes", "resolved_counterparty"}, Diff(before, after))
}

func TestApplyEditInvalidatesOnChange(t *testing.T) {
	record := &fakeRecord{fields: FieldMap{"amount": decimal.NewFromInt(4500)}}
	before := FieldMap{"amount": decimal.NewFromInt(5000)}

	now := time.Now().UTC()
	changed, err := ApplyEdit(record, before, "actor-1", now)
	assert.NoError(t, err)
	assert.Equal(t, []string{"amount"}, changed)
	assert.True(t, record.invalidated)
	assert.Equal(t, "actor-1", record.stampedBy)
	assert.Equal(t, now, record.stampedAt)
}

func TestApplyEditRejectsNoChange(t *testing.T) {
	record := &fakeRecord{fields: FieldMap{"amount": decimal.NewFromInt(5000)}}
	before := FieldMap{"amount": decimal.RequireFromString("5000.00")}

	_, err := ApplyEdit(record, before, "actor-1", time.Now().UTC())
	assert.Error(t, err)
	assert.True(t, ierr.IsNoChange(err))
	assert.False(t, record.invalidated)
	assert.Empty(t, record.stampedBy)
}
