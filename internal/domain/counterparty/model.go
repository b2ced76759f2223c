package counterparty

import (
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// Record is one canonical financial institution in the registry, keyed by
// its canonical name. Read-only reference data consumed by the
// reconciliation engine and the document generator.
type Record struct {
	// Canonical institution name, e.g. "HDFC Bank"
	Name string `db:"name" json:"name"`
	// Registered postal address used in generated letters
	Address string `db:"address" json:"address"`
	// Known contact email addresses
	Emails []string `db:"-" json:"emails"`
}

// Validate validates the record
func (r *Record) Validate() error {
	if r.Name == "" {
		return ierr.NewError("counterparty name is required").
			WithHint("Counterparty name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
