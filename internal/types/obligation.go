package types

import ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"

// ObligationStatus tracks how much of a scheduled month has been collected
type ObligationStatus string

const (
	ObligationStatusPending ObligationStatus = "pending"
	ObligationStatusPartial ObligationStatus = "partial"
	ObligationStatusPaid    ObligationStatus = "paid"
)

func (s ObligationStatus) Validate() error {
	switch s {
	case ObligationStatusPending, ObligationStatusPartial, ObligationStatusPaid:
		return nil
	}
	return ierr.NewError("invalid obligation status").
		WithHintf("Obligation status %s is not supported", s).
		Mark(ierr.ErrValidation)
}

// AllocationType says whether a staff member is the primary or secondary
// handler of a client. It affects visibility in the dashboards, not the ledger.
type AllocationType string

const (
	AllocationTypePrimary   AllocationType = "primary"
	AllocationTypeSecondary AllocationType = "secondary"
)

func (a AllocationType) Validate() error {
	switch a {
	case AllocationTypePrimary, AllocationTypeSecondary:
		return nil
	}
	return ierr.NewError("invalid allocation type").
		WithHintf("Allocation type %s is not supported", a).
		Mark(ierr.ErrValidation)
}
