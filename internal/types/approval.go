package types

import ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"

// ApprovalStatus is the state of a request in the two-party approval workflow.
// The only legal transitions are not_approved -> approved and
// not_approved -> rejected; both are terminal for the transition even though
// the record itself stays editable afterwards.
type ApprovalStatus string

const (
	ApprovalStatusNotApproved ApprovalStatus = "not_approved"
	ApprovalStatusApproved    ApprovalStatus = "approved"
	ApprovalStatusRejected    ApprovalStatus = "rejected"
)

func (s ApprovalStatus) Validate() error {
	switch s {
	case ApprovalStatusNotApproved, ApprovalStatusApproved, ApprovalStatusRejected:
		return nil
	}
	return ierr.NewError("invalid approval status").
		WithHintf("Approval status %s is not supported", s).
		Mark(ierr.ErrValidation)
}

// IsTerminal reports whether a reviewer has already acted on the request
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}
