package types

import (
	"github.com/samber/lo"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// BaseFilter is implemented by all list filters so stores can apply
// pagination without knowing the concrete filter type
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetStatus() Status
	IsUnlimited() bool
	Validate() error
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit"`
	Offset *int    `json:"offset,omitempty" form:"offset"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order"`
}

// DefaultQueryFilter defines default values for query filters
var DefaultQueryFilter = QueryFilter{
	Limit:  lo.ToPtr(50),
	Offset: lo.ToPtr(0),
	Status: lo.ToPtr(StatusActive),
	Sort:   lo.ToPtr("created_at"),
	Order:  lo.ToPtr("desc"),
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Status: lo.ToPtr(StatusActive),
		Sort:   lo.ToPtr("created_at"),
		Order:  lo.ToPtr("desc"),
	}
}

// NewDefaultQueryFilter returns a filter with the default pagination values
func NewDefaultQueryFilter() *QueryFilter {
	f := DefaultQueryFilter
	return &f
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		return *DefaultQueryFilter.Limit
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return *DefaultQueryFilter.Offset
	}
	return *f.Offset
}

// GetStatus returns the status value or default if not set
func (f QueryFilter) GetStatus() Status {
	if f.Status == nil {
		return *DefaultQueryFilter.Status
	}
	return *f.Status
}

// GetSort returns the sort value or default if not set
func (f QueryFilter) GetSort() string {
	if f.Sort == nil {
		return *DefaultQueryFilter.Sort
	}
	return *f.Sort
}

// GetOrder returns the order value or default if not set
func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return *DefaultQueryFilter.Order
	}
	return *f.Order
}

// IsUnlimited reports whether pagination should be skipped entirely
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil && f.Offset == nil
}

// Validate validates the query filter
func (f QueryFilter) Validate() error {
	if f.Limit != nil && *f.Limit <= 0 {
		return ierr.NewError("limit must be greater than 0").
			WithHint("Limit must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("offset must not be negative").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
