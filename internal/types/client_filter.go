package types

// ClientFilter filters client list queries
type ClientFilter struct {
	*QueryFilter

	AllocationType *AllocationType `json:"allocation_type,omitempty" form:"allocation_type"`
	NameContains   *string         `json:"name_contains,omitempty" form:"name_contains"`
}

// NewClientFilter creates a filter with default pagination
func NewClientFilter() *ClientFilter {
	return &ClientFilter{QueryFilter: NewDefaultQueryFilter()}
}

// NewNoLimitClientFilter creates a filter with no pagination
func NewNoLimitClientFilter() *ClientFilter {
	return &ClientFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ClientFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.AllocationType != nil {
		return f.AllocationType.Validate()
	}
	return nil
}
