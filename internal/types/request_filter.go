package types

// RequestFilter filters approval request list queries. The flat request
// index is queryable by requester, status and client.
type RequestFilter struct {
	*QueryFilter

	Status      *ApprovalStatus `json:"status,omitempty" form:"status"`
	RequestedBy *string         `json:"requested_by,omitempty" form:"requested_by"`
	ClientID    *string         `json:"client_id,omitempty" form:"client_id"`
}

// NewRequestFilter creates a filter with default pagination
func NewRequestFilter() *RequestFilter {
	return &RequestFilter{QueryFilter: NewDefaultQueryFilter()}
}

// NewNoLimitRequestFilter creates a filter with no pagination
func NewNoLimitRequestFilter() *RequestFilter {
	return &RequestFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *RequestFilter) Validate() error {
	if f.QueryFilter == nil {
		f.QueryFilter = NewDefaultQueryFilter()
	}
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
