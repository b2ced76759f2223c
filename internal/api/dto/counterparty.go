package dto

import (
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
)

// CreateCounterpartyRequest adds a canonical institution to the registry
type CreateCounterpartyRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Emails  []string `json:"emails"`
}

// ToRecord converts the request into a registry record
func (r *CreateCounterpartyRequest) ToRecord() *counterparty.Record {
	return &counterparty.Record{
		Name:    r.Name,
		Address: r.Address,
		Emails:  r.Emails,
	}
}

// CounterpartyResponse represents one registry entry
type CounterpartyResponse struct {
	Name    string   `json:"name"`
	Address string   `json:"address,omitempty"`
	Emails  []string `json:"emails,omitempty"`
}

// ListCounterpartiesResponse lists the registry
type ListCounterpartiesResponse struct {
	Items []*CounterpartyResponse `json:"items"`
	Total int                     `json:"total"`
}

// ResolutionResponse is the outcome of resolving a freeform name.
// Matched=false means no candidate cleared the similarity threshold.
type ResolutionResponse struct {
	Input      string                   `json:"input"`
	Normalized string                   `json:"normalized"`
	Matched    bool                     `json:"matched"`
	Method     counterparty.MatchMethod `json:"method,omitempty"`
	Similarity float64                  `json:"similarity,omitempty"`
	Record     *CounterpartyResponse    `json:"record,omitempty"`
}

// NewCounterpartyResponse creates a response from a registry record
func NewCounterpartyResponse(r *counterparty.Record) *CounterpartyResponse {
	return &CounterpartyResponse{
		Name:    r.Name,
		Address: r.Address,
		Emails:  r.Emails,
	}
}
