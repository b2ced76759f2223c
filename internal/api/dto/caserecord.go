package dto

import (
	"context"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// CreateCaseRequest opens a case for a client against a counterparty
type CreateCaseRequest struct {
	ClientID         string `json:"client_id" binding:"required"`
	CounterpartyName string `json:"counterparty_name" binding:"required"`
	Description      string `json:"description"`
}

// ToCaseRecord converts the request into a domain case record
func (r *CreateCaseRequest) ToCaseRecord(ctx context.Context) *caserecord.CaseRecord {
	return &caserecord.CaseRecord{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CASE_RECORD),
		CaseNumber:       types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_CASE),
		ClientID:         r.ClientID,
		CounterpartyName: r.CounterpartyName,
		Description:      r.Description,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}

// UpdateCaseRequest edits a case; nil fields are left unchanged
type UpdateCaseRequest struct {
	CounterpartyName *string `json:"counterparty_name,omitempty"`
	Description      *string `json:"description,omitempty"`
}

// CaseResponse represents a case record response
type CaseResponse struct {
	ID                   string     `json:"id"`
	CaseNumber           string     `json:"case_number"`
	ClientID             string     `json:"client_id"`
	CounterpartyName     string     `json:"counterparty_name"`
	ResolvedCounterparty *string    `json:"resolved_counterparty,omitempty"`
	Description          string     `json:"description,omitempty"`
	EmailSent            bool       `json:"email_sent"`
	EmailSentBy          *string    `json:"email_sent_by,omitempty"`
	EmailSentAt          *time.Time `json:"email_sent_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	CreatedBy            string     `json:"created_by"`
	UpdatedBy            string     `json:"updated_by"`
}

// NewCaseResponse creates a response from a domain case record
func NewCaseResponse(c *caserecord.CaseRecord) *CaseResponse {
	return &CaseResponse{
		ID:                   c.ID,
		CaseNumber:           c.CaseNumber,
		ClientID:             c.ClientID,
		CounterpartyName:     c.CounterpartyName,
		ResolvedCounterparty: c.ResolvedCounterparty,
		Description:          c.Description,
		EmailSent:            c.EmailSent,
		EmailSentBy:          c.EmailSentBy,
		EmailSentAt:          c.EmailSentAt,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		CreatedBy:            c.CreatedBy,
		UpdatedBy:            c.UpdatedBy,
	}
}
