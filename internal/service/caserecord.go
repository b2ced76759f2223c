package service

import (
	"context"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/audit"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// CaseRecordService manages legal cases opened for clients. Edits route
// through the same change-detection wrapper as approval requests: a no-op
// write is rejected and any real change clears the email flag.
type CaseRecordService interface {
	CreateCase(ctx context.Context, req dto.CreateCaseRequest) (*dto.CaseResponse, error)
	GetCase(ctx context.Context, id string) (*dto.CaseResponse, error)
	ListCasesByClient(ctx context.Context, clientID string) ([]*dto.CaseResponse, error)
	UpdateCase(ctx context.Context, id string, req dto.UpdateCaseRequest) (*dto.CaseResponse, error)
	MarkEmailSent(ctx context.Context, id string) (*dto.CaseResponse, error)
}

type caseRecordService struct {
	ServiceParams
	reconciliation ReconciliationService
}

// NewCaseRecordService creates a new case record service
func NewCaseRecordService(params ServiceParams) CaseRecordService {
	return &caseRecordService{
		ServiceParams:  params,
		reconciliation: NewReconciliationService(params),
	}
}

func (s *caseRecordService) CreateCase(ctx context.Context, req dto.CreateCaseRequest) (*dto.CaseResponse, error) {
	if _, err := s.ClientRepo.Get(ctx, req.ClientID); err != nil {
		return nil, err
	}

	c := req.ToCaseRecord(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Best effort: an unresolved counterparty keeps the freeform name and
	// leaves the canonical field empty.
	if resolved, err := s.resolve(ctx, c.CounterpartyName); err != nil {
		return nil, err
	} else if resolved != nil {
		c.ResolvedCounterparty = resolved
	}

	if err := s.CaseRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("case opened",
		"case_id", c.ID,
		"case_number", c.CaseNumber,
		"client_id", c.ClientID,
	)
	return dto.NewCaseResponse(c), nil
}

func (s *caseRecordService) GetCase(ctx context.Context, id string) (*dto.CaseResponse, error) {
	c, err := s.CaseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCaseResponse(c), nil
}

func (s *caseRecordService) ListCasesByClient(ctx context.Context, clientID string) ([]*dto.CaseResponse, error) {
	if _, err := s.ClientRepo.Get(ctx, clientID); err != nil {
		return nil, err
	}

	cases, err := s.CaseRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CaseResponse, len(cases))
	for i, c := range cases {
		items[i] = dto.NewCaseResponse(c)
	}
	return items, nil
}

func (s *caseRecordService) UpdateCase(ctx context.Context, id string, req dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	c, err := s.CaseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := c.AuditFields()

	if req.CounterpartyName != nil {
		c.CounterpartyName = *req.CounterpartyName
		resolved, err := s.resolve(ctx, c.CounterpartyName)
		if err != nil {
			return nil, err
		}
		c.ResolvedCounterparty = resolved
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	changed, err := audit.ApplyEdit(c, before, types.GetActorID(ctx), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.CaseRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("case updated",
		"case_id", c.ID,
		"changed_fields", changed,
	)
	return dto.NewCaseResponse(c), nil
}

func (s *caseRecordService) MarkEmailSent(ctx context.Context, id string) (*dto.CaseResponse, error) {
	c, err := s.CaseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.EmailSent {
		return nil, ierr.NewError("case email already dispatched").
			WithHintf("Case %s was already notified; edit the case to re-notify", c.CaseNumber).
			Mark(ierr.ErrStateConflict)
	}

	err = s.Notifier.Dispatch(ctx, &notification.Event{
		Type:      notification.EventCaseEmail,
		EntityID:  c.ID,
		Actor:     types.GetActorID(ctx),
		Timestamp: time.Now().UTC(),
		Details:   dto.NewCaseResponse(c),
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	actor := types.GetActorID(ctx)
	c.EmailSent = true
	c.EmailSentBy = &actor
	c.EmailSentAt = &now
	c.UpdatedBy = actor
	c.UpdatedAt = now

	if err := s.CaseRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return dto.NewCaseResponse(c), nil
}

// resolve maps a freeform name to the canonical registry name, or nil when
// nothing clears the threshold.
func (s *caseRecordService) resolve(ctx context.Context, freeform string) (*string, error) {
	resolution, err := s.reconciliation.ResolveCounterparty(ctx, freeform)
	if err != nil {
		return nil, err
	}
	if !resolution.Matched {
		return nil, nil
	}
	return &resolution.Record.Name, nil
}
