package service

import (
	"context"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/cache"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

// resolutionCacheTTL bounds staleness after registry additions. Entries are
// also dropped eagerly when a counterparty is added.
const resolutionCacheTTL = 10 * time.Minute

// ReconciliationService resolves freeform institution names typed by staff
// against the canonical counterparty registry.
type ReconciliationService interface {
	// Normalize exposes the canonical form used for matching
	Normalize(name string) string

	// ResolveCounterparty reconciles a freeform name. Matched=false in the
	// response means no registry entry cleared the threshold; that is an
	// answer, not an error.
	ResolveCounterparty(ctx context.Context, freeform string) (*dto.ResolutionResponse, error)

	ListCounterparties(ctx context.Context) (*dto.ListCounterpartiesResponse, error)
	AddCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error)
}

type reconciliationService struct {
	ServiceParams
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(params ServiceParams) ReconciliationService {
	return &reconciliationService{ServiceParams: params}
}

func (s *reconciliationService) Normalize(name string) string {
	return counterparty.Normalize(name)
}

func (s *reconciliationService) ResolveCounterparty(ctx context.Context, freeform string) (*dto.ResolutionResponse, error) {
	normalized := counterparty.Normalize(freeform)
	if normalized == "" {
		return nil, ierr.NewError("name is empty after normalization").
			WithHint("Provide a counterparty name with at least one letter or digit").
			Mark(ierr.ErrValidation)
	}

	// Resolution is called per keystroke from the UI; memoize on the
	// normalized form so repeats skip the registry scan.
	key := cache.GenerateKey(cache.PrefixResolution, normalized)
	if cached, ok := s.Cache.Get(ctx, key); ok {
		if resp, ok := cached.(*dto.ResolutionResponse); ok {
			return resp, nil
		}
	}

	records, err := s.CounterpartyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResolutionResponse{
		Input:      freeform,
		Normalized: normalized,
	}
	if match, ok := counterparty.Resolve(freeform, records); ok {
		resp.Matched = true
		resp.Method = match.Method
		resp.Similarity = match.Similarity
		resp.Record = dto.NewCounterpartyResponse(match.Record)
	}

	s.Cache.Set(ctx, key, resp, resolutionCacheTTL)
	return resp, nil
}

func (s *reconciliationService) ListCounterparties(ctx context.Context) (*dto.ListCounterpartiesResponse, error) {
	records, err := s.CounterpartyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CounterpartyResponse, len(records))
	for i, r := range records {
		items[i] = dto.NewCounterpartyResponse(r)
	}
	return &dto.ListCounterpartiesResponse{Items: items, Total: len(items)}, nil
}

func (s *reconciliationService) AddCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*dto.CounterpartyResponse, error) {
	record := req.ToRecord()
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.CounterpartyRepo.GetByName(ctx, record.Name); err == nil && existing != nil {
		return nil, ierr.NewError("counterparty already registered").
			WithHintf("Counterparty %s already exists", record.Name).
			Mark(ierr.ErrAlreadyExists)
	} else if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}

	if err := s.CounterpartyRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	// A new registry entry can change every cached resolution outcome.
	s.Cache.DeleteByPrefix(ctx, cache.PrefixResolution)

	s.Logger.Infow("counterparty registered", "name", record.Name)
	return dto.NewCounterpartyResponse(record), nil
}
