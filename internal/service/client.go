package service

import (
	"context"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// ClientService manages client onboarding and lookups
type ClientService interface {
	OnboardClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error)
	DeactivateClient(ctx context.Context, id string) error
}

type clientService struct {
	ServiceParams
}

// NewClientService creates a new client service
func NewClientService(params ServiceParams) ClientService {
	return &clientService{ServiceParams: params}
}

func (s *clientService) OnboardClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c := req.ToClient(ctx)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("client onboarded",
		"client_id", c.ID,
		"tenure_months", c.TenureMonths,
		"monthly_fee", c.MonthlyFee,
	)
	return dto.NewClientResponse(c), nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClientResponse(c), nil
}

func (s *clientService) ListClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	clients, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ClientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ClientResponse, len(clients))
	for i, c := range clients {
		items[i] = dto.NewClientResponse(c)
	}
	return &dto.ListClientsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *clientService) DeactivateClient(ctx context.Context, id string) error {
	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if c.Status == types.StatusArchived {
		return ierr.NewError("client already deactivated").
			WithHintf("Client %s is already deactivated", id).
			Mark(ierr.ErrStateConflict)
	}

	c.Status = types.StatusArchived
	c.UpdatedBy = types.GetActorID(ctx)
	return s.ClientRepo.Update(ctx, c)
}
