package service

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// ExpenseRequestService runs the approval workflow for operational expense
// requests. Approving an expense has no ledger side effect.
type ExpenseRequestService interface {
	SubmitExpenseRequest(ctx context.Context, req dto.SubmitExpenseRequestRequest) (*dto.ExpenseRequestResponse, error)
	GetExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error)
	ListExpenseRequests(ctx context.Context, filter *types.RequestFilter) (*dto.ListRequestsResponse[approval.ExpensePayload], error)
	ApproveExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error)
	RejectExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error)
	EditExpenseRequestAmount(ctx context.Context, id string, req dto.EditAmountRequest) (*dto.ExpenseRequestResponse, error)
	DeleteExpenseRequest(ctx context.Context, id string) error
}

type expenseRequestService struct {
	ServiceParams
	workflow *workflow[approval.ExpensePayload]
}

// NewExpenseRequestService creates a new expense request service
func NewExpenseRequestService(params ServiceParams) ExpenseRequestService {
	return &expenseRequestService{
		ServiceParams: params,
		workflow: &workflow[approval.ExpensePayload]{
			log:      params.Logger,
			db:       params.DB,
			repo:     params.ExpenseRequestRepo,
			notifier: params.Notifier,
			idPrefix: types.UUID_PREFIX_EXPENSE_REQUEST,
		},
	}
}

func (s *expenseRequestService) SubmitExpenseRequest(ctx context.Context, req dto.SubmitExpenseRequestRequest) (*dto.ExpenseRequestResponse, error) {
	payload := approval.ExpensePayload{
		Name:                 req.Name,
		PhoneNumber:          req.PhoneNumber,
		ExpenseAmount:        req.Amount,
		Source:               req.Source,
		ExpenseType:          req.ExpenseType,
		MiscellaneousDetails: req.MiscellaneousDetails,
		SubmittedBy:          types.GetActorID(ctx),
	}

	r, err := s.workflow.submit(ctx, payload, req.Notes)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *expenseRequestService) GetExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error) {
	r, err := s.workflow.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *expenseRequestService) ListExpenseRequests(ctx context.Context, filter *types.RequestFilter) (*dto.ListRequestsResponse[approval.ExpensePayload], error) {
	requests, total, err := s.workflow.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewRequestFilter()
	}
	return dto.NewListRequestsResponse(requests, total, filter.GetLimit(), filter.GetOffset()), nil
}

func (s *expenseRequestService) ApproveExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error) {
	r, err := s.workflow.approve(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *expenseRequestService) RejectExpenseRequest(ctx context.Context, id string) (*dto.ExpenseRequestResponse, error) {
	r, err := s.workflow.reject(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *expenseRequestService) EditExpenseRequestAmount(ctx context.Context, id string, req dto.EditAmountRequest) (*dto.ExpenseRequestResponse, error) {
	r, err := s.workflow.editAmount(ctx, id, req.Amount)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *expenseRequestService) DeleteExpenseRequest(ctx context.Context, id string) error {
	return s.workflow.delete(ctx, id)
}
