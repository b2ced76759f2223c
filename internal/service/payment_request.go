package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// PaymentRequestService runs the approval workflow for client payment
// requests. Approval posts the requested amount to the client's obligation
// schedule; that posting and the status write share one transaction.
type PaymentRequestService interface {
	SubmitPaymentRequest(ctx context.Context, req dto.SubmitPaymentRequestRequest) (*dto.PaymentRequestResponse, error)
	GetPaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error)
	ListPaymentRequests(ctx context.Context, filter *types.RequestFilter) (*dto.ListRequestsResponse[approval.PaymentPayload], error)
	ApprovePaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error)
	RejectPaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error)
	EditPaymentRequestAmount(ctx context.Context, id string, req dto.EditAmountRequest) (*dto.PaymentRequestResponse, error)
	DeletePaymentRequest(ctx context.Context, id string) error
}

type paymentRequestService struct {
	ServiceParams
	workflow *workflow[approval.PaymentPayload]
	schedule ScheduleService
}

// NewPaymentRequestService creates a new payment request service
func NewPaymentRequestService(params ServiceParams) PaymentRequestService {
	s := &paymentRequestService{
		ServiceParams: params,
		schedule:      NewScheduleService(params),
	}
	s.workflow = &workflow[approval.PaymentPayload]{
		log:       params.Logger,
		db:        params.DB,
		repo:      params.PaymentRequestRepo,
		notifier:  params.Notifier,
		idPrefix:  types.UUID_PREFIX_PAYMENT_REQUEST,
		onApprove: s.postApprovedPayment,
	}
	return s
}

func (s *paymentRequestService) SubmitPaymentRequest(ctx context.Context, req dto.SubmitPaymentRequestRequest) (*dto.PaymentRequestResponse, error) {
	c, err := s.ClientRepo.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if req.MonthNumber < 1 || req.MonthNumber > c.TenureMonths {
		return nil, ierr.NewError("month number out of range").
			WithHintf("Month number must be between 1 and %d", c.TenureMonths).
			WithReportableDetails(map[string]any{
				"month_number":  req.MonthNumber,
				"tenure_months": c.TenureMonths,
			}).
			Mark(ierr.ErrValidation)
	}

	// Snapshot the month as the submitter saw it so the reviewer can judge
	// the claim against the schedule at submission time.
	payload := approval.PaymentPayload{
		ClientID:           req.ClientID,
		MonthNumber:        req.MonthNumber,
		RequestedAmount:    req.Amount,
		DueAmountSnapshot:  c.MonthlyFee,
		PaidAmountSnapshot: decimal.Zero,
	}
	if o, err := s.ObligationRepo.Get(ctx, req.ClientID, req.MonthNumber); err == nil {
		payload.DueAmountSnapshot = o.DueAmount
		payload.PaidAmountSnapshot = o.PaidAmount
	} else if !ierr.IsNotFound(err) {
		return nil, err
	}

	r, err := s.workflow.submit(ctx, payload, req.Notes)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *paymentRequestService) GetPaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error) {
	r, err := s.workflow.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *paymentRequestService) ListPaymentRequests(ctx context.Context, filter *types.RequestFilter) (*dto.ListRequestsResponse[approval.PaymentPayload], error) {
	requests, total, err := s.workflow.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewRequestFilter()
	}
	return dto.NewListRequestsResponse(requests, total, filter.GetLimit(), filter.GetOffset()), nil
}

func (s *paymentRequestService) ApprovePaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error) {
	r, err := s.workflow.approve(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *paymentRequestService) RejectPaymentRequest(ctx context.Context, id string) (*dto.PaymentRequestResponse, error) {
	r, err := s.workflow.reject(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *paymentRequestService) EditPaymentRequestAmount(ctx context.Context, id string, req dto.EditAmountRequest) (*dto.PaymentRequestResponse, error) {
	r, err := s.workflow.editAmount(ctx, id, req.Amount)
	if err != nil {
		return nil, err
	}
	return dto.NewRequestResponse(r), nil
}

func (s *paymentRequestService) DeletePaymentRequest(ctx context.Context, id string) error {
	return s.workflow.delete(ctx, id)
}

// postApprovedPayment is the approval side effect: the requested amount is
// posted to the schedule exactly once, inside the approval transaction.
func (s *paymentRequestService) postApprovedPayment(ctx context.Context, r *approval.Request[approval.PaymentPayload]) error {
	return s.schedule.PostPayment(ctx, r.Payload.ClientID, r.Payload.MonthNumber, r.Payload.RequestedAmount)
}
