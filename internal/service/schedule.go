package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// ScheduleService maintains a client's per-month due amounts and the derived
// client aggregates.
type ScheduleService interface {
	// ComputeSchedule returns the full ordered schedule for a client.
	// Months without a persisted row are synthesized from the plan defaults
	// and are NOT persisted by the read.
	ComputeSchedule(ctx context.Context, clientID string) (*dto.ScheduleResponse, error)

	// PostPayment adds an approved amount to a month's paid total and
	// recomputes the client aggregates. Both writes run in one transaction.
	PostPayment(ctx context.Context, clientID string, monthNumber int, amount decimal.Decimal) error

	// RecomputeAggregates recalculates the client's paid/pending/completed
	// fields from the full set of obligation rows.
	RecomputeAggregates(ctx context.Context, clientID string) error
}

type scheduleService struct {
	ServiceParams
}

// NewScheduleService creates a new schedule service
func NewScheduleService(params ServiceParams) ScheduleService {
	return &scheduleService{ServiceParams: params}
}

func (s *scheduleService) ComputeSchedule(ctx context.Context, clientID string) (*dto.ScheduleResponse, error) {
	c, err := s.ClientRepo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}

	persisted, err := s.ObligationRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]*schedule.MonthlyObligation, len(persisted))
	for _, o := range persisted {
		byMonth[o.MonthNumber] = o
	}

	obligations := make([]*schedule.MonthlyObligation, 0, c.TenureMonths)
	for month := 1; month <= c.TenureMonths; month++ {
		if o, ok := byMonth[month]; ok {
			obligations = append(obligations, o)
			continue
		}
		obligations = append(obligations, synthesizeMonth(ctx, c, month))
	}

	return dto.NewScheduleResponse(clientID, obligations), nil
}

func (s *scheduleService) PostPayment(ctx context.Context, clientID string, monthNumber int, amount decimal.Decimal) error {
	if amount.IsNegative() || amount.IsZero() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}

	c, err := s.ClientRepo.Get(ctx, clientID)
	if err != nil {
		return err
	}

	if monthNumber < 1 || monthNumber > c.TenureMonths {
		return ierr.NewError("month number out of range").
			WithHintf("Month number must be between 1 and %d", c.TenureMonths).
			WithReportableDetails(map[string]any{
				"month_number":  monthNumber,
				"tenure_months": c.TenureMonths,
			}).
			Mark(ierr.ErrValidation)
	}

	// The obligation write and the aggregate recomputation share one
	// transaction so a crash between them cannot leave the ledger
	// inconsistent.
	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		o, err := s.materializeMonth(txCtx, c, monthNumber)
		if err != nil {
			return err
		}

		o.ApplyPayment(amount)
		o.UpdatedBy = types.GetActorID(txCtx)

		if err := s.ObligationRepo.Update(txCtx, o); err != nil {
			return err
		}

		return s.recomputeAggregates(txCtx, c)
	})
}

func (s *scheduleService) RecomputeAggregates(ctx context.Context, clientID string) error {
	c, err := s.ClientRepo.Get(ctx, clientID)
	if err != nil {
		return err
	}
	return s.recomputeAggregates(ctx, c)
}

func (s *scheduleService) recomputeAggregates(ctx context.Context, c *client.Client) error {
	obligations, err := s.ObligationRepo.ListByClient(ctx, c.ID)
	if err != nil {
		return err
	}

	paid := decimal.Zero
	completed := 0
	for _, o := range obligations {
		paid = paid.Add(o.PaidAmount)
		if o.IsPaid() {
			completed++
		}
	}

	c.PaidAmount = paid
	c.PendingAmount = c.TotalObligationAmount.Sub(paid)
	c.PaymentsCompletedCount = completed
	c.UpdatedBy = types.GetActorID(ctx)

	return s.ClientRepo.Update(ctx, c)
}

// materializeMonth loads the month's row, creating it from the plan
// defaults when it was never persisted. Only the write path materializes;
// reads synthesize without persisting.
func (s *scheduleService) materializeMonth(ctx context.Context, c *client.Client, monthNumber int) (*schedule.MonthlyObligation, error) {
	o, err := s.ObligationRepo.Get(ctx, c.ID, monthNumber)
	if err == nil {
		return o, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	o = synthesizeMonth(ctx, c, monthNumber)
	if err := s.ObligationRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func synthesizeMonth(ctx context.Context, c *client.Client, monthNumber int) *schedule.MonthlyObligation {
	return &schedule.MonthlyObligation{
		ClientID:         c.ID,
		MonthNumber:      monthNumber,
		DueDate:          c.DueDateForMonth(monthNumber),
		DueAmount:        c.MonthlyFee,
		PaidAmount:       decimal.Zero,
		ObligationStatus: types.ObligationStatusPending,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}
