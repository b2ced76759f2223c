package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type ScheduleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ScheduleService
	testData struct {
		client *client.Client
	}
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewScheduleService(s.serviceParams())
	s.setupTestData()
}

func (s *ScheduleServiceSuite) serviceParams() ServiceParams {
	return ServiceParams{
		Logger:             s.GetLogger(),
		Config:             s.GetConfig(),
		DB:                 s.GetDB(),
		Cache:              s.GetCache(),
		Notifier:           s.GetNotifier(),
		ClientRepo:         s.GetStores().ClientRepo,
		ObligationRepo:     s.GetStores().ObligationRepo,
		PaymentRequestRepo: s.GetStores().PaymentRequestRepo,
		ExpenseRequestRepo: s.GetStores().ExpenseRequestRepo,
		CounterpartyRepo:   s.GetStores().CounterpartyRepo,
		CaseRepo:           s.GetStores().CaseRepo,
	}
}

func (s *ScheduleServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:                    "client_test_schedule",
		Name:                  "Test Client",
		MonthlyFee:            decimal.NewFromInt(5000),
		TotalObligationAmount: decimal.NewFromInt(30000),
		TenureMonths:          6,
		StartDate:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AllocationType:        types.AllocationTypePrimary,
		PaidAmount:            decimal.Zero,
		PendingAmount:         decimal.NewFromInt(30000),
		BaseModel:             types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ClientRepo.Create(s.GetContext(), s.testData.client))
}

func (s *ScheduleServiceSuite) TestComputeScheduleSynthesizesAllMonths() {
	resp, err := s.service.ComputeSchedule(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.Len(resp.Items, 6)

	for i, item := range resp.Items {
		s.Equal(i+1, item.MonthNumber)
		s.True(item.DueAmount.Equal(decimal.NewFromInt(5000)))
		s.True(item.PaidAmount.IsZero())
		s.Equal(types.ObligationStatusPending, item.ObligationStatus)
		s.Equal(s.testData.client.StartDate.AddDate(0, i, 0), item.DueDate)
	}

	s.True(resp.TotalDue.Equal(decimal.NewFromInt(30000)))
	s.True(resp.TotalPaid.IsZero())

	// Reads must not materialize rows
	persisted, err := s.GetStores().ObligationRepo.ListByClient(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.Empty(persisted)
}

func (s *ScheduleServiceSuite) TestPostPaymentPartialThenPaid() {
	ctx := s.GetContext()
	clientID := s.testData.client.ID

	s.NoError(s.service.PostPayment(ctx, clientID, 2, decimal.NewFromInt(2000)))

	o, err := s.GetStores().ObligationRepo.Get(ctx, clientID, 2)
	s.NoError(err)
	s.Equal(types.ObligationStatusPartial, o.ObligationStatus)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(2000)))

	s.NoError(s.service.PostPayment(ctx, clientID, 2, decimal.NewFromInt(3000)))

	o, err = s.GetStores().ObligationRepo.Get(ctx, clientID, 2)
	s.NoError(err)
	s.Equal(types.ObligationStatusPaid, o.ObligationStatus)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *ScheduleServiceSuite) TestPostPaymentOnlyTouchesTargetMonth() {
	ctx := s.GetContext()
	clientID := s.testData.client.ID

	s.NoError(s.service.PostPayment(ctx, clientID, 3, decimal.NewFromInt(5000)))

	persisted, err := s.GetStores().ObligationRepo.ListByClient(ctx, clientID)
	s.NoError(err)
	s.Len(persisted, 1)
	s.Equal(3, persisted[0].MonthNumber)

	// The other months are still synthesized with defaults
	resp, err := s.service.ComputeSchedule(ctx, clientID)
	s.NoError(err)
	s.Len(resp.Items, 6)
	s.True(resp.Items[0].PaidAmount.IsZero())
	s.Equal(types.ObligationStatusPaid, resp.Items[2].ObligationStatus)
}

func (s *ScheduleServiceSuite) TestPostPaymentRecomputesAggregates() {
	ctx := s.GetContext()
	clientID := s.testData.client.ID

	s.NoError(s.service.PostPayment(ctx, clientID, 1, decimal.NewFromInt(5000)))
	s.NoError(s.service.PostPayment(ctx, clientID, 2, decimal.NewFromInt(1500)))

	c, err := s.GetStores().ClientRepo.Get(ctx, clientID)
	s.NoError(err)
	s.True(c.PaidAmount.Equal(decimal.NewFromInt(6500)))
	s.True(c.PendingAmount.Equal(decimal.NewFromInt(23500)))
	s.Equal(1, c.PaymentsCompletedCount)

	// paid + pending always reconciles to the total obligation
	s.True(c.PaidAmount.Add(c.PendingAmount).Equal(c.TotalObligationAmount))
}

func (s *ScheduleServiceSuite) TestPostPaymentOverpaymentStaysPaid() {
	ctx := s.GetContext()
	clientID := s.testData.client.ID

	s.NoError(s.service.PostPayment(ctx, clientID, 1, decimal.NewFromInt(7000)))

	o, err := s.GetStores().ObligationRepo.Get(ctx, clientID, 1)
	s.NoError(err)
	s.Equal(types.ObligationStatusPaid, o.ObligationStatus)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(7000)))
}

func (s *ScheduleServiceSuite) TestPostPaymentValidation() {
	ctx := s.GetContext()
	clientID := s.testData.client.ID

	err := s.service.PostPayment(ctx, clientID, 1, decimal.Zero)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.PostPayment(ctx, clientID, 0, decimal.NewFromInt(100))
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.PostPayment(ctx, clientID, 7, decimal.NewFromInt(100))
	s.Error(err)
	s.True(ierr.IsValidation(err))

	err = s.service.PostPayment(ctx, "client_missing", 1, decimal.NewFromInt(100))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
