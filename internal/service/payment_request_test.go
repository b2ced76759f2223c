package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type PaymentRequestServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  PaymentRequestService
	testData struct {
		client *client.Client
	}
}

func TestPaymentRequestService(t *testing.T) {
	suite.Run(t, new(PaymentRequestServiceSuite))
}

func (s *PaymentRequestServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPaymentRequestService(s.serviceParams())
	s.setupTestData()
}

func (s *PaymentRequestServiceSuite) serviceParams() ServiceParams {
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

func (s *PaymentRequestServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:                    "client_test_requests",
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

func (s *PaymentRequestServiceSuite) submit(month int, amount int64) *dto.PaymentRequestResponse {
	resp, err := s.service.SubmitPaymentRequest(s.GetContext(), dto.SubmitPaymentRequestRequest{
		ClientID:    s.testData.client.ID,
		MonthNumber: month,
		Amount:      decimal.NewFromInt(amount),
		Notes:       "collected in branch",
	})
	s.NoError(err)
	return resp
}

func (s *PaymentRequestServiceSuite) TestSubmitPaymentRequest() {
	resp := s.submit(1, 5000)

	s.Equal(types.ApprovalStatusNotApproved, resp.ApprovalStatus)
	s.Equal(types.DefaultActorID, resp.RequestedBy)
	s.False(resp.NotificationSent)
	s.True(resp.Payload.RequestedAmount.Equal(decimal.NewFromInt(5000)))
	s.True(resp.Payload.DueAmountSnapshot.Equal(decimal.NewFromInt(5000)))
	s.True(resp.Payload.PaidAmountSnapshot.IsZero())

	// Submission alone must not touch the ledger
	persisted, err := s.GetStores().ObligationRepo.ListByClient(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.Empty(persisted)
}

func (s *PaymentRequestServiceSuite) TestSubmitValidation() {
	_, err := s.service.SubmitPaymentRequest(s.GetContext(), dto.SubmitPaymentRequestRequest{
		ClientID:    s.testData.client.ID,
		MonthNumber: 9,
		Amount:      decimal.NewFromInt(5000),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.SubmitPaymentRequest(s.GetContext(), dto.SubmitPaymentRequestRequest{
		ClientID:    s.testData.client.ID,
		MonthNumber: 1,
		Amount:      decimal.NewFromInt(-10),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.SubmitPaymentRequest(s.GetContext(), dto.SubmitPaymentRequestRequest{
		ClientID:    "client_missing",
		MonthNumber: 1,
		Amount:      decimal.NewFromInt(5000),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentRequestServiceSuite) TestApprovePostsLedgerExactlyOnce() {
	req := s.submit(1, 5000)

	resp, err := s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.NoError(err)
	s.Equal(types.ApprovalStatusApproved, resp.ApprovalStatus)
	s.NotNil(resp.ApprovedBy)
	s.NotNil(resp.ApprovedAt)
	s.True(resp.NotificationSent)

	o, err := s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 1)
	s.NoError(err)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
	s.Equal(types.ObligationStatusPaid, o.ObligationStatus)

	c, err := s.GetStores().ClientRepo.Get(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.True(c.PaidAmount.Equal(decimal.NewFromInt(5000)))
	s.Equal(1, c.PaymentsCompletedCount)

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventRequestApproved, events[0].Type)
	s.Equal(req.ID, events[0].EntityID)
}

func (s *PaymentRequestServiceSuite) TestDoubleApproveConflicts() {
	req := s.submit(1, 5000)

	_, err := s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.NoError(err)

	_, err = s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsStateConflict(err))

	// The ledger was posted exactly once
	o, err := s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 1)
	s.NoError(err)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *PaymentRequestServiceSuite) TestRejectThenApproveConflicts() {
	req := s.submit(2, 3000)

	resp, err := s.service.RejectPaymentRequest(s.GetContext(), req.ID)
	s.NoError(err)
	s.Equal(types.ApprovalStatusRejected, resp.ApprovalStatus)
	s.NotNil(resp.RejectedBy)

	_, err = s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsStateConflict(err))

	// Rejection never touches the ledger
	_, err = s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 2)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentRequestServiceSuite) TestApproveDispatchFailureKeepsDecision() {
	req := s.submit(1, 5000)

	s.GetNotifier().FailNext = true
	_, err := s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsDownstream(err))

	// The decision and the ledger posting are already committed; only the
	// notification flag is left unset for a later retry.
	stored, err := s.GetStores().PaymentRequestRepo.Get(s.GetContext(), req.ID)
	s.NoError(err)
	s.Equal(types.ApprovalStatusApproved, stored.ApprovalStatus)
	s.False(stored.NotificationSent)

	o, err := s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 1)
	s.NoError(err)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *PaymentRequestServiceSuite) TestEditAmountAfterApproval() {
	req := s.submit(1, 5000)
	_, err := s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.NoError(err)

	resp, err := s.service.EditPaymentRequestAmount(s.GetContext(), req.ID, dto.EditAmountRequest{
		Amount: decimal.NewFromInt(4500),
	})
	s.NoError(err)
	s.True(resp.Payload.RequestedAmount.Equal(decimal.NewFromInt(4500)))
	s.Equal(types.ApprovalStatusApproved, resp.ApprovalStatus)
	s.NotNil(resp.EditedBy)
	s.NotNil(resp.EditedAt)

	// Any real edit clears the dispatched flag so the record is re-notified
	s.False(resp.NotificationSent)

	// Correcting the record does not re-post the ledger
	o, err := s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 1)
	s.NoError(err)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *PaymentRequestServiceSuite) TestEditAmountNoChangeRejected() {
	req := s.submit(1, 5000)

	_, err := s.service.EditPaymentRequestAmount(s.GetContext(), req.ID, dto.EditAmountRequest{
		Amount: decimal.NewFromInt(5000),
	})
	s.Error(err)
	s.True(ierr.IsNoChange(err))

	// Decimal comparison is by value: 5000.00 is still no change
	_, err = s.service.EditPaymentRequestAmount(s.GetContext(), req.ID, dto.EditAmountRequest{
		Amount: decimal.RequireFromString("5000.00"),
	})
	s.Error(err)
	s.True(ierr.IsNoChange(err))

	stored, err := s.GetStores().PaymentRequestRepo.Get(s.GetContext(), req.ID)
	s.NoError(err)
	s.Nil(stored.EditedBy)
}

func (s *PaymentRequestServiceSuite) TestDeleteApprovedLeavesLedger() {
	req := s.submit(1, 5000)
	_, err := s.service.ApprovePaymentRequest(s.GetContext(), req.ID)
	s.NoError(err)

	s.NoError(s.service.DeletePaymentRequest(s.GetContext(), req.ID))

	_, err = s.service.GetPaymentRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// Posted ledger entries survive the delete
	o, err := s.GetStores().ObligationRepo.Get(s.GetContext(), s.testData.client.ID, 1)
	s.NoError(err)
	s.True(o.PaidAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *PaymentRequestServiceSuite) TestListPaymentRequestsFilters() {
	s.submit(1, 5000)
	req2 := s.submit(2, 3000)
	_, err := s.service.ApprovePaymentRequest(s.GetContext(), req2.ID)
	s.NoError(err)

	approved := types.ApprovalStatusApproved
	resp, err := s.service.ListPaymentRequests(s.GetContext(), &types.RequestFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		Status:      &approved,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(req2.ID, resp.Items[0].ID)
	s.Equal(1, resp.Pagination.Total)
}
