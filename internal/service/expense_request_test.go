package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type ExpenseRequestServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ExpenseRequestService
}

func TestExpenseRequestService(t *testing.T) {
	suite.Run(t, new(ExpenseRequestServiceSuite))
}

func (s *ExpenseRequestServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewExpenseRequestService(ServiceParams{
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
	})
}

func (s *ExpenseRequestServiceSuite) submit() *dto.ExpenseRequestResponse {
	resp, err := s.service.SubmitExpenseRequest(s.GetContext(), dto.SubmitExpenseRequestRequest{
		Name:        "Court Filing Vendor",
		PhoneNumber: "9800000000",
		Amount:      decimal.NewFromInt(1200),
		Source:      "operations",
		ExpenseType: "court_fees",
		Notes:       "stamp duty",
	})
	s.NoError(err)
	return resp
}

func (s *ExpenseRequestServiceSuite) TestSubmitExpenseRequest() {
	resp := s.submit()

	s.Equal(types.ApprovalStatusNotApproved, resp.ApprovalStatus)
	s.Equal(types.DefaultActorID, resp.Payload.SubmittedBy)
	s.True(resp.Payload.ExpenseAmount.Equal(decimal.NewFromInt(1200)))
}

func (s *ExpenseRequestServiceSuite) TestSubmitValidation() {
	_, err := s.service.SubmitExpenseRequest(s.GetContext(), dto.SubmitExpenseRequestRequest{
		Name:        "",
		Amount:      decimal.NewFromInt(1200),
		Source:      "operations",
		ExpenseType: "court_fees",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.SubmitExpenseRequest(s.GetContext(), dto.SubmitExpenseRequestRequest{
		Name:        "Vendor",
		Amount:      decimal.Zero,
		Source:      "operations",
		ExpenseType: "court_fees",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ExpenseRequestServiceSuite) TestApproveHasNoLedgerSideEffect() {
	req := s.submit()

	resp, err := s.service.ApproveExpenseRequest(s.GetContext(), req.ID)
	s.NoError(err)
	s.Equal(types.ApprovalStatusApproved, resp.ApprovalStatus)
	s.True(resp.NotificationSent)

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventRequestApproved, events[0].Type)

	_, err = s.service.ApproveExpenseRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsStateConflict(err))
}

func (s *ExpenseRequestServiceSuite) TestEditAmountInvalidatesNotification() {
	req := s.submit()
	_, err := s.service.RejectExpenseRequest(s.GetContext(), req.ID)
	s.NoError(err)

	resp, err := s.service.EditExpenseRequestAmount(s.GetContext(), req.ID, dto.EditAmountRequest{
		Amount: decimal.NewFromInt(900),
	})
	s.NoError(err)
	s.True(resp.Payload.ExpenseAmount.Equal(decimal.NewFromInt(900)))
	s.False(resp.NotificationSent)
	s.Equal(types.ApprovalStatusRejected, resp.ApprovalStatus)
}

func (s *ExpenseRequestServiceSuite) TestDeleteExpenseRequest() {
	req := s.submit()

	s.NoError(s.service.DeleteExpenseRequest(s.GetContext(), req.ID))

	_, err := s.service.GetExpenseRequest(s.GetContext(), req.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
