package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type CaseRecordServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  CaseRecordService
	testData struct {
		client *client.Client
	}
}

func TestCaseRecordService(t *testing.T) {
	suite.Run(t, new(CaseRecordServiceSuite))
}

func (s *CaseRecordServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCaseRecordService(ServiceParams{
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
	s.setupTestData()
}

func (s *CaseRecordServiceSuite) setupTestData() {
	s.testData.client = &client.Client{
		ID:                    "client_test_cases",
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

	for _, name := range []string{"HDFC Bank", "IndusInd Bank"} {
		s.NoError(s.GetStores().CounterpartyRepo.Create(s.GetContext(), &counterparty.Record{
			Name: name,
		}))
	}
}

func (s *CaseRecordServiceSuite) create(name string) *dto.CaseResponse {
	resp, err := s.service.CreateCase(s.GetContext(), dto.CreateCaseRequest{
		ClientID:         s.testData.client.ID,
		CounterpartyName: name,
		Description:      "notice under section 138",
	})
	s.NoError(err)
	return resp
}

func (s *CaseRecordServiceSuite) TestCreateCaseResolvesCounterparty() {
	resp := s.create("HDFC BANK LTD.")

	s.NotEmpty(resp.ID)
	s.NotEmpty(resp.CaseNumber)
	s.Equal("HDFC BANK LTD.", resp.CounterpartyName)
	s.NotNil(resp.ResolvedCounterparty)
	s.Equal("HDFC Bank", *resp.ResolvedCounterparty)
	s.False(resp.EmailSent)
}

func (s *CaseRecordServiceSuite) TestCreateCaseUnresolvedKeepsFreeform() {
	resp := s.create("Unknown Collections Agency")

	s.Equal("Unknown Collections Agency", resp.CounterpartyName)
	s.Nil(resp.ResolvedCounterparty)
}

func (s *CaseRecordServiceSuite) TestCreateCaseMissingClient() {
	_, err := s.service.CreateCase(s.GetContext(), dto.CreateCaseRequest{
		ClientID:         "client_missing",
		CounterpartyName: "HDFC Bank",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CaseRecordServiceSuite) TestUpdateCaseNoChangeRejected() {
	created := s.create("HDFC Bank")

	_, err := s.service.UpdateCase(s.GetContext(), created.ID, dto.UpdateCaseRequest{
		Description: lo.ToPtr("notice under section 138"),
	})
	s.Error(err)
	s.True(ierr.IsNoChange(err))
}

func (s *CaseRecordServiceSuite) TestUpdateCaseReResolves() {
	created := s.create("HDFC Bank")

	resp, err := s.service.UpdateCase(s.GetContext(), created.ID, dto.UpdateCaseRequest{
		CounterpartyName: lo.ToPtr("INDUSLND BANK"),
	})
	s.NoError(err)
	s.Equal("INDUSLND BANK", resp.CounterpartyName)
	s.NotNil(resp.ResolvedCounterparty)
	s.Equal("IndusInd Bank", *resp.ResolvedCounterparty)
}

func (s *CaseRecordServiceSuite) TestUpdateAfterEmailClearsFlag() {
	created := s.create("HDFC Bank")

	_, err := s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.NoError(err)

	resp, err := s.service.UpdateCase(s.GetContext(), created.ID, dto.UpdateCaseRequest{
		Description: lo.ToPtr("amended notice"),
	})
	s.NoError(err)
	s.False(resp.EmailSent)
	s.Nil(resp.EmailSentBy)
	s.Nil(resp.EmailSentAt)

	// The edit re-arms the email flow
	again, err := s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(again.EmailSent)
}

func (s *CaseRecordServiceSuite) TestMarkEmailSent() {
	created := s.create("HDFC Bank")

	resp, err := s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.NoError(err)
	s.True(resp.EmailSent)
	s.Equal(types.DefaultActorID, *resp.EmailSentBy)
	s.NotNil(resp.EmailSentAt)

	events := s.GetNotifier().Events()
	s.Len(events, 1)
	s.Equal(notification.EventCaseEmail, events[0].Type)
	s.Equal(created.ID, events[0].EntityID)

	_, err = s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsStateConflict(err))
}

func (s *CaseRecordServiceSuite) TestMarkEmailSentDispatchFailure() {
	created := s.create("HDFC Bank")

	s.GetNotifier().FailNext = true
	_, err := s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsDownstream(err))

	// The flag is only set after a successful dispatch, so a retry works
	stored, err := s.service.GetCase(s.GetContext(), created.ID)
	s.NoError(err)
	s.False(stored.EmailSent)

	_, err = s.service.MarkEmailSent(s.GetContext(), created.ID)
	s.NoError(err)
}

func (s *CaseRecordServiceSuite) TestListCasesByClient() {
	first := s.create("HDFC Bank")
	second := s.create("IndusInd Bank")

	cases, err := s.service.ListCasesByClient(s.GetContext(), s.testData.client.ID)
	s.NoError(err)
	s.Len(cases, 2)

	ids := []string{cases[0].ID, cases[1].ID}
	s.Contains(ids, first.ID)
	s.Contains(ids, second.ID)

	_, err = s.service.ListCasesByClient(s.GetContext(), "client_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
