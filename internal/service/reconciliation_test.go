package service

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
)

type ReconciliationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ReconciliationService
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceSuite))
}

func (s *ReconciliationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewReconciliationService(ServiceParams{
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
	s.seedRegistry()
}

func (s *ReconciliationServiceSuite) seedRegistry() {
	for _, name := range []string{"HDFC Bank", "IndusInd Bank", "Kotak Mahindra Bank"} {
		s.NoError(s.GetStores().CounterpartyRepo.Create(s.GetContext(), &counterparty.Record{
			Name:    name,
			Address: "Registered Office",
			Emails:  []string{"legal@example.com"},
		}))
	}
}

func (s *ReconciliationServiceSuite) TestResolveExactMatch() {
	resp, err := s.service.ResolveCounterparty(s.GetContext(), "HDFC BANK LTD.")
	s.NoError(err)
	s.True(resp.Matched)
	s.Equal("hdfc", resp.Normalized)
	s.Equal(counterparty.MatchExact, resp.Method)
	s.Equal("HDFC Bank", resp.Record.Name)
}

func (s *ReconciliationServiceSuite) TestResolveUnmatchedIsAnAnswer() {
	resp, err := s.service.ResolveCounterparty(s.GetContext(), "Some Unknown Finance")
	s.NoError(err)
	s.False(resp.Matched)
	s.Nil(resp.Record)
}

func (s *ReconciliationServiceSuite) TestResolveEmptyNameRejected() {
	_, err := s.service.ResolveCounterparty(s.GetContext(), "...")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ReconciliationServiceSuite) TestResolveMemoized() {
	resp, err := s.service.ResolveCounterparty(s.GetContext(), "Kotak")
	s.NoError(err)
	s.True(resp.Matched)
	s.Equal(counterparty.MatchAlias, resp.Method)

	// Variants normalizing to the same form hit the same cached resolution
	again, err := s.service.ResolveCounterparty(s.GetContext(), "KOTAK!!")
	s.NoError(err)
	s.Same(resp, again)
}

func (s *ReconciliationServiceSuite) TestAddCounterpartyInvalidatesResolutions() {
	resp, err := s.service.ResolveCounterparty(s.GetContext(), "Acme Finance")
	s.NoError(err)
	s.False(resp.Matched)

	_, err = s.service.AddCounterparty(s.GetContext(), dto.CreateCounterpartyRequest{
		Name: "Acme Finance",
	})
	s.NoError(err)

	resp, err = s.service.ResolveCounterparty(s.GetContext(), "Acme Finance")
	s.NoError(err)
	s.True(resp.Matched)
	s.Equal("Acme Finance", resp.Record.Name)
}

func (s *ReconciliationServiceSuite) TestAddCounterpartyDuplicate() {
	_, err := s.service.AddCounterparty(s.GetContext(), dto.CreateCounterpartyRequest{
		Name: "HDFC Bank",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *ReconciliationServiceSuite) TestListCounterparties() {
	resp, err := s.service.ListCounterparties(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.Total)
	s.Equal("HDFC Bank", resp.Items[0].Name)
}
