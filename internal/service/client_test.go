package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/api/dto"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/testutil"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(ServiceParams{
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

func (s *ClientServiceSuite) onboard(name string) *dto.ClientResponse {
	resp, err := s.service.OnboardClient(s.GetContext(), dto.CreateClientRequest{
		Name:                  name,
		Email:                 "client@example.com",
		Phone:                 "9800000000",
		MonthlyFee:            decimal.NewFromInt(5000),
		TotalObligationAmount: decimal.NewFromInt(30000),
		TenureMonths:          6,
		StartDate:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AllocationType:        types.AllocationTypePrimary,
	})
	s.NoError(err)
	return resp
}

func (s *ClientServiceSuite) TestOnboardClient() {
	resp := s.onboard("Ravi Kumar")

	s.NotEmpty(resp.ID)
	s.Equal("Ravi Kumar", resp.Name)
	s.Equal(types.StatusActive, resp.Status)
	s.Equal(types.DefaultActorID, resp.CreatedBy)
	s.True(resp.PaidAmount.IsZero())
	s.True(resp.PendingAmount.Equal(decimal.NewFromInt(30000)))
	s.Equal(0, resp.PaymentsCompletedCount)
}

func (s *ClientServiceSuite) TestOnboardValidation() {
	_, err := s.service.OnboardClient(s.GetContext(), dto.CreateClientRequest{
		Name:                  "Ravi Kumar",
		MonthlyFee:            decimal.Zero,
		TotalObligationAmount: decimal.NewFromInt(30000),
		TenureMonths:          6,
		StartDate:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AllocationType:        types.AllocationTypePrimary,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.OnboardClient(s.GetContext(), dto.CreateClientRequest{
		Name:                  "Ravi Kumar",
		MonthlyFee:            decimal.NewFromInt(5000),
		TotalObligationAmount: decimal.NewFromInt(30000),
		TenureMonths:          0,
		StartDate:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AllocationType:        types.AllocationTypePrimary,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.OnboardClient(s.GetContext(), dto.CreateClientRequest{
		Name:                  "Ravi Kumar",
		MonthlyFee:            decimal.NewFromInt(5000),
		TotalObligationAmount: decimal.NewFromInt(30000),
		TenureMonths:          6,
		StartDate:             time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AllocationType:        types.AllocationType("tertiary"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ClientServiceSuite) TestDeactivateClientArchives() {
	created := s.onboard("Ravi Kumar")

	s.NoError(s.service.DeactivateClient(s.GetContext(), created.ID))

	// Deactivation archives; the record stays readable
	resp, err := s.service.GetClient(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.StatusArchived, resp.Status)

	err = s.service.DeactivateClient(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsStateConflict(err))
}

func (s *ClientServiceSuite) TestListClientsFilters() {
	s.onboard("Ravi Kumar")
	s.onboard("Ravi Shankar")
	third := s.onboard("Anita Desai")

	resp, err := s.service.ListClients(s.GetContext(), &types.ClientFilter{
		QueryFilter:  types.NewDefaultQueryFilter(),
		NameContains: lo.ToPtr("ravi"),
	})
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(2, resp.Pagination.Total)

	resp, err = s.service.ListClients(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 3)

	// Archived clients drop out of the default active listing
	s.NoError(s.service.DeactivateClient(s.GetContext(), third.ID))
	resp, err = s.service.ListClients(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 2)
}
