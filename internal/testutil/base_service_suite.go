package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/techAMA2025/NewCRM-sub003/internal/cache"
	"github.com/techAMA2025/NewCRM-sub003/internal/config"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
	"github.com/techAMA2025/NewCRM-sub003/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	ClientRepo         client.Repository
	ObligationRepo     schedule.Repository
	PaymentRequestRepo approval.Repository[approval.PaymentPayload]
	ExpenseRequestRepo approval.Repository[approval.ExpensePayload]
	CounterpartyRepo   counterparty.Repository
	CaseRepo           caserecord.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	stores   Stores
	db       postgres.IClient
	logger   *logger.Logger
	config   *config.Configuration
	cache    cache.Cache
	notifier *RecordingDispatcher
	now      time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	cache.Initialize(s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		ClientRepo:         NewInMemoryClientStore(),
		ObligationRepo:     NewInMemoryObligationStore(),
		PaymentRequestRepo: NewInMemoryPaymentRequestStore(),
		ExpenseRequestRepo: NewInMemoryExpenseRequestStore(),
		CounterpartyRepo:   NewInMemoryCounterpartyStore(),
		CaseRepo:           NewInMemoryCaseRecordStore(),
	}
	s.db = NewMockPostgresClient(s.logger)
	s.cache = cache.NewInMemoryCache()
	s.notifier = NewRecordingDispatcher()
}

// GetContext returns the test context carrying the default actor
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns the in-memory stores
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetNotifier returns the recording notification dispatcher
func (s *BaseServiceTestSuite) GetNotifier() *RecordingDispatcher {
	return s.notifier
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a new UUID
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
