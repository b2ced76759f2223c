package service

import (
	"github.com/techAMA2025/NewCRM-sub003/internal/cache"
	"github.com/techAMA2025/NewCRM-sub003/internal/config"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	// Repositories
	ClientRepo         client.Repository
	ObligationRepo     schedule.Repository
	PaymentRequestRepo approval.Repository[approval.PaymentPayload]
	ExpenseRequestRepo approval.Repository[approval.ExpensePayload]
	CounterpartyRepo   counterparty.Repository
	CaseRepo           caserecord.Repository

	// Outbound notification port
	Notifier notification.Dispatcher
}
