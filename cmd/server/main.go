package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/techAMA2025/NewCRM-sub003/internal/api"
	v1 "github.com/techAMA2025/NewCRM-sub003/internal/api/v1"
	"github.com/techAMA2025/NewCRM-sub003/internal/cache"
	"github.com/techAMA2025/NewCRM-sub003/internal/config"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/httpclient"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	"github.com/techAMA2025/NewCRM-sub003/internal/repository"
	"github.com/techAMA2025/NewCRM-sub003/internal/service"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
	"github.com/techAMA2025/NewCRM-sub003/internal/validator"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,
			provideCache,

			// Postgres
			postgres.NewClient,

			// HTTP client and outbound notification port
			httpclient.NewDefaultClient,
			notification.NewDispatcher,

			// Repositories
			repository.NewClientRepository,
			repository.NewObligationRepository,
			repository.NewPaymentRequestRepository,
			repository.NewExpenseRequestRepository,
			repository.NewCounterpartyRepository,
			repository.NewCaseRecordRepository,

			// Service layer
			newServiceParams,
			service.NewClientService,
			service.NewScheduleService,
			service.NewPaymentRequestService,
			service.NewExpenseRequestService,
			service.NewReconciliationService,
			service.NewCaseRecordService,

			// HTTP surface
			v1.NewHealthHandler,
			v1.NewClientHandler,
			v1.NewScheduleHandler,
			v1.NewPaymentRequestHandler,
			v1.NewExpenseRequestHandler,
			v1.NewCounterpartyHandler,
			v1.NewCaseRecordHandler,
			newHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideCache(c *cache.InMemoryCache) cache.Cache {
	return c
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	db postgres.IClient,
	cacheClient cache.Cache,
	notifier notification.Dispatcher,
	clientRepo client.Repository,
	obligationRepo schedule.Repository,
	paymentRequestRepo approval.Repository[approval.PaymentPayload],
	expenseRequestRepo approval.Repository[approval.ExpensePayload],
	counterpartyRepo counterparty.Repository,
	caseRepo caserecord.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:             log,
		Config:             cfg,
		DB:                 db,
		Cache:              cacheClient,
		Notifier:           notifier,
		ClientRepo:         clientRepo,
		ObligationRepo:     obligationRepo,
		PaymentRequestRepo: paymentRequestRepo,
		ExpenseRequestRepo: expenseRequestRepo,
		CounterpartyRepo:   counterpartyRepo,
		CaseRepo:           caseRepo,
	}
}

func newHandlers(
	health *v1.HealthHandler,
	client *v1.ClientHandler,
	schedule *v1.ScheduleHandler,
	paymentRequest *v1.PaymentRequestHandler,
	expenseRequest *v1.ExpenseRequestHandler,
	counterparty *v1.CounterpartyHandler,
	caseRecord *v1.CaseRecordHandler,
) api.Handlers {
	return api.Handlers{
		Health:         health,
		Client:         client,
		Schedule:       schedule,
		PaymentRequest: paymentRequest,
		ExpenseRequest: expenseRequest,
		Counterparty:   counterparty,
		CaseRecord:     caseRecord,
	}
}

func provideRouter(cfg *config.Configuration, handlers api.Handlers) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db postgres.IClient,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return db.Close()
		},
	})
}
