package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/techAMA2025/NewCRM-sub003/internal/api/v1"
	"github.com/techAMA2025/NewCRM-sub003/internal/rest/middleware"
)

type Handlers struct {
	Health         *v1.HealthHandler
	Client         *v1.ClientHandler
	Schedule       *v1.ScheduleHandler
	PaymentRequest *v1.PaymentRequestHandler
	ExpenseRequest *v1.ExpenseRequestHandler
	Counterparty   *v1.CounterpartyHandler
	CaseRecord     *v1.CaseRecordHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ActorMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Client routes; schedules and cases hang off the owning client
	clients := router.Group("/clients")
	{
		clients.POST("", handlers.Client.OnboardClient)
		clients.GET("", handlers.Client.ListClients)
		clients.GET("/:id", handlers.Client.GetClient)
		clients.DELETE("/:id", handlers.Client.DeactivateClient)
		clients.GET("/:id/schedule", handlers.Schedule.GetSchedule)
		clients.POST("/:id/payments", handlers.Schedule.PostPayment)
		clients.GET("/:id/cases", handlers.CaseRecord.ListCasesByClient)
	}

	// Payment request workflow
	paymentRequests := router.Group("/payment-requests")
	{
		paymentRequests.POST("", handlers.PaymentRequest.SubmitPaymentRequest)
		paymentRequests.GET("", handlers.PaymentRequest.ListPaymentRequests)
		paymentRequests.GET("/:id", handlers.PaymentRequest.GetPaymentRequest)
		paymentRequests.POST("/:id/approve", handlers.PaymentRequest.ApprovePaymentRequest)
		paymentRequests.POST("/:id/reject", handlers.PaymentRequest.RejectPaymentRequest)
		paymentRequests.PUT("/:id/amount", handlers.PaymentRequest.EditPaymentRequestAmount)
		paymentRequests.DELETE("/:id", handlers.PaymentRequest.DeletePaymentRequest)
	}

	// Expense request workflow
	expenseRequests := router.Group("/expense-requests")
	{
		expenseRequests.POST("", handlers.ExpenseRequest.SubmitExpenseRequest)
		expenseRequests.GET("", handlers.ExpenseRequest.ListExpenseRequests)
		expenseRequests.GET("/:id", handlers.ExpenseRequest.GetExpenseRequest)
		expenseRequests.POST("/:id/approve", handlers.ExpenseRequest.ApproveExpenseRequest)
		expenseRequests.POST("/:id/reject", handlers.ExpenseRequest.RejectExpenseRequest)
		expenseRequests.PUT("/:id/amount", handlers.ExpenseRequest.EditExpenseRequestAmount)
		expenseRequests.DELETE("/:id", handlers.ExpenseRequest.DeleteExpenseRequest)
	}

	// Counterparty registry and reconciliation
	counterparties := router.Group("/counterparties")
	{
		counterparties.POST("", handlers.Counterparty.AddCounterparty)
		counterparties.GET("", handlers.Counterparty.ListCounterparties)
		counterparties.GET("/resolve", handlers.Counterparty.ResolveCounterparty)
	}

	// Case records
	cases := router.Group("/cases")
	{
		cases.POST("", handlers.CaseRecord.CreateCase)
		cases.GET("/:id", handlers.CaseRecord.GetCase)
		cases.PUT("/:id", handlers.CaseRecord.UpdateCase)
		cases.POST("/:id/email", handlers.CaseRecord.MarkEmailSent)
	}
}
