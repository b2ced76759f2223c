// Package repository wires the concrete postgres stores to the domain
// repository interfaces consumed by the services.
package repository

import (
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	pgRepo "github.com/techAMA2025/NewCRM-sub003/internal/repository/postgres"
)

func NewClientRepository(db postgres.IClient, log *logger.Logger) client.Repository {
	return pgRepo.NewClientRepository(db, log)
}

func NewObligationRepository(db postgres.IClient, log *logger.Logger) schedule.Repository {
	return pgRepo.NewObligationRepository(db, log)
}

func NewPaymentRequestRepository(db postgres.IClient, log *logger.Logger) approval.Repository[approval.PaymentPayload] {
	return pgRepo.NewPaymentRequestRepository(db, log)
}

func NewExpenseRequestRepository(db postgres.IClient, log *logger.Logger) approval.Repository[approval.ExpensePayload] {
	return pgRepo.NewExpenseRequestRepository(db, log)
}

func NewCounterpartyRepository(db postgres.IClient, log *logger.Logger) counterparty.Repository {
	return pgRepo.NewCounterpartyRepository(db, log)
}

func NewCaseRecordRepository(db postgres.IClient, log *logger.Logger) caserecord.Repository {
	return pgRepo.NewCaseRecordRepository(db, log)
}
