package postgres

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/caserecord"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
)

type caseRecordRepository struct {
	db  postgres.IClient
	log *logger.Logger
}

// NewCaseRecordRepository creates a postgres-backed case record repository
func NewCaseRecordRepository(db postgres.IClient, log *logger.Logger) caserecord.Repository {
	return &caseRecordRepository{db: db, log: log}
}

const caseColumns = `id, case_number, client_id, counterparty_name, resolved_counterparty,
	description, email_sent, email_sent_by, email_sent_at,
	status, created_at, updated_at, created_by, updated_by`

func (r *caseRecordRepository) Create(ctx context.Context, c *caserecord.CaseRecord) error {
	r.log.Debugw("creating case", "case_id", c.ID, "case_number", c.CaseNumber)

	query := `INSERT INTO case_records (` + caseColumns + `) VALUES (
		:id, :case_number, :client_id, :counterparty_name, :resolved_counterparty,
		:description, :email_sent, :email_sent_by, :email_sent_at,
		:status, :created_at, :updated_at, :created_by, :updated_by)`

	query, args, err := bindNamed(query, c)
	if err != nil {
		return wrapErr(err, "case")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "case")
	}
	return nil
}

func (r *caseRecordRepository) Get(ctx context.Context, id string) (*caserecord.CaseRecord, error) {
	var c caserecord.CaseRecord
	query := `SELECT ` + caseColumns + ` FROM case_records WHERE id = $1`
	if err := r.db.Querier(ctx).GetContext(ctx, &c, query, id); err != nil {
		return nil, wrapErr(err, "case")
	}
	return &c, nil
}

func (r *caseRecordRepository) Update(ctx context.Context, c *caserecord.CaseRecord) error {
	query := `UPDATE case_records SET
		counterparty_name = :counterparty_name, resolved_counterparty = :resolved_counterparty,
		description = :description, email_sent = :email_sent,
		email_sent_by = :email_sent_by, email_sent_at = :email_sent_at,
		updated_at = NOW(), updated_by = :updated_by
		WHERE id = :id`

	query, args, err := bindNamed(query, c)
	if err != nil {
		return wrapErr(err, "case")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "case")
	}
	return nil
}

func (r *caseRecordRepository) ListByClient(ctx context.Context, clientID string) ([]*caserecord.CaseRecord, error) {
	cases := make([]*caserecord.CaseRecord, 0)
	query := `SELECT ` + caseColumns + ` FROM case_records
		WHERE client_id = $1 ORDER BY created_at DESC`
	if err := r.db.Querier(ctx).SelectContext(ctx, &cases, query, clientID); err != nil {
		return nil, wrapErr(err, "case")
	}
	return cases, nil
}
