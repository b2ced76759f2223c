package postgres

import (
	"context"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/schedule"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
)

type obligationRepository struct {
	db  postgres.IClient
	log *logger.Logger
}

// NewObligationRepository creates a postgres-backed obligation repository
func NewObligationRepository(db postgres.IClient, log *logger.Logger) schedule.Repository {
	return &obligationRepository{db: db, log: log}
}

const obligationColumns = `client_id, month_number, due_date, due_amount, paid_amount,
	obligation_status, reminder_sent, status, created_at, updated_at, created_by, updated_by`

func (r *obligationRepository) Create(ctx context.Context, o *schedule.MonthlyObligation) error {
	r.log.Debugw("materializing obligation",
		"client_id", o.ClientID,
		"month_number", o.MonthNumber,
	)

	query := `INSERT INTO monthly_obligations (` + obligationColumns + `) VALUES (
		:client_id, :month_number, :due_date, :due_amount, :paid_amount,
		:obligation_status, :reminder_sent, :status, :created_at, :updated_at, :created_by, :updated_by)`

	query, args, err := bindNamed(query, o)
	if err != nil {
		return wrapErr(err, "obligation")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "obligation")
	}
	return nil
}

func (r *obligationRepository) Get(ctx context.Context, clientID string, monthNumber int) (*schedule.MonthlyObligation, error) {
	var o schedule.MonthlyObligation
	query := `SELECT ` + obligationColumns + ` FROM monthly_obligations
		WHERE client_id = $1 AND month_number = $2`
	if err := r.db.Querier(ctx).GetContext(ctx, &o, query, clientID, monthNumber); err != nil {
		return nil, wrapErr(err, "obligation")
	}
	return &o, nil
}

func (r *obligationRepository) Update(ctx context.Context, o *schedule.MonthlyObligation) error {
	query := `UPDATE monthly_obligations SET
		due_date = :due_date, due_amount = :due_amount, paid_amount = :paid_amount,
		obligation_status = :obligation_status, reminder_sent = :reminder_sent,
		updated_at = NOW(), updated_by = :updated_by
		WHERE client_id = :client_id AND month_number = :month_number`

	query, args, err := bindNamed(query, o)
	if err != nil {
		return wrapErr(err, "obligation")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "obligation")
	}
	return nil
}

func (r *obligationRepository) ListByClient(ctx context.Context, clientID string) ([]*schedule.MonthlyObligation, error) {
	obligations := make([]*schedule.MonthlyObligation, 0)
	query := `SELECT ` + obligationColumns + ` FROM monthly_obligations
		WHERE client_id = $1 ORDER BY month_number ASC`
	if err := r.db.Querier(ctx).SelectContext(ctx, &obligations, query, clientID); err != nil {
		return nil, wrapErr(err, "obligation")
	}
	return obligations, nil
}
