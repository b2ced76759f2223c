package postgres

import (
	"context"

	"github.com/lib/pq"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/counterparty"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
)

// counterpartyRow stores the email list as a postgres text array
type counterpartyRow struct {
	Name    string         `db:"name"`
	Address string         `db:"address"`
	Emails  pq.StringArray `db:"emails"`
}

type counterpartyRepository struct {
	db  postgres.IClient
	log *logger.Logger
}

// NewCounterpartyRepository creates a postgres-backed counterparty registry
func NewCounterpartyRepository(db postgres.IClient, log *logger.Logger) counterparty.Repository {
	return &counterpartyRepository{db: db, log: log}
}

func (r *counterpartyRepository) Create(ctx context.Context, record *counterparty.Record) error {
	r.log.Debugw("registering counterparty", "name", record.Name)

	query := `INSERT INTO counterparties (name, address, emails) VALUES ($1, $2, $3)`
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query,
		record.Name, record.Address, pq.StringArray(record.Emails)); err != nil {
		return wrapErr(err, "counterparty")
	}
	return nil
}

func (r *counterpartyRepository) GetByName(ctx context.Context, name string) (*counterparty.Record, error) {
	var row counterpartyRow
	query := `SELECT name, address, emails FROM counterparties WHERE name = $1`
	if err := r.db.Querier(ctx).GetContext(ctx, &row, query, name); err != nil {
		return nil, wrapErr(err, "counterparty")
	}
	return rowToRecord(&row), nil
}

func (r *counterpartyRepository) List(ctx context.Context) ([]*counterparty.Record, error) {
	rows := make([]*counterpartyRow, 0)
	query := `SELECT name, address, emails FROM counterparties ORDER BY name ASC`
	if err := r.db.Querier(ctx).SelectContext(ctx, &rows, query); err != nil {
		return nil, wrapErr(err, "counterparty")
	}

	records := make([]*counterparty.Record, len(rows))
	for i, row := range rows {
		records[i] = rowToRecord(row)
	}
	return records, nil
}

func rowToRecord(row *counterpartyRow) *counterparty.Record {
	return &counterparty.Record{
		Name:    row.Name,
		Address: row.Address,
		Emails:  []string(row.Emails),
	}
}
