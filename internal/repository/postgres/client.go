package postgres

import (
	"context"
	"fmt"

	domainClient "github.com/techAMA2025/NewCRM-sub003/internal/domain/client"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

type clientRepository struct {
	db  postgres.IClient
	log *logger.Logger
}

// NewClientRepository creates a postgres-backed client repository
func NewClientRepository(db postgres.IClient, log *logger.Logger) domainClient.Repository {
	return &clientRepository{db: db, log: log}
}

var clientSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"start_date": true,
}

const clientColumns = `id, name, email, phone, monthly_fee, total_obligation_amount,
	tenure_months, start_date, allocation_type, paid_amount, pending_amount,
	payments_completed_count, status, created_at, updated_at, created_by, updated_by`

func (r *clientRepository) Create(ctx context.Context, c *domainClient.Client) error {
	r.log.Debugw("creating client", "client_id", c.ID)

	query := `INSERT INTO clients (` + clientColumns + `) VALUES (
		:id, :name, :email, :phone, :monthly_fee, :total_obligation_amount,
		:tenure_months, :start_date, :allocation_type, :paid_amount, :pending_amount,
		:payments_completed_count, :status, :created_at, :updated_at, :created_by, :updated_by)`

	query, args, err := bindNamed(query, c)
	if err != nil {
		return wrapErr(err, "client")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "client")
	}
	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*domainClient.Client, error) {
	var c domainClient.Client
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND status != $2`
	if err := r.db.Querier(ctx).GetContext(ctx, &c, query, id, types.StatusDeleted); err != nil {
		return nil, wrapErr(err, "client")
	}
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domainClient.Client) error {
	query := `UPDATE clients SET
		name = :name, email = :email, phone = :phone, monthly_fee = :monthly_fee,
		total_obligation_amount = :total_obligation_amount, tenure_months = :tenure_months,
		start_date = :start_date, allocation_type = :allocation_type,
		paid_amount = :paid_amount, pending_amount = :pending_amount,
		payments_completed_count = :payments_completed_count, status = :status,
		updated_at = NOW(), updated_by = :updated_by
		WHERE id = :id`

	query, args, err := bindNamed(query, c)
	if err != nil {
		return wrapErr(err, "client")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "client")
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, filter *types.ClientFilter) ([]*domainClient.Client, error) {
	query, args := r.buildListQuery("SELECT "+clientColumns, filter, true)

	clients := make([]*domainClient.Client, 0)
	if err := r.db.Querier(ctx).SelectContext(ctx, &clients, query, args...); err != nil {
		return nil, wrapErr(err, "client")
	}
	return clients, nil
}

func (r *clientRepository) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	query, args := r.buildListQuery("SELECT COUNT(*)", filter, false)

	var total int
	if err := r.db.Querier(ctx).GetContext(ctx, &total, query, args...); err != nil {
		return 0, wrapErr(err, "client")
	}
	return total, nil
}

func (r *clientRepository) buildListQuery(selectClause string, filter *types.ClientFilter, paginate bool) (string, []interface{}) {
	query := selectClause + ` FROM clients WHERE status = $1`
	args := []interface{}{filter.GetStatus()}

	if filter.AllocationType != nil {
		args = append(args, *filter.AllocationType)
		query += fmt.Sprintf(" AND allocation_type = $%d", len(args))
	}
	if filter.NameContains != nil {
		args = append(args, "%"+*filter.NameContains+"%")
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	if paginate {
		query += fmt.Sprintf(" ORDER BY %s %s",
			sortColumn(filter.GetSort(), clientSortColumns), sortOrder(filter.GetOrder()))
		if !filter.IsUnlimited() {
			args = append(args, filter.GetLimit())
			query += fmt.Sprintf(" LIMIT $%d", len(args))
			args = append(args, filter.GetOffset())
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}
	return query, args
}
