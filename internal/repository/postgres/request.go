package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// requestRow is the flat storage shape shared by both request tables. The
// payload column is jsonb; everything the workflow filters on is a real
// column.
type requestRow struct {
	ID               string               `db:"id"`
	ApprovalStatus   types.ApprovalStatus `db:"approval_status"`
	Notes            string               `db:"notes"`
	RequestedBy      string               `db:"requested_by"`
	RequestDate      time.Time            `db:"request_date"`
	ApprovedBy       *string              `db:"approved_by"`
	ApprovedAt       *time.Time           `db:"approved_at"`
	RejectedBy       *string              `db:"rejected_by"`
	RejectedAt       *time.Time           `db:"rejected_at"`
	EditedBy         *string              `db:"edited_by"`
	EditedAt         *time.Time           `db:"edited_at"`
	NotificationSent bool                 `db:"notification_sent"`
	NotifiedAt       *time.Time           `db:"notified_at"`
	ClientID         *string              `db:"client_id"`
	Payload          []byte               `db:"payload"`

	types.BaseModel
}

type requestRepository[P approval.Payload[P]] struct {
	db    postgres.IClient
	log   *logger.Logger
	table string
	// clientID extracts the filterable client reference from the payload,
	// nil for payloads with no client linkage.
	clientID func(P) *string
}

// NewPaymentRequestRepository creates a postgres-backed payment request repository
func NewPaymentRequestRepository(db postgres.IClient, log *logger.Logger) approval.Repository[approval.PaymentPayload] {
	return &requestRepository[approval.PaymentPayload]{
		db:    db,
		log:   log,
		table: "payment_requests",
		clientID: func(p approval.PaymentPayload) *string {
			return &p.ClientID
		},
	}
}

// NewExpenseRequestRepository creates a postgres-backed expense request repository
func NewExpenseRequestRepository(db postgres.IClient, log *logger.Logger) approval.Repository[approval.ExpensePayload] {
	return &requestRepository[approval.ExpensePayload]{
		db:    db,
		log:   log,
		table: "expense_requests",
	}
}

const requestColumns = `id, approval_status, notes, requested_by, request_date,
	approved_by, approved_at, rejected_by, rejected_at, edited_by, edited_at,
	notification_sent, notified_at, client_id, payload,
	status, created_at, updated_at, created_by, updated_by`

var requestSortColumns = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"request_date": true,
}

func (r *requestRepository[P]) Create(ctx context.Context, req *approval.Request[P]) error {
	row, err := r.toRow(req)
	if err != nil {
		return err
	}

	r.log.Debugw("creating request", "table", r.table, "request_id", req.ID)

	query := `INSERT INTO ` + r.table + ` (` + requestColumns + `) VALUES (
		:id, :approval_status, :notes, :requested_by, :request_date,
		:approved_by, :approved_at, :rejected_by, :rejected_at, :edited_by, :edited_at,
		:notification_sent, :notified_at, :client_id, :payload,
		:status, :created_at, :updated_at, :created_by, :updated_by)`

	query, args, err := bindNamed(query, row)
	if err != nil {
		return wrapErr(err, "request")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "request")
	}
	return nil
}

func (r *requestRepository[P]) Get(ctx context.Context, id string) (*approval.Request[P], error) {
	var row requestRow
	query := `SELECT ` + requestColumns + ` FROM ` + r.table + ` WHERE id = $1`
	if err := r.db.Querier(ctx).GetContext(ctx, &row, query, id); err != nil {
		return nil, wrapErr(err, "request")
	}
	return r.fromRow(&row)
}

func (r *requestRepository[P]) Update(ctx context.Context, req *approval.Request[P]) error {
	row, err := r.toRow(req)
	if err != nil {
		return err
	}

	query := `UPDATE ` + r.table + ` SET
		approval_status = :approval_status, notes = :notes,
		approved_by = :approved_by, approved_at = :approved_at,
		rejected_by = :rejected_by, rejected_at = :rejected_at,
		edited_by = :edited_by, edited_at = :edited_at,
		notification_sent = :notification_sent, notified_at = :notified_at,
		payload = :payload, updated_at = NOW(), updated_by = :updated_by
		WHERE id = :id`

	query, args, err := bindNamed(query, row)
	if err != nil {
		return wrapErr(err, "request")
	}
	if _, err := r.db.Querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return wrapErr(err, "request")
	}
	return nil
}

func (r *requestRepository[P]) Delete(ctx context.Context, id string) error {
	result, err := r.db.Querier(ctx).ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return wrapErr(err, "request")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ierr.NewError("request not found").
			WithHintf("Request %s not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *requestRepository[P]) List(ctx context.Context, filter *types.RequestFilter) ([]*approval.Request[P], error) {
	query, args := r.buildListQuery("SELECT "+requestColumns, filter, true)

	rows := make([]*requestRow, 0)
	if err := r.db.Querier(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapErr(err, "request")
	}

	requests := make([]*approval.Request[P], 0, len(rows))
	for _, row := range rows {
		req, err := r.fromRow(row)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *requestRepository[P]) Count(ctx context.Context, filter *types.RequestFilter) (int, error) {
	query, args := r.buildListQuery("SELECT COUNT(*)", filter, false)

	var total int
	if err := r.db.Querier(ctx).GetContext(ctx, &total, query, args...); err != nil {
		return 0, wrapErr(err, "request")
	}
	return total, nil
}

func (r *requestRepository[P]) buildListQuery(selectClause string, filter *types.RequestFilter, paginate bool) (string, []interface{}) {
	query := selectClause + ` FROM ` + r.table + ` WHERE 1 = 1`
	args := make([]interface{}, 0)

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND approval_status = $%d", len(args))
	}
	if filter.RequestedBy != nil {
		args = append(args, *filter.RequestedBy)
		query += fmt.Sprintf(" AND requested_by = $%d", len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += fmt.Sprintf(" AND client_id = $%d", len(args))
	}

	if paginate {
		query += fmt.Sprintf(" ORDER BY %s %s",
			sortColumn(filter.GetSort(), requestSortColumns), sortOrder(filter.GetOrder()))
		if !filter.IsUnlimited() {
			args = append(args, filter.GetLimit())
			query += fmt.Sprintf(" LIMIT $%d", len(args))
			args = append(args, filter.GetOffset())
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}
	return query, args
}

func (r *requestRepository[P]) toRow(req *approval.Request[P]) (*requestRow, error) {
	payload, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to encode request payload").
			Mark(ierr.ErrSystem)
	}

	row := &requestRow{
		ID:               req.ID,
		ApprovalStatus:   req.ApprovalStatus,
		Notes:            req.Notes,
		RequestedBy:      req.RequestedBy,
		RequestDate:      req.RequestDate,
		ApprovedBy:       req.ApprovedBy,
		ApprovedAt:       req.ApprovedAt,
		RejectedBy:       req.RejectedBy,
		RejectedAt:       req.RejectedAt,
		EditedBy:         req.EditedBy,
		EditedAt:         req.EditedAt,
		NotificationSent: req.NotificationSent,
		NotifiedAt:       req.NotifiedAt,
		Payload:          payload,
		BaseModel:        req.BaseModel,
	}
	if r.clientID != nil {
		row.ClientID = r.clientID(req.Payload)
	}
	return row, nil
}

func (r *requestRepository[P]) fromRow(row *requestRow) (*approval.Request[P], error) {
	var payload P
	if err := json.Unmarshal(row.Payload, &payload); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode request payload").
			Mark(ierr.ErrSystem)
	}

	return &approval.Request[P]{
		ID:               row.ID,
		ApprovalStatus:   row.ApprovalStatus,
		Notes:            row.Notes,
		RequestedBy:      row.RequestedBy,
		RequestDate:      row.RequestDate,
		ApprovedBy:       row.ApprovedBy,
		ApprovedAt:       row.ApprovedAt,
		RejectedBy:       row.RejectedBy,
		RejectedAt:       row.RejectedAt,
		EditedBy:         row.EditedBy,
		EditedAt:         row.EditedAt,
		NotificationSent: row.NotificationSent,
		NotifiedAt:       row.NotifiedAt,
		Payload:          payload,
		BaseModel:        row.BaseModel,
	}, nil
}
