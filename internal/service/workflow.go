package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techAMA2025/NewCRM-sub003/internal/audit"
	"github.com/techAMA2025/NewCRM-sub003/internal/domain/approval"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
	"github.com/techAMA2025/NewCRM-sub003/internal/notification"
	"github.com/techAMA2025/NewCRM-sub003/internal/postgres"
	"github.com/techAMA2025/NewCRM-sub003/internal/types"
)

// workflow is the shared approve/reject/edit machine behind both request
// services. The payload type carries everything request-specific; onApprove
// is the only behavioral knob and runs inside the same transaction as the
// status write.
type workflow[P approval.Payload[P]] struct {
	log      *logger.Logger
	db       postgres.IClient
	repo     approval.Repository[P]
	notifier notification.Dispatcher

	idPrefix string

	// onApprove runs after the approved status is written, in the same
	// transaction. A nil hook means approval has no side effect.
	onApprove func(ctx context.Context, r *approval.Request[P]) error
}

func (w *workflow[P]) submit(ctx context.Context, payload P, notes string) (*approval.Request[P], error) {
	r := &approval.Request[P]{
		ID:             types.GenerateUUIDWithPrefix(w.idPrefix),
		ApprovalStatus: types.ApprovalStatusNotApproved,
		Notes:          notes,
		RequestedBy:    types.GetActorID(ctx),
		RequestDate:    time.Now().UTC(),
		Payload:        payload,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := w.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	w.log.Infow("request submitted",
		"request_id", r.ID,
		"requested_by", r.RequestedBy,
		"amount", r.Payload.Amount(),
	)
	return r, nil
}

func (w *workflow[P]) approve(ctx context.Context, id string) (*approval.Request[P], error) {
	r, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reviewer := types.GetActorID(ctx)
	if err := r.MarkApproved(reviewer, now); err != nil {
		return nil, err
	}
	r.UpdatedBy = reviewer
	r.UpdatedAt = now

	err = w.db.WithTx(ctx, func(txCtx context.Context) error {
		if err := w.repo.Update(txCtx, r); err != nil {
			return err
		}
		if w.onApprove != nil {
			return w.onApprove(txCtx, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.log.Infow("request approved",
		"request_id", r.ID,
		"approved_by", reviewer,
		"amount", r.Payload.Amount(),
	)

	if err := w.notify(ctx, r, notification.EventRequestApproved); err != nil {
		return nil, err
	}
	return r, nil
}

func (w *workflow[P]) reject(ctx context.Context, id string) (*approval.Request[P], error) {
	r, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reviewer := types.GetActorID(ctx)
	if err := r.MarkRejected(reviewer, now); err != nil {
		return nil, err
	}
	r.UpdatedBy = reviewer
	r.UpdatedAt = now

	if err := w.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	w.log.Infow("request rejected",
		"request_id", r.ID,
		"rejected_by", reviewer,
	)

	if err := w.notify(ctx, r, notification.EventRequestRejected); err != nil {
		return nil, err
	}
	return r, nil
}

// notify dispatches the decision event and records the dispatch on the
// request. The decision itself is already committed; a dispatch failure
// surfaces to the caller with notification_sent left false so the record can
// be re-notified.
func (w *workflow[P]) notify(ctx context.Context, r *approval.Request[P], eventType notification.EventType) error {
	err := w.notifier.Dispatch(ctx, &notification.Event{
		Type:      eventType,
		EntityID:  r.ID,
		Actor:     types.GetActorID(ctx),
		Timestamp: time.Now().UTC(),
		Details:   r.Payload,
	})
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.NotificationSent = true
	r.NotifiedAt = &now
	return w.repo.Update(ctx, r)
}

// editAmount overwrites the request amount in any status. It never re-posts
// a ledger entry; it only corrects the record and clears the notification
// flag so the change is re-notified.
func (w *workflow[P]) editAmount(ctx context.Context, id string, amount decimal.Decimal) (*approval.Request[P], error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}

	r, err := w.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := r.AuditFields()
	r.Payload = r.Payload.WithAmount(amount)

	changed, err := audit.ApplyEdit(r, before, types.GetActorID(ctx), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := w.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	w.log.Infow("request amount edited",
		"request_id", r.ID,
		"changed_fields", changed,
		"amount", amount,
	)
	return r, nil
}

// delete hard-removes the request. Ledger entries posted by an earlier
// approval are deliberately left in place.
func (w *workflow[P]) delete(ctx context.Context, id string) error {
	r, err := w.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if r.ApprovalStatus == types.ApprovalStatusApproved {
		w.log.Warnw("deleting approved request, posted ledger entries are kept",
			"request_id", r.ID,
		)
	}

	return w.repo.Delete(ctx, id)
}

func (w *workflow[P]) get(ctx context.Context, id string) (*approval.Request[P], error) {
	return w.repo.Get(ctx, id)
}

func (w *workflow[P]) list(ctx context.Context, filter *types.RequestFilter) ([]*approval.Request[P], int, error) {
	if filter == nil {
		filter = types.NewRequestFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	requests, err := w.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := w.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
