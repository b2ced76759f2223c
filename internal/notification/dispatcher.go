// Package notification is the outbound port through which the ledger asks an
// external collaborator to deliver emails/push messages. Dispatch is a
// single synchronous call: failures surface to the caller as ErrDownstream
// and are never retried here.
package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/techAMA2025/NewCRM-sub003/internal/config"
	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
	"github.com/techAMA2025/NewCRM-sub003/internal/httpclient"
	"github.com/techAMA2025/NewCRM-sub003/internal/logger"
)

// EventType identifies what the collaborator should deliver
type EventType string

const (
	EventRequestApproved EventType = "request.approved"
	EventRequestRejected EventType = "request.rejected"
	EventCaseEmail       EventType = "case.email"
)

// Event is the dispatch payload
type Event struct {
	Type      EventType `json:"type"`
	EntityID  string    `json:"entity_id"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Details   any       `json:"details,omitempty"`
}

// Dispatcher requests delivery of a notification
type Dispatcher interface {
	Dispatch(ctx context.Context, event *Event) error
}

type httpDispatcher struct {
	cfg    config.NotificationConfig
	client httpclient.Client
	log    *logger.Logger
}

// NewDispatcher returns an HTTP dispatcher, or a no-op one when dispatch is
// disabled in config.
func NewDispatcher(cfg *config.Configuration, client httpclient.Client, log *logger.Logger) Dispatcher {
	if !cfg.Notification.Enabled || cfg.Notification.URL == "" {
		return &noopDispatcher{log: log}
	}
	return &httpDispatcher{cfg: cfg.Notification, client: client, log: log}
}

func (d *httpDispatcher) Dispatch(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode notification payload").
			Mark(ierr.ErrSystem)
	}

	headers := map[string]string{}
	if d.cfg.APIKey != "" {
		headers["x-api-key"] = d.cfg.APIKey
	}

	resp, err := d.client.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     d.cfg.URL,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		d.log.Errorw("notification dispatch failed",
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"error", err,
		)
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		d.log.Errorw("notification dispatch rejected",
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"status_code", resp.StatusCode,
		)
		return ierr.NewError("notification dispatch rejected").
			WithHint("Notification service rejected the dispatch").
			WithReportableDetails(map[string]any{
				"status_code": resp.StatusCode,
			}).
			Mark(ierr.ErrDownstream)
	}

	return nil
}

type noopDispatcher struct {
	log *logger.Logger
}

func (d *noopDispatcher) Dispatch(_ context.Context, event *Event) error {
	d.log.Debugw("notification dispatch disabled, skipping",
		"event_type", event.Type,
		"entity_id", event.EntityID,
	)
	return nil
}
