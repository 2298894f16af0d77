package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/clinic-space-site/internal/queue"
)

// ErrEventNameRequired is returned for tracking calls without a name.
var ErrEventNameRequired = errors.New("event name required")

// TrackingInput is the body a browser posts to the relay.
type TrackingInput struct {
	Event string `json:"event"`
	Data  any    `json:"data"` // any JSON value
}

// Forwarder hands an accepted event to an analytics backend.
type Forwarder interface {
	Forward(ctx context.Context, ev queue.SiteEvent) error
}

// NoopForwarder is used when no analytics endpoint is configured.
type NoopForwarder struct{}

func (NoopForwarder) Forward(context.Context, queue.SiteEvent) error { return nil }

// HTTPForwarder posts events as JSON to an analytics endpoint.  It makes a
// single attempt; tracking is best effort.
type HTTPForwarder struct {
	client *resty.Client
	url    string
}

// NewHTTPForwarder builds a forwarder for url.  key, when set, is sent in the
// "apikey" header the hosted analytics endpoint expects.
func NewHTTPForwarder(url, key string) *HTTPForwarder {
	client := resty.New().
		SetTimeout(3*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if key != "" {
		client.SetHeader("apikey", key)
	}
	return &HTTPForwarder{client: client, url: url}
}

func (f *HTTPForwarder) Forward(ctx context.Context, ev queue.SiteEvent) error {
	resp, err := f.client.R().SetContext(ctx).SetBody(ev).Post(f.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return errors.New("analytics endpoint returned " + resp.Status())
	}
	return nil
}

// TrackingRelay accepts client events, logs them and passes them on.
type TrackingRelay struct {
	Events    EventPublisher // optional
	Forwarder Forwarder
	Log       *zap.Logger
}

func NewTrackingRelay(events EventPublisher, fwd Forwarder, log *zap.Logger) *TrackingRelay {
	if fwd == nil {
		fwd = NoopForwarder{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TrackingRelay{Events: events, Forwarder: fwd, Log: log}
}

// Relay accepts one event.  Only a missing name is an error; delivery
// failures downstream are logged and do not affect the caller.
func (t *TrackingRelay) Relay(ctx context.Context, in TrackingInput) (queue.SiteEvent, error) {
	name := strings.TrimSpace(in.Event)
	if name == "" {
		return queue.SiteEvent{}, ErrEventNameRequired
	}
	ev := queue.SiteEvent{
		ID:         uuid.NewString(),
		Type:       queue.EventTracking,
		Name:       name,
		Data:       in.Data,
		OccurredAt: time.Now().UTC(),
	}
	t.Log.Info("tracking event", zap.String("event", name), zap.String("event_id", ev.ID), zap.Any("data", in.Data))

	if t.Events != nil {
		_ = t.Events.Publish(ctx, ev)
	}
	if err := t.Forwarder.Forward(ctx, ev); err != nil {
		t.Log.Warn("tracking forward failed", zap.String("event_id", ev.ID), zap.Error(err))
	}
	return ev, nil
}
