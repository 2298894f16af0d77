package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SiteEventsQueue is the durable queue shared by the publisher and consumer.
const SiteEventsQueue = "site.events"

// DefaultPublishTimeout bounds one publish, dial included.
const DefaultPublishTimeout = 2 * time.Second

// Publisher sends SiteEvents to RabbitMQ.  Events are rare (one per form
// submission or tracking call), so each publish opens its own connection
// instead of holding one open for the life of the process.  Publishes run
// inside requests, so each is bounded by Timeout and by the caller's ctx.
type Publisher struct {
	URL     string
	Timeout time.Duration
	Log     *zap.Logger
}

func NewPublisher(url string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{URL: url, Timeout: DefaultPublishTimeout, Log: log}
}

// dialer connects with ctx and leaves ctx's deadline on the socket for
// the AMQP handshake; amqp clears it once the connection is open.
func dialer(ctx context.Context) func(network, addr string) (net.Conn, error) {
	return func(network, addr string) (net.Conn, error) {
		var d net.Dialer
		conn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		if deadline, ok := ctx.Deadline(); ok {
			if err := conn.SetDeadline(deadline); err != nil {
				_ = conn.Close()
				return nil, err
			}
		}
		return conn, nil
	}
}

// Publish delivers one persistent JSON message to the site.events queue.
// Errors are logged and returned so the caller can ignore them without
// interrupting the request.
func (p *Publisher) Publish(ctx context.Context, ev SiteEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: dialer(ctx)})
	if err != nil {
		p.Log.Warn("rabbitmq dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()
	// channel open and declare have no deadline of their own
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.Warn("rabbitmq channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := declare(ch); err != nil {
		p.Log.Warn("rabbitmq queue declare failed", zap.Error(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Type:         ev.Type,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", SiteEventsQueue, false, false, pub); err != nil {
		p.Log.Warn("rabbitmq publish failed", zap.String("event_type", ev.Type), zap.Error(err))
		return err
	}
	return nil
}

// declare is idempotent; durable so queued events survive broker restarts.
func declare(ch *amqp.Channel) (amqp.Queue, error) {
	return ch.QueueDeclare(SiteEventsQueue, true, false, false, false, nil)
}
