// Package queue defines the site event payload and the RabbitMQ plumbing
// that carries it.
package queue

import "time"

// Event types published by the site.
const (
	EventLeadCreated = "lead.created"
	EventTracking    = "tracking"
)

// SiteEvent is published after a lead is stored and for every tracking call
// the relay accepts.  Downstream consumers (logs today, an analytics sink
// later) need nothing beyond the payload itself.
type SiteEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"` // tracking event name or lead specialty
	Data       any       `json:"data,omitempty"` // arbitrary client payload: object, list or scalar
	OccurredAt time.Time `json:"occurred_at"`
}
