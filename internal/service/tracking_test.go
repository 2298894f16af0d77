package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/clinic-space-site/internal/queue"
)

func TestRelay_RequiresName(t *testing.T) {
	relay := NewTrackingRelay(nil, nil, nil)

	_, err := relay.Relay(context.Background(), TrackingInput{Event: "  "})

	assert.ErrorIs(t, err, ErrEventNameRequired)
}

func TestRelay_PublishesAndForwards(t *testing.T) {
	pub := &fakePublisher{}
	fwd := &fakeForwarder{err: errors.New("503")}
	relay := NewTrackingRelay(pub, fwd, nil)

	ev, err := relay.Relay(context.Background(), TrackingInput{Event: "whatsapp_click", Data: map[string]any{"room": "r1"}})

	require.NoError(t, err)
	assert.Equal(t, queue.EventTracking, ev.Type)
	assert.NotEmpty(t, ev.ID)
	require.Len(t, pub.events, 1)
	require.Len(t, fwd.events, 1)
	assert.Equal(t, "whatsapp_click", fwd.events[0].Name)
}

func TestHTTPForwarder(t *testing.T) {
	var got queue.SiteEvent
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	fwd := NewHTTPForwarder(srv.URL, "public-key")
	err := fwd.Forward(context.Background(), queue.SiteEvent{ID: "e1", Type: queue.EventTracking, Name: "page_view"})

	require.NoError(t, err)
	assert.Equal(t, "public-key", key)
	assert.Equal(t, "page_view", got.Name)
}

func TestHTTPForwarder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPForwarder(srv.URL, "").Forward(context.Background(), queue.SiteEvent{Name: "x"})
	assert.Error(t, err)
}
