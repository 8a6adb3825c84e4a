package events

import (
	"encoding/json"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func newTestClient(hub *Hub, sessionID string) *Client {
	return &Client{
		hub:       hub,
		send:      make(chan []byte, 32),
		sessionID: sessionID,
		logger:    hub.logger,
	}
}

func receiveEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case payload := <-c.send:
		var ev Event
		if err := json.Unmarshal(payload, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubPublishRoutesBySession(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	go hub.Run()

	watcherA := newTestClient(hub, "session-a")
	watcherA2 := newTestClient(hub, "session-a")
	watcherB := newTestClient(hub, "session-b")
	hub.register <- watcherA
	hub.register <- watcherA2
	hub.register <- watcherB

	hub.Publish(NewProgress("session-a", 1, StageTranscribing))

	for _, w := range []*Client{watcherA, watcherA2} {
		ev := receiveEvent(t, w)
		if ev.SessionID != "session-a" || ev.Stage != StageTranscribing || ev.QuestionIndex != 1 {
			t.Errorf("event = %+v, want session-a/transcribing/1", ev)
		}
	}

	select {
	case payload := <-watcherB.send:
		t.Errorf("session-b watcher received foreign event: %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	go hub.Run()

	watcher := newTestClient(hub, "session-a")
	hub.register <- watcher
	hub.unregister <- watcher

	select {
	case _, ok := <-watcher.send:
		if ok {
			t.Error("expected closed send channel after unregister")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send channel not closed after unregister")
	}

	// Publishing to a session with no watchers is a no-op.
	hub.Publish(NewProgress("session-a", 0, StageComplete))
}

func TestNewProgress(t *testing.T) {
	ev := NewProgress("s", 3, StageMetricsComputed)
	if ev.Type != "analysis_progress" {
		t.Errorf("Type = %q, want analysis_progress", ev.Type)
	}
	if ev.Stage != StageMetricsComputed || ev.QuestionIndex != 3 || ev.SessionID != "s" {
		t.Errorf("unexpected event fields: %+v", ev)
	}
	if ev.Timestamp == 0 {
		t.Error("Timestamp not set")
	}
}
