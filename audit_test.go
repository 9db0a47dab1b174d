package goNativeAuth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MrEthical07/goNativeAuth/internal/requests"
)

type countingSink struct {
	count atomic.Int64
}

func (s *countingSink) Emit(context.Context, AuditEvent) {
	s.count.Add(1)
}

type blockingSink struct {
	release chan struct{}
	once    sync.Once
}

func (s *blockingSink) Emit(context.Context, AuditEvent) {
	<-s.release
}

func (s *blockingSink) unblock() {
	s.once.Do(func() { close(s.release) })
}

func TestAuditDispatcherDisabledIsNil(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{})
	if d != nil {
		t.Fatal("disabled audit must not spawn a dispatcher")
	}

	// nil receivers are safe.
	d.Emit(context.Background(), AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reports drops")
	}
}

func TestAuditDispatcherDeliversInOrder(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8, DropIfFull: true}, sink)

	for i := 0; i < 3; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventFlowStarted, Outcome: string(rune('a' + i))})
	}
	d.Close()

	for i := 0; i < 3; i++ {
		select {
		case event := <-sink.Events():
			if event.Outcome != string(rune('a'+i)) {
				t.Fatalf("event %d out of order: %q", i, event.Outcome)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for audit event")
		}
	}
}

func TestAuditDispatcherDropsWhenFull(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{})}
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)
	t.Cleanup(func() {
		sink.unblock()
		d.Close()
	})

	// One event is consumed by the worker and parks in the sink, one sits
	// in the buffer; everything after that must be dropped, not block.
	deadline := time.Now().Add(time.Second)
	for d.Dropped() == 0 {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventFlowStarted})
		if time.Now().After(deadline) {
			t.Fatal("dispatcher never dropped")
		}
	}
}

func TestAuditDispatcherCloseDrainsBuffer(t *testing.T) {
	sink := &countingSink{}
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 16, DropIfFull: true}, sink)

	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventFlowStarted})
	}
	d.Close()

	if got := sink.count.Load(); got != 10 {
		t.Fatalf("delivered %d events, want 10", got)
	}

	// Emit after close is a no-op.
	d.Emit(context.Background(), AuditEvent{EventType: auditEventFlowStarted})
	if got := sink.count.Load(); got != 10 {
		t.Fatalf("event delivered after close, count %d", got)
	}
}

func TestJSONWriterSinkWritesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		EventType: auditEventFlowCompleted,
		Flow:      auditFlowSignIn,
		Username:  "user@example.com",
		Success:   true,
	})

	line := strings.TrimSpace(buf.String())
	var decoded AuditEvent
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("sink output is not JSON: %v", err)
	}
	if decoded.EventType != auditEventFlowCompleted || decoded.Flow != auditFlowSignIn {
		t.Fatalf("unexpected event: %+v", decoded)
	}
	if !decoded.Success {
		t.Fatal("success flag lost")
	}
}

func TestEngineEmitsAuditTrail(t *testing.T) {
	stub := newAuthorityStub(t)
	stub.on(requests.PathSignInInitiate, http.StatusOK, map[string]any{
		"credential_token": "ct-1",
	})
	stub.on(requests.PathSignInChallenge, http.StatusOK, map[string]any{
		"challenge_type":     "password",
		"credential_token": "ct-2",
	})
	stub.on(requests.PathSignInToken, http.StatusOK, tokenBody(t))

	sink := NewChannelSink(16)
	engine, err := New().
		WithConfig(Config{
			ClientID:       "client-1",
			AuthorityURL:   stub.server.URL,
			ChallengeTypes: []string{ChallengeTypeOOB, ChallengeTypePassword},
			HTTP:           HTTPConfig{RequestTimeout: 5 * time.Second},
			Poll:           PollConfig{CompletionTimeout: 300 * time.Second, DefaultInterval: 2 * time.Second},
			Cache:          CacheConfig{Size: 8, RedisPrefix: "natc"},
			Audit:          AuditConfig{Enabled: true, BufferSize: 16, DropIfFull: true},
			Metrics:        MetricsConfig{Enabled: true},
		}).
		WithHTTPClient(stub.server.Client()).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx := WithCorrelationID(context.Background(), "corr-1")
	if _, err := engine.SignInStart(ctx, "user@example.com", "hunter22", nil); err != nil {
		t.Fatalf("SignInStart failed: %v", err)
	}
	engine.Close()

	var events []AuditEvent
	for event := range sink.Events() {
		events = append(events, event)
		if event.EventType == auditEventFlowCompleted {
			break
		}
	}
	if len(events) < 2 {
		t.Fatalf("expected start and completion events, got %d", len(events))
	}
	first := events[0]
	if first.EventType != auditEventFlowStarted || first.Flow != auditFlowSignIn {
		t.Fatalf("unexpected first event: %+v", first)
	}
	if first.Username != "user@example.com" || first.CorrelationID != "corr-1" {
		t.Fatalf("event missing identity fields: %+v", first)
	}
	last := events[len(events)-1]
	if last.EventType != auditEventFlowCompleted || !last.Success {
		t.Fatalf("unexpected final event: %+v", last)
	}
	if engine.AuditDropped() != 0 {
		t.Fatalf("unexpected drops: %d", engine.AuditDropped())
	}
}
