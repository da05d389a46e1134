package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidtube/video-platform/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.WatchEvent
	done   chan struct{}
	want   int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(ctx context.Context, event ports.WatchEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.WatchEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.WatchEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_ProcessesEnqueuedEvents(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.WatchEvent{VideoID: "video-a", ViewerID: "u1"})
	d.Enqueue(ports.WatchEvent{VideoID: "video-b"})
	d.Enqueue(ports.WatchEvent{VideoID: "video-c", ViewerID: "u2"})

	events := svc.wait(t)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestDispatcher_SameVideoKeepsOrder(t *testing.T) {
	const n = 50
	svc := newRecordingService(n)
	d := NewDispatcher(8, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All events for a single video land on one worker, so the viewer
	// sequence must come back exactly as enqueued.
	for i := 0; i < n; i++ {
		d.Enqueue(ports.WatchEvent{VideoID: "video-a", ViewerID: viewer(i)})
	}

	events := svc.wait(t)
	for i, event := range events {
		if event.ViewerID != viewer(i) {
			t.Fatalf("event %d out of order: got viewer %q", i, event.ViewerID)
		}
	}
}

func viewer(i int) string {
	return "viewer-" + strconv.Itoa(i)
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())
	first := d.shardIndex("video-a")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("video-a"); got != first {
			t.Fatalf("shard index changed: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
