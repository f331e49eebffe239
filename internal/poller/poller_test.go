package poller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/constants"
)

// scriptedFetcher replays a fixed sequence of results; the last entry
// repeats once the script is exhausted.
type scriptedFetcher struct {
	mu     sync.Mutex
	steps  []fetchStep
	calls  int
	notify chan struct{}
}

type fetchStep struct {
	status constants.SessionStatus
	err    error
}

func newScripted(steps ...fetchStep) *scriptedFetcher {
	return &scriptedFetcher{steps: steps, notify: make(chan struct{}, 64)}
}

func (f *scriptedFetcher) FetchStatus(_ context.Context, sessionID string) (Record, error) {
	f.mu.Lock()
	step := f.steps[min(f.calls, len(f.steps)-1)]
	f.calls++
	f.mu.Unlock()
	select {
	case f.notify <- struct{}{}:
	default:
	}
	if step.err != nil {
		return Record{}, step.err
	}
	return Record{SessionID: sessionID, Status: step.status, UpdatedAt: time.Now()}, nil
}

func (f *scriptedFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("condition not reached in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestPollerCompletesAfterProgression(t *testing.T) {
	fetcher := newScripted(
		fetchStep{status: constants.SessionStatusPending},
		fetchStep{status: constants.SessionStatusPending},
		fetchStep{status: constants.SessionStatusProcessing},
		fetchStep{status: constants.SessionStatusCompleted},
	)

	var completed, errored int
	var mu sync.Mutex
	p := New(fetcher, testLogger(), Options{
		Interval: 5 * time.Millisecond,
		OnComplete: func(rec Record) {
			mu.Lock()
			completed++
			mu.Unlock()
			assert.Equal(t, constants.SessionStatusCompleted, rec.Status)
		},
		OnError: func(Record) {
			mu.Lock()
			errored++
			mu.Unlock()
		},
	})

	require.NoError(t, p.Start(context.Background(), "sess-1"))
	waitFor(t, func() bool { return !p.Polling() })

	assert.Equal(t, 4, fetcher.callCount())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, completed)
	assert.Zero(t, errored)

	last, ok := p.Last()
	require.True(t, ok)
	assert.Equal(t, constants.SessionStatusCompleted, last.Status)
}

func TestPollerFiresOnErrorForFailedAndError(t *testing.T) {
	for _, status := range []constants.SessionStatus{constants.SessionStatusFailed, constants.SessionStatusError} {
		t.Run(string(status), func(t *testing.T) {
			fetcher := newScripted(fetchStep{status: status})

			var got []Record
			var mu sync.Mutex
			p := New(fetcher, testLogger(), Options{
				Interval: 5 * time.Millisecond,
				OnError: func(rec Record) {
					mu.Lock()
					got = append(got, rec)
					mu.Unlock()
				},
				OnComplete: func(Record) { t.Error("OnComplete must not fire") },
			})

			require.NoError(t, p.Start(context.Background(), "sess-2"))
			waitFor(t, func() bool { return !p.Polling() })

			mu.Lock()
			defer mu.Unlock()
			require.Len(t, got, 1)
			assert.Equal(t, status, got[0].Status)
		})
	}
}

func TestPollerSwallowsTransientFetchErrors(t *testing.T) {
	fetcher := newScripted(
		fetchStep{err: errors.New("connection refused")},
		fetchStep{err: errors.New("gateway timeout")},
		fetchStep{status: constants.SessionStatusCompleted},
	)

	var completed int
	var mu sync.Mutex
	p := New(fetcher, testLogger(), Options{
		Interval: 5 * time.Millisecond,
		OnComplete: func(Record) {
			mu.Lock()
			completed++
			mu.Unlock()
		},
	})

	require.NoError(t, p.Start(context.Background(), "sess-3"))
	waitFor(t, func() bool { return !p.Polling() })

	assert.Equal(t, 3, fetcher.callCount())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, completed)
}

func TestPollerStopPreventsFurtherFetchesAndCallbacks(t *testing.T) {
	fetcher := newScripted(fetchStep{status: constants.SessionStatusProcessing})

	p := New(fetcher, testLogger(), Options{
		Interval:   5 * time.Millisecond,
		OnComplete: func(Record) { t.Error("no callback after Stop") },
		OnError:    func(Record) { t.Error("no callback after Stop") },
	})

	require.NoError(t, p.Start(context.Background(), "sess-4"))
	waitFor(t, func() bool { return fetcher.callCount() >= 3 })

	p.Stop()
	assert.False(t, p.Polling())

	settled := fetcher.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, fetcher.callCount(), "no fetch after Stop")

	// stopping again is a no-op
	p.Stop()
}

func TestPollerStartIsIdempotentWhileRunning(t *testing.T) {
	fetcher := newScripted(fetchStep{status: constants.SessionStatusPending})
	p := New(fetcher, testLogger(), Options{Interval: 5 * time.Millisecond})

	require.NoError(t, p.Start(context.Background(), "sess-5"))
	require.NoError(t, p.Start(context.Background(), "sess-5"))
	require.NoError(t, p.Start(context.Background(), "sess-5"))

	waitFor(t, func() bool { return fetcher.callCount() >= 4 })
	p.Stop()

	// one timer, one goroutine: call count grows linearly, not 3x per tick
	calls := fetcher.callCount()
	assert.Less(t, calls, 20)
}

func TestPollerDisabledNeverFetches(t *testing.T) {
	fetcher := newScripted(fetchStep{status: constants.SessionStatusCompleted})
	disabled := false
	p := New(fetcher, testLogger(), Options{Enabled: &disabled, Interval: 5 * time.Millisecond})

	require.NoError(t, p.Start(context.Background(), "sess-6"))
	time.Sleep(20 * time.Millisecond)

	assert.False(t, p.Polling())
	assert.Zero(t, fetcher.callCount())
}

func TestPollerRequiresSessionID(t *testing.T) {
	p := New(newScripted(fetchStep{status: constants.SessionStatusPending}), testLogger(), Options{})
	assert.ErrorIs(t, p.Start(context.Background(), ""), ErrEmptySessionID)
}

func TestPollerContextCancellationStopsLoop(t *testing.T) {
	fetcher := newScripted(fetchStep{status: constants.SessionStatusProcessing})
	p := New(fetcher, testLogger(), Options{Interval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx, "sess-7"))
	waitFor(t, func() bool { return fetcher.callCount() >= 2 })

	cancel()
	waitFor(t, func() bool { return !p.Polling() })
}

func TestHTTPFetcherDecodesStatusRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/sessions/sess-8/status", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id":"sess-8","status":"processing","progress_message":"extracting fields","updated_at":"2026-08-28T10:00:00Z"}`))
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.URL, time.Second)
	rec, err := fetcher.FetchStatus(context.Background(), "sess-8")
	require.NoError(t, err)
	assert.Equal(t, constants.SessionStatusProcessing, rec.Status)
	assert.Equal(t, "extracting fields", rec.ProgressMessage)
}

func TestHTTPFetcherReportsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := NewHTTPFetcher(srv.URL, time.Second)
	_, err := fetcher.FetchStatus(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
