package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/extractly-io/extractly/constants"
)

// Record is the read-only status snapshot served by the session status
// endpoint. The server owns the record; a poller only ever observes it.
type Record struct {
	SessionID       string                  `json:"session_id"`
	Status          constants.SessionStatus `json:"status"`
	ProgressMessage string                  `json:"progress_message,omitempty"`
	ErrorMessage    string                  `json:"error_message,omitempty"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// StatusFetcher is the transport the poller depends on.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, sessionID string) (Record, error)
}

// DefaultInterval is the poll cadence when none is configured.
const DefaultInterval = 2 * time.Second

// Options configures one poller.
type Options struct {
	// Enabled defaults to true; a disabled poller ignores Start.
	Enabled *bool
	// Interval between polls, DefaultInterval when unset.
	Interval time.Duration
	// OnComplete fires at most once, on a completed status.
	OnComplete func(Record)
	// OnError fires at most once, on a failed or error status.
	OnError func(Record)
}

func (o Options) enabled() bool {
	return o.Enabled == nil || *o.Enabled
}

func (o Options) interval() time.Duration {
	if o.Interval > 0 {
		return o.Interval
	}
	return DefaultInterval
}

// Poller repeatedly fetches the status record of one session until a
// terminal status is observed, Stop is called, or the context is cancelled.
// A fetch failure is logged and swallowed; the next tick retries. Exactly one
// timer exists per running poller and it is released on every exit path.
type Poller struct {
	fetcher StatusFetcher
	log     *slog.Logger
	opts    Options

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
	last    Record
	hasLast bool
}

func New(fetcher StatusFetcher, logger *slog.Logger, opts Options) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{fetcher: fetcher, log: logger, opts: opts}
}

// ErrEmptySessionID is returned by Start when no session is named.
var ErrEmptySessionID = errors.New("poller: session id is required")

// Start begins polling: one immediate fetch, then one fetch per interval.
// Starting a poller that is already running is a no-op, as is starting a
// disabled one. Start does not block; use Stop or context cancellation to
// end polling early.
func (p *Poller) Start(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if !p.opts.enabled() {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.running = true
	p.cancel = cancel
	p.done = done

	go p.loop(ctx, cancel, sessionID, done)
	return nil
}

// Stop ends polling and blocks until the poll goroutine has exited, so no
// callback can fire after Stop returns. Stopping a stopped poller is a
// no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Polling reports whether the poll goroutine is live.
func (p *Poller) Polling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Last returns the most recent status snapshot, if any poll has succeeded.
func (p *Poller) Last() (Record, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.hasLast
}

func (p *Poller) loop(ctx context.Context, cancel context.CancelFunc, sessionID string, done chan struct{}) {
	defer func() {
		cancel()
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(p.opts.interval())
	defer ticker.Stop()

	if p.poll(ctx, sessionID) {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.poll(ctx, sessionID) {
				return
			}
		}
	}
}

// poll runs one fetch-and-evaluate cycle. It reports true when polling must
// stop (terminal status observed or context cancelled).
func (p *Poller) poll(ctx context.Context, sessionID string) bool {
	rec, err := p.fetcher.FetchStatus(ctx, sessionID)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		// transient failure: keep the timer running, next tick retries
		p.log.Warn("poll.fetch_failed", "session_id", sessionID, "error", err)
		return false
	}

	p.mu.Lock()
	p.last = rec
	p.hasLast = true
	p.mu.Unlock()

	if !rec.Status.IsTerminal() {
		return false
	}
	if ctx.Err() != nil {
		return true
	}
	switch rec.Status {
	case constants.SessionStatusCompleted:
		p.log.Info("poll.completed", "session_id", sessionID)
		if p.opts.OnComplete != nil {
			p.opts.OnComplete(rec)
		}
	case constants.SessionStatusFailed, constants.SessionStatusError:
		p.log.Warn("poll.failed", "session_id", sessionID, "status", rec.Status, "error", rec.ErrorMessage)
		if p.opts.OnError != nil {
			p.opts.OnError(rec)
		}
	}
	return true
}
