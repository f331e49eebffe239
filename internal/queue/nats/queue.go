// Package nats moves session IDs between the API process and the extraction
// workers over a NATS queue group, so any number of workers can share one
// stream of sessions with each session delivered to exactly one of them.
package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/extractly-io/extractly/internal/common"
)

const workerGroup = "extract-workers"

type Queue struct {
	conn    *nats.Conn
	subject string
	log     *slog.Logger
}

type Options struct {
	ConnectTimeout time.Duration
	ReconnectWait  time.Duration
	MaxReconnects  int
}

func New(url, subject string, logger *slog.Logger) (*Queue, error) {
	return NewWithOptions(url, subject, logger, Options{})
}

func NewWithOptions(url, subject string, logger *slog.Logger, options Options) (*Queue, error) {
	if logger == nil {
		logger = slog.Default()
	}
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}
	reconnectWait := options.ReconnectWait
	if reconnectWait <= 0 {
		reconnectWait = 2 * time.Second
	}
	maxReconnects := options.MaxReconnects
	if maxReconnects <= 0 {
		maxReconnects = 60
	}

	conn, err := nats.Connect(
		url,
		nats.Name("extractly"),
		nats.Timeout(connectTimeout),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
		nats.RetryOnFailedConnect(true),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats.disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats.reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Queue{conn: conn, subject: subject, log: logger}, nil
}

func (q *Queue) Close() {
	if q.conn != nil {
		q.conn.Close()
	}
}

// PublishSession enqueues a session for extraction.
func (q *Queue) PublishSession(_ context.Context, sessionID uuid.UUID) error {
	if err := q.conn.Publish(q.subject, []byte(sessionID.String())); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	q.log.Info("queue.session_published", "session_id", sessionID, "subject", q.subject)
	return nil
}

// SubscribeSessions consumes session IDs as part of the worker queue group
// and blocks until ctx is cancelled, then drains the subscription. Malformed
// IDs and handler failures are logged, not redelivered; a session that must
// be retried is re-enqueued by its handler.
func (q *Queue) SubscribeSessions(ctx context.Context, handler func(context.Context, uuid.UUID) error) error {
	sub, err := q.conn.QueueSubscribe(q.subject, workerGroup, func(msg *nats.Msg) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		sessionID, err := uuid.Parse(string(msg.Data))
		if err != nil {
			q.log.Error("queue.bad_session_id", "data", string(msg.Data), "error", err)
			return
		}
		handlerCtx, cancel := context.WithCancel(common.WithSessionID(ctx, sessionID.String()))
		defer cancel()
		if err := handler(handlerCtx, sessionID); err != nil {
			q.log.Error("queue.handler_failed", "session_id", sessionID, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("nats subscribe: %w", err)
	}

	if err := q.conn.Flush(); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}
	q.log.Info("queue.subscribed", "subject", q.subject, "group", workerGroup)

	<-ctx.Done()
	if err := sub.Drain(); err != nil {
		return fmt.Errorf("nats drain subscription: %w", err)
	}
	if err := q.conn.FlushTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("nats flush after drain: %w", err)
	}
	return nil
}
