// Package notify delivers Postgres LISTEN/NOTIFY change notifications to
// in-process subscribers. A database trigger (see the migrations) calls
// pg_notify on every trips mutation; the listener holds one dedicated
// connection and invokes the callback once per notification.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// reconnectDelay is how long the listener waits before re-dialling after
// its connection drops. Notifications sent while disconnected are lost,
// which is fine for this use: subscribers recompute from the store, they
// do not replay events.
const reconnectDelay = 5 * time.Second

// Listener maintains a LISTEN session on one channel and calls onNotify for
// every notification received. Run blocks until ctx is cancelled.
type Listener struct {
	databaseURL string
	channel     string
	onNotify    func(ctx context.Context)
	log         *slog.Logger
}

// NewListener constructs a Listener for the given channel. The callback runs
// on the listener goroutine; keep it short or hand off internally.
func NewListener(databaseURL, channel string, onNotify func(ctx context.Context), log *slog.Logger) *Listener {
	return &Listener{
		databaseURL: databaseURL,
		channel:     channel,
		onNotify:    onNotify,
		log:         log,
	}
}

// Run dials, listens, and dispatches until ctx is cancelled. Connection
// failures are logged and retried; Run only returns the ctx error.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.log.Warn("notification listener disconnected", "channel", l.channel, "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

// listen holds one LISTEN session until the connection breaks or ctx ends.
func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}
	l.log.Info("listening for change notifications", "channel", l.channel)

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			return err
		}
		l.onNotify(ctx)
	}
}
