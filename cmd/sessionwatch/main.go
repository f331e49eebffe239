// sessionwatch polls the status of one extraction session from the command
// line until it reaches a terminal status.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/extractly-io/extractly/internal/observability/logging"
	"github.com/extractly-io/extractly/internal/poller"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:      "sessionwatch",
		Usage:     "watch an extraction session until it finishes",
		Version:   version,
		ArgsUsage: "SESSION_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Aliases: []string{"u"},
				Usage:   "base URL of the extractly API",
				Value:   "http://localhost:8081",
				Sources: cli.EnvVars("EXTRACTLY_API_URL"),
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "poll interval",
				Value:   poller.DefaultInterval,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "give up after this long (0 means wait forever)",
				Value: 0,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	sessionID := cmd.Args().First()
	if sessionID == "" {
		return errors.New("SESSION_ID argument is required")
	}

	log := logging.NewJSONLogger("sessionwatch", cmd.String("log-level"))
	fetcher := poller.NewHTTPFetcher(cmd.String("api-url"), 10*time.Second)

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan poller.Record, 1)
	failed := make(chan poller.Record, 1)
	p := poller.New(fetcher, log, poller.Options{
		Interval:   cmd.Duration("interval"),
		OnComplete: func(rec poller.Record) { done <- rec },
		OnError:    func(rec poller.Record) { failed <- rec },
	})
	if err := p.Start(ctx, sessionID); err != nil {
		return err
	}
	defer p.Stop()

	for {
		select {
		case rec := <-done:
			fmt.Printf("session %s completed at %s\n", rec.SessionID, rec.UpdatedAt.Format(time.RFC3339))
			return nil
		case rec := <-failed:
			return fmt.Errorf("session %s finished with status %s: %s", rec.SessionID, rec.Status, rec.ErrorMessage)
		case <-ctx.Done():
			if last, ok := p.Last(); ok {
				fmt.Fprintf(os.Stderr, "last observed status: %s %s\n", last.Status, last.ProgressMessage)
			}
			return ctx.Err()
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
