package cmd

import (
	"context"
	"os/signal"
	"syscall"
)

// TermSignalAwaiter returns once the process receives SIGTERM or SIGINT, or ctx is done.
func TermSignalAwaiter(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	return nil
}
