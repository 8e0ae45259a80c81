package commands

import (
	"context"

	"golang.org/x/time/rate"
)

// setupTickQueue sends one value per tick at the given rate until ctx is
// done, then closes the channel.
func setupTickQueue(ctx context.Context, limit rate.Limit) <-chan struct{} {
	tickQueue := make(chan struct{})
	limiter := rate.NewLimiter(limit, 1)
	go func() {
		defer close(tickQueue)
		for {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case tickQueue <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return tickQueue
}
