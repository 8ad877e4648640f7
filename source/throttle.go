package source

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled limits how fast bytes are handed out, simulating slow feeds
// or keeping consumption polite on shared links.
type Throttled struct {
	ctx     context.Context
	src     Source
	limiter *rate.Limiter
}

// Throttle wraps src so Next delivers at most bytesPerSecond.
// A zero or negative rate disables limiting.
func Throttle(ctx context.Context, src Source, bytesPerSecond float64) *Throttled {
	limit := rate.Inf
	if bytesPerSecond > 0 {
		limit = rate.Limit(bytesPerSecond)
	}

	return &Throttled{
		ctx:     ctx,
		src:     src,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (t *Throttled) Next() (byte, error) {
	if err := t.limiter.Wait(t.ctx); err != nil {
		return 0, err
	}
	return t.src.Next()
}
