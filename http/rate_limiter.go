package http

import (
	"context"
	"strconv"
	"time"

	"fincalc/repository"
)

const keyPrefix = "fincalc:ratelimit:"

// RateLimiter allows limit requests per client in each fixed window.
type RateLimiter struct {
	store  repository.CounterRepository
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewRateLimiter(store repository.CounterRepository, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (r *RateLimiter) Allow(ctx context.Context, client string) (bool, error) {
	slot := r.now().UnixNano() / int64(r.window)
	key := keyPrefix + client + ":" + strconv.FormatInt(slot, 10)

	count, err := r.store.Increment(ctx, key, r.window)
	if err != nil {
		return false, err
	}
	return count <= int64(r.limit), nil
}
