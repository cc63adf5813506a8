package mockdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// Simulator injects artificial latency and random transient failures in
// front of the generated dataset, modeling the flaky upstream the rest of
// the system must tolerate. Callers treat ErrServiceUnavailable as
// transient: retry or surface, their choice — no retry is built in here.
type Simulator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	failureRate float64       // probability in [0,1) that a call fails
	baseLatency time.Duration // minimum artificial delay
	jitter      time.Duration // additional random delay in [0, jitter)
	onFailure   func()
}

// SimulatorOptions configures a Simulator. Zero values disable the
// corresponding behaviour.
type SimulatorOptions struct {
	Seed        int64
	FailureRate float64
	BaseLatency time.Duration
	Jitter      time.Duration
	// OnFailure, when non-nil, is invoked once per injected failure.
	OnFailure func()
}

// NewSimulator builds a Simulator from opts.
func NewSimulator(opts SimulatorOptions) *Simulator {
	return &Simulator{
		rng:         rand.New(rand.NewSource(opts.Seed)),
		failureRate: opts.FailureRate,
		baseLatency: opts.BaseLatency,
		jitter:      opts.Jitter,
		onFailure:   opts.OnFailure,
	}
}

// Call sleeps for the configured jittered latency, then either returns
// ErrServiceUnavailable (with probability failureRate) or nil. It returns
// early with ctx.Err() when the context is cancelled mid-wait.
func (s *Simulator) Call(ctx context.Context) error {
	s.mu.Lock()
	delay := s.baseLatency
	if s.jitter > 0 {
		delay += time.Duration(s.rng.Int63n(int64(s.jitter)))
	}
	fail := s.failureRate > 0 && s.rng.Float64() < s.failureRate
	s.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if fail {
		if s.onFailure != nil {
			s.onFailure()
		}
		return domain.ErrServiceUnavailable
	}
	return nil
}
