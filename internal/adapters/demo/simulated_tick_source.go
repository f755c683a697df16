package demo

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
)

// SimulatedTickSource drives a chain.Runner at a fixed rate using a
// rate.Limiter, the same throttling primitive the teacher's API
// client uses to pace outbound requests, repurposed here to pace
// engine ticks instead of HTTP calls.
type SimulatedTickSource struct {
	limiter *rate.Limiter
	agent   *SimAgent

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulatedTickSource builds a tick source firing ticksPerSecond times a
// second, advancing ag's scripted tick counter before each tick.
func NewSimulatedTickSource(ticksPerSecond int, ag *SimAgent) *SimulatedTickSource {
	return &SimulatedTickSource{
		limiter: rate.NewLimiter(rate.Limit(ticksPerSecond), 1),
		agent:   ag,
	}
}

var _ chain.TickSource = (*SimulatedTickSource)(nil)

// Start implements chain.TickSource, calling tick once per limiter permit.
func (s *SimulatedTickSource) Start(tick func()) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			if err := s.limiter.Wait(ctx); err != nil {
				return
			}
			if s.agent != nil {
				s.agent.AdvanceTick()
			}
			tick()
		}
	}()
}

// Stop implements chain.TickSource, halting the background goroutine
// and blocking until it has exited.
func (s *SimulatedTickSource) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
