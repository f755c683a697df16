// Package live wires the task engine to a real game connection: a
// TickSource driven by the agent's own physics-tick callback rather
// than a local timer.
package live

import "github.com/andrescamacho/taskengine-go/internal/domain/chain"

// PhysicsTicker is satisfied by the production bot connection: it
// calls back once per physics tick (~20Hz) and can be unsubscribed.
type PhysicsTicker interface {
	OnPhysicsTick(fn func())
	RemovePhysicsTickListener()
}

// TickSource drives a chain.Runner off a live connection's own
// physics-tick events instead of a local clock, so the engine stays
// in lockstep with the game's authoritative tick rate.
type TickSource struct {
	conn PhysicsTicker
}

// NewTickSource builds a TickSource bound to conn.
func NewTickSource(conn PhysicsTicker) *TickSource {
	return &TickSource{conn: conn}
}

var _ chain.TickSource = (*TickSource)(nil)

// Start implements chain.TickSource by subscribing tick to conn's physics-tick event.
func (t *TickSource) Start(tick func()) {
	t.conn.OnPhysicsTick(tick)
}

// Stop implements chain.TickSource by unsubscribing from conn.
func (t *TickSource) Stop() {
	t.conn.RemovePhysicsTickListener()
}
