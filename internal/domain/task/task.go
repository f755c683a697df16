// Package task implements the reactive task tree runtime: node
// lifecycle, delegation, equality-gated subtask replacement, and the
// force/interrupt safety protocol.
//
// Go has no virtual dispatch through struct embedding, so the runtime
// uses a self-reference template method: concrete leaves implement
// Hooks and embed *Node, which stores that Hooks value as self and
// drives Tick/Stop/Reset against it, rather than relying on
// inheritance.
package task

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

// Hooks is the behavioral contract a concrete task kind implements.
// OnStart fires exactly once before the first OnTick. OnTick returns
// the subtask to delegate to this step, or nil to act directly.
// OnStop runs exactly once, with interrupt set to the replacing task
// when being swapped out, or nil when cancelled or finished normally.
type Hooks interface {
	OnStart()
	OnTick() Task
	OnStop(interrupt Task)
	IsFinished() bool
	IsEqual(other Task) bool
}

// Task is the full node contract exposed to parents and the scheduler.
// Concrete leaves satisfy it by embedding *Node and implementing Hooks;
// Node supplies the driver methods below via promotion.
type Task interface {
	Hooks
	DisplayName() string
	ID() uuid.UUID
	Tick()
	Stop(interrupt Task)
	Reset()
	IsActive() bool
	IsStopped() bool
	CurrentSubtask() Task
	TaskChainString() string
}

// Forcer lets a running subtask refuse replacement this tick,
// regardless of equality (spec §4.3's CanForce capability).
type Forcer interface {
	ShouldForce(candidate Task) bool
}

// Failer distinguishes a finished-by-failure terminal state from a
// finished-by-success one. Tasks without error states need not
// implement it; IsFailed treats them as never-failed.
type Failer interface {
	IsFailed() bool
}

// groundOverride is satisfied by tasks declaring OverridesGrounded:
// "I am safe to run even mid-air." It is deliberately unexported and
// matched by structural assertion so leaf kinds need not import this
// package merely to declare the capability on themselves.
type groundOverride interface {
	OverridesGrounded() bool
}

// OverridesGrounded reports whether t declared the OverridesGrounded
// capability. Tasks that don't implement the marker default to false.
func OverridesGrounded(t Task) bool {
	if t == nil {
		return false
	}
	if o, ok := t.(groundOverride); ok {
		return o.OverridesGrounded()
	}
	return false
}

// IsFailed reports whether t terminated in a failure state. Tasks that
// don't implement Failer are never considered failed by this helper.
func IsFailed(t Task) bool {
	if t == nil {
		return false
	}
	if f, ok := t.(Failer); ok {
		return f.IsFailed()
	}
	return false
}

// SameKind is the default equality used by most leaves: two tasks are
// the "same work" if they are the same concrete Go type. Leaves whose
// parameters matter (destination, item+count, recipe) compose this
// with their own field comparison instead of using it alone.
func SameKind(a, b Task) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// GroundedGuard implements the default RequiresGrounded force rule:
// refuse replacement while the agent is not grounded-or-safe, unless
// the candidate declares OverridesGrounded. Embed it in a leaf to gain
// Forcer for free; leaves needing a non-default policy implement
// ShouldForce themselves instead of embedding this.
type GroundedGuard struct {
	Agent agent.Agent
}

// ShouldForce implements Forcer.
func (g GroundedGuard) ShouldForce(candidate Task) bool {
	if g.Agent == nil {
		return false
	}
	if agent.GroundedOrSafe(g.Agent) {
		return false
	}
	return !OverridesGrounded(candidate)
}

// Node is the generic driver embedded by every concrete task kind. It
// owns the private first/active/stopped flags and the current-subtask
// slot from spec §3, and implements the six-step tick/stop/reset
// algorithm from spec §4.1 against the Hooks value it was constructed
// with.
type Node struct {
	self Hooks

	id   uuid.UUID
	name string

	first   bool
	active  bool
	stopped bool

	current Task
}

// NewNode constructs a driver for self, identified by name in logs and
// debug dumps. self is almost always the struct embedding this Node;
// callers must pass a fully-constructed self (not a zero value still
// under construction) since Tick never re-reads it.
func NewNode(self Hooks, name string) *Node {
	return &Node{
		self:  self,
		id:    uuid.New(),
		name:  name,
		first: true,
	}
}

// DisplayName returns the stable name passed to NewNode.
func (n *Node) DisplayName() string { return n.name }

// ID returns this node's instance identity, used only for log and
// metric correlation — never for equality.
func (n *Node) ID() uuid.UUID { return n.id }

// IsActive reports whether onStart has fired and stop has not.
func (n *Node) IsActive() bool { return n.active }

// IsStopped reports whether this node has been stopped.
func (n *Node) IsStopped() bool { return n.stopped }

// CurrentSubtask returns the task currently owned by this node, or nil.
func (n *Node) CurrentSubtask() Task { return n.current }

// TaskChainString renders the live delegation path as "name > name > ...".
func (n *Node) TaskChainString() string {
	if n.current == nil {
		return n.name
	}
	return n.name + " > " + n.current.TaskChainString()
}

// Tick runs one step of the normative algorithm from spec §4.1 steps 1-4.
func (n *Node) Tick() {
	if n.first {
		n.self.OnStart()
		n.first = false
		n.active = true
	}

	newSub := n.self.OnTick()

	if newSub != nil {
		if n.current == nil || !n.current.IsEqual(newSub) {
			if n.current != nil && shouldForce(n.current, newSub) {
				// Current subtask refuses interruption; keep it untouched.
			} else {
				if n.current != nil {
					n.current.Stop(newSub)
				}
				n.current = newSub
			}
		}
		if n.current != nil {
			n.current.Tick()
		}
		return
	}

	if n.current != nil {
		n.current.Stop(nil)
		n.current = nil
	}
}

func shouldForce(current, candidate Task) bool {
	if f, ok := current.(Forcer); ok {
		return f.ShouldForce(candidate)
	}
	return false
}

// Stop implements the idempotent stop from spec §4.1 step 5: it
// recursively stops any held subtask with the same interrupt, then
// fires onStop, then marks the node stopped and inactive. Calls after
// the first are no-ops.
func (n *Node) Stop(interrupt Task) {
	if n.stopped {
		return
	}
	if n.current != nil {
		n.current.Stop(interrupt)
		n.current = nil
	}
	n.self.OnStop(interrupt)
	n.stopped = true
	n.active = false
}

// Reset returns the node to its pre-onStart state, suitable for reuse.
func (n *Node) Reset() {
	n.first = true
	n.active = false
	n.stopped = false
	n.current = nil
}
