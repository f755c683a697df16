// Package chain implements the priority chain scheduler: multiple
// chains compete by numeric priority each tick, with preemption and
// resumption of the losing chain's work.
package chain

import "github.com/andrescamacho/taskengine-go/internal/domain/task"

// Priority is the chain's logical priority ordering. The exact numeric
// values are not normative (spec §3); only the ordering is.
type Priority int

const (
	Inactive Priority = 0
	UserTask Priority = 50
	Food     Priority = 100
	Danger   Priority = 150
	Death    Priority = 200
)

// Chain is a named unit holding at most one main task and a dynamic
// priority. Priority returns Inactive when the chain currently has no
// work to do.
type Chain interface {
	Name() string
	Priority() Priority
	IsActive() bool
	OnTick()
	OnInterrupt(winner Chain)
	SetTask(t task.Task)
	CurrentTask() task.Task
}

// BaseChain implements the mechanical parts of Chain common to every
// chain kind: main-task ownership, the default resume-capable
// interrupt policy, and the tick-and-reap-on-finish loop. Concrete
// chains embed it and supply their own Priority.
type BaseChain struct {
	name    string
	current task.Task
}

// NewBaseChain constructs an empty chain driver named name.
func NewBaseChain(name string) *BaseChain {
	return &BaseChain{name: name}
}

// Name returns the chain's log-facing identifier.
func (b *BaseChain) Name() string { return b.name }

// CurrentTask returns the chain's main task, or nil.
func (b *BaseChain) CurrentTask() task.Task { return b.current }

// IsActive reports whether the chain holds an unfinished main task.
func (b *BaseChain) IsActive() bool {
	return b.current != nil && !b.current.IsFinished()
}

// SetTask installs t as the main task, per spec §4.2: if the slot is
// empty or holds something not equal to t, the old task is stopped
// with interrupt=t before t is installed. An equal incoming task is a
// no-op, preventing restart flicker.
func (b *BaseChain) SetTask(t task.Task) {
	if b.current != nil && b.current.IsEqual(t) {
		return
	}
	if b.current != nil {
		b.current.Stop(t)
	}
	b.current = t
}

// ClearTask stops and clears the main task, as a cancellation.
func (b *BaseChain) ClearTask() {
	if b.current == nil {
		return
	}
	b.current.Stop(nil)
	b.current = nil
}

// OnTick ticks the main task and reaps it if it finished this step.
func (b *BaseChain) OnTick() {
	if b.current == nil {
		return
	}
	b.current.Tick()
	if b.current.IsFinished() {
		b.current.Stop(nil)
		b.current = nil
	}
}

// OnInterrupt implements the default resume-capable policy: the task
// is retained but simply stops receiving ticks until this chain wins
// again. Single-task chains that must hard-stop on interrupt override
// this method instead of relying on the embedded default.
func (b *BaseChain) OnInterrupt(winner Chain) {}
