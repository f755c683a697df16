package chain

import "github.com/andrescamacho/taskengine-go/internal/domain/task"

// TickSource drives the runner's Tick method at some cadence. Start
// must call tick repeatedly until Stop is called; both live.TickSource
// and demo.SimulatedTickSource (internal/adapters) satisfy this contract,
// so the Runner is agnostic to which one drives it.
type TickSource interface {
	Start(tick func())
	Stop()
}

// TickListener is notified once per Runner.Tick call.
type TickListener func()

// ChainChangedListener is notified when the active chain changes.
// old is nil the first time a chain becomes active.
type ChainChangedListener func(old, new Chain)

// TaskStartedListener is notified when the active chain's current task
// transitions from empty to holding a task within one tick.
type TaskStartedListener func(c Chain, t task.Task)

// TaskFinishedListener is notified when the active chain's current
// task transitions from holding a task to empty within one tick.
type TaskFinishedListener func(c Chain, t task.Task)

// Runner owns the registered chains and the currently-active one,
// implementing the five-step per-tick algorithm from spec §4.2.
type Runner struct {
	chains    []Chain
	active    Chain
	userChain *UserChain

	tickSource TickSource
	running    bool

	onTick         []TickListener
	onChainChanged []ChainChangedListener
	onTaskStarted  []TaskStartedListener
	onTaskFinished []TaskFinishedListener
}

// NewRunner constructs a Runner with its built-in UserChain already
// registered as the first (and by default only) chain.
func NewRunner() *Runner {
	r := &Runner{}
	r.userChain = NewUserChain()
	r.RegisterChain(r.userChain)
	return r
}

// RegisterChain adds c to the scheduler. Registration order is the
// scheduler's tie-break for equal-priority chains.
func (r *Runner) RegisterChain(c Chain) {
	r.chains = append(r.chains, c)
}

// UnregisterChain removes c. If c was the active chain, it receives
// OnInterrupt(nil) and the runner's active slot is cleared.
func (r *Runner) UnregisterChain(c Chain) {
	for i, existing := range r.chains {
		if existing == c {
			r.chains = append(r.chains[:i], r.chains[i+1:]...)
			break
		}
	}
	if r.active == c {
		c.OnInterrupt(nil)
		r.active = nil
	}
}

// UserTaskChain returns the built-in user-goal chain.
func (r *Runner) UserTaskChain() *UserChain { return r.userChain }

// SetUserTask installs t as the operator's current goal.
func (r *Runner) SetUserTask(t task.Task) { r.userChain.SetUserTask(t) }

// CancelUserTask clears the operator's current goal.
func (r *Runner) CancelUserTask() { r.userChain.CancelUserTask() }

// ActiveChain returns the chain currently holding the runner's
// attention, or nil if none is active.
func (r *Runner) ActiveChain() Chain { return r.active }

// Tick runs a single step of the normative algorithm from spec §4.2.
func (r *Runner) Tick() {
	r.emitTick()

	winner := r.selectWinner()

	if winner != r.active {
		old := r.active
		if old != nil {
			old.OnInterrupt(winner)
		}
		r.active = winner
		r.emitChainChanged(old, winner)
	}

	if r.active == nil {
		return
	}

	before := r.active.CurrentTask()
	r.active.OnTick()
	after := r.active.CurrentTask()

	if before == nil && after != nil {
		r.emitTaskStarted(r.active, after)
	} else if before != nil && after == nil {
		r.emitTaskFinished(r.active, before)
	}
}

// selectWinner scans chains in registration order and returns the
// first one achieving the maximum positive, active priority: ties are
// broken by registration order since a strictly-greater comparison
// never displaces an earlier winner.
func (r *Runner) selectWinner() Chain {
	var winner Chain
	best := Inactive
	for _, c := range r.chains {
		if !c.IsActive() {
			continue
		}
		p := c.Priority()
		if p > best {
			winner = c
			best = p
		}
	}
	return winner
}

// Start attaches the runner to ts, calling Tick on every pulse.
// Starting an already-started runner is a no-op.
func (r *Runner) Start(ts TickSource) {
	if r.running {
		return
	}
	r.tickSource = ts
	r.running = true
	ts.Start(r.Tick)
}

// Stop detaches the runner from its tick source. Stopping an
// already-stopped runner is a no-op.
func (r *Runner) Stop() {
	if !r.running {
		return
	}
	r.tickSource.Stop()
	r.running = false
}

// OnTick registers a tick listener.
func (r *Runner) OnTick(l TickListener) { r.onTick = append(r.onTick, l) }

// OnChainChanged registers a chain-changed listener.
func (r *Runner) OnChainChanged(l ChainChangedListener) {
	r.onChainChanged = append(r.onChainChanged, l)
}

// OnTaskStarted registers a task-started listener.
func (r *Runner) OnTaskStarted(l TaskStartedListener) {
	r.onTaskStarted = append(r.onTaskStarted, l)
}

// OnTaskFinished registers a task-finished listener.
func (r *Runner) OnTaskFinished(l TaskFinishedListener) {
	r.onTaskFinished = append(r.onTaskFinished, l)
}

func (r *Runner) emitTick() {
	for _, l := range r.onTick {
		l()
	}
}

func (r *Runner) emitChainChanged(old, new Chain) {
	for _, l := range r.onChainChanged {
		l(old, new)
	}
}

func (r *Runner) emitTaskStarted(c Chain, t task.Task) {
	for _, l := range r.onTaskStarted {
		l(c, t)
	}
}

func (r *Runner) emitTaskFinished(c Chain, t task.Task) {
	for _, l := range r.onTaskFinished {
		l(c, t)
	}
}
