// Package tasks implements the concrete leaf task kinds: the
// ResourceTask family, the acquisition leaves (mine/craft/smelt), the
// representative state-machine leaves from spec §4.8, and the small
// survival leaves (eat/flee/fight/escape) that give the scheduler's
// non-user chains real work.
package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// ResourceHooks is implemented by a concrete resource-gathering leaf.
// ResourceTask handles the common "finished once every target is met"
// bookkeeping and delegates everything else down to these hooks.
type ResourceHooks interface {
	OnResourceStart()
	OnResourceTick() task.Task
	OnResourceStop(interrupt task.Task)
	ResourceEqual(other task.Task) bool
}

// ResourceTask is the abstract base from spec §4.4: given a non-empty
// list of ItemTargets, it is finished once every target's inventory
// count is met, and otherwise ticks by delegating to a subclass.
type ResourceTask struct {
	*task.Node

	Agent   agent.Agent
	Targets []*recipe.ItemTarget

	hooks ResourceHooks
	self  task.Task
}

// NewResourceTask wires a concrete leaf (outer, also implementing
// hooks) into the ResourceTask driver.
func NewResourceTask(outer task.Task, hooks ResourceHooks, ag agent.Agent, name string, targets []*recipe.ItemTarget) *ResourceTask {
	rt := &ResourceTask{Agent: ag, Targets: targets, hooks: hooks, self: outer}
	rt.Node = task.NewNode(rt, name)
	return rt
}

// OnStart implements task.Hooks by delegating to the subclass.
func (r *ResourceTask) OnStart() { r.hooks.OnResourceStart() }

// OnStop implements task.Hooks by delegating to the subclass.
func (r *ResourceTask) OnStop(interrupt task.Task) { r.hooks.OnResourceStop(interrupt) }

// OnTick implements task.Hooks: finished tasks emit no subtask,
// otherwise the subclass decides what to do this step.
func (r *ResourceTask) OnTick() task.Task {
	if r.AllTargetsMet() {
		return nil
	}
	return r.hooks.OnResourceTick()
}

// IsFinished reports whether every target's count is currently met.
func (r *ResourceTask) IsFinished() bool { return r.AllTargetsMet() }

// IsEqual is same-kind-as-other (checked against the outer leaf's
// concrete type, not this base) and the subclass's own parameter
// comparison.
func (r *ResourceTask) IsEqual(other task.Task) bool {
	if !task.SameKind(r.self, other) {
		return false
	}
	return r.hooks.ResourceEqual(other)
}

// AllTargetsMet reports whether every target is currently satisfied.
func (r *ResourceTask) AllTargetsMet() bool {
	items := r.Agent.InventoryItems()
	for _, t := range r.Targets {
		if !t.Satisfied(items) {
			return false
		}
	}
	return true
}

// FirstUnmetTarget returns the first target (in registration order)
// not yet satisfied, or nil if all are met.
func (r *ResourceTask) FirstUnmetTarget() *recipe.ItemTarget {
	items := r.Agent.InventoryItems()
	for _, t := range r.Targets {
		if !t.Satisfied(items) {
			return t
		}
	}
	return nil
}
