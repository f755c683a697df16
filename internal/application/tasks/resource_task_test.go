package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// fakeResourceLeaf is a minimal ResourceHooks implementation for
// exercising ResourceTask's own bookkeeping independent of any real leaf.
type fakeResourceLeaf struct {
	*tasks.ResourceTask

	ticks     int
	equalFunc func(task.Task) bool
}

func newFakeResourceLeaf(ag *demo.SimAgent, targets []*recipe.ItemTarget) *fakeResourceLeaf {
	f := &fakeResourceLeaf{}
	f.ResourceTask = tasks.NewResourceTask(f, f, ag, "FakeResource", targets)
	return f
}

func (f *fakeResourceLeaf) OnResourceStart()                  {}
func (f *fakeResourceLeaf) OnResourceStop(interrupt task.Task) {}
func (f *fakeResourceLeaf) OnResourceTick() task.Task {
	f.ticks++
	return nil
}
func (f *fakeResourceLeaf) ResourceEqual(other task.Task) bool {
	if f.equalFunc != nil {
		return f.equalFunc(other)
	}
	return true
}

func TestResourceTask_IsFinished_FalseUntilEveryTargetMet(t *testing.T) {
	ag := demo.NewSimAgent()
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(2, "stick")}
	f := newFakeResourceLeaf(ag, targets)

	assert.False(t, f.IsFinished())

	ag.AddItem("stick", 2)
	assert.True(t, f.IsFinished())
}

func TestResourceTask_OnTick_DelegatesToHooksWhileUnmet(t *testing.T) {
	ag := demo.NewSimAgent()
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "stick")}
	f := newFakeResourceLeaf(ag, targets)

	f.Tick()
	f.Tick()

	assert.Equal(t, 2, f.ticks)
}

func TestResourceTask_OnTick_StopsDelegatingOnceFinished(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("stick", 1)
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "stick")}
	f := newFakeResourceLeaf(ag, targets)

	f.Tick()

	assert.Equal(t, 0, f.ticks, "OnResourceTick must not be consulted once every target is already met")
}

func TestResourceTask_FirstUnmetTarget_ReturnsFirstUnsatisfiedInOrder(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("stick", 5)
	targets := []*recipe.ItemTarget{
		recipe.NewItemTarget(5, "stick"),
		recipe.NewItemTarget(1, "coal"),
	}
	f := newFakeResourceLeaf(ag, targets)

	got := f.FirstUnmetTarget()

	assert.Same(t, targets[1], got)
}

func TestResourceTask_IsEqual_RequiresSameConcreteTypeAndHookAgreement(t *testing.T) {
	ag := demo.NewSimAgent()
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "stick")}
	a := newFakeResourceLeaf(ag, targets)
	b := newFakeResourceLeaf(ag, targets)

	assert.True(t, a.IsEqual(b))

	a.equalFunc = func(task.Task) bool { return false }
	assert.False(t, a.IsEqual(b))
}
