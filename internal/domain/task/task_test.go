package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// scriptedLeaf is a minimal Hooks implementation for driving Node
// through controlled scenarios without a real agent or subtask.
type scriptedLeaf struct {
	*task.Node

	onStart   func()
	onTick    func() task.Task
	onStop    func(task.Task)
	finished  bool
	equalFunc func(task.Task) bool
}

func newScriptedLeaf(name string) *scriptedLeaf {
	l := &scriptedLeaf{}
	l.Node = task.NewNode(l, name)
	return l
}

func (l *scriptedLeaf) OnStart() {
	if l.onStart != nil {
		l.onStart()
	}
}
func (l *scriptedLeaf) OnTick() task.Task {
	if l.onTick != nil {
		return l.onTick()
	}
	return nil
}
func (l *scriptedLeaf) OnStop(interrupt task.Task) {
	if l.onStop != nil {
		l.onStop(interrupt)
	}
}
func (l *scriptedLeaf) IsFinished() bool { return l.finished }
func (l *scriptedLeaf) IsEqual(other task.Task) bool {
	if l.equalFunc != nil {
		return l.equalFunc(other)
	}
	return task.SameKind(l, other)
}

func TestNode_Tick_RunsOnStartExactlyOnce(t *testing.T) {
	startCount := 0
	leaf := newScriptedLeaf("leaf")
	leaf.onStart = func() { startCount++ }

	leaf.Tick()
	leaf.Tick()
	leaf.Tick()

	assert.Equal(t, 1, startCount)
}

func TestNode_Tick_DelegatesToNewSubtaskAndTicksIt(t *testing.T) {
	sub := newScriptedLeaf("sub")
	subTicks := 0
	sub.onTick = func() task.Task { subTicks++; return nil }

	parent := newScriptedLeaf("parent")
	parent.onTick = func() task.Task { return sub }

	parent.Tick()

	require.Equal(t, sub, parent.CurrentSubtask())
	assert.Equal(t, 1, subTicks)
}

func TestNode_Tick_EqualSubtaskIsNotRestarted(t *testing.T) {
	stopCount := 0
	sub1 := newScriptedLeaf("sub")
	sub1.onStop = func(task.Task) { stopCount++ }
	sub1.equalFunc = func(other task.Task) bool { return true }

	sub2 := newScriptedLeaf("sub")

	parent := newScriptedLeaf("parent")
	calls := 0
	parent.onTick = func() task.Task {
		calls++
		if calls == 1 {
			return sub1
		}
		return sub2
	}

	parent.Tick()
	parent.Tick()

	assert.Equal(t, 0, stopCount)
	assert.Same(t, sub1, parent.CurrentSubtask())
}

func TestNode_Tick_UnequalSubtaskReplacesAndStopsOld(t *testing.T) {
	var interruptedBy task.Task
	sub1 := newScriptedLeaf("sub1")
	sub1.onStop = func(interrupt task.Task) { interruptedBy = interrupt }
	sub1.equalFunc = func(other task.Task) bool { return false }

	sub2 := newScriptedLeaf("sub2")

	parent := newScriptedLeaf("parent")
	calls := 0
	parent.onTick = func() task.Task {
		calls++
		if calls == 1 {
			return sub1
		}
		return sub2
	}

	parent.Tick()
	parent.Tick()

	assert.Same(t, sub2, interruptedBy)
	assert.Same(t, sub2, parent.CurrentSubtask())
}

func TestNode_Tick_NilSubtaskStopsAndClearsCurrent(t *testing.T) {
	stopped := false
	sub := newScriptedLeaf("sub")
	sub.onStop = func(task.Task) { stopped = true }

	parent := newScriptedLeaf("parent")
	calls := 0
	parent.onTick = func() task.Task {
		calls++
		if calls == 1 {
			return sub
		}
		return nil
	}

	parent.Tick()
	parent.Tick()

	assert.True(t, stopped)
	assert.Nil(t, parent.CurrentSubtask())
}

func TestNode_Stop_IsIdempotent(t *testing.T) {
	stopCount := 0
	leaf := newScriptedLeaf("leaf")
	leaf.onStop = func(task.Task) { stopCount++ }

	leaf.Stop(nil)
	leaf.Stop(nil)

	assert.Equal(t, 1, stopCount)
	assert.True(t, leaf.IsStopped())
}

func TestNode_Stop_RecursivelyStopsCurrentSubtask(t *testing.T) {
	subStopped := false
	sub := newScriptedLeaf("sub")
	sub.onStop = func(task.Task) { subStopped = true }

	parent := newScriptedLeaf("parent")
	parent.onTick = func() task.Task { return sub }
	parent.Tick()

	parent.Stop(nil)

	assert.True(t, subStopped)
	assert.Nil(t, parent.CurrentSubtask())
}

// forcingSubtask refuses replacement regardless of equality.
type forcingSubtask struct {
	*scriptedLeaf
}

func (f *forcingSubtask) ShouldForce(candidate task.Task) bool { return true }

func TestNode_Tick_ForcerRefusesReplacement(t *testing.T) {
	forced := &forcingSubtask{scriptedLeaf: newScriptedLeaf("forced")}
	forced.Node = task.NewNode(forced, "forced")
	forced.equalFunc = func(other task.Task) bool { return false }

	candidate := newScriptedLeaf("candidate")

	parent := newScriptedLeaf("parent")
	parent.onTick = func() task.Task {
		if parent.CurrentSubtask() == nil {
			return forced
		}
		return candidate
	}

	parent.Tick()
	parent.Tick()

	assert.Same(t, forced, parent.CurrentSubtask())
}

func TestSameKind_ComparesConcreteType(t *testing.T) {
	a := newScriptedLeaf("a")
	b := newScriptedLeaf("b")

	assert.True(t, task.SameKind(a, b))
	assert.False(t, task.SameKind(a, nil))
}

func TestIsFailed_DefaultsFalseWithoutFailer(t *testing.T) {
	leaf := newScriptedLeaf("leaf")
	assert.False(t, task.IsFailed(leaf))
}

func TestOverridesGrounded_DefaultsFalse(t *testing.T) {
	leaf := newScriptedLeaf("leaf")
	assert.False(t, task.OverridesGrounded(leaf))
}
