package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// equalityCounterTask is counterTask's cousin for this scenario: it
// tracks how many times OnStart actually fired on it, which only ever
// happens on the one instance a parent's equality check keeps installed.
type equalityCounterTask struct {
	*task.Node
	max    int
	ticks  int
	starts *int
}

func newEqualityCounterTask(max int, starts *int) *equalityCounterTask {
	c := &equalityCounterTask{max: max, starts: starts}
	c.Node = task.NewNode(c, "equality-counter")
	return c
}

func (c *equalityCounterTask) OnStart()  { *c.starts++ }
func (c *equalityCounterTask) OnTick() task.Task {
	if c.ticks < c.max {
		c.ticks++
	}
	return nil
}
func (c *equalityCounterTask) OnStop(interrupt task.Task) {}
func (c *equalityCounterTask) IsFinished() bool           { return c.ticks >= c.max }
func (c *equalityCounterTask) IsEqual(other task.Task) bool {
	o, ok := other.(*equalityCounterTask)
	return ok && o.max == c.max
}

// counterParentTask always hands back a brand-new equalityCounterTask
// with the same max, exercising the runtime's equality-gated
// replacement: only the first instance it ever installs should ever
// receive a tick.
type counterParentTask struct {
	*task.Node
	max    int
	starts *int
}

func newCounterParentTask(max int, starts *int) *counterParentTask {
	p := &counterParentTask{max: max, starts: starts}
	p.Node = task.NewNode(p, "counter-parent")
	return p
}

func (p *counterParentTask) OnStart() {}
func (p *counterParentTask) OnTick() task.Task {
	return newEqualityCounterTask(p.max, p.starts)
}
func (p *counterParentTask) OnStop(interrupt task.Task) {}
func (p *counterParentTask) IsFinished() bool {
	sub := p.CurrentSubtask()
	return sub != nil && sub.IsFinished()
}
func (p *counterParentTask) IsEqual(other task.Task) bool {
	_, ok := other.(*counterParentTask)
	return ok
}

type equalityGatedContext struct {
	starts int
	parent *counterParentTask
}

func (ec *equalityGatedContext) reset() {
	ec.starts = 0
	ec.parent = nil
}

func (ec *equalityGatedContext) aParentTaskThatReturnsAFreshButEqualCountingSubtaskEveryTick() error {
	ec.parent = newCounterParentTask(5, &ec.starts)
	return nil
}

func (ec *equalityGatedContext) theParentTicksTimes(n int) error {
	for i := 0; i < n; i++ {
		ec.parent.Tick()
	}
	return nil
}

func (ec *equalityGatedContext) theCountingSubtaskShouldHaveStartedExactlyOnce() error {
	if ec.starts != 1 {
		return fmt.Errorf("expected exactly 1 start but got %d", ec.starts)
	}
	return nil
}

func (ec *equalityGatedContext) theCountingSubtaskShouldRead(expected int) error {
	sub, ok := ec.parent.CurrentSubtask().(*equalityCounterTask)
	if !ok {
		return fmt.Errorf("parent has no counting subtask installed")
	}
	if sub.ticks != expected {
		return fmt.Errorf("expected counter %d but got %d", expected, sub.ticks)
	}
	return nil
}

func (ec *equalityGatedContext) theParentTaskShouldBeFinished() error {
	if !ec.parent.IsFinished() {
		return fmt.Errorf("expected parent task to be finished")
	}
	return nil
}

// InitializeEqualityGatedReplacementScenario registers the
// equality-gated subtask replacement steps.
func InitializeEqualityGatedReplacementScenario(sc *godog.ScenarioContext) {
	ec := &equalityGatedContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		ec.reset()
		return ctx, nil
	})

	sc.Step(`^a parent task that returns a fresh but equal counting subtask every tick$`, ec.aParentTaskThatReturnsAFreshButEqualCountingSubtaskEveryTick)
	sc.Step(`^the parent ticks (\d+) times$`, ec.theParentTicksTimes)
	sc.Step(`^the counting subtask should have started exactly once$`, ec.theCountingSubtaskShouldHaveStartedExactlyOnce)
	sc.Step(`^the counting subtask should read (\d+)$`, ec.theCountingSubtaskShouldRead)
	sc.Step(`^the parent task should be finished$`, ec.theParentTaskShouldBeFinished)
}
