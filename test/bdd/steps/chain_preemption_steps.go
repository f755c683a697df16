package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// counterTask ticks up to max and reports finished once it reaches it.
type counterTask struct {
	*task.Node
	max   int
	ticks int
}

func newCounterTask(max int) *counterTask {
	c := &counterTask{max: max}
	c.Node = task.NewNode(c, "counter")
	return c
}

func (c *counterTask) OnStart() {}
func (c *counterTask) OnTick() task.Task {
	if c.ticks < c.max {
		c.ticks++
	}
	return nil
}
func (c *counterTask) OnStop(interrupt task.Task) {}
func (c *counterTask) IsFinished() bool           { return c.ticks >= c.max }
func (c *counterTask) IsEqual(other task.Task) bool {
	o, ok := other.(*counterTask)
	return ok && o.max == c.max
}

// triggerChain is a Chain whose task is installed explicitly by a test
// step rather than being present from registration, modelling a danger
// chain that only starts mattering once a hazard actually appears.
type triggerChain struct {
	*chain.BaseChain
	priority chain.Priority
}

func newTriggerChain(name string, priority chain.Priority) *triggerChain {
	return &triggerChain{BaseChain: chain.NewBaseChain(name), priority: priority}
}

func (c *triggerChain) Priority() chain.Priority {
	if c.IsActive() {
		return c.priority
	}
	return chain.Inactive
}

func (c *triggerChain) Trigger(t task.Task) { c.SetTask(t) }

type chainPreemptionContext struct {
	runner        *chain.Runner
	userCounter   *counterTask
	danger        *triggerChain
	dangerCount   int
	dangerStarted bool
}

func (cc *chainPreemptionContext) reset() {
	cc.runner = nil
	cc.userCounter = nil
	cc.danger = nil
	cc.dangerCount = 2
	cc.dangerStarted = false
}

func (cc *chainPreemptionContext) aRunnerWithAUserTaskCountingTo(max int) error {
	cc.runner = chain.NewRunner()
	cc.userCounter = newCounterTask(max)
	cc.runner.SetUserTask(cc.userCounter)
	return nil
}

func (cc *chainPreemptionContext) aDangerChainCountingToRegisteredOnTheRunner(max int) error {
	cc.dangerCount = max
	cc.danger = newTriggerChain("danger", chain.Danger)
	cc.runner.RegisterChain(cc.danger)
	return nil
}

func (cc *chainPreemptionContext) theRunnerTicks() error {
	cc.runner.Tick()
	return nil
}

func (cc *chainPreemptionContext) theDangerChainBecomesActive() error {
	cc.danger.Trigger(newCounterTask(cc.dangerCount))
	cc.dangerStarted = true
	return nil
}

func (cc *chainPreemptionContext) theUserCounterShouldRead(expected int) error {
	if cc.userCounter.ticks != expected {
		return fmt.Errorf("expected user counter %d but got %d", expected, cc.userCounter.ticks)
	}
	return nil
}

func (cc *chainPreemptionContext) theDangerCounterShouldRead(expected int) error {
	if !cc.dangerStarted {
		if expected == 0 {
			return nil
		}
		return fmt.Errorf("expected danger counter %d but the danger chain hasn't started yet", expected)
	}
	dangerTask := cc.danger.CurrentTask()
	if dangerTask == nil {
		if expected == cc.dangerCount {
			return nil
		}
		return fmt.Errorf("expected danger counter %d but the danger chain already reaped its finished task", expected)
	}
	counter, ok := dangerTask.(*counterTask)
	if !ok {
		return fmt.Errorf("danger chain's task is not a counterTask")
	}
	if counter.ticks != expected {
		return fmt.Errorf("expected danger counter %d but got %d", expected, counter.ticks)
	}
	return nil
}

func (cc *chainPreemptionContext) theDangerChainShouldBeFinished() error {
	if cc.danger.CurrentTask() != nil {
		return fmt.Errorf("expected danger chain to have reaped its finished task")
	}
	return nil
}

// InitializeChainPreemptionScenario registers the danger/user chain
// preemption-and-resumption steps.
func InitializeChainPreemptionScenario(sc *godog.ScenarioContext) {
	cc := &chainPreemptionContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^a runner with a user task counting to (\d+)$`, cc.aRunnerWithAUserTaskCountingTo)
	sc.Step(`^a danger chain counting to (\d+) registered on the runner$`, cc.aDangerChainCountingToRegisteredOnTheRunner)
	sc.Step(`^the runner ticks$`, cc.theRunnerTicks)
	sc.Step(`^the danger chain becomes active$`, cc.theDangerChainBecomesActive)
	sc.Step(`^the user counter should read (\d+)$`, cc.theUserCounterShouldRead)
	sc.Step(`^the danger counter should read (\d+)$`, cc.theDangerCounterShouldRead)
	sc.Step(`^the danger chain should be finished$`, cc.theDangerChainShouldBeFinished)
}
