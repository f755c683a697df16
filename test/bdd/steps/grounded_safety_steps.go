package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// groundedLeaf requires solid footing via the default GroundedGuard
// force policy: it refuses replacement while the agent is airborne
// unless the candidate overrides the guard.
type groundedLeaf struct {
	*task.Node
	task.GroundedGuard
}

func newGroundedLeaf(ag *demo.SimAgent) *groundedLeaf {
	g := &groundedLeaf{GroundedGuard: task.GroundedGuard{Agent: ag}}
	g.Node = task.NewNode(g, "grounded-leaf")
	return g
}

func (g *groundedLeaf) OnStart()                  {}
func (g *groundedLeaf) OnTick() task.Task         { return nil }
func (g *groundedLeaf) OnStop(interrupt task.Task) {}
func (g *groundedLeaf) IsFinished() bool           { return false }
func (g *groundedLeaf) IsEqual(other task.Task) bool {
	_, ok := other.(*groundedLeaf)
	return ok
}

// plainCandidateLeaf is ordinary ground-indifferent work: it declares
// no OverridesGrounded capability and is never equal to a groundedLeaf,
// so installing it always goes through the force check.
type plainCandidateLeaf struct {
	*task.Node
	started bool
}

func newPlainCandidateLeaf() *plainCandidateLeaf {
	c := &plainCandidateLeaf{}
	c.Node = task.NewNode(c, "candidate-leaf")
	return c
}

func (c *plainCandidateLeaf) OnStart()                  { c.started = true }
func (c *plainCandidateLeaf) OnTick() task.Task         { return nil }
func (c *plainCandidateLeaf) OnStop(interrupt task.Task) {}
func (c *plainCandidateLeaf) IsFinished() bool           { return false }
func (c *plainCandidateLeaf) IsEqual(other task.Task) bool {
	_, ok := other.(*plainCandidateLeaf)
	return ok
}

// groundedSwitchParent returns the candidate once useCandidate flips,
// otherwise keeps returning the grounded leaf it started with.
type groundedSwitchParent struct {
	*task.Node
	grounded     *groundedLeaf
	candidate    *plainCandidateLeaf
	useCandidate bool
}

func newGroundedSwitchParent(grounded *groundedLeaf, candidate *plainCandidateLeaf) *groundedSwitchParent {
	p := &groundedSwitchParent{grounded: grounded, candidate: candidate}
	p.Node = task.NewNode(p, "grounded-switch-parent")
	return p
}

func (p *groundedSwitchParent) OnStart() {}
func (p *groundedSwitchParent) OnTick() task.Task {
	if p.useCandidate {
		return p.candidate
	}
	return p.grounded
}
func (p *groundedSwitchParent) OnStop(interrupt task.Task) {}
func (p *groundedSwitchParent) IsFinished() bool           { return false }
func (p *groundedSwitchParent) IsEqual(other task.Task) bool {
	_, ok := other.(*groundedSwitchParent)
	return ok
}

type groundedSafetyContext struct {
	agent     *demo.SimAgent
	grounded  *groundedLeaf
	candidate *plainCandidateLeaf
	parent    *groundedSwitchParent
}

func (gc *groundedSafetyContext) reset() {
	gc.agent = nil
	gc.grounded = nil
	gc.candidate = nil
	gc.parent = nil
}

func (gc *groundedSafetyContext) anAgentThatIsNotGroundedNotInWaterAndNotOnAClimbable() error {
	gc.agent = demo.NewSimAgent()
	gc.agent.SetGrounded(false, false, false)
	return nil
}

func (gc *groundedSafetyContext) aParentWhoseCurrentSubtaskRequiresGroundedFooting() error {
	gc.grounded = newGroundedLeaf(gc.agent)
	gc.candidate = newPlainCandidateLeaf()
	gc.parent = newGroundedSwitchParent(gc.grounded, gc.candidate)
	gc.parent.Tick() // installs the grounded leaf as the active subtask
	return nil
}

func (gc *groundedSafetyContext) aCandidateSubtaskThatDoesNotOverrideTheGroundedGuard() error {
	gc.parent.useCandidate = true
	return nil
}

func (gc *groundedSafetyContext) theParentTicks() error {
	gc.parent.Tick()
	return nil
}

func (gc *groundedSafetyContext) theParentsSubtaskShouldStillBeTheGroundedSubtask() error {
	if gc.parent.CurrentSubtask() != task.Task(gc.grounded) {
		return fmt.Errorf("expected the grounded subtask to remain installed")
	}
	return nil
}

func (gc *groundedSafetyContext) theCandidateSubtaskShouldNotHaveStarted() error {
	if gc.candidate.started {
		return fmt.Errorf("expected the candidate to never have received OnStart")
	}
	return nil
}

func (gc *groundedSafetyContext) theAgentBecomesGrounded() error {
	gc.agent.SetGrounded(true, false, false)
	return nil
}

func (gc *groundedSafetyContext) theParentsSubtaskShouldBeTheCandidateSubtask() error {
	if gc.parent.CurrentSubtask() != task.Task(gc.candidate) {
		return fmt.Errorf("expected the candidate subtask to have replaced the grounded one")
	}
	return nil
}

// InitializeGroundedSafetyScenario registers the grounded-safety-guard steps.
func InitializeGroundedSafetyScenario(sc *godog.ScenarioContext) {
	gc := &groundedSafetyContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		gc.reset()
		return ctx, nil
	})

	sc.Step(`^an agent that is not grounded, not in water, and not on a climbable$`, gc.anAgentThatIsNotGroundedNotInWaterAndNotOnAClimbable)
	sc.Step(`^a parent whose current subtask requires grounded footing$`, gc.aParentWhoseCurrentSubtaskRequiresGroundedFooting)
	sc.Step(`^a candidate subtask that does not override the grounded guard$`, gc.aCandidateSubtaskThatDoesNotOverrideTheGroundedGuard)
	sc.Step(`^the parent ticks$`, gc.theParentTicks)
	sc.Step(`^the parent's subtask should still be the grounded subtask$`, gc.theParentsSubtaskShouldStillBeTheGroundedSubtask)
	sc.Step(`^the candidate subtask should not have started$`, gc.theCandidateSubtaskShouldNotHaveStarted)
	sc.Step(`^the agent becomes grounded$`, gc.theAgentBecomesGrounded)
	sc.Step(`^the parent's subtask should be the candidate subtask$`, gc.theParentsSubtaskShouldBeTheCandidateSubtask)
}
