package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type golemState int

const (
	golemPlacingBody golemState = iota
	golemClearingSides
	golemPlacingHead
	golemWaiting
	golemFinished
	golemFailed
)

const golemWaitTimeoutTicks = 200

type golemStep struct {
	offset agent.Vector3
	item   string
}

// ConstructIronGolem implements spec §4.8: place 4 iron blocks and a
// carved pumpkin in the fixed order (base, center, east arm, west arm,
// clear sides at base layer, then head), and detect completion via a
// spawned iron_golem entity near the base.
type ConstructIronGolem struct {
	*task.Node

	Agent  agent.Agent
	Origin agent.Vector3

	state     golemState
	stepIndex int
	current   *DestroyBlock
	waitStart int64
}

// NewConstructIronGolem builds the leaf, placing the base block at origin.
func NewConstructIronGolem(ag agent.Agent, origin agent.Vector3) *ConstructIronGolem {
	c := &ConstructIronGolem{Agent: ag, Origin: origin}
	c.Node = task.NewNode(c, "ConstructIronGolem")
	return c
}

func (c *ConstructIronGolem) bodySteps() []golemStep {
	o := c.Origin
	return []golemStep{
		{o, "iron_block"},
		{agent.Vector3{X: o.X, Y: o.Y + 1, Z: o.Z}, "iron_block"},
		{agent.Vector3{X: o.X + 1, Y: o.Y + 1, Z: o.Z}, "iron_block"},
		{agent.Vector3{X: o.X - 1, Y: o.Y + 1, Z: o.Z}, "iron_block"},
	}
}

func (c *ConstructIronGolem) headStep() golemStep {
	o := c.Origin
	return golemStep{agent.Vector3{X: o.X, Y: o.Y + 2, Z: o.Z}, "carved_pumpkin"}
}

func (c *ConstructIronGolem) OnStart() {
	c.state = golemPlacingBody
	c.stepIndex = 0
}

func (c *ConstructIronGolem) OnStop(interrupt task.Task) {
	if c.current != nil {
		c.current.Stop(interrupt)
		c.current = nil
	}
}

// IsFinished covers both success and FAILED (bounded wait exhausted).
func (c *ConstructIronGolem) IsFinished() bool {
	return c.state == golemFinished || c.state == golemFailed
}

// IsFailed distinguishes the FAILED terminal state.
func (c *ConstructIronGolem) IsFailed() bool { return c.state == golemFailed }

// IsEqual treats two golem constructions at the same origin as the same work.
func (c *ConstructIronGolem) IsEqual(other task.Task) bool {
	o, ok := other.(*ConstructIronGolem)
	return ok && o.Origin == c.Origin
}

func (c *ConstructIronGolem) OnTick() task.Task {
	switch c.state {
	case golemPlacingBody:
		return c.tickPlacingSteps(c.bodySteps(), golemClearingSides)
	case golemClearingSides:
		return c.tickClearingSides()
	case golemPlacingHead:
		return c.tickPlacingSteps([]golemStep{c.headStep()}, golemWaiting)
	case golemWaiting:
		return c.tickWaiting()
	}
	return nil
}

// tickPlacingSteps places steps[stepIndex] one at a time, resetting
// stepIndex and advancing to next once all of steps are placed.
func (c *ConstructIronGolem) tickPlacingSteps(steps []golemStep, next golemState) task.Task {
	if c.stepIndex >= len(steps) {
		c.state = next
		c.stepIndex = 0
		if next == golemWaiting {
			c.waitStart = c.Agent.TickAge()
		}
		return nil
	}
	step := steps[c.stepIndex]
	b, ok := c.Agent.BlockAt(step.offset)
	if ok && b.Name == step.item {
		c.stepIndex++
		return nil
	}
	against, _ := c.Agent.BlockAt(agent.Vector3{X: step.offset.X, Y: step.offset.Y - 1, Z: step.offset.Z})
	if err := c.Agent.PlaceBlock(step.item, against, agent.Vector3{Y: 1}); err != nil {
		return nil
	}
	c.stepIndex++
	return nil
}

func (c *ConstructIronGolem) tickClearingSides() task.Task {
	if c.current != nil && !c.current.IsFinished() {
		return c.current
	}
	c.current = nil

	sides := []agent.Vector3{
		{X: c.Origin.X + 1, Y: c.Origin.Y, Z: c.Origin.Z},
		{X: c.Origin.X - 1, Y: c.Origin.Y, Z: c.Origin.Z},
	}
	for _, p := range sides {
		b, ok := c.Agent.BlockAt(p)
		if ok && !b.IsAir() {
			c.current = NewDestroyBlock(c.Agent, b)
			return c.current
		}
	}
	c.state = golemPlacingHead
	c.stepIndex = 0
	return nil
}

func (c *ConstructIronGolem) tickWaiting() task.Task {
	for _, e := range c.Agent.Entities() {
		if e.IsValid && e.Name == "iron_golem" && distance(e.Position, c.Origin) <= 3 {
			c.state = golemFinished
			return nil
		}
	}
	if c.Agent.TickAge()-c.waitStart > golemWaitTimeoutTicks {
		c.state = golemFailed
	}
	return nil
}
