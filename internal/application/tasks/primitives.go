package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// GoToPosition is the "get-near" primitive spec §4.4 hands off to:
// it polls the agent's navigation primitive each tick until arrival,
// matching the "long operations are polled" rule of spec §5.
type GoToPosition struct {
	*task.Node

	Agent agent.Agent
	Dest  agent.Vector3

	finished bool
	failed   bool
}

// NewGoToPosition builds a leaf that navigates toward dest.
func NewGoToPosition(ag agent.Agent, dest agent.Vector3) *GoToPosition {
	g := &GoToPosition{Agent: ag, Dest: dest}
	g.Node = task.NewNode(g, "GoToPosition")
	return g
}

func (g *GoToPosition) OnStart()                     {}
func (g *GoToPosition) OnStop(interrupt task.Task)    {}
func (g *GoToPosition) IsFinished() bool             { return g.finished || g.failed }
func (g *GoToPosition) IsFailed() bool               { return g.failed }

// IsEqual treats two navigations to the same destination as the same work.
func (g *GoToPosition) IsEqual(other task.Task) bool {
	o, ok := other.(*GoToPosition)
	return ok && o.Dest == g.Dest
}

func (g *GoToPosition) OnTick() task.Task {
	arrived, err := g.Agent.NavigateToward(g.Dest)
	if err != nil {
		g.failed = true
		return nil
	}
	if arrived {
		g.finished = true
	}
	return nil
}

// DestroyBlock digs a single known block and polls BlockAt until it is
// gone, tolerating the agent's dig being asynchronous (spec §5).
type DestroyBlock struct {
	*task.Node

	Agent agent.Agent
	Block agent.Block

	finished bool
	failed   bool
}

// NewDestroyBlock builds a leaf that digs b.
func NewDestroyBlock(ag agent.Agent, b agent.Block) *DestroyBlock {
	d := &DestroyBlock{Agent: ag, Block: b}
	d.Node = task.NewNode(d, "DestroyBlock")
	return d
}

func (d *DestroyBlock) OnStart() {
	if err := d.Agent.Dig(d.Block); err != nil {
		d.failed = true
	}
}

func (d *DestroyBlock) OnStop(interrupt task.Task) { d.Agent.StopDigging() }
func (d *DestroyBlock) IsFinished() bool           { return d.finished || d.failed }
func (d *DestroyBlock) IsFailed() bool             { return d.failed }

// IsEqual treats two digs at the same position as the same work.
func (d *DestroyBlock) IsEqual(other task.Task) bool {
	o, ok := other.(*DestroyBlock)
	return ok && o.Block.Position == d.Block.Position
}

func (d *DestroyBlock) OnTick() task.Task {
	if d.failed {
		return nil
	}
	b, ok := d.Agent.BlockAt(d.Block.Position)
	if !ok || b.IsAir() {
		d.finished = true
	}
	return nil
}
