package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// ClearRegion implements spec §4.8: scan a normalized [from,to] box
// top-down (safe for gravity blocks) and destroy every non-air block
// in range, finishing once none remain.
type ClearRegion struct {
	*task.Node

	Agent    agent.Agent
	From, To agent.Vector3

	current *DestroyBlock
}

// NewClearRegion builds a leaf clearing the box spanned by a and b,
// accepting either corner order.
func NewClearRegion(ag agent.Agent, a, b agent.Vector3) *ClearRegion {
	from, to := normalizeBox(a, b)
	c := &ClearRegion{Agent: ag, From: from, To: to}
	c.Node = task.NewNode(c, "ClearRegion")
	return c
}

func normalizeBox(a, b agent.Vector3) (agent.Vector3, agent.Vector3) {
	min := agent.Vector3{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)}
	max := agent.Vector3{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)}
	return min, max
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (c *ClearRegion) OnStart() {}

func (c *ClearRegion) OnStop(interrupt task.Task) {
	if c.current != nil {
		c.current.Stop(interrupt)
		c.current = nil
	}
}

// IsEqual treats clears of the same box as the same work.
func (c *ClearRegion) IsEqual(other task.Task) bool {
	o, ok := other.(*ClearRegion)
	return ok && o.From == c.From && o.To == c.To
}

// IsFinished reports whether no destroy is in progress and no non-air
// block remains in range.
func (c *ClearRegion) IsFinished() bool {
	if c.current != nil && !c.current.IsFinished() {
		return false
	}
	_, ok := c.nextTarget()
	return !ok
}

func (c *ClearRegion) OnTick() task.Task {
	if c.current != nil && !c.current.IsFinished() {
		return c.current
	}
	c.current = nil

	pos, ok := c.nextTarget()
	if !ok {
		return nil
	}
	b, _ := c.Agent.BlockAt(pos)
	c.current = NewDestroyBlock(c.Agent, b)
	return c.current
}

// nextTarget scans high-Y-first so falling blocks above are cleared
// before the blocks that would otherwise support them.
func (c *ClearRegion) nextTarget() (agent.Vector3, bool) {
	for y := int(c.To.Y); y >= int(c.From.Y); y-- {
		for x := int(c.From.X); x <= int(c.To.X); x++ {
			for z := int(c.From.Z); z <= int(c.To.Z); z++ {
				pos := agent.Vector3{X: float64(x), Y: float64(y), Z: float64(z)}
				b, ok := c.Agent.BlockAt(pos)
				if ok && !b.IsAir() {
					return pos, true
				}
			}
		}
	}
	return agent.Vector3{}, false
}
