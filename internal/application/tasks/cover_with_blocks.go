package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/acquisition"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

const coverRequiredBlocks = 128

type coverState int

const (
	coverGettingBlocks coverState = iota
	coverGoingToNether
	coverSearchingLava
	coverCovering
)

// CoverWithBlocks implements spec §4.8's Nether safety daemon task: it
// never terminates, cycling GETTING_BLOCKS -> GOING_TO_NETHER ->
// SEARCHING_LAVA -> COVERING. A lava pool edge block is valid to cover
// iff the block above it is air and at least one cardinal neighbour is
// not lava.
type CoverWithBlocks struct {
	*task.Node

	Agent               agent.Agent
	Catalogue           *acquisition.Catalogue
	ThrowawayBlockName  string

	state       coverState
	acquireTask task.Task
	currentLava *agent.Block
}

// NewCoverWithBlocks builds the daemon leaf, obtaining throwaway
// blocks through catalogue when its stock runs low.
func NewCoverWithBlocks(ag agent.Agent, catalogue *acquisition.Catalogue, throwawayBlockName string) *CoverWithBlocks {
	c := &CoverWithBlocks{Agent: ag, Catalogue: catalogue, ThrowawayBlockName: throwawayBlockName}
	c.Node = task.NewNode(c, "CoverWithBlocks")
	return c
}

func (c *CoverWithBlocks) OnStart() { c.state = coverGettingBlocks }

func (c *CoverWithBlocks) OnStop(interrupt task.Task) {
	if c.acquireTask != nil {
		c.acquireTask.Stop(interrupt)
		c.acquireTask = nil
	}
}

// IsFinished is always false: this is a daemon task (spec §4.8).
func (c *CoverWithBlocks) IsFinished() bool { return false }

// IsEqual treats two instances covering the same block name as the same work.
func (c *CoverWithBlocks) IsEqual(other task.Task) bool {
	o, ok := other.(*CoverWithBlocks)
	return ok && o.ThrowawayBlockName == c.ThrowawayBlockName
}

func (c *CoverWithBlocks) OnTick() task.Task {
	switch c.state {
	case coverGettingBlocks:
		have := exactCountIn(c.Agent.InventoryItems(), c.ThrowawayBlockName)
		if have >= coverRequiredBlocks {
			c.acquireTask = nil
			c.state = coverGoingToNether
			return nil
		}
		if c.acquireTask == nil || c.acquireTask.IsFinished() {
			c.acquireTask = c.Catalogue.GetItemTask(c.ThrowawayBlockName, coverRequiredBlocks)
		}
		return c.acquireTask

	case coverGoingToNether:
		if c.Agent.Dimension() == "nether" {
			c.state = coverSearchingLava
		}
		// Walking a portal is a navigation concern outside the core
		// (spec §1); this leaf only polls dimension each tick.
		return nil

	case coverSearchingLava:
		b, ok := c.findValidLava()
		if !ok {
			return nil
		}
		c.currentLava = &b
		c.state = coverCovering
		return nil

	case coverCovering:
		if c.currentLava == nil {
			c.state = coverSearchingLava
			return nil
		}
		above := agent.Vector3{X: c.currentLava.Position.X, Y: c.currentLava.Position.Y + 1, Z: c.currentLava.Position.Z}
		if err := c.Agent.PlaceBlock(c.ThrowawayBlockName, *c.currentLava, agent.Vector3{Y: 1}); err != nil {
			return nil
		}
		_ = above
		c.currentLava = nil
		c.state = coverGettingBlocks
		return nil
	}
	return nil
}

func (c *CoverWithBlocks) findValidLava() (agent.Block, bool) {
	b, ok := c.Agent.FindNearestBlock([]string{"lava"}, c.Agent.Position(), 32)
	if !ok {
		return agent.Block{}, false
	}
	above, ok := c.Agent.BlockAt(agent.Vector3{X: b.Position.X, Y: b.Position.Y + 1, Z: b.Position.Z})
	if !ok || !above.IsAir() {
		return agent.Block{}, false
	}
	neighbors := []agent.Vector3{
		{X: b.Position.X + 1, Y: b.Position.Y, Z: b.Position.Z},
		{X: b.Position.X - 1, Y: b.Position.Y, Z: b.Position.Z},
		{X: b.Position.X, Y: b.Position.Y, Z: b.Position.Z + 1},
		{X: b.Position.X, Y: b.Position.Y, Z: b.Position.Z - 1},
	}
	for _, n := range neighbors {
		nb, ok := c.Agent.BlockAt(n)
		if !ok || nb.Name != "lava" {
			return b, true
		}
	}
	return agent.Block{}, false
}
