package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type craftState int

const (
	craftCheckingIngredients craftState = iota
	craftGoingToTable
	craftOpeningTable
	craftCrafting
	craftCollecting
	craftFinished
	craftFailed
)

// craftCooldownTicks is the ~0.5 game-second pause spec §4.6 prescribes
// between craft attempts, tolerating asynchronous craft completion.
const craftCooldownTicks = 10

// Craft implements the crafting subtree from spec §4.6:
// CHECKING_INGREDIENTS -> (GOING_TO_TABLE -> OPENING_TABLE)? ->
// CRAFTING -> COLLECTING -> FINISHED | FAILED.
type Craft struct {
	*task.Node

	Agent  agent.Agent
	Target *recipe.RecipeTarget

	state            craftState
	table            *agent.Block
	window           agent.WindowHandle
	navTask          *GoToPosition
	lastAttemptTick  int64
	attemptsLeft     int
}

// NewCraft builds a crafting leaf for target.
func NewCraft(ag agent.Agent, target *recipe.RecipeTarget) *Craft {
	c := &Craft{Agent: ag, Target: target}
	c.Node = task.NewNode(c, "Craft:"+target.Recipe.ResultName)
	return c
}

func (c *Craft) OnStart() { c.state = craftCheckingIngredients }

func (c *Craft) OnStop(interrupt task.Task) {
	if c.window != nil {
		c.Agent.CloseWindow(c.window)
		c.window = nil
	}
	if c.navTask != nil {
		c.navTask.Stop(interrupt)
		c.navTask = nil
	}
}

// IsFinished covers both success (FINISHED) and FAILED per spec §7.
func (c *Craft) IsFinished() bool { return c.state == craftFinished || c.state == craftFailed }

// IsFailed distinguishes the FAILED terminal state from success.
func (c *Craft) IsFailed() bool { return c.state == craftFailed }

// IsEqual treats two crafts of the same recipe for the same total
// output as the same work.
func (c *Craft) IsEqual(other task.Task) bool {
	o, ok := other.(*Craft)
	if !ok {
		return false
	}
	return o.Target.Recipe.RecipeKey == c.Target.Recipe.RecipeKey &&
		o.Target.DesiredOutputCount == c.Target.DesiredOutputCount
}

func (c *Craft) OnTick() task.Task {
	switch c.state {
	case craftCheckingIngredients:
		return c.tickCheckingIngredients()
	case craftGoingToTable:
		return c.tickGoingToTable()
	case craftOpeningTable:
		return c.tickOpeningTable()
	case craftCrafting:
		return c.tickCrafting()
	case craftCollecting:
		return c.tickCollecting()
	}
	return nil
}

func (c *Craft) resultHave() int {
	return exactCountIn(c.Agent.InventoryItems(), c.Target.Recipe.ResultName)
}

func (c *Craft) tickCheckingIngredients() task.Task {
	needed := c.Target.CraftsNeeded(c.resultHave())
	if needed == 0 {
		c.state = craftFinished
		return nil
	}
	for _, ing := range c.Target.Recipe.DistinctIngredients() {
		perCraft := c.Target.Recipe.CountPerCraft(ing)
		if ing.CountIn(c.Agent.InventoryItems()) < perCraft*needed {
			// Missing ingredients: the catalogue's caller is expected
			// to chain an acquisition of the shortfall before retrying.
			c.state = craftFailed
			return nil
		}
	}
	c.attemptsLeft = needed * 3
	// The cooldown separates attempts; the first attempt is not delayed.
	c.lastAttemptTick = c.Agent.TickAge() - craftCooldownTicks
	if c.Target.Recipe.RequiresCraftingTable() {
		c.state = craftGoingToTable
	} else {
		c.state = craftCrafting
	}
	return nil
}

func (c *Craft) tickGoingToTable() task.Task {
	if c.table == nil {
		b, ok := c.Agent.FindNearestBlock([]string{"crafting_table"}, c.Agent.Position(), 32)
		if !ok {
			c.state = craftFailed
			return nil
		}
		c.table = &b
	}
	if c.navTask == nil {
		c.navTask = NewGoToPosition(c.Agent, c.table.Position)
	}
	if !c.navTask.IsFinished() {
		return c.navTask
	}
	failed := c.navTask.IsFailed()
	c.navTask = nil
	if failed {
		c.state = craftFailed
		return nil
	}
	c.state = craftOpeningTable
	return nil
}

func (c *Craft) tickOpeningTable() task.Task {
	if err := c.Agent.ActivateBlock(*c.table); err != nil {
		c.state = craftFailed
		return nil
	}
	w, ok := c.Agent.CurrentWindow()
	if !ok {
		c.state = craftFailed
		return nil
	}
	c.window = w
	c.state = craftCrafting
	return nil
}

func (c *Craft) tickCrafting() task.Task {
	if c.resultHave() >= c.Target.DesiredOutputCount {
		c.state = craftCollecting
		return nil
	}
	now := c.Agent.TickAge()
	if now-c.lastAttemptTick < craftCooldownTicks {
		return nil
	}
	id, ok := c.Agent.ItemID(c.Target.Recipe.ResultName)
	if !ok {
		c.state = craftFailed
		return nil
	}
	handles := c.Agent.RecipesFor(id, 0, 1, c.Target.Recipe.RequiresCraftingTable())
	if len(handles) == 0 {
		c.state = craftFailed
		return nil
	}
	// Swallow transient errors from the agent call; re-check progress
	// by recounting the inventory on a subsequent tick (spec §7).
	_ = c.Agent.Craft(handles[0], 1, c.table)
	c.lastAttemptTick = now
	c.attemptsLeft--
	if c.attemptsLeft <= 0 {
		c.state = craftFailed
	}
	return nil
}

func (c *Craft) tickCollecting() task.Task {
	if c.window != nil {
		c.Agent.CloseWindow(c.window)
		c.window = nil
	}
	c.state = craftFinished
	return nil
}
