package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type smeltState int

const (
	smeltFinding smeltState = iota
	smeltGoing
	smeltOpening
	smeltAddingInput
	smeltAddingFuel
	smeltWaiting
	smeltCollecting
	smeltFinished
	smeltFailed
)

const smeltCooldownTicks = 10

// furnace window slots, per spec §4.8.
const (
	furnaceInputSlot  = 0
	furnaceFuelSlot   = 1
	furnaceOutputSlot = 2
)

// Smelt implements the furnace state machine from spec §4.8:
// find -> go -> open -> add-input -> add-fuel -> wait -> collect.
type Smelt struct {
	*task.Node

	Agent  agent.Agent
	Recipe *recipe.SmeltingRecipe
	Count  int

	state         smeltState
	furnace       *agent.Block
	window        agent.WindowHandle
	navTask       *GoToPosition
	lastPollTick  int64
	pollsLeft     int
}

// NewSmelt builds a smelting leaf that produces count of recipe's output.
func NewSmelt(ag agent.Agent, r *recipe.SmeltingRecipe, count int) *Smelt {
	s := &Smelt{Agent: ag, Recipe: r, Count: count}
	s.Node = task.NewNode(s, "Smelt:"+r.OutputName)
	return s
}

func (s *Smelt) OnStart() { s.state = smeltFinding }

func (s *Smelt) OnStop(interrupt task.Task) {
	if s.window != nil {
		s.Agent.CloseWindow(s.window)
		s.window = nil
	}
	if s.navTask != nil {
		s.navTask.Stop(interrupt)
		s.navTask = nil
	}
}

// IsFinished covers both success and FAILED.
func (s *Smelt) IsFinished() bool { return s.state == smeltFinished || s.state == smeltFailed }

// IsFailed distinguishes the FAILED terminal state.
func (s *Smelt) IsFailed() bool { return s.state == smeltFailed }

// IsEqual treats two smelts of the same output and count as the same work.
func (s *Smelt) IsEqual(other task.Task) bool {
	o, ok := other.(*Smelt)
	return ok && o.Recipe.OutputName == s.Recipe.OutputName && o.Count == s.Count
}

func (s *Smelt) OnTick() task.Task {
	switch s.state {
	case smeltFinding:
		b, ok := s.Agent.FindNearestBlock([]string{"furnace"}, s.Agent.Position(), 32)
		if !ok {
			s.state = smeltFailed
			return nil
		}
		s.furnace = &b
		s.state = smeltGoing
		return nil

	case smeltGoing:
		if s.navTask == nil {
			s.navTask = NewGoToPosition(s.Agent, s.furnace.Position)
		}
		if !s.navTask.IsFinished() {
			return s.navTask
		}
		failed := s.navTask.IsFailed()
		s.navTask = nil
		if failed {
			s.state = smeltFailed
			return nil
		}
		s.state = smeltOpening
		return nil

	case smeltOpening:
		if err := s.Agent.ActivateBlock(*s.furnace); err != nil {
			s.state = smeltFailed
			return nil
		}
		w, ok := s.Agent.CurrentWindow()
		if !ok {
			s.state = smeltFailed
			return nil
		}
		s.window = w
		s.state = smeltAddingInput
		return nil

	case smeltAddingInput:
		item, ok := findMatching(s.Agent.InventoryItems(), s.Recipe.AcceptableInputs)
		if !ok {
			s.state = smeltFailed
			return nil
		}
		_ = s.Agent.ClickWindow(item.Slot, 0, "shift_click")
		s.state = smeltAddingFuel
		return nil

	case smeltAddingFuel:
		fuelName, ok := s.Recipe.BestFuel(fuelCounts(s.Agent.InventoryItems()))
		if !ok {
			s.state = smeltFailed
			return nil
		}
		item, ok := findMatchingName(s.Agent.InventoryItems(), fuelName)
		if !ok {
			s.state = smeltFailed
			return nil
		}
		_ = s.Agent.ClickWindow(item.Slot, 0, "shift_click")
		s.lastPollTick = s.Agent.TickAge()
		s.pollsLeft = smeltPollBudget(s.Count)
		s.state = smeltWaiting
		return nil

	case smeltWaiting:
		now := s.Agent.TickAge()
		if now-s.lastPollTick < smeltCooldownTicks {
			return nil
		}
		s.lastPollTick = now
		_ = s.Agent.ClickWindow(furnaceOutputSlot, 0, "shift_click")
		if exactCountIn(s.Agent.InventoryItems(), s.Recipe.OutputName) >= s.Count {
			s.state = smeltCollecting
			return nil
		}
		s.pollsLeft--
		if s.pollsLeft <= 0 {
			s.state = smeltFailed
		}
		return nil

	case smeltCollecting:
		if s.window != nil {
			s.Agent.CloseWindow(s.window)
			s.window = nil
		}
		s.state = smeltFinished
		return nil
	}
	return nil
}

// smeltPollBudget gives roughly twice the number of smelt cycles
// (200 ticks each) needed, in cooldown-sized polls, before giving up.
func smeltPollBudget(count int) int {
	cycles := count * 2
	perCycle := 200 / smeltCooldownTicks
	if perCycle < 1 {
		perCycle = 1
	}
	return cycles * perCycle
}

func fuelCounts(items []agent.InventoryItem) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Name] += it.Count
	}
	return counts
}

func findMatching(items []agent.InventoryItem, target *recipe.ItemTarget) (agent.InventoryItem, bool) {
	for _, it := range items {
		if target.Matches(it.Name) {
			return it, true
		}
	}
	return agent.InventoryItem{}, false
}

func findMatchingName(items []agent.InventoryItem, name string) (agent.InventoryItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return agent.InventoryItem{}, false
}
