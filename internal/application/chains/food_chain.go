// Package chains implements the concrete, non-user chains SPEC_FULL
// adds so the scheduler has real competing concerns to arbitrate:
// automatic eating, danger response, fall protection, and hazard
// escape. Each wraps chain.BaseChain and supplies its own Priority and
// main-task selection, grounded on the representative leaves in
// internal/application/tasks.
package chains

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
)

// FoodChain keeps the agent fed: active while hunger/saturation is
// below a configured threshold and an edible item is in inventory.
type FoodChain struct {
	*chain.BaseChain

	Agent           agent.Agent
	HungerThreshold float64
}

// NewFoodChain builds the chain, triggering once hunger drops below threshold.
func NewFoodChain(ag agent.Agent, hungerThreshold float64) *FoodChain {
	return &FoodChain{BaseChain: chain.NewBaseChain("food"), Agent: ag, HungerThreshold: hungerThreshold}
}

// Priority implements chain.Chain.
func (f *FoodChain) Priority() chain.Priority {
	if f.Agent.Hunger() >= f.HungerThreshold {
		return chain.Inactive
	}
	if !f.hasEdibleFood() {
		return chain.Inactive
	}
	return chain.Food
}

// IsActive overrides BaseChain's default (which requires a current
// task): this chain's activity is governed by the trigger condition in
// Priority, not by whether OnTick has installed a task yet — otherwise
// it could never win a first selection to install one.
func (f *FoodChain) IsActive() bool {
	return f.Priority() != chain.Inactive
}

// OnTick installs an EatFoodTask if none is running, then ticks it.
func (f *FoodChain) OnTick() {
	if f.CurrentTask() == nil {
		f.SetTask(tasks.NewEatFoodTask(f.Agent))
	}
	f.BaseChain.OnTick()
}

func (f *FoodChain) hasEdibleFood() bool {
	for _, it := range f.Agent.InventoryItems() {
		if _, ok := tasks.FoodSaturationValues[it.Name]; ok {
			return true
		}
	}
	return false
}
