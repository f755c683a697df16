package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type eatState int

const (
	eatSelecting eatState = iota
	eatEating
	eatFinished
	eatFailed
)

const eatAnimationTicks = 32

// FoodSaturationValues ranks candidate food items by how much
// saturation they restore, generalizing the Smelt leaf's "choose the
// highest-burn-time available fuel" rule (spec §4.8) to "choose the
// highest-value candidate from a small enumerated set".
var FoodSaturationValues = map[string]float64{
	"cooked_beef":     12.8,
	"cooked_porkchop": 12.8,
	"cooked_mutton":   9.6,
	"cooked_chicken":  7.2,
	"golden_apple":    9.6,
	"bread":           5.0,
	"baked_potato":    6.0,
	"carrot":          3.6,
	"apple":           2.4,
}

// EatFoodTask implements the FoodChain's main task: SELECTING_FOOD ->
// EATING -> FINISHED | FAILED (no edible item in inventory).
type EatFoodTask struct {
	*task.Node

	Agent agent.Agent

	state     eatState
	waitStart int64
}

// NewEatFoodTask builds the leaf.
func NewEatFoodTask(ag agent.Agent) *EatFoodTask {
	e := &EatFoodTask{Agent: ag}
	e.Node = task.NewNode(e, "EatFood")
	return e
}

func (e *EatFoodTask) OnStart()                  { e.state = eatSelecting }
func (e *EatFoodTask) OnStop(interrupt task.Task) {}

// IsFinished covers both success and FAILED.
func (e *EatFoodTask) IsFinished() bool { return e.state == eatFinished || e.state == eatFailed }

// IsFailed distinguishes the FAILED terminal state.
func (e *EatFoodTask) IsFailed() bool { return e.state == eatFailed }

// IsEqual treats any two eating attempts as the same work.
func (e *EatFoodTask) IsEqual(other task.Task) bool { return task.SameKind(e, other) }

func (e *EatFoodTask) OnTick() task.Task {
	switch e.state {
	case eatSelecting:
		name, ok := e.bestFood()
		if !ok {
			e.state = eatFailed
			return nil
		}
		if err := e.Agent.Equip(name, "hand"); err != nil {
			return nil
		}
		e.waitStart = e.Agent.TickAge()
		e.state = eatEating
		return nil

	case eatEating:
		if err := e.Agent.ActivateItem(); err != nil {
			return nil
		}
		if e.Agent.TickAge()-e.waitStart >= eatAnimationTicks {
			e.state = eatFinished
		}
		return nil
	}
	return nil
}

func (e *EatFoodTask) bestFood() (string, bool) {
	best := ""
	bestValue := -1.0
	for _, it := range e.Agent.InventoryItems() {
		v, ok := FoodSaturationValues[it.Name]
		if ok && v > bestValue {
			bestValue = v
			best = it.Name
		}
	}
	return best, bestValue >= 0
}
