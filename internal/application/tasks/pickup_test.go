package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
)

func TestPickup_Tick_FinishesImmediatelyWhenTargetAlreadySatisfied(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("oak_log", 1)
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "oak_log")}
	p := tasks.NewPickup(ag, targets, 16, 4)

	p.Tick()

	assert.True(t, p.IsFinished())
}

func TestPickup_OnResourceTick_NoOpWhenNoMatchingDropNearby(t *testing.T) {
	ag := demo.NewSimAgent()
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "oak_log")}
	p := tasks.NewPickup(ag, targets, 16, 4)

	p.Tick()

	assert.False(t, p.IsFinished())
	assert.Nil(t, p.CurrentSubtask())
}

func TestPickup_Tick_NavigatesTowardMatchingDrop(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetEntity(agent.Entity{
		ID: "drop-1", Name: "oak_log", Position: agent.Vector3{X: 2}, IsValid: true, IsDroppedItem: true,
	})
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(1, "oak_log")}
	p := tasks.NewPickup(ag, targets, 16, 4)

	p.Tick() // searching -> goingToItem
	p.Tick() // goingToItem: creates and delegates to a GoToPosition subtask

	if assert.NotNil(t, p.CurrentSubtask()) {
		assert.Equal(t, "GoToPosition", p.CurrentSubtask().DisplayName())
	}
}

func TestPickup_IsEqual_ComparesTargetSet(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewPickup(ag, []*recipe.ItemTarget{recipe.NewItemTarget(1, "oak_log")}, 16, 4)
	b := tasks.NewPickup(ag, []*recipe.ItemTarget{recipe.NewItemTarget(1, "oak_log")}, 8, 2)
	c := tasks.NewPickup(ag, []*recipe.ItemTarget{recipe.NewItemTarget(1, "stone")}, 16, 4)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPickup_New_DefaultsRadiiWhenNonPositive(t *testing.T) {
	ag := demo.NewSimAgent()
	p := tasks.NewPickup(ag, nil, 0, 0)

	assert.Equal(t, float64(16), p.SearchRadius)
	assert.Equal(t, float64(4), p.PickupRadius)
}
