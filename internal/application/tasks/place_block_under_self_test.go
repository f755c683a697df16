package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

func TestPlaceBlockUnderSelfTask_OverridesGrounded_IsTrue(t *testing.T) {
	ag := demo.NewSimAgent()
	p := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")

	assert.True(t, p.OverridesGrounded())
}

func TestPlaceBlockUnderSelfTask_Tick_FinishesImmediatelyWhenAlreadyGrounded(t *testing.T) {
	ag := demo.NewSimAgent()
	p := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")

	p.Tick()

	assert.True(t, p.IsFinished())
	assert.False(t, p.IsFailed())
}

func TestPlaceBlockUnderSelfTask_Tick_EquipsAndPlacesWhenAirborne(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetGrounded(false, false, false)
	ag.AddItem("dirt", 1)
	p := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")

	p.Tick() // equipping -> placing
	p.Tick() // placing: places the block below

	got, _ := ag.BlockAt(agent.Vector3{X: 0, Y: -1, Z: 0})
	assert.Equal(t, "dirt", got.Name)
	assert.False(t, p.IsFailed())
}

func TestPlaceBlockUnderSelfTask_Tick_FailsWhenOutOfThrowawayBlocks(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetGrounded(false, false, false)
	p := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")

	p.Tick() // equipping -> placing (Equip never errors on SimAgent)
	p.Tick() // placing: no dirt held, fails

	assert.True(t, p.IsFinished())
	assert.True(t, p.IsFailed())
}

func TestPlaceBlockUnderSelfTask_IsEqual_ComparesBlockName(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")
	b := tasks.NewPlaceBlockUnderSelfTask(ag, "dirt")
	c := tasks.NewPlaceBlockUnderSelfTask(ag, "cobblestone")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
