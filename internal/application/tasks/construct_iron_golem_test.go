package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

// buildGolemBody ticks a freshly-started ConstructIronGolem through
// side-clearing and all five block placements, leaving it parked in
// its waiting-for-spawn state.
func buildGolemBody(t *testing.T, c *tasks.ConstructIronGolem) {
	t.Helper()
	for i := 0; i < 8; i++ {
		c.Tick()
	}
}

func TestConstructIronGolem_Tick_PlacesTShapeThenWaitsForSpawn(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("iron_block", 4)
	ag.AddItem("carved_pumpkin", 1)
	origin := agent.Vector3{X: 0, Y: 0, Z: 0}
	c := tasks.NewConstructIronGolem(ag, origin)

	buildGolemBody(t, c)

	require.False(t, c.IsFinished(), "should be waiting for the golem to spawn")
	base, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 0, Z: 0})
	center, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 1, Z: 0})
	east, _ := ag.BlockAt(agent.Vector3{X: 1, Y: 1, Z: 0})
	west, _ := ag.BlockAt(agent.Vector3{X: -1, Y: 1, Z: 0})
	head, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 2, Z: 0})
	assert.Equal(t, "iron_block", base.Name)
	assert.Equal(t, "iron_block", center.Name)
	assert.Equal(t, "iron_block", east.Name)
	assert.Equal(t, "iron_block", west.Name)
	assert.Equal(t, "carved_pumpkin", head.Name)
}

func TestConstructIronGolem_Tick_FinishesWhenGolemSpawns(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("iron_block", 4)
	ag.AddItem("carved_pumpkin", 1)
	origin := agent.Vector3{X: 0, Y: 0, Z: 0}
	c := tasks.NewConstructIronGolem(ag, origin)
	buildGolemBody(t, c)

	ag.SetEntity(agent.Entity{ID: "golem-1", Name: "iron_golem", Position: origin, IsValid: true})
	c.Tick()

	assert.True(t, c.IsFinished())
	assert.False(t, c.IsFailed())
}

func TestConstructIronGolem_Tick_FailsAfterWaitTimeout(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.AddItem("iron_block", 4)
	ag.AddItem("carved_pumpkin", 1)
	origin := agent.Vector3{X: 0, Y: 0, Z: 0}
	c := tasks.NewConstructIronGolem(ag, origin)
	buildGolemBody(t, c)

	for i := 0; i < 201; i++ {
		ag.AdvanceTick()
	}
	c.Tick()

	assert.True(t, c.IsFinished())
	assert.True(t, c.IsFailed())
}

func TestConstructIronGolem_IsEqual_ComparesOrigin(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewConstructIronGolem(ag, agent.Vector3{X: 0})
	b := tasks.NewConstructIronGolem(ag, agent.Vector3{X: 0})
	c := tasks.NewConstructIronGolem(ag, agent.Vector3{X: 5})

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
