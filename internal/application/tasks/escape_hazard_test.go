package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

func TestEscapeHazardTask_Tick_FindsSafeSpotAndNavigatesToIt(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetPosition(agent.Vector3{X: 0, Y: 0, Z: 0})
	ag.SetBlock(agent.Vector3{X: 1, Y: -1, Z: 0}, "stone")
	e := tasks.NewEscapeHazardTask(ag, []string{"lava"}, 5)

	for i := 0; i < 50 && !e.IsFinished(); i++ {
		e.Tick()
	}

	require.True(t, e.IsFinished())
	assert.False(t, e.IsFailed())
	assert.InDelta(t, 1, ag.Position().X, 0.5)
}

func TestEscapeHazardTask_Tick_FailsWhenNavigationErrors(t *testing.T) {
	ag := &erroringNavAgent{SimAgent: demo.NewSimAgent()}
	ag.SetPosition(agent.Vector3{X: 0, Y: 0, Z: 0})
	ag.SetBlock(agent.Vector3{X: 1, Y: -1, Z: 0}, "stone")
	e := tasks.NewEscapeHazardTask(ag, []string{"lava"}, 5)

	e.Tick() // finding -> moving
	e.Tick() // moving: NavigateToward errors

	assert.True(t, e.IsFinished())
	assert.True(t, e.IsFailed())
}

func TestEscapeHazardTask_IsEqual_TreatsAnyTwoEscapesAsSameWork(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewEscapeHazardTask(ag, []string{"lava"}, 5)
	b := tasks.NewEscapeHazardTask(ag, []string{"fire"}, 10)

	assert.True(t, a.IsEqual(b))
}

func TestEscapeHazardTask_New_DefaultsSearchRadiusWhenNonPositive(t *testing.T) {
	ag := demo.NewSimAgent()
	e := tasks.NewEscapeHazardTask(ag, []string{"lava"}, 0)

	assert.Equal(t, float64(8), e.SearchRadius)
}
