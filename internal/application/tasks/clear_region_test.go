package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

func TestClearRegion_Tick_DestroysEveryNonAirBlockInBox(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetBlock(agent.Vector3{X: 0, Y: 0, Z: 0}, "dirt")
	ag.SetBlock(agent.Vector3{X: 0, Y: 1, Z: 0}, "dirt")
	c := tasks.NewClearRegion(ag, agent.Vector3{X: 0, Y: 0, Z: 0}, agent.Vector3{X: 0, Y: 1, Z: 0})

	for i := 0; i < 5 && !c.IsFinished(); i++ {
		c.Tick()
	}

	require.True(t, c.IsFinished())
	low, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 0, Z: 0})
	high, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 1, Z: 0})
	assert.True(t, low.IsAir())
	assert.True(t, high.IsAir())
}

func TestClearRegion_IsFinished_TrueWhenBoxAlreadyEmpty(t *testing.T) {
	ag := demo.NewSimAgent()
	c := tasks.NewClearRegion(ag, agent.Vector3{X: 0}, agent.Vector3{X: 1})

	assert.True(t, c.IsFinished())
}

func TestClearRegion_IsEqual_NormalizesCornerOrder(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewClearRegion(ag, agent.Vector3{X: 0, Y: 0, Z: 0}, agent.Vector3{X: 2, Y: 2, Z: 2})
	b := tasks.NewClearRegion(ag, agent.Vector3{X: 2, Y: 2, Z: 2}, agent.Vector3{X: 0, Y: 0, Z: 0})
	c := tasks.NewClearRegion(ag, agent.Vector3{X: 0, Y: 0, Z: 0}, agent.Vector3{X: 3, Y: 2, Z: 2})

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
