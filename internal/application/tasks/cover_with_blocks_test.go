package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/acquisition"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// netherSpyAgent reports itself as already standing in the Nether, since
// SimAgent has no portal simulation to walk through.
type netherSpyAgent struct {
	*demo.SimAgent
}

func newNetherSpyAgent() *netherSpyAgent {
	return &netherSpyAgent{SimAgent: demo.NewSimAgent()}
}

func (a *netherSpyAgent) Dimension() string { return "nether" }

// instantGiveTask stands in for a real acquisition subtree: it finishes
// on its very first tick, handing the agent whatever give does.
type instantGiveTask struct {
	*task.Node
	give func()
}

func newInstantGiveTask(give func()) *instantGiveTask {
	g := &instantGiveTask{give: give}
	g.Node = task.NewNode(g, "instant-give")
	return g
}

func (g *instantGiveTask) OnStart()                  { g.give() }
func (g *instantGiveTask) OnTick() task.Task         { return nil }
func (g *instantGiveTask) OnStop(interrupt task.Task) {}
func (g *instantGiveTask) IsFinished() bool          { return true }
func (g *instantGiveTask) IsEqual(other task.Task) bool {
	_, ok := other.(*instantGiveTask)
	return ok
}

func newTestCatalogue(ag agent.Agent) *acquisition.Catalogue {
	c := acquisition.NewCatalogue(ag, nil, nil, nil)
	c.RegisterProvider("cobblestone", func(ag agent.Agent, count int) (task.Task, bool) {
		return newInstantGiveTask(func() {
			ag.(*netherSpyAgent).AddItem("cobblestone", count)
		}), true
	})
	return c
}

func TestCoverWithBlocks_Tick_NeverFinishes(t *testing.T) {
	ag := newNetherSpyAgent()
	catalogue := newTestCatalogue(ag)
	c := tasks.NewCoverWithBlocks(ag, catalogue, "cobblestone")

	for i := 0; i < 6; i++ {
		c.Tick()
		require.False(t, c.IsFinished(), "CoverWithBlocks is a daemon task and must never report finished")
	}
}

func TestCoverWithBlocks_Tick_CoversLavaAboveWithThrowawayBlock(t *testing.T) {
	ag := newNetherSpyAgent()
	ag.SetBlock(agent.Vector3{X: 0, Y: 0, Z: 0}, "lava")
	catalogue := newTestCatalogue(ag)
	c := tasks.NewCoverWithBlocks(ag, catalogue, "cobblestone")

	for i := 0; i < 6; i++ {
		c.Tick()
	}

	above, _ := ag.BlockAt(agent.Vector3{X: 0, Y: 1, Z: 0})
	assert.Equal(t, "cobblestone", above.Name)
}

func TestCoverWithBlocks_IsEqual_ComparesThrowawayBlockName(t *testing.T) {
	ag := newNetherSpyAgent()
	catalogue := newTestCatalogue(ag)
	a := tasks.NewCoverWithBlocks(ag, catalogue, "cobblestone")
	b := tasks.NewCoverWithBlocks(ag, catalogue, "cobblestone")
	c := tasks.NewCoverWithBlocks(ag, catalogue, "netherrack")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
