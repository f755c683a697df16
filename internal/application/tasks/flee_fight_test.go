package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

func TestFleeTask_OnTick_FinishesWhenThreatGoneOrInvalid(t *testing.T) {
	ag := demo.NewSimAgent()
	f := tasks.NewFleeTask(ag, "zombie-1", 10)

	f.Tick()

	assert.True(t, f.IsFinished())
}

func TestFleeTask_OnTick_FinishesOnceOutOfRange(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetEntity(agent.Entity{ID: "zombie-1", Name: "zombie", Position: agent.Vector3{X: 20}, IsValid: true})
	f := tasks.NewFleeTask(ag, "zombie-1", 10)

	f.Tick()

	assert.True(t, f.IsFinished())
}

func TestFleeTask_OnTick_MovesAwayFromThreatWhenClose(t *testing.T) {
	ag := demo.NewSimAgent()
	ag.SetPosition(agent.Vector3{X: 0})
	ag.SetEntity(agent.Entity{ID: "zombie-1", Name: "zombie", Position: agent.Vector3{X: 2}, IsValid: true})
	f := tasks.NewFleeTask(ag, "zombie-1", 10)

	f.Tick()

	assert.False(t, f.IsFinished())
	assert.Less(t, ag.Position().X, 0.0, "agent should have stepped away from the threat")
}

func TestFleeTask_IsEqual_ComparesThreatID(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewFleeTask(ag, "zombie-1", 10)
	b := tasks.NewFleeTask(ag, "zombie-1", 5)
	c := tasks.NewFleeTask(ag, "zombie-2", 10)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

type attackSpyAgent struct {
	*demo.SimAgent
	attacked []string
}

func newAttackSpyAgent() *attackSpyAgent {
	return &attackSpyAgent{SimAgent: demo.NewSimAgent()}
}

func (a *attackSpyAgent) Attack(entityID string) error {
	a.attacked = append(a.attacked, entityID)
	return a.SimAgent.Attack(entityID)
}

func TestFightTask_OnTick_FinishesWhenThreatGoneOrInvalid(t *testing.T) {
	ag := newAttackSpyAgent()
	f := tasks.NewFightTask(ag, "zombie-1", 5)

	f.Tick()

	assert.True(t, f.IsFinished())
	assert.Empty(t, ag.attacked)
}

func TestFightTask_OnTick_AttacksThreatWhenInRange(t *testing.T) {
	ag := newAttackSpyAgent()
	ag.SetEntity(agent.Entity{ID: "zombie-1", Name: "zombie", Position: agent.Vector3{X: 2}, IsValid: true})
	f := tasks.NewFightTask(ag, "zombie-1", 5)

	f.Tick()

	assert.False(t, f.IsFinished())
	assert.Equal(t, []string{"zombie-1"}, ag.attacked)
}

func TestFightTask_OnTick_FinishesOnceOutOfEngageRange(t *testing.T) {
	ag := newAttackSpyAgent()
	ag.SetEntity(agent.Entity{ID: "zombie-1", Name: "zombie", Position: agent.Vector3{X: 50}, IsValid: true})
	f := tasks.NewFightTask(ag, "zombie-1", 5)

	f.Tick()

	assert.True(t, f.IsFinished())
}

func TestFightTask_IsEqual_ComparesThreatID(t *testing.T) {
	ag := demo.NewSimAgent()
	a := tasks.NewFightTask(ag, "zombie-1", 5)
	b := tasks.NewFightTask(ag, "zombie-1", 10)
	c := tasks.NewFightTask(ag, "zombie-2", 5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
