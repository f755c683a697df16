package chains

import (
	"math"

	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
)

// DangerPolicy controls DangerChain's response to a nearby hostile.
type DangerPolicy int

const (
	PolicyFleeOnly DangerPolicy = iota
	PolicyFightIfWinnable
	PolicyAlwaysFight
)

// DangerChain responds to a hostile entity within CombatRadius by
// fleeing or fighting, per Policy.
type DangerChain struct {
	*chain.BaseChain

	Agent        agent.Agent
	HostileNames []string
	CombatRadius float64
	Policy       DangerPolicy
}

// NewDangerChain builds the chain, reacting to any of hostileNames within combatRadius.
func NewDangerChain(ag agent.Agent, hostileNames []string, combatRadius float64, policy DangerPolicy) *DangerChain {
	return &DangerChain{
		BaseChain:    chain.NewBaseChain("danger"),
		Agent:        ag,
		HostileNames: hostileNames,
		CombatRadius: combatRadius,
		Policy:       policy,
	}
}

// Priority implements chain.Chain.
func (d *DangerChain) Priority() chain.Priority {
	if _, ok := d.findThreat(); ok {
		return chain.Danger
	}
	return chain.Inactive
}

// IsActive overrides BaseChain's default so the chain can be selected
// on the tick a threat first appears, before OnTick has installed a task.
func (d *DangerChain) IsActive() bool {
	return d.Priority() != chain.Inactive
}

// OnTick selects flee or fight against the nearest threat and ticks it.
func (d *DangerChain) OnTick() {
	threat, ok := d.findThreat()
	if ok {
		wantFight := d.Policy == PolicyAlwaysFight || (d.Policy == PolicyFightIfWinnable && d.winnable())
		if wantFight {
			d.SetTask(tasks.NewFightTask(d.Agent, threat.ID, d.CombatRadius))
		} else {
			d.SetTask(tasks.NewFleeTask(d.Agent, threat.ID, d.CombatRadius*2))
		}
	}
	d.BaseChain.OnTick()
}

func (d *DangerChain) findThreat() (agent.Entity, bool) {
	origin := d.Agent.Position()
	best := agent.Entity{}
	bestDist := d.CombatRadius
	found := false
	for _, e := range d.Agent.Entities() {
		if !e.IsValid || !stringIn(d.HostileNames, e.Name) {
			continue
		}
		dist := euclidean(origin, e.Position)
		if dist <= bestDist {
			best = e
			bestDist = dist
			found = true
		}
	}
	return best, found
}

// winnable is a minimal heuristic: the agent is willing to fight if it
// is holding anything (treated as a weapon) rather than bare hands.
func (d *DangerChain) winnable() bool {
	item, ok := d.Agent.HeldItem()
	return ok && item.Name != ""
}

func stringIn(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func euclidean(a, b agent.Vector3) float64 {
	d := a.Sub(b)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}
