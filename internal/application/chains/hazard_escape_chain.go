package chains

import (
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
)

// HazardEscapeChain is the highest-priority concern: active whenever
// the agent's feet or head block is lava, fire, or another configured
// hazardous block.
type HazardEscapeChain struct {
	*chain.BaseChain

	Agent        agent.Agent
	HazardNames  []string
	SearchRadius float64
}

// NewHazardEscapeChain builds the chain reacting to any of hazardNames.
func NewHazardEscapeChain(ag agent.Agent, hazardNames []string, searchRadius float64) *HazardEscapeChain {
	return &HazardEscapeChain{
		BaseChain:    chain.NewBaseChain("hazard-escape"),
		Agent:        ag,
		HazardNames:  hazardNames,
		SearchRadius: searchRadius,
	}
}

// Priority implements chain.Chain.
func (h *HazardEscapeChain) Priority() chain.Priority {
	if h.inHazard() {
		return chain.Death
	}
	return chain.Inactive
}

// IsActive overrides BaseChain's default so the chain can be selected
// on the tick a hazard first appears, before OnTick has installed a task.
func (h *HazardEscapeChain) IsActive() bool {
	return h.Priority() != chain.Inactive
}

// OnTick installs an EscapeHazardTask while in a hazardous block, then ticks it.
func (h *HazardEscapeChain) OnTick() {
	if h.inHazard() {
		h.SetTask(tasks.NewEscapeHazardTask(h.Agent, h.HazardNames, h.SearchRadius))
	}
	h.BaseChain.OnTick()
}

func (h *HazardEscapeChain) inHazard() bool {
	pos := h.Agent.Position()
	if feet, ok := h.Agent.BlockAt(pos); ok && stringIn(h.HazardNames, feet.Name) {
		return true
	}
	head := agent.Vector3{X: pos.X, Y: pos.Y + 1, Z: pos.Z}
	if b, ok := h.Agent.BlockAt(head); ok && stringIn(h.HazardNames, b.Name) {
		return true
	}
	return false
}
