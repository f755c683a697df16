package chains

import (
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
)

// FallProtectionChain places a block underfoot when the agent is
// airborne above FatalFallHeight with no water or cobweb to break the
// fall. Its main task is OverridesGrounded so it can replace a
// RequiresGrounded subtask mid-air (spec §4.3).
type FallProtectionChain struct {
	*chain.BaseChain

	Agent               agent.Agent
	FatalFallHeight     float64
	ThrowawayBlockName  string
}

// NewFallProtectionChain builds the chain, throwing down blockName
// when a fall deeper than fatalFallHeight is detected.
func NewFallProtectionChain(ag agent.Agent, fatalFallHeight float64, blockName string) *FallProtectionChain {
	return &FallProtectionChain{
		BaseChain:          chain.NewBaseChain("fall-protection"),
		Agent:              ag,
		FatalFallHeight:    fatalFallHeight,
		ThrowawayBlockName: blockName,
	}
}

// Priority implements chain.Chain.
func (f *FallProtectionChain) Priority() chain.Priority {
	if f.isFatalFall() {
		return chain.Danger
	}
	return chain.Inactive
}

// IsActive overrides BaseChain's default so the chain can be selected
// on the tick a fatal fall first appears, before OnTick has installed a task.
func (f *FallProtectionChain) IsActive() bool {
	return f.Priority() != chain.Inactive
}

// OnTick installs a PlaceBlockUnderSelfTask while falling, then ticks it.
func (f *FallProtectionChain) OnTick() {
	if f.isFatalFall() {
		f.SetTask(tasks.NewPlaceBlockUnderSelfTask(f.Agent, f.ThrowawayBlockName))
	}
	f.BaseChain.OnTick()
}

func (f *FallProtectionChain) isFatalFall() bool {
	if agent.GroundedOrSafe(f.Agent) {
		return false
	}
	pos := f.Agent.Position()
	for dy := 1; dy <= int(f.FatalFallHeight); dy++ {
		below := agent.Vector3{X: pos.X, Y: pos.Y - float64(dy), Z: pos.Z}
		b, ok := f.Agent.BlockAt(below)
		if !ok {
			continue
		}
		if b.Name == "water" || b.Name == "cobweb" {
			return false
		}
		if !b.IsAir() {
			// Solid ground within fall height: not a fatal drop.
			return false
		}
	}
	return true
}
