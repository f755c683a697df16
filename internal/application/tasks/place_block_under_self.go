package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type placeUnderState int

const (
	placeUnderEquipping placeUnderState = iota
	placeUnderPlacing
	placeUnderFinished
	placeUnderFailed
)

// PlaceBlockUnderSelfTask is the FallProtectionChain's main task: an
// OverridesGrounded leaf (it must be allowed to replace a
// RequiresGrounded subtask mid-air). States EQUIPPING -> PLACING ->
// FINISHED | FAILED.
type PlaceBlockUnderSelfTask struct {
	*task.Node

	Agent     agent.Agent
	BlockName string

	state placeUnderState
}

// NewPlaceBlockUnderSelfTask builds the leaf, throwing down blockName.
func NewPlaceBlockUnderSelfTask(ag agent.Agent, blockName string) *PlaceBlockUnderSelfTask {
	p := &PlaceBlockUnderSelfTask{Agent: ag, BlockName: blockName}
	p.Node = task.NewNode(p, "PlaceBlockUnderSelf")
	return p
}

// OverridesGrounded declares this leaf safe to run mid-air (spec §4.3).
func (p *PlaceBlockUnderSelfTask) OverridesGrounded() bool { return true }

func (p *PlaceBlockUnderSelfTask) OnStart()                  { p.state = placeUnderEquipping }
func (p *PlaceBlockUnderSelfTask) OnStop(interrupt task.Task) {}

// IsFinished is true once grounded-or-safe, or on FAILED.
func (p *PlaceBlockUnderSelfTask) IsFinished() bool {
	return p.state == placeUnderFinished || p.state == placeUnderFailed || agent.GroundedOrSafe(p.Agent)
}

// IsFailed distinguishes running out of throwaway blocks from landing safely.
func (p *PlaceBlockUnderSelfTask) IsFailed() bool { return p.state == placeUnderFailed }

// IsEqual treats two instances placing the same block as the same work.
func (p *PlaceBlockUnderSelfTask) IsEqual(other task.Task) bool {
	o, ok := other.(*PlaceBlockUnderSelfTask)
	return ok && o.BlockName == p.BlockName
}

func (p *PlaceBlockUnderSelfTask) OnTick() task.Task {
	if agent.GroundedOrSafe(p.Agent) {
		p.state = placeUnderFinished
		return nil
	}
	switch p.state {
	case placeUnderEquipping:
		if err := p.Agent.Equip(p.BlockName, "hand"); err != nil {
			p.state = placeUnderFailed
			return nil
		}
		p.state = placeUnderPlacing
		return nil

	case placeUnderPlacing:
		if exactCountIn(p.Agent.InventoryItems(), p.BlockName) == 0 {
			p.state = placeUnderFailed
			return nil
		}
		pos := p.Agent.Position()
		// Place against the top face of the block two below, which fills
		// the block directly underfoot.
		support := agent.Vector3{X: pos.X, Y: pos.Y - 2, Z: pos.Z}
		b, ok := p.Agent.BlockAt(support)
		if !ok {
			p.state = placeUnderFailed
			return nil
		}
		_ = p.Agent.PlaceBlock(p.BlockName, b, agent.Vector3{Y: 1})
		return nil
	}
	return nil
}
