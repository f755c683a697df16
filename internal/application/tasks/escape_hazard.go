package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type escapeState int

const (
	escapeFinding escapeState = iota
	escapeMoving
	escapeFinished
	escapeFailed
)

// EscapeHazardTask is the HazardEscapeChain's main task:
// FINDING_SAFE_SPOT -> MOVING -> FINISHED | FAILED. It only decides
// *where* to go; *how* to path there is handed off to the agent's
// navigation primitive and polled each tick (spec §5).
type EscapeHazardTask struct {
	*task.Node

	Agent        agent.Agent
	HazardNames  []string
	SearchRadius float64

	state escapeState
	dest  *agent.Vector3
}

// NewEscapeHazardTask builds the leaf, avoiding blocks named in hazardNames.
func NewEscapeHazardTask(ag agent.Agent, hazardNames []string, searchRadius float64) *EscapeHazardTask {
	if searchRadius <= 0 {
		searchRadius = 8
	}
	e := &EscapeHazardTask{Agent: ag, HazardNames: hazardNames, SearchRadius: searchRadius}
	e.Node = task.NewNode(e, "EscapeHazard")
	return e
}

func (e *EscapeHazardTask) OnStart()                  { e.state = escapeFinding }
func (e *EscapeHazardTask) OnStop(interrupt task.Task) {}

// IsFinished covers both success and FAILED (no safe spot found).
func (e *EscapeHazardTask) IsFinished() bool {
	return e.state == escapeFinished || e.state == escapeFailed
}

// IsFailed distinguishes the FAILED terminal state.
func (e *EscapeHazardTask) IsFailed() bool { return e.state == escapeFailed }

// IsEqual treats any two hazard escapes as the same work: there is
// only ever one hazard to flee at a time.
func (e *EscapeHazardTask) IsEqual(other task.Task) bool { return task.SameKind(e, other) }

func (e *EscapeHazardTask) OnTick() task.Task {
	switch e.state {
	case escapeFinding:
		spot, ok := e.findSafeSpot()
		if !ok {
			e.state = escapeFailed
			return nil
		}
		e.dest = &spot
		e.state = escapeMoving
		return nil

	case escapeMoving:
		arrived, err := e.Agent.NavigateToward(*e.dest)
		if err != nil {
			e.state = escapeFailed
			return nil
		}
		if arrived {
			e.state = escapeFinished
		}
		return nil
	}
	return nil
}

func (e *EscapeHazardTask) findSafeSpot() (agent.Vector3, bool) {
	origin := e.Agent.Position()
	r := int(e.SearchRadius)
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			pos := agent.Vector3{X: origin.X + float64(dx), Y: origin.Y, Z: origin.Z + float64(dz)}
			here, ok := e.Agent.BlockAt(pos)
			if !ok || !here.IsAir() {
				continue
			}
			below, ok := e.Agent.BlockAt(agent.Vector3{X: pos.X, Y: pos.Y - 1, Z: pos.Z})
			if !ok || below.IsAir() || stringInSlice(e.HazardNames, below.Name) {
				continue
			}
			return pos, true
		}
	}
	return agent.Vector3{}, false
}

func stringInSlice(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
