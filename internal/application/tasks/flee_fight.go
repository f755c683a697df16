package tasks

import (
	"math"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type assessActState int

const (
	assessing assessActState = iota
	acting
	finishedState
)

// FleeTask is one of DangerChain's two candidate leaves (selected by
// its configured policy): ASSESSING -> ACTING -> FINISHED, retreating
// from ThreatEntityID until it is out of range or gone.
type FleeTask struct {
	*task.Node

	Agent          agent.Agent
	ThreatEntityID string
	FleeDistance   float64

	state assessActState
}

// NewFleeTask builds a leaf that retreats fleeDistance blocks from threatEntityID.
func NewFleeTask(ag agent.Agent, threatEntityID string, fleeDistance float64) *FleeTask {
	f := &FleeTask{Agent: ag, ThreatEntityID: threatEntityID, FleeDistance: fleeDistance}
	f.Node = task.NewNode(f, "Flee")
	return f
}

func (f *FleeTask) OnStart()                  { f.state = assessing }
func (f *FleeTask) OnStop(interrupt task.Task) {}
func (f *FleeTask) IsFinished() bool          { return f.state == finishedState }

// IsEqual treats two flees from the same threat as the same work.
func (f *FleeTask) IsEqual(other task.Task) bool {
	o, ok := other.(*FleeTask)
	return ok && o.ThreatEntityID == f.ThreatEntityID
}

func (f *FleeTask) OnTick() task.Task {
	e, ok := f.Agent.Entities()[f.ThreatEntityID]
	if !ok || !e.IsValid {
		f.state = finishedState
		return nil
	}
	pos := f.Agent.Position()
	if distance(pos, e.Position) >= f.FleeDistance {
		f.state = finishedState
		return nil
	}
	f.state = acting
	dest := awayFrom(pos, e.Position, f.FleeDistance)
	if _, err := f.Agent.NavigateToward(dest); err != nil {
		f.state = finishedState
	}
	return nil
}

// FightTask is DangerChain's other candidate leaf: ASSESSING -> ACTING
// -> FINISHED, attacking ThreatEntityID until it dies or leaves range.
type FightTask struct {
	*task.Node

	Agent          agent.Agent
	ThreatEntityID string
	EngageRange    float64

	state assessActState
}

// NewFightTask builds a leaf that attacks threatEntityID while in range.
func NewFightTask(ag agent.Agent, threatEntityID string, engageRange float64) *FightTask {
	f := &FightTask{Agent: ag, ThreatEntityID: threatEntityID, EngageRange: engageRange}
	f.Node = task.NewNode(f, "Fight")
	return f
}

func (f *FightTask) OnStart()                  { f.state = assessing }
func (f *FightTask) OnStop(interrupt task.Task) {}
func (f *FightTask) IsFinished() bool          { return f.state == finishedState }

// IsEqual treats two fights against the same threat as the same work.
func (f *FightTask) IsEqual(other task.Task) bool {
	o, ok := other.(*FightTask)
	return ok && o.ThreatEntityID == f.ThreatEntityID
}

func (f *FightTask) OnTick() task.Task {
	e, ok := f.Agent.Entities()[f.ThreatEntityID]
	if !ok || !e.IsValid {
		f.state = finishedState
		return nil
	}
	pos := f.Agent.Position()
	if distance(pos, e.Position) > f.EngageRange {
		f.state = finishedState
		return nil
	}
	f.state = acting
	f.Agent.LookAt(e.Position)
	_ = f.Agent.Attack(f.ThreatEntityID)
	return nil
}

func awayFrom(from, threat agent.Vector3, distance float64) agent.Vector3 {
	d := from.Sub(threat)
	length := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	if length == 0 {
		return agent.Vector3{X: from.X + distance, Y: from.Y, Z: from.Z}
	}
	scale := distance / length
	return agent.Vector3{X: from.X + d.X*scale, Y: from.Y, Z: from.Z + d.Z*scale}
}
