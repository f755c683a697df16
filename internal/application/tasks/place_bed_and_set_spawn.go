package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type bedState int

const (
	bedFindingBed bedState = iota
	bedFindingPlaceLocation
	bedPlacingBed
	bedApproaching
	bedSleeping
	bedWaitingForSleep
	bedFinished
	bedFailed
)

const bedSleepWaitTicks = 2000 // roughly a night, polled rather than awaited

var bedBlockNames = []string{
	"white_bed", "red_bed", "black_bed", "blue_bed", "brown_bed",
	"cyan_bed", "gray_bed", "green_bed", "light_blue_bed",
	"light_gray_bed", "lime_bed", "magenta_bed", "orange_bed",
	"pink_bed", "purple_bed", "yellow_bed",
}

// PlaceBedAndSetSpawn implements spec §4.8: refuses to run outside the
// overworld, finds or places a bed, sleeps in it, and finishes on wake.
type PlaceBedAndSetSpawn struct {
	*task.Node

	Agent          agent.Agent
	AllowPlacement bool
	PlacementItem  string

	state     bedState
	bed       *agent.Block
	placeSpot *agent.Vector3
	navTask   *GoToPosition
	waitStart int64
}

// NewPlaceBedAndSetSpawn builds the leaf. If allowPlacement is true and
// no bed is found, the leaf places placementItem at a suitable spot
// before sleeping.
func NewPlaceBedAndSetSpawn(ag agent.Agent, allowPlacement bool, placementItem string) *PlaceBedAndSetSpawn {
	p := &PlaceBedAndSetSpawn{Agent: ag, AllowPlacement: allowPlacement, PlacementItem: placementItem}
	p.Node = task.NewNode(p, "PlaceBedAndSetSpawn")
	return p
}

func (p *PlaceBedAndSetSpawn) OnStart() {
	if p.Agent.Dimension() != "overworld" {
		p.state = bedFailed
		return
	}
	p.state = bedFindingBed
}

func (p *PlaceBedAndSetSpawn) OnStop(interrupt task.Task) {
	if p.navTask != nil {
		p.navTask.Stop(interrupt)
		p.navTask = nil
	}
}

// IsFinished covers both success and FAILED.
func (p *PlaceBedAndSetSpawn) IsFinished() bool {
	return p.state == bedFinished || p.state == bedFailed
}

// IsFailed distinguishes the FAILED terminal state.
func (p *PlaceBedAndSetSpawn) IsFailed() bool { return p.state == bedFailed }

// IsEqual treats any two instances of this leaf as the same work: it
// has no distinguishing parameters beyond its own fixed policy fields.
func (p *PlaceBedAndSetSpawn) IsEqual(other task.Task) bool {
	return task.SameKind(p, other)
}

func (p *PlaceBedAndSetSpawn) OnTick() task.Task {
	switch p.state {
	case bedFindingBed:
		return p.tickFindingBed()
	case bedFindingPlaceLocation:
		return p.tickFindingPlaceLocation()
	case bedPlacingBed:
		return p.tickPlacingBed()
	case bedApproaching:
		return p.tickApproaching()
	case bedSleeping:
		return p.tickSleeping()
	case bedWaitingForSleep:
		return p.tickWaitingForSleep()
	}
	return nil
}

func (p *PlaceBedAndSetSpawn) tickFindingBed() task.Task {
	b, ok := p.Agent.FindNearestBlock(bedBlockNames, p.Agent.Position(), 32)
	if ok {
		p.bed = &b
		p.state = bedApproaching
		return nil
	}
	if p.AllowPlacement {
		p.state = bedFindingPlaceLocation
		return nil
	}
	p.state = bedFailed
	return nil
}

func (p *PlaceBedAndSetSpawn) tickFindingPlaceLocation() task.Task {
	origin := p.Agent.Position()
	for dx := -5; dx <= 5; dx++ {
		for dz := -5; dz <= 5; dz++ {
			a := agent.Vector3{X: origin.X + float64(dx), Y: origin.Y, Z: origin.Z + float64(dz)}
			b := agent.Vector3{X: a.X + 1, Y: a.Y, Z: a.Z}
			if p.isClearWithGround(a) && p.isClearWithGround(b) {
				spot := a
				p.placeSpot = &spot
				p.state = bedPlacingBed
				return nil
			}
		}
	}
	p.state = bedFailed
	return nil
}

func (p *PlaceBedAndSetSpawn) isClearWithGround(pos agent.Vector3) bool {
	here, ok := p.Agent.BlockAt(pos)
	if !ok || !here.IsAir() {
		return false
	}
	below, ok := p.Agent.BlockAt(agent.Vector3{X: pos.X, Y: pos.Y - 1, Z: pos.Z})
	return ok && !below.IsAir()
}

func (p *PlaceBedAndSetSpawn) tickPlacingBed() task.Task {
	ground, _ := p.Agent.BlockAt(agent.Vector3{X: p.placeSpot.X, Y: p.placeSpot.Y - 1, Z: p.placeSpot.Z})
	if err := p.Agent.PlaceBlock(p.PlacementItem, ground, agent.Vector3{Y: 1}); err != nil {
		return nil
	}
	b, ok := p.Agent.BlockAt(*p.placeSpot)
	if !ok {
		p.state = bedFailed
		return nil
	}
	p.bed = &b
	p.state = bedApproaching
	return nil
}

func (p *PlaceBedAndSetSpawn) tickApproaching() task.Task {
	if p.navTask == nil {
		p.navTask = NewGoToPosition(p.Agent, p.bed.Position)
	}
	if !p.navTask.IsFinished() {
		return p.navTask
	}
	failed := p.navTask.IsFailed()
	p.navTask = nil
	if failed {
		p.state = bedFailed
		return nil
	}
	p.state = bedSleeping
	return nil
}

func (p *PlaceBedAndSetSpawn) tickSleeping() task.Task {
	if err := p.Agent.ActivateBlock(*p.bed); err != nil {
		p.state = bedFailed
		return nil
	}
	p.waitStart = p.Agent.TickAge()
	p.state = bedWaitingForSleep
	return nil
}

func (p *PlaceBedAndSetSpawn) tickWaitingForSleep() task.Task {
	if p.Agent.TickAge()-p.waitStart >= bedSleepWaitTicks {
		p.state = bedFinished
	}
	return nil
}
