package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

type pickupState int

const (
	pickupSearching pickupState = iota
	pickupGoingToItem
	pickupWaiting
)

// Pickup implements spec §4.4's two-variant state machine: SEARCHING
// scans nearby dropped-item entities for a target match, GOING_TO_ITEM
// delegates to GoToPosition, and WAITING idles briefly after arrival
// before recounting — looping back to SEARCHING if the item is blocked
// (still present) or simply absent (someone else grabbed it first).
type Pickup struct {
	*ResourceTask

	SearchRadius float64
	PickupRadius float64
	WaitTicks    int64

	state          pickupState
	targetEntityID string
	navTask        *GoToPosition
	waitStart      int64
}

// NewPickup builds a leaf that sweeps drops matching targets.
func NewPickup(ag agent.Agent, targets []*recipe.ItemTarget, searchRadius, pickupRadius float64) *Pickup {
	if searchRadius <= 0 {
		searchRadius = 16
	}
	if pickupRadius <= 0 {
		pickupRadius = 4
	}
	p := &Pickup{SearchRadius: searchRadius, PickupRadius: pickupRadius, WaitTicks: 20}
	p.ResourceTask = NewResourceTask(p, p, ag, "Pickup", targets)
	return p
}

func (p *Pickup) OnResourceStart() { p.state = pickupSearching }

func (p *Pickup) OnResourceStop(interrupt task.Task) {
	if p.navTask != nil {
		p.navTask.Stop(interrupt)
		p.navTask = nil
	}
}

// ResourceEqual treats two pickups over the same target set as the same work.
func (p *Pickup) ResourceEqual(other task.Task) bool {
	o, ok := other.(*Pickup)
	return ok && sameTargets(p.Targets, o.Targets)
}

func (p *Pickup) OnResourceTick() task.Task {
	switch p.state {
	case pickupSearching:
		e, ok := p.findDroppedItem()
		if !ok {
			return nil
		}
		p.targetEntityID = e.ID
		p.state = pickupGoingToItem
		return nil

	case pickupGoingToItem:
		e, ok := p.Agent.Entities()[p.targetEntityID]
		if !ok || !e.IsValid {
			p.state = pickupSearching
			p.navTask = nil
			return nil
		}
		if p.navTask == nil {
			p.navTask = NewGoToPosition(p.Agent, e.Position)
		}
		if p.navTask.IsFinished() {
			p.navTask = nil
			p.waitStart = p.Agent.TickAge()
			p.state = pickupWaiting
			return nil
		}
		return p.navTask

	case pickupWaiting:
		if p.Agent.TickAge()-p.waitStart < p.WaitTicks {
			return nil
		}
		p.state = pickupSearching
		return nil
	}
	return nil
}

func (p *Pickup) findDroppedItem() (agent.Entity, bool) {
	origin := p.Agent.Position()
	var best agent.Entity
	bestDist := p.SearchRadius
	found := false
	for _, e := range p.Agent.Entities() {
		if !e.IsValid || !e.IsDroppedItem {
			continue
		}
		if !anyTargetMatches(p.Targets, e.Name) {
			continue
		}
		d := distance(origin, e.Position)
		if d <= bestDist {
			best = e
			bestDist = d
			found = true
		}
	}
	return best, found
}
