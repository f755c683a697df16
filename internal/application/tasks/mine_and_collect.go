package tasks

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// MineAndCollect implements spec §4.4: given targets and a mapping
// from item name to source block names, each tick it picks the first
// unmet target, finds the nearest matching block within radius,
// destroys it, and sweeps its drops in parallel.
type MineAndCollect struct {
	*ResourceTask

	Sources map[string][]string
	Radius  float64

	current *task.Parallel
}

// NewMineAndCollect builds a mining leaf over the given source table.
// radius <= 0 uses the spec's documented default of 32 blocks.
func NewMineAndCollect(ag agent.Agent, targets []*recipe.ItemTarget, sources map[string][]string, radius float64) *MineAndCollect {
	if radius <= 0 {
		radius = 32
	}
	m := &MineAndCollect{Sources: sources, Radius: radius}
	m.ResourceTask = NewResourceTask(m, m, ag, "MineAndCollect", targets)
	return m
}

func (m *MineAndCollect) OnResourceStart() {}

func (m *MineAndCollect) OnResourceStop(interrupt task.Task) {
	if m.current != nil {
		m.current.Stop(interrupt)
		m.current = nil
	}
}

// ResourceEqual treats two mining runs over the same targets as the same work.
func (m *MineAndCollect) ResourceEqual(other task.Task) bool {
	o, ok := other.(*MineAndCollect)
	return ok && sameTargets(m.Targets, o.Targets)
}

func (m *MineAndCollect) OnResourceTick() task.Task {
	if m.current != nil && !m.current.IsFinished() {
		return m.current
	}
	m.current = nil

	target := m.FirstUnmetTarget()
	if target == nil {
		return nil
	}
	blockNames := m.sourceBlocksFor(target)
	if len(blockNames) == 0 {
		return nil
	}
	block, ok := m.Agent.FindNearestBlock(blockNames, m.Agent.Position(), m.Radius)
	if !ok {
		return nil
	}

	destroy := NewDestroyBlock(m.Agent, block)
	pickup := NewPickup(m.Agent, []*recipe.ItemTarget{target}, m.Radius, 6)
	m.current = task.NewParallel("MineAndCollect.destroy+sweep", destroy, pickup)
	return m.current
}

func (m *MineAndCollect) sourceBlocksFor(target *recipe.ItemTarget) []string {
	var names []string
	for _, itemName := range target.AcceptableNames {
		names = append(names, m.Sources[itemName]...)
	}
	return names
}
