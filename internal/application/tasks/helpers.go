package tasks

import (
	"math"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
)

// sameTargets compares two target lists by their acceptable-name sets
// and counts, used by the ResourceTask family's equality predicates.
func sameTargets(a, b []*recipe.ItemTarget) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].TargetCount != b[i].TargetCount || !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func distance(a, b agent.Vector3) float64 {
	d := a.Sub(b)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

func anyTargetMatches(targets []*recipe.ItemTarget, name string) bool {
	for _, t := range targets {
		if t.Matches(name) {
			return true
		}
	}
	return false
}

// exactCountIn sums inventory counts for items named exactly name.
func exactCountIn(items []agent.InventoryItem, name string) int {
	total := 0
	for _, it := range items {
		if it.Name == name {
			total += it.Count
		}
	}
	return total
}
