// Package recipe implements the recipe model the acquisition planner
// consumes: item targets, shaped/shapeless recipes, slot expansion,
// and smelting with its fuel burn-time table.
package recipe

import (
	"sort"
	"strings"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

// ItemTarget names a non-empty set of acceptable item names and a
// positive required count. Per spec §9's open question, matching
// defaults to contains-match (an inventory item matches if its name
// equals OR contains an acceptable name) for fidelity with historical
// behaviour; ExactMatch flips a given target to equality-only
// matching. Callers that care about precision (e.g. "iron" incorrectly
// matching "iron_nugget") should set ExactMatch explicitly rather than
// rely on the default.
type ItemTarget struct {
	AcceptableNames []string
	TargetCount     int
	ExactMatch      bool
}

// NewItemTarget constructs a contains-match target, the historical default.
func NewItemTarget(count int, names ...string) *ItemTarget {
	return &ItemTarget{AcceptableNames: names, TargetCount: count}
}

// NewExactItemTarget constructs an equality-only target.
func NewExactItemTarget(count int, names ...string) *ItemTarget {
	return &ItemTarget{AcceptableNames: names, TargetCount: count, ExactMatch: true}
}

// Matches reports whether itemName satisfies this target: equal to,
// or (unless ExactMatch) containing, any acceptable name.
func (t *ItemTarget) Matches(itemName string) bool {
	for _, want := range t.AcceptableNames {
		if itemName == want {
			return true
		}
		if !t.ExactMatch && strings.Contains(itemName, want) {
			return true
		}
	}
	return false
}

// CountIn sums the counts of every inventory item matching this target.
func (t *ItemTarget) CountIn(items []agent.InventoryItem) int {
	total := 0
	for _, it := range items {
		if t.Matches(it.Name) {
			total += it.Count
		}
	}
	return total
}

// Satisfied reports whether items contain at least TargetCount of this target.
func (t *ItemTarget) Satisfied(items []agent.InventoryItem) bool {
	return t.CountIn(items) >= t.TargetCount
}

// Equal compares two ingredient slots by the sorted set of their
// acceptable names, per spec §3's recipe-equality rule. A nil slot
// (empty ingredient position) equals only another nil slot.
func (t *ItemTarget) Equal(other *ItemTarget) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	a := append([]string(nil), t.AcceptableNames...)
	b := append([]string(nil), other.AcceptableNames...)
	if len(a) != len(b) {
		return false
	}
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
