package recipe

import "math"

// RecipeTarget pairs a recipe with a desired total output count.
type RecipeTarget struct {
	Recipe             *Recipe
	DesiredOutputCount int
}

// NewRecipeTarget constructs a RecipeTarget.
func NewRecipeTarget(r *Recipe, desiredOutputCount int) *RecipeTarget {
	return &RecipeTarget{Recipe: r, DesiredOutputCount: desiredOutputCount}
}

// CraftsNeeded computes max(0, ceil((desired-have)/result_count))
// (spec §8 invariant 14).
func (rt *RecipeTarget) CraftsNeeded(have int) int {
	missing := rt.DesiredOutputCount - have
	if missing <= 0 {
		return 0
	}
	return int(math.Ceil(float64(missing) / float64(rt.Recipe.ResultCount)))
}
