package acquisition

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// MatchingMaterialsPlanner implements spec §4.7: a specialization for
// recipes where a fixed number of slots must all be filled with the
// same variant from a family (all wool slots one colour, all plank
// slots one wood species).
type MatchingMaterialsPlanner struct {
	// TargetCount is the desired total count of the result family.
	TargetCount int
	// BaseRecipe is the recipe with "same" slots still unresolved.
	BaseRecipe *recipe.Recipe
	// SameMask has one entry per BaseRecipe.Ingredients slot; true
	// marks a slot that must be filled with the chosen majority variant.
	SameMask []bool
	// Family is the variant enumeration order; ties break in favour of
	// the variant encountered first here.
	Family []string

	// TrueCount returns how many of variant the agent actually holds.
	TrueCount func(ag agent.Agent, variant string) int
	// DerivedCount returns how many more of variant could be obtained
	// by an obvious conversion (e.g. logs -> planks) without counting
	// as already possessed.
	DerivedCount func(ag agent.Agent, variant string) int
	// Have returns how much of the result family the agent already holds.
	Have func(ag agent.Agent) int

	// ConversionTask builds the subtree that converts shortfall of
	// variant into amount more of it (e.g. craft planks from logs).
	ConversionTask func(ag agent.Agent, variant string, amount int) task.Task
	// CollectMoreTask builds the subclass-specific "go get more of the
	// family" subtree used when no variant can yet satisfy needed.
	CollectMoreTask func(ag agent.Agent) task.Task
	// CraftTaskFactory builds the ordinary crafting subtree once a
	// concrete (variant-resolved) recipe and target are known.
	CraftTaskFactory func(ag agent.Agent, concrete *recipe.Recipe, target *recipe.RecipeTarget) task.Task
}

// Plan runs one tick of the algorithm from spec §4.7 and returns the
// subtree to delegate to this step, or nil if the target is already met.
func (p *MatchingMaterialsPlanner) Plan(ag agent.Agent) task.Task {
	k := p.sameSlotCount()
	if k == 0 {
		return nil
	}

	needed := p.TargetCount - p.Have(ag)
	if needed <= 0 {
		return nil
	}

	majority := ""
	bestCanCraft := -1
	totalPossible := 0
	for _, v := range p.Family {
		effective := p.TrueCount(ag, v) + p.DerivedCount(ag, v)
		canCraft := (effective / k) * p.BaseRecipe.ResultCount
		totalPossible += canCraft
		if canCraft > bestCanCraft {
			bestCanCraft = canCraft
			majority = v
		}
	}

	if totalPossible < needed {
		return p.CollectMoreTask(ag)
	}

	trueCount := p.TrueCount(ag, majority)
	if trueCount >= k {
		concrete := p.concreteRecipe(majority)
		return p.CraftTaskFactory(ag, concrete, recipe.NewRecipeTarget(concrete, p.TargetCount))
	}
	return p.ConversionTask(ag, majority, k-trueCount)
}

func (p *MatchingMaterialsPlanner) sameSlotCount() int {
	k := 0
	for _, same := range p.SameMask {
		if same {
			k++
		}
	}
	return k
}

// concreteRecipe replaces exactly the "same" slots with an exact-match
// target for variant, leaving every other slot unchanged (spec §8
// invariant 19).
func (p *MatchingMaterialsPlanner) concreteRecipe(variant string) *recipe.Recipe {
	ingredients := make([]*recipe.ItemTarget, len(p.BaseRecipe.Ingredients))
	copy(ingredients, p.BaseRecipe.Ingredients)
	for i, same := range p.SameMask {
		if same {
			ingredients[i] = recipe.NewExactItemTarget(1, variant)
		}
	}
	concrete, err := recipe.NewRecipe(
		p.BaseRecipe.ResultName, p.BaseRecipe.ResultCount,
		p.BaseRecipe.Width, p.BaseRecipe.Height,
		p.BaseRecipe.Shapeless, ingredients, p.BaseRecipe.RecipeKey,
	)
	if err != nil {
		// BaseRecipe was already valid and ingredients keeps its
		// length, so this can only happen if BaseRecipe itself was
		// constructed outside NewRecipe's validation.
		return p.BaseRecipe
	}
	return concrete
}
