package recipe

import (
	"github.com/andrescamacho/taskengine-go/internal/domain/shared"
)

// Recipe is a width×height ingredient grid producing ResultCount of
// ResultName. Ingredients has exactly Width*Height entries, laid out
// row-major (ingredients[y*Width+x]); a nil entry is an empty slot.
type Recipe struct {
	ResultName  string
	ResultCount int
	Width       int
	Height      int
	Shapeless   bool
	Ingredients []*ItemTarget
	RecipeKey   string
}

// NewRecipe validates ingredients.len == width*height (spec §8 invariant
// 12) before constructing the recipe.
func NewRecipe(resultName string, resultCount, width, height int, shapeless bool, ingredients []*ItemTarget, recipeKey string) (*Recipe, error) {
	if len(ingredients) != width*height {
		return nil, shared.NewRecipeError("ingredient count does not match width*height")
	}
	if resultCount < 1 {
		return nil, shared.NewRecipeError("result count must be at least 1")
	}
	if width < 1 || width > 3 || height < 1 || height > 3 {
		return nil, shared.NewRecipeError("recipe dimensions must be within [1,3]")
	}
	return &Recipe{
		ResultName:  resultName,
		ResultCount: resultCount,
		Width:       width,
		Height:      height,
		Shapeless:   shapeless,
		Ingredients: ingredients,
		RecipeKey:   recipeKey,
	}, nil
}

// RequiresCraftingTable reports whether the recipe needs a 3x3 grid
// (spec §8 invariant 13).
func (r *Recipe) RequiresCraftingTable() bool {
	return r.Width > 2 || r.Height > 2
}

// GetSlots expands the recipe onto a gridSize² grid (2 for the
// inventory crafting grid, 3 for a crafting table), placing
// ingredient (x,y) at position y*gridSize+x for x<Width, y<Height; all
// other positions are nil (spec §8 invariant 15).
func (r *Recipe) GetSlots(gridSize int) []*ItemTarget {
	slots := make([]*ItemTarget, gridSize*gridSize)
	for y := 0; y < r.Height && y < gridSize; y++ {
		for x := 0; x < r.Width && x < gridSize; x++ {
			slots[y*gridSize+x] = r.Ingredients[y*r.Width+x]
		}
	}
	return slots
}

// DistinctIngredients returns the non-empty ingredient slots with
// duplicate (by acceptable-name set) targets collapsed into the first
// occurrence; CountPerCraft gives how many slots each one fills. Used by the crafting subtree to
// check ingredient sufficiency once per distinct slot rather than once
// per grid cell.
func (r *Recipe) DistinctIngredients() []*ItemTarget {
	var distinct []*ItemTarget
	for _, ing := range r.Ingredients {
		if ing == nil {
			continue
		}
		found := false
		for _, d := range distinct {
			if d.Equal(ing) {
				found = true
				break
			}
		}
		if !found {
			distinct = append(distinct, ing)
		}
	}
	return distinct
}

// CountPerCraft reports how many of target's acceptable items a single
// craft consumes, i.e. how many grid slots match it.
func (r *Recipe) CountPerCraft(target *ItemTarget) int {
	n := 0
	for _, ing := range r.Ingredients {
		if ing != nil && ing.Equal(target) {
			n++
		}
	}
	return n
}
