package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
)

type recipeSemanticsContext struct {
	rcp             *recipe.Recipe
	resultCountSet  int
	craftsNeeded    int
}

func (rc *recipeSemanticsContext) reset() {
	rc.rcp = nil
	rc.resultCountSet = 0
	rc.craftsNeeded = 0
}

func (rc *recipeSemanticsContext) a2x2CraftingRecipeOfFourPlankSlotsProducingACraftingTable() error {
	ingredients := []*recipe.ItemTarget{
		recipe.NewItemTarget(1, "planks"), recipe.NewItemTarget(1, "planks"),
		recipe.NewItemTarget(1, "planks"), recipe.NewItemTarget(1, "planks"),
	}
	r, err := recipe.NewRecipe("crafting_table", 1, 2, 2, false, ingredients, "crafting_table")
	if err != nil {
		return err
	}
	rc.rcp = r
	return nil
}

func (rc *recipeSemanticsContext) theRecipeShouldNotRequireACraftingTable() error {
	if rc.rcp.RequiresCraftingTable() {
		return fmt.Errorf("expected a 2x2 recipe not to require a crafting table")
	}
	return nil
}

func (rc *recipeSemanticsContext) expandingTheRecipeOntoA2x2GridShouldGiveFourFilledSlots() error {
	slots := rc.rcp.GetSlots(2)
	filled := 0
	for _, s := range slots {
		if s != nil {
			filled++
		}
	}
	if filled != 4 {
		return fmt.Errorf("expected 4 filled slots but got %d", filled)
	}
	return nil
}

func (rc *recipeSemanticsContext) expandingTheRecipeOntoA3x3GridShouldGiveRows(row0, row1, row2 string) error {
	slots := rc.rcp.GetSlots(3)
	want := row0 + row1 + row2
	for i, s := range slots {
		got := "."
		if s != nil {
			got = "T"
		}
		if string(want[i]) != got {
			return fmt.Errorf("slot %d: expected %q but got %q", i, string(want[i]), got)
		}
	}
	return nil
}

func (rc *recipeSemanticsContext) theResultCountPerCraftIs(n int) error {
	rc.resultCountSet = n
	return nil
}

func (rc *recipeSemanticsContext) iAskHowManyCraftsAreNeededForATargetCountOfWithAlreadyHeld(target, have int) error {
	target2 := recipe.NewRecipeTarget(rc.rcp, target)
	rc.craftsNeeded = target2.CraftsNeeded(have)
	return nil
}

func (rc *recipeSemanticsContext) theCraftsNeededShouldBe(expected int) error {
	if rc.craftsNeeded != expected {
		return fmt.Errorf("expected %d crafts needed but got %d", expected, rc.craftsNeeded)
	}
	return nil
}

// InitializeRecipeSemanticsScenario registers the recipe slot-expansion
// and crafts-needed arithmetic steps.
func InitializeRecipeSemanticsScenario(sc *godog.ScenarioContext) {
	rc := &recipeSemanticsContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	sc.Step(`^a 2x2 crafting recipe of four plank slots producing a crafting table$`, rc.a2x2CraftingRecipeOfFourPlankSlotsProducingACraftingTable)
	sc.Step(`^the recipe should not require a crafting table$`, rc.theRecipeShouldNotRequireACraftingTable)
	sc.Step(`^expanding the recipe onto a 2x2 grid should give four filled slots$`, rc.expandingTheRecipeOntoA2x2GridShouldGiveFourFilledSlots)
	sc.Step(`^expanding the recipe onto a 3x3 grid should give rows "([^"]*)", "([^"]*)", "([^"]*)"$`, rc.expandingTheRecipeOntoA3x3GridShouldGiveRows)
	sc.Step(`^the result count per craft is (\d+)$`, rc.theResultCountPerCraftIs)
	sc.Step(`^I ask how many crafts are needed for a target count of (\d+) with (\d+) already held$`, rc.iAskHowManyCraftsAreNeededForATargetCountOfWithAlreadyHeld)
	sc.Step(`^the crafts needed should be (\d+)$`, rc.theCraftsNeededShouldBe)
}
