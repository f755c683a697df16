package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/domain/acquisition"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// craftRouteMarkerTask stands in for whatever the real craft-task
// factory would build, letting the step assertions recognize which
// route the catalogue actually chose without depending on the concrete
// crafting leaf.
type craftRouteMarkerTask struct {
	*task.Node
	target *recipe.RecipeTarget
}

func newCraftRouteMarkerTask(target *recipe.RecipeTarget) *craftRouteMarkerTask {
	t := &craftRouteMarkerTask{target: target}
	t.Node = task.NewNode(t, "craft-route-marker")
	return t
}

func (t *craftRouteMarkerTask) OnStart()                  {}
func (t *craftRouteMarkerTask) OnTick() task.Task         { return nil }
func (t *craftRouteMarkerTask) OnStop(interrupt task.Task) {}
func (t *craftRouteMarkerTask) IsFinished() bool           { return true }
func (t *craftRouteMarkerTask) IsEqual(other task.Task) bool {
	_, ok := other.(*craftRouteMarkerTask)
	return ok
}

type acquisitionFallbackContext struct {
	agent     *demo.SimAgent
	catalogue *acquisition.Catalogue
	result    task.Task
}

func (ac *acquisitionFallbackContext) reset() {
	ac.agent = demo.NewSimAgent()
	ac.catalogue = acquisition.NewCatalogue(ac.agent,
		func(ag agent.Agent, target *recipe.RecipeTarget) task.Task { return newCraftRouteMarkerTask(target) },
		nil, nil)
	ac.result = nil
}

func (ac *acquisitionFallbackContext) aCatalogueWithACustomProviderForThatAlwaysDeclines(name string) error {
	ac.catalogue.RegisterProvider(name, func(ag agent.Agent, count int) (task.Task, bool) {
		return nil, false
	})
	return nil
}

func (ac *acquisitionFallbackContext) theCatalogueHasACraftingRecipeFor(name string) error {
	ingredients := []*recipe.ItemTarget{recipe.NewItemTarget(1, "stick"), recipe.NewItemTarget(1, "coal")}
	r, err := recipe.NewRecipe(name, 1, 1, 2, false, ingredients, name)
	if err != nil {
		return err
	}
	ac.catalogue.RegisterRecipe(r)
	return nil
}

func (ac *acquisitionFallbackContext) iAskTheCatalogueForN(count int, name string) error {
	ac.result = ac.catalogue.GetItemTask(name, count)
	return nil
}

func (ac *acquisitionFallbackContext) theCatalogueShouldReturnTheCraftingSubtreeFor(name string) error {
	marker, ok := ac.result.(*craftRouteMarkerTask)
	if !ok {
		return fmt.Errorf("expected the catalogue to fall through to the crafting route for %q", name)
	}
	if marker.target.Recipe.ResultName != name {
		return fmt.Errorf("expected the crafting route for %q but got %q", name, marker.target.Recipe.ResultName)
	}
	return nil
}

// InitializeAcquisitionFallbackScenario registers the catalogue
// custom-provider-decline-falls-through steps.
func InitializeAcquisitionFallbackScenario(sc *godog.ScenarioContext) {
	ac := &acquisitionFallbackContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		ac.reset()
		return ctx, nil
	})

	sc.Step(`^a catalogue with a custom provider for "([^"]*)" that always declines$`, ac.aCatalogueWithACustomProviderForThatAlwaysDeclines)
	sc.Step(`^the catalogue has a crafting recipe for "([^"]*)"$`, ac.theCatalogueHasACraftingRecipeFor)
	sc.Step(`^I ask the catalogue for (\d+) "([^"]*)"$`, ac.iAskTheCatalogueForN)
	sc.Step(`^the catalogue should return the crafting subtree for "([^"]*)"$`, ac.theCatalogueShouldReturnTheCraftingSubtreeFor)
}
