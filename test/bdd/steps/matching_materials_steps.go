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

// rectangularDims picks a width*height grid matching exactly n slots,
// staying within the recipe model's 3x3 ceiling.
func rectangularDims(n int) (width, height int) {
	for w := 1; w <= 3; w++ {
		if n%w == 0 && n/w <= 3 {
			return w, n / w
		}
	}
	return n, 1
}

// conversionMarkerTask records which variant and amount a
// MatchingMaterialsPlanner asked to be converted, without needing the
// real logs-to-planks crafting subtree.
type conversionMarkerTask struct {
	*task.Node
	variant string
	amount  int
}

func newConversionMarkerTask(variant string, amount int) *conversionMarkerTask {
	t := &conversionMarkerTask{variant: variant, amount: amount}
	t.Node = task.NewNode(t, "conversion-marker")
	return t
}

func (t *conversionMarkerTask) OnStart()                  {}
func (t *conversionMarkerTask) OnTick() task.Task         { return nil }
func (t *conversionMarkerTask) OnStop(interrupt task.Task) {}
func (t *conversionMarkerTask) IsFinished() bool           { return true }
func (t *conversionMarkerTask) IsEqual(other task.Task) bool {
	_, ok := other.(*conversionMarkerTask)
	return ok
}

type matchingMaterialsContext struct {
	agent       *demo.SimAgent
	family      []string
	sourceLog   map[string]string // variant -> log name it derives from
	perLog      int
	resultCount int
	k           int
	plan        task.Task
}

func (mc *matchingMaterialsContext) reset() {
	mc.agent = demo.NewSimAgent()
	mc.family = nil
	mc.sourceLog = make(map[string]string)
	mc.perLog = 4
	mc.resultCount = 1
	mc.k = 0
	mc.plan = nil
}

func (mc *matchingMaterialsContext) anInventoryHoldingAndOakLog(oakPlanks int, birchPlanks int, oakLog int) error {
	mc.agent.AddItem("oak_planks", oakPlanks)
	mc.agent.AddItem("birch_planks", birchPlanks)
	mc.agent.AddItem("oak_log", oakLog)
	mc.sourceLog["oak_planks"] = "oak_log"
	return nil
}

func (mc *matchingMaterialsContext) aFenceRecipeNeedingMatchingPlanksPerCraftWithAResultCountOf(k, resultCount int) error {
	mc.k = k
	mc.resultCount = resultCount
	return nil
}

func (mc *matchingMaterialsContext) thePlankFamilyIsEnumeratedAs(a, b, c string) error {
	mc.family = []string{a, b, c}
	return nil
}

func (mc *matchingMaterialsContext) oakPlanksCanBeDerivedFromOakLogsAtPlanksPerLog(perLog int) error {
	mc.perLog = perLog
	return nil
}

func (mc *matchingMaterialsContext) iPlanTheFenceForATargetCountOf(target int) error {
	ingredients := make([]*recipe.ItemTarget, mc.k)
	sameMask := make([]bool, mc.k)
	for i := range ingredients {
		ingredients[i] = recipe.NewItemTarget(1, "same")
		sameMask[i] = true
	}
	width, height := rectangularDims(mc.k)
	base, err := recipe.NewRecipe("fence", mc.resultCount, width, height, false, ingredients, "fence")
	if err != nil {
		return err
	}

	planner := &acquisition.MatchingMaterialsPlanner{
		TargetCount: target,
		BaseRecipe:  base,
		SameMask:    sameMask,
		Family:      mc.family,
		TrueCount: func(ag agent.Agent, variant string) int {
			return (&recipe.ItemTarget{AcceptableNames: []string{variant}, ExactMatch: true}).CountIn(ag.InventoryItems())
		},
		DerivedCount: func(ag agent.Agent, variant string) int {
			logName, ok := mc.sourceLog[variant]
			if !ok {
				return 0
			}
			logCount := (&recipe.ItemTarget{AcceptableNames: []string{logName}, ExactMatch: true}).CountIn(ag.InventoryItems())
			return logCount * mc.perLog
		},
		Have: func(ag agent.Agent) int { return 0 },
		ConversionTask: func(ag agent.Agent, variant string, amount int) task.Task {
			return newConversionMarkerTask(variant, amount)
		},
		CollectMoreTask: func(ag agent.Agent) task.Task {
			return newConversionMarkerTask("", 0)
		},
		CraftTaskFactory: func(ag agent.Agent, concrete *recipe.Recipe, t *recipe.RecipeTarget) task.Task {
			return newConversionMarkerTask(concrete.ResultName+"-craft", t.DesiredOutputCount)
		},
	}

	mc.plan = planner.Plan(mc.agent)
	return nil
}

func (mc *matchingMaterialsContext) thePlanShouldBeAConversionOfBy(variant string, amount int) error {
	marker, ok := mc.plan.(*conversionMarkerTask)
	if !ok {
		return fmt.Errorf("expected a conversion marker task")
	}
	if marker.variant != variant || marker.amount != amount {
		return fmt.Errorf("expected conversion of %q by %d but got %q by %d", variant, amount, marker.variant, marker.amount)
	}
	return nil
}

// InitializeMatchingMaterialsScenario registers the matching-materials
// majority-selection steps.
func InitializeMatchingMaterialsScenario(sc *godog.ScenarioContext) {
	mc := &matchingMaterialsContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	sc.Step(`^an inventory holding (\d+) "oak_planks", (\d+) "birch_planks", and (\d+) "oak_log"$`, mc.anInventoryHoldingAndOakLog)
	sc.Step(`^a fence recipe needing (\d+) matching planks per craft with a result count of (\d+)$`, mc.aFenceRecipeNeedingMatchingPlanksPerCraftWithAResultCountOf)
	sc.Step(`^the plank family is enumerated as "([^"]*)", "([^"]*)", "([^"]*)"$`, mc.thePlankFamilyIsEnumeratedAs)
	sc.Step(`^oak planks can be derived from oak logs at (\d+) planks per log$`, mc.oakPlanksCanBeDerivedFromOakLogsAtPlanksPerLog)
	sc.Step(`^I plan the fence for a target count of (\d+)$`, mc.iPlanTheFenceForATargetCountOf)
	sc.Step(`^the plan should be a conversion of "([^"]*)" by (\d+)$`, mc.thePlanShouldBeAConversionOfBy)
}
