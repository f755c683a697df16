package cli

import (
	"github.com/andrescamacho/taskengine-go/internal/adapters/demo"
	"github.com/andrescamacho/taskengine-go/internal/application/chains"
	"github.com/andrescamacho/taskengine-go/internal/application/tasks"
	"github.com/andrescamacho/taskengine-go/internal/domain/acquisition"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/chain"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
	"github.com/andrescamacho/taskengine-go/internal/infrastructure/config"
)

// Engine bundles a Runner with the scripted agent and acquisition
// catalogue driving it, the whole stack the CLI needs to set goals
// and report status without a live game connection.
type Engine struct {
	Runner    *chain.Runner
	Agent     *demo.SimAgent
	Catalogue *acquisition.Catalogue
	Tick      *demo.SimulatedTickSource
}

// NewDemoEngine builds a Runner wired against a scripted SimAgent: the
// built-in UserChain plus food, danger, fall-protection, and
// hazard-escape chains, and a Catalogue seeded with a minimal
// wood-tools recipe book so `goal set` has something to plan against.
func NewDemoEngine(cfg *config.EngineConfig) *Engine {
	ag := demo.NewSimAgent()

	cat := acquisition.NewCatalogue(ag, craftFactory, smeltFactory, mineFactory)
	seedRecipes(cat)

	runner := chain.NewRunner()
	runner.RegisterChain(chains.NewFoodChain(ag, cfg.HungerThreshold))
	runner.RegisterChain(chains.NewDangerChain(ag, cfg.HostileNames, cfg.CombatRadius, chains.PolicyFightIfWinnable))
	runner.RegisterChain(chains.NewFallProtectionChain(ag, cfg.FatalFallHeight, cfg.ThrowawayBlockName))
	runner.RegisterChain(chains.NewHazardEscapeChain(ag, cfg.HazardNames, cfg.HazardSearchRadius))

	ts := demo.NewSimulatedTickSource(cfg.TickRate, ag)

	return &Engine{Runner: runner, Agent: ag, Catalogue: cat, Tick: ts}
}

func craftFactory(ag agent.Agent, target *recipe.RecipeTarget) task.Task {
	return tasks.NewCraft(ag, target)
}

func smeltFactory(ag agent.Agent, r *recipe.SmeltingRecipe, count int) task.Task {
	return tasks.NewSmelt(ag, r, count)
}

func mineFactory(ag agent.Agent, itemName string, sourceBlocks []string, count int) task.Task {
	targets := []*recipe.ItemTarget{recipe.NewItemTarget(count, itemName)}
	sources := map[string][]string{itemName: sourceBlocks}
	return tasks.NewMineAndCollect(ag, targets, sources, 16)
}

// seedRecipes registers a small, self-contained recipe book so the
// demo catalogue can plan a few goals out of the box.
func seedRecipes(cat *acquisition.Catalogue) {
	cat.RegisterMineSource("log", []string{"oak_log", "birch_log", "spruce_log"})
	cat.RegisterMineSource("cobblestone", []string{"stone"})
	cat.RegisterMineSource("iron_ore", []string{"iron_ore"})

	planks, _ := recipe.NewRecipe("planks", 4, 1, 1, true,
		[]*recipe.ItemTarget{recipe.NewItemTarget(1, "log")}, "planks")
	cat.RegisterRecipe(planks)

	sticks, _ := recipe.NewRecipe("stick", 4, 1, 2, true,
		[]*recipe.ItemTarget{
			recipe.NewItemTarget(1, "planks"),
			recipe.NewItemTarget(1, "planks"),
		}, "stick")
	cat.RegisterRecipe(sticks)

	pickaxe, _ := recipe.NewRecipe("wooden_pickaxe", 1, 3, 3, false,
		[]*recipe.ItemTarget{
			recipe.NewItemTarget(1, "planks"),
			recipe.NewItemTarget(1, "planks"),
			recipe.NewItemTarget(1, "planks"),
			nil,
			recipe.NewItemTarget(1, "stick"),
			nil,
			nil,
			recipe.NewItemTarget(1, "stick"),
			nil,
		}, "wooden_pickaxe")
	cat.RegisterRecipe(pickaxe)
}
