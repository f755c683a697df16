// Package acquisition implements the item acquisition catalogue: the
// recursive mapping from a desired item to the subtree that obtains it
// (custom / craft / smelt / mine).
//
// The catalogue only decides *which route* obtains an item; it never
// constructs a concrete leaf task itself. Building the actual
// task.Task for a craft/smelt/mine route is delegated to factory
// functions supplied at construction (CraftTaskFactory,
// SmeltTaskFactory, MineTaskFactory). This keeps the dependency arrow
// pointing the right way: domain/acquisition depends only on
// domain/task and domain/recipe, never on the concrete leaf
// implementations in internal/application/tasks, which instead depend
// on (and are wired into) this package. It mirrors how the teacher's
// domain/manufacturing package takes a ConstructionSite and priority
// calculator as collaborators rather than constructing application
// types inline.
package acquisition

import (
	"sort"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// Method identifies which of the four routes satisfied a lookup.
type Method string

const (
	MethodCustom Method = "custom"
	MethodCraft  Method = "craft"
	MethodSmelt  Method = "smelt"
	MethodMine   Method = "mine"
)

// CustomProvider attempts to produce a task for count of name. Per
// spec §4.5 and scenario S5, returning ok=false means "cannot provide"
// and the catalogue falls through to the next route rather than
// treating the provider as authoritative.
type CustomProvider func(ag agent.Agent, count int) (t task.Task, ok bool)

// CraftTaskFactory builds the crafting subtree for a recipe target.
type CraftTaskFactory func(ag agent.Agent, target *recipe.RecipeTarget) task.Task

// SmeltTaskFactory builds the smelting subtree for a smelting recipe.
type SmeltTaskFactory func(ag agent.Agent, r *recipe.SmeltingRecipe, count int) task.Task

// MineTaskFactory builds a MineAndCollect subtree for an item mineable
// from the given source block names.
type MineTaskFactory func(ag agent.Agent, itemName string, sourceBlocks []string, count int) task.Task

// Catalogue is the item-name -> obtaining-subtree router.
type Catalogue struct {
	agent agent.Agent

	customProviders map[string]CustomProvider
	craftRecipes    map[string]*recipe.Recipe
	smeltRecipes    map[string]*recipe.SmeltingRecipe
	mineSources     map[string][]string

	craftFactory CraftTaskFactory
	smeltFactory SmeltTaskFactory
	mineFactory  MineTaskFactory
}

// NewCatalogue constructs an empty catalogue bound to ag, with the
// three route factories injected at construction per spec §9's
// "inject static tables rather than process-wide mutable state" note.
func NewCatalogue(ag agent.Agent, craftFactory CraftTaskFactory, smeltFactory SmeltTaskFactory, mineFactory MineTaskFactory) *Catalogue {
	return &Catalogue{
		agent:           ag,
		customProviders: make(map[string]CustomProvider),
		craftRecipes:    make(map[string]*recipe.Recipe),
		smeltRecipes:    make(map[string]*recipe.SmeltingRecipe),
		mineSources:     make(map[string][]string),
		craftFactory:    craftFactory,
		smeltFactory:    smeltFactory,
		mineFactory:     mineFactory,
	}
}

// RegisterProvider installs a custom provider for name.
func (c *Catalogue) RegisterProvider(name string, p CustomProvider) {
	c.customProviders[name] = p
}

// UnregisterProvider removes name's custom provider, if any.
func (c *Catalogue) UnregisterProvider(name string) {
	delete(c.customProviders, name)
}

// RegisterRecipe makes r available as the craft route for its result.
func (c *Catalogue) RegisterRecipe(r *recipe.Recipe) {
	c.craftRecipes[r.ResultName] = r
}

// RegisterSmeltingRecipe makes r available as the smelt route for its output.
func (c *Catalogue) RegisterSmeltingRecipe(r *recipe.SmeltingRecipe) {
	c.smeltRecipes[r.OutputName] = r
}

// RegisterMineSource makes itemName minable from any of blocks.
func (c *Catalogue) RegisterMineSource(itemName string, blocks []string) {
	c.mineSources[itemName] = blocks
}

// GetItemTask produces a subtree that deposits at least count of name
// into the agent's inventory, following the custom -> craft -> smelt
// -> mine lookup order (spec §4.5, first match wins). Returns nil if
// name is unobtainable through any registered route.
func (c *Catalogue) GetItemTask(name string, count int) task.Task {
	if p, ok := c.customProviders[name]; ok {
		if t, provided := p(c.agent, count); provided {
			return t
		}
	}
	if r, ok := c.craftRecipes[name]; ok {
		return c.craftFactory(c.agent, recipe.NewRecipeTarget(r, count))
	}
	if sr, ok := c.smeltRecipes[name]; ok {
		return c.smeltFactory(c.agent, sr, count)
	}
	if blocks, ok := c.mineSources[name]; ok {
		return c.mineFactory(c.agent, name, blocks, count)
	}
	return nil
}

// GetItemTargetTask resolves a task for any of target's acceptable
// names, preferring the first one (in target's own order) that is
// obtainable.
func (c *Catalogue) GetItemTargetTask(target *recipe.ItemTarget) task.Task {
	for _, name := range target.AcceptableNames {
		if t := c.GetItemTask(name, target.TargetCount); t != nil {
			return t
		}
	}
	return nil
}

// CanObtain reports whether name has a registered route of any kind.
// A custom provider counts as a route regardless of what it returns at
// call time, since "no route registered" and "provider declined this
// call" are different questions; GetItemTask handles the latter.
func (c *Catalogue) CanObtain(name string) bool {
	_, method := c.method(name)
	return method != ""
}

// GetAcquisitionMethod reports which route would be consulted first
// for name (spec §8 invariant 16), or ok=false if none is registered.
func (c *Catalogue) GetAcquisitionMethod(name string) (Method, bool) {
	return c.method(name)
}

func (c *Catalogue) method(name string) (Method, bool) {
	if _, ok := c.customProviders[name]; ok {
		return MethodCustom, true
	}
	if _, ok := c.craftRecipes[name]; ok {
		return MethodCraft, true
	}
	if _, ok := c.smeltRecipes[name]; ok {
		return MethodSmelt, true
	}
	if _, ok := c.mineSources[name]; ok {
		return MethodMine, true
	}
	return "", false
}

// ObtainableItems returns the sorted union of every item name
// registered across all four sources (spec §8 invariant 17).
func (c *Catalogue) ObtainableItems() []string {
	seen := make(map[string]struct{})
	for name := range c.customProviders {
		seen[name] = struct{}{}
	}
	for name := range c.craftRecipes {
		seen[name] = struct{}{}
	}
	for name := range c.smeltRecipes {
		seen[name] = struct{}{}
	}
	for name := range c.mineSources {
		seen[name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
