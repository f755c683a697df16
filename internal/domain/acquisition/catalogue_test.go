package acquisition_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/taskengine-go/internal/domain/acquisition"
	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
	"github.com/andrescamacho/taskengine-go/internal/domain/recipe"
	"github.com/andrescamacho/taskengine-go/internal/domain/task"
)

// stubTask is the simplest possible task.Task double, used only as an
// opaque sentinel returned by factories under test.
type stubTask struct {
	name string
}

func (s *stubTask) OnStart()                     {}
func (s *stubTask) OnTick() task.Task            { return nil }
func (s *stubTask) OnStop(interrupt task.Task)   {}
func (s *stubTask) IsFinished() bool             { return false }
func (s *stubTask) IsEqual(other task.Task) bool { return s == other }
func (s *stubTask) DisplayName() string          { return s.name }
func (s *stubTask) ID() uuid.UUID                { return uuid.Nil }
func (s *stubTask) Tick()                        {}
func (s *stubTask) Stop(interrupt task.Task)     {}
func (s *stubTask) Reset()                       {}
func (s *stubTask) IsActive() bool               { return true }
func (s *stubTask) IsStopped() bool              { return false }
func (s *stubTask) CurrentSubtask() task.Task    { return nil }
func (s *stubTask) TaskChainString() string      { return s.name }

func newCatalogue() *acquisition.Catalogue {
	craft := func(ag agent.Agent, target *recipe.RecipeTarget) task.Task {
		return &stubTask{name: "craft:" + target.Recipe.ResultName}
	}
	smelt := func(ag agent.Agent, r *recipe.SmeltingRecipe, count int) task.Task {
		return &stubTask{name: "smelt:" + r.OutputName}
	}
	mine := func(ag agent.Agent, itemName string, sourceBlocks []string, count int) task.Task {
		return &stubTask{name: "mine:" + itemName}
	}
	return acquisition.NewCatalogue(nil, craft, smelt, mine)
}

func TestCatalogue_GetItemTask_LookupOrderCustomBeatsEverything(t *testing.T) {
	cat := newCatalogue()
	cat.RegisterProvider("stick", func(ag agent.Agent, count int) (task.Task, bool) {
		return &stubTask{name: "custom:stick"}, true
	})
	r, err := recipe.NewRecipe("stick", 4, 1, 2, false, []*recipe.ItemTarget{
		recipe.NewItemTarget(2, "planks"), recipe.NewItemTarget(2, "planks"),
	}, "stick")
	require.NoError(t, err)
	cat.RegisterRecipe(r)

	result := cat.GetItemTask("stick", 4)

	require.NotNil(t, result)
	assert.Equal(t, "custom:stick", result.DisplayName())
}

func TestCatalogue_GetItemTask_ProviderDeclineFallsThroughToCraft(t *testing.T) {
	cat := newCatalogue()
	cat.RegisterProvider("stick", func(ag agent.Agent, count int) (task.Task, bool) {
		return nil, false
	})
	r, err := recipe.NewRecipe("stick", 4, 1, 2, false, []*recipe.ItemTarget{
		recipe.NewItemTarget(2, "planks"), recipe.NewItemTarget(2, "planks"),
	}, "stick")
	require.NoError(t, err)
	cat.RegisterRecipe(r)

	result := cat.GetItemTask("stick", 4)

	require.NotNil(t, result)
	assert.Equal(t, "craft:stick", result.DisplayName())
}

func TestCatalogue_GetItemTask_SmeltBeatsMine(t *testing.T) {
	cat := newCatalogue()
	cat.RegisterMineSource("iron_ingot", []string{"iron_ore"})
	cat.RegisterSmeltingRecipe(recipe.NewSmeltingRecipe(recipe.NewItemTarget(1, "iron_ore"), "iron_ingot", 1))

	result := cat.GetItemTask("iron_ingot", 1)
	require.NotNil(t, result)
	assert.Equal(t, "smelt:iron_ingot", result.DisplayName())

	method, ok := cat.GetAcquisitionMethod("iron_ingot")
	require.True(t, ok)
	assert.Equal(t, acquisition.MethodSmelt, method)
}

func TestCatalogue_GetItemTask_UnregisteredReturnsNil(t *testing.T) {
	cat := newCatalogue()
	assert.Nil(t, cat.GetItemTask("bedrock", 1))
	assert.False(t, cat.CanObtain("bedrock"))
}

func TestCatalogue_GetItemTargetTask_PrefersFirstObtainableName(t *testing.T) {
	cat := newCatalogue()
	cat.RegisterMineSource("oak_log", []string{"oak_log"})

	target := recipe.NewItemTarget(1, "bedrock", "oak_log")
	result := cat.GetItemTargetTask(target)

	require.NotNil(t, result)
	assert.Equal(t, "mine:oak_log", result.DisplayName())
}

func TestCatalogue_ObtainableItems_IsSortedUnionAcrossAllSources(t *testing.T) {
	cat := newCatalogue()
	cat.RegisterMineSource("zzz", []string{"zzz_ore"})
	cat.RegisterProvider("aaa", func(ag agent.Agent, count int) (task.Task, bool) { return nil, false })
	cat.RegisterSmeltingRecipe(recipe.NewSmeltingRecipe(recipe.NewItemTarget(1, "ore"), "mmm", 1))

	items := cat.ObtainableItems()

	assert.Equal(t, []string{"aaa", "mmm", "zzz"}, items)
}

func TestCatalogue_DependencyTree_BreaksCycles(t *testing.T) {
	cat := newCatalogue()
	a, err := recipe.NewRecipe("a", 1, 1, 1, false, []*recipe.ItemTarget{
		recipe.NewItemTarget(1, "b"),
	}, "a")
	require.NoError(t, err)
	b, err := recipe.NewRecipe("b", 1, 1, 1, false, []*recipe.ItemTarget{
		recipe.NewItemTarget(1, "a"),
	}, "b")
	require.NoError(t, err)
	cat.RegisterRecipe(a)
	cat.RegisterRecipe(b)

	tree := cat.DependencyTree("a")

	require.NotNil(t, tree)
	assert.Equal(t, "a", tree.Item)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, "b", tree.Children[0].Item)
	// b depends on a again, but a is already visited on this path so
	// the recursion must terminate instead of looping forever.
	require.Len(t, tree.Children[0].Children, 1)
	assert.Empty(t, tree.Children[0].Children[0].Children)
}
