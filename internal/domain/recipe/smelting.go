package recipe

// SmeltingRecipe describes a furnace recipe: an acceptable input
// target, the output it produces, and optionally a restricted fuel
// set (nil means any registered fuel is acceptable).
type SmeltingRecipe struct {
	AcceptableInputs *ItemTarget
	OutputName       string
	OutputCount      int
	FuelSet          []string
}

// NewSmeltingRecipe constructs a SmeltingRecipe with no fuel restriction.
func NewSmeltingRecipe(input *ItemTarget, outputName string, outputCount int) *SmeltingRecipe {
	return &SmeltingRecipe{AcceptableInputs: input, OutputName: outputName, OutputCount: outputCount}
}

// FuelBurnTicks is the fuel burn-time table (in game-ticks, 20/second)
// consulted for count-planning only — never for real-time timing, which
// is polled from the agent's furnace state instead. It is a
// package-level map of vanilla-Minecraft values that ItemsPerSmelt and
// BestFuel read directly; the catalogue neither receives nor holds it.
var FuelBurnTicks = map[string]int{
	"coal":            1600,
	"charcoal":        1600,
	"coal_block":      16000,
	"lava_bucket":     20000,
	"blaze_rod":       2400,
	"stick":           100,
	"planks":          300,
	"oak_planks":      300,
	"birch_planks":    300,
	"spruce_planks":   300,
	"jungle_planks":   300,
	"acacia_planks":   300,
	"dark_oak_planks": 300,
	"crimson_planks":  300,
	"warped_planks":   300,
}

// ItemsPerSmelt is how many smelts one burning fuel item sustains
// given its burn time and the per-item smelt duration (200 ticks).
func ItemsPerSmelt(fuelName string) int {
	ticks, ok := FuelBurnTicks[fuelName]
	if !ok {
		return 0
	}
	return ticks / 200
}

// BestFuel returns the highest-burn-time fuel name present in
// available (a multiset expressed as name->count), restricted to
// recipe's FuelSet when non-empty, or false if none qualifies.
func (s *SmeltingRecipe) BestFuel(available map[string]int) (string, bool) {
	best := ""
	bestTicks := -1
	for name, count := range available {
		if count <= 0 {
			continue
		}
		if len(s.FuelSet) > 0 && !containsName(s.FuelSet, name) {
			continue
		}
		ticks, ok := FuelBurnTicks[name]
		if !ok {
			continue
		}
		if ticks > bestTicks {
			bestTicks = ticks
			best = name
		}
	}
	return best, bestTicks >= 0
}

func containsName(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
