package config

import "time"

// EngineConfig holds the tunables that shape how the task engine
// perceives and reacts to the world: how often it ticks, how far its
// spatial searches reach, and how long its state machines wait.
type EngineConfig struct {
	// Ticks per second for the demo.SimulatedTickSource that both
	// cmd/taskengine-cli and cmd/taskengine-daemon drive the Runner with.
	TickRate int `mapstructure:"tick_rate" validate:"min=1,max=100"`

	// SearchRadius is a radius for locating crafting tables, furnaces,
	// ore, and beds. No component reads it; the tasks use their own
	// fixed radii.
	SearchRadius float64 `mapstructure:"search_radius" validate:"min=1"`

	// PickupRadius is a chase radius for dropped item entities. No
	// component reads it; MineAndCollect and Pickup use their own radii.
	PickupRadius float64 `mapstructure:"pickup_radius" validate:"min=1"`

	// CombatRadius bounds DangerChain's threat detection and FightTask's engage range.
	CombatRadius float64 `mapstructure:"combat_radius" validate:"min=1"`

	// HazardSearchRadius bounds EscapeHazardTask's safe-spot search.
	HazardSearchRadius float64 `mapstructure:"hazard_search_radius" validate:"min=1"`

	// FatalFallHeight is the number of blocks of unbroken air below the
	// agent that FallProtectionChain treats as a fatal drop.
	FatalFallHeight float64 `mapstructure:"fatal_fall_height" validate:"min=1"`

	// HungerThreshold is the hunger level below which FoodChain activates.
	HungerThreshold float64 `mapstructure:"hunger_threshold" validate:"min=0,max=20"`

	// CraftCooldownTicks and SmeltCooldownTicks are pauses between
	// crafting/furnace attempts. No component reads them; Craft and
	// Smelt use their own 10-tick constants.
	CraftCooldownTicks int `mapstructure:"craft_cooldown_ticks" validate:"min=1"`
	SmeltCooldownTicks int `mapstructure:"smelt_cooldown_ticks" validate:"min=1"`

	// BedSleepWaitTicks is a wait bound for sleeping in a bed. No
	// component reads it; PlaceBedAndSetSpawn uses its own constant.
	BedSleepWaitTicks int `mapstructure:"bed_sleep_wait_ticks" validate:"min=1"`

	// GolemWaitTimeoutTicks is a wait bound for an iron golem to spawn.
	// No component reads it; ConstructIronGolem uses its own constant.
	GolemWaitTimeoutTicks int `mapstructure:"golem_wait_timeout_ticks" validate:"min=1"`

	// ThrowawayBlockName is the block FallProtectionChain places underfoot.
	ThrowawayBlockName string `mapstructure:"throwaway_block_name" validate:"required"`

	// HazardNames and HostileNames feed HazardEscapeChain and DangerChain.
	HazardNames  []string `mapstructure:"hazard_names"`
	HostileNames []string `mapstructure:"hostile_names"`

	// TickTimeout is a time budget for a single Runner.Tick. No
	// component reads it; slow ticks are not detected or logged.
	TickTimeout time.Duration `mapstructure:"tick_timeout" validate:"required"`
}
