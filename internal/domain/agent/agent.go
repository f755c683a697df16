// Package agent defines the narrow surface the task engine reads and
// writes on the game agent it drives. It is the §6 external-interfaces
// contract: pathfinding, block digging/placement arithmetic, and
// minecraft-data tables live behind this interface and are never
// implemented by the core.
package agent

// Vector3 is a floating-point 3-space position or velocity.
type Vector3 struct {
	X, Y, Z float64
}

// Sub returns a-b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// BoundingBoxKind categorizes a block's collision shape.
type BoundingBoxKind int

const (
	BoundingBoxEmpty BoundingBoxKind = iota
	BoundingBoxBlock
	BoundingBoxUnknown
)

// Block is a read-only snapshot of a world block.
type Block struct {
	Name        string
	Position    Vector3
	BoundingBox BoundingBoxKind
}

// IsAir reports whether the block is empty (air-like).
func (b Block) IsAir() bool {
	return b.BoundingBox == BoundingBoxEmpty
}

// Entity is a read-only snapshot of a known entity.
type Entity struct {
	ID            string
	Name          string
	Position      Vector3
	Velocity      Vector3
	IsValid       bool
	IsDroppedItem bool
}

// InventoryItem is a read-only snapshot of a held item stack.
type InventoryItem struct {
	Name      string
	Count     int
	Slot      int
	StackSize int
}

// RecipeHandle is an opaque minecraft-data recipe handle, passed through
// to Craft without interpretation by the core.
type RecipeHandle interface{}

// WindowHandle is an opaque open-window handle (crafting table, furnace, ...).
type WindowHandle interface{}

// Agent is the full surface the task engine consumes. Any adapter that
// satisfies this interface can drive the engine; the core never reaches
// around it into a concrete game client.
type Agent interface {
	// Spatial
	Position() Vector3
	Velocity() Vector3
	Yaw() float64
	OnGround() bool
	InWater() bool
	// IsOnClimbable reports whether the agent currently occupies a
	// climbable block (ladder, vine, ...). Implemented by the adapter so
	// the core never embeds block-name heuristics (see DESIGN.md).
	IsOnClimbable() bool
	BlockAt(pos Vector3) (Block, bool)
	BlockAtCursor(rangeBlocks float64) (Block, bool)
	// FindNearestBlock scans outward from the agent for the closest
	// block whose name is in names, within radius blocks. This is the
	// one spatial-search primitive the core leans on (MineAndCollect,
	// hazard/fall leaves); everything else about pathfinding stays
	// behind NavigateToward, out of the core's concern per §1.
	FindNearestBlock(names []string, from Vector3, radius float64) (Block, bool)
	Entities() map[string]Entity
	Dimension() string

	// Inventory
	InventoryItems() []InventoryItem
	SlotRange(from, to int) []InventoryItem
	ArmorSlot(index int) (InventoryItem, bool)
	OffhandSlot() (InventoryItem, bool)
	FirstEmptyInventorySlot() (int, bool)
	HeldItem() (InventoryItem, bool)

	// Actuators (all non-blocking from the core's perspective)
	SetControlState(name string, active bool)
	ClearControlStates()
	Look(yaw, pitch float64)
	LookAt(pos Vector3)
	Dig(block Block) error
	StopDigging()
	PlaceBlock(itemName string, against Block, face Vector3) error
	ActivateBlock(block Block) error
	ActivateItem() error
	Equip(itemName string, slot string) error
	Attack(entityID string) error
	TossStack(item InventoryItem) error
	ClickWindow(slot int, button int, action string) error
	CurrentWindow() (WindowHandle, bool)
	CloseWindow(window WindowHandle) error
	Craft(recipe RecipeHandle, count int, table *Block) error

	// Navigation (out of core scope; the leaf only decides a destination
	// and polls for arrival, per §5's "long operations are polled" rule)
	NavigateToward(pos Vector3) (arrived bool, err error)

	// Survival state, consumed by the automatic-eating and
	// hazard-escape chains
	Hunger() float64
	Saturation() float64

	// Clock
	TickAge() int64

	// Recipe data (read-only lookup; treated opaque by the core)
	ItemID(name string) (int, bool)
	RecipesFor(itemID int, meta int, minCount int, requiresTable bool) []RecipeHandle
}

// GroundedOrSafe implements the engine's "grounded-or-safe" predicate:
// on ground, in water, or standing on a climbable block.
func GroundedOrSafe(a Agent) bool {
	return a.OnGround() || a.InWater() || a.IsOnClimbable()
}
