// Package demo provides an in-memory agent.Agent and chain.TickSource
// implementation for exercising the task engine without a live game
// connection: a scripted voxel world plus a fixed-rate ticker, used by
// cmd/taskengine-cli.
package demo

import (
	"fmt"
	"math"

	"github.com/andrescamacho/taskengine-go/internal/domain/agent"
)

type recipeHandle struct {
	Recipe        string
	RequiresTable bool
}

// SimAgent is a scripted, in-memory stand-in for a live game
// connection: a sparse block map, an entity table, and a flat
// inventory slice, all mutated directly by test and demo code instead
// of a network protocol.
type SimAgent struct {
	pos      agent.Vector3
	vel      agent.Vector3
	yaw      float64
	onGround bool
	inWater  bool
	onClimb  bool
	dimension string

	blocks    map[agent.Vector3]agent.Block
	entities  map[string]agent.Entity
	inventory []agent.InventoryItem
	armor     [4]agent.InventoryItem
	hasArmor  [4]bool
	offhand   agent.InventoryItem
	hasOffhand bool

	hunger     float64
	saturation float64
	tickAge    int64

	knownItems map[string]int
	recipes    map[int][]agent.RecipeHandle

	window agent.WindowHandle
}

// NewSimAgent constructs an agent at the origin with an empty world,
// full hunger, and no inventory.
func NewSimAgent() *SimAgent {
	return &SimAgent{
		dimension:  "overworld",
		blocks:     make(map[agent.Vector3]agent.Block),
		entities:   make(map[string]agent.Entity),
		knownItems: make(map[string]int),
		recipes:    make(map[int][]agent.RecipeHandle),
		hunger:     20,
		saturation: 5,
		onGround:   true,
	}
}

// SetBlock places or clears a block in the scripted world.
func (s *SimAgent) SetBlock(pos agent.Vector3, name string) {
	if name == "" || name == "air" {
		s.blocks[pos] = agent.Block{Name: "air", Position: pos, BoundingBox: agent.BoundingBoxEmpty}
		return
	}
	s.blocks[pos] = agent.Block{Name: name, Position: pos, BoundingBox: agent.BoundingBoxBlock}
}

// SetEntity inserts or updates a scripted entity.
func (s *SimAgent) SetEntity(e agent.Entity) { s.entities[e.ID] = e }

// RemoveEntity deletes a scripted entity (picked up, killed, despawned).
func (s *SimAgent) RemoveEntity(id string) { delete(s.entities, id) }

// AddItem increments count of name in inventory, creating a slot if needed.
func (s *SimAgent) AddItem(name string, count int) {
	for i := range s.inventory {
		if s.inventory[i].Name == name {
			s.inventory[i].Count += count
			return
		}
	}
	s.inventory = append(s.inventory, agent.InventoryItem{
		Name: name, Count: count, Slot: len(s.inventory), StackSize: 64,
	})
}

// RemoveItem decrements count of name, dropping the slot at zero.
func (s *SimAgent) RemoveItem(name string, count int) {
	for i := range s.inventory {
		if s.inventory[i].Name == name {
			s.inventory[i].Count -= count
			if s.inventory[i].Count <= 0 {
				s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
			}
			return
		}
	}
}

// SetPosition teleports the scripted agent.
func (s *SimAgent) SetPosition(p agent.Vector3) { s.pos = p }

// SetHunger overrides the scripted hunger/saturation pair.
func (s *SimAgent) SetHunger(hunger, saturation float64) {
	s.hunger, s.saturation = hunger, saturation
}

// SetGrounded overrides the scripted on-ground/in-water/on-climbable
// triple, letting tests script an airborne agent.
func (s *SimAgent) SetGrounded(onGround, inWater, onClimbable bool) {
	s.onGround, s.inWater, s.onClimb = onGround, inWater, onClimbable
}

// RegisterItem assigns name a stable numeric item ID for RecipesFor lookups.
func (s *SimAgent) RegisterItem(name string, id int) { s.knownItems[name] = id }

// RegisterRecipe associates a craftable recipe name with an item ID.
func (s *SimAgent) RegisterRecipe(itemID int, recipeName string, requiresTable bool) {
	s.recipes[itemID] = append(s.recipes[itemID], recipeHandle{Recipe: recipeName, RequiresTable: requiresTable})
}

func (s *SimAgent) Position() agent.Vector3 { return s.pos }
func (s *SimAgent) Velocity() agent.Vector3 { return s.vel }
func (s *SimAgent) Yaw() float64            { return s.yaw }
func (s *SimAgent) OnGround() bool          { return s.onGround }
func (s *SimAgent) InWater() bool           { return s.inWater }
func (s *SimAgent) IsOnClimbable() bool     { return s.onClimb }
func (s *SimAgent) Dimension() string       { return s.dimension }

func (s *SimAgent) BlockAt(pos agent.Vector3) (agent.Block, bool) {
	b, ok := s.blocks[roundVec(pos)]
	if !ok {
		return agent.Block{Name: "air", Position: pos, BoundingBox: agent.BoundingBoxEmpty}, true
	}
	return b, true
}

func (s *SimAgent) BlockAtCursor(rangeBlocks float64) (agent.Block, bool) {
	target := agent.Vector3{X: s.pos.X, Y: s.pos.Y, Z: s.pos.Z + 1}
	return s.BlockAt(target)
}

func (s *SimAgent) FindNearestBlock(names []string, from agent.Vector3, radius float64) (agent.Block, bool) {
	best := agent.Block{}
	bestDist := math.MaxFloat64
	found := false
	for pos, b := range s.blocks {
		if b.IsAir() || !stringIn(names, b.Name) {
			continue
		}
		d := from.Sub(pos)
		dist := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
		if dist <= radius && dist < bestDist {
			best, bestDist, found = b, dist, true
		}
	}
	return best, found
}

func (s *SimAgent) Entities() map[string]agent.Entity {
	out := make(map[string]agent.Entity, len(s.entities))
	for k, v := range s.entities {
		out[k] = v
	}
	return out
}

func (s *SimAgent) InventoryItems() []agent.InventoryItem {
	out := make([]agent.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

func (s *SimAgent) SlotRange(from, to int) []agent.InventoryItem {
	var out []agent.InventoryItem
	for _, it := range s.inventory {
		if it.Slot >= from && it.Slot < to {
			out = append(out, it)
		}
	}
	return out
}

func (s *SimAgent) ArmorSlot(index int) (agent.InventoryItem, bool) {
	if index < 0 || index >= len(s.armor) {
		return agent.InventoryItem{}, false
	}
	return s.armor[index], s.hasArmor[index]
}

func (s *SimAgent) OffhandSlot() (agent.InventoryItem, bool) { return s.offhand, s.hasOffhand }

func (s *SimAgent) FirstEmptyInventorySlot() (int, bool) {
	used := make(map[int]bool, len(s.inventory))
	for _, it := range s.inventory {
		used[it.Slot] = true
	}
	for i := 0; i < 36; i++ {
		if !used[i] {
			return i, true
		}
	}
	return 0, false
}

func (s *SimAgent) HeldItem() (agent.InventoryItem, bool) {
	if len(s.inventory) == 0 {
		return agent.InventoryItem{}, false
	}
	return s.inventory[0], true
}

func (s *SimAgent) SetControlState(name string, active bool) {}
func (s *SimAgent) ClearControlStates()                       {}
func (s *SimAgent) Look(yaw, pitch float64)                   { s.yaw = yaw }
func (s *SimAgent) LookAt(pos agent.Vector3)                  {}

func (s *SimAgent) Dig(block agent.Block) error {
	s.blocks[roundVec(block.Position)] = agent.Block{Name: "air", Position: block.Position, BoundingBox: agent.BoundingBoxEmpty}
	s.AddItem(block.Name, 1)
	return nil
}

func (s *SimAgent) StopDigging() {}

func (s *SimAgent) PlaceBlock(itemName string, against agent.Block, face agent.Vector3) error {
	target := agent.Vector3{X: against.Position.X + face.X, Y: against.Position.Y + face.Y, Z: against.Position.Z + face.Z}
	s.RemoveItem(itemName, 1)
	s.SetBlock(target, itemName)
	return nil
}

func (s *SimAgent) ActivateBlock(block agent.Block) error { return nil }
func (s *SimAgent) ActivateItem() error                   { return nil }
func (s *SimAgent) Equip(itemName string, slot string) error { return nil }

func (s *SimAgent) Attack(entityID string) error {
	e, ok := s.entities[entityID]
	if !ok {
		return fmt.Errorf("unknown entity %q", entityID)
	}
	e.IsValid = false
	s.entities[entityID] = e
	return nil
}

func (s *SimAgent) TossStack(item agent.InventoryItem) error {
	s.RemoveItem(item.Name, item.Count)
	return nil
}

func (s *SimAgent) ClickWindow(slot int, button int, action string) error { return nil }
func (s *SimAgent) CurrentWindow() (agent.WindowHandle, bool)             { return s.window, s.window != nil }
func (s *SimAgent) CloseWindow(window agent.WindowHandle) error          { s.window = nil; return nil }

func (s *SimAgent) Craft(recipe agent.RecipeHandle, count int, table *agent.Block) error {
	return nil
}

func (s *SimAgent) NavigateToward(pos agent.Vector3) (bool, error) {
	d := pos.Sub(s.pos)
	dist := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	if dist < 0.5 {
		s.pos = pos
		return true, nil
	}
	step := math.Min(1, dist)
	scale := step / dist
	s.pos = agent.Vector3{X: s.pos.X + d.X*scale, Y: s.pos.Y + d.Y*scale, Z: s.pos.Z + d.Z*scale}
	return false, nil
}

func (s *SimAgent) Hunger() float64     { return s.hunger }
func (s *SimAgent) Saturation() float64 { return s.saturation }
func (s *SimAgent) TickAge() int64      { return s.tickAge }

func (s *SimAgent) ItemID(name string) (int, bool) {
	id, ok := s.knownItems[name]
	return id, ok
}

func (s *SimAgent) RecipesFor(itemID int, meta int, minCount int, requiresTable bool) []agent.RecipeHandle {
	var out []agent.RecipeHandle
	for _, r := range s.recipes[itemID] {
		rh := r.(recipeHandle)
		if rh.RequiresTable == requiresTable || !requiresTable {
			out = append(out, r)
		}
	}
	return out
}

// AdvanceTick increments the scripted tick counter and lets hunger
// drain slowly, mirroring the game's own passive hunger decay.
func (s *SimAgent) AdvanceTick() {
	s.tickAge++
	if s.tickAge%1000 == 0 && s.hunger > 0 {
		s.hunger--
	}
}

func roundVec(v agent.Vector3) agent.Vector3 {
	return agent.Vector3{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

func stringIn(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
