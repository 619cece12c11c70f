package game

import (
	"fmt"
	"strings"
)

// Engine owns the mutable state of one session: the current room and the
// player. Every verb is a synchronous in-memory transition returning a
// Result. Engines are not safe for concurrent use.
type Engine struct {
	world   *World
	config  Configuration
	current *Room
	player  *Player
}

// NewEngine starts a session in the configured starting room.
func NewEngine(world *World, cfg Configuration) (*Engine, error) {
	start := world.Room(cfg.StartingRoom)
	if start == nil {
		return nil, fmt.Errorf("starting room: %w: %q", ErrRoomNotFound, cfg.StartingRoom)
	}
	if world.Room(cfg.WinningRoom) == nil {
		return nil, fmt.Errorf("winning room: %w: %q", ErrRoomNotFound, cfg.WinningRoom)
	}

	return &Engine{
		world:   world,
		config:  cfg,
		current: start,
		player:  NewPlayer(),
	}, nil
}

func (e *Engine) World() *World {
	return e.world
}

func (e *Engine) Configuration() Configuration {
	return e.config
}

func (e *Engine) CurrentRoom() *Room {
	return e.current
}

func (e *Engine) Player() *Player {
	return e.player
}

// Move walks through the current room's exit in the given direction.
// Requirements of the destination are checked before the move commits.
func (e *Engine) Move(arg string) Result {
	dir, ok := ParseDirection(arg)
	if !ok {
		return fail(`You can't go "%s"!`, arg)
	}

	key, ok := e.current.Exit(dir)
	if !ok {
		return fail(`You can't go "%s"!`, dir.Key())
	}

	dest := e.world.Room(key)
	if dest == nil {
		return fail(`You can't go "%s"!`, dir.Key())
	}

	if missing := e.missingRequirements(dest); len(missing) > 0 {
		return fail("You need the following items to enter this room: %s", strings.Join(missing, ", "))
	}

	e.current = dest
	if e.hasWon() {
		return Result{Message: e.config.VictoryText, Outcome: Victory}
	}
	return succeed("")
}

// Take picks up an item from the current room. Stores never give items away.
func (e *Engine) Take(arg string) Result {
	if e.current.IsStore() {
		return fail("You must purchase this item!")
	}
	return e.player.Inventory().Take(arg, e.current)
}

// Drop leaves a carried item in the current room.
func (e *Engine) Drop(arg string) Result {
	if e.current.IsStore() {
		return fail("You can't drop this item here!")
	}
	return e.player.Inventory().Drop(arg, e.current)
}

// Inspect describes a carried item.
func (e *Engine) Inspect(arg string) Result {
	return e.player.Inventory().Inspect(arg)
}

// Buy purchases an item from the current store.
func (e *Engine) Buy(arg string) Result {
	if !e.current.IsStore() {
		return fail("You must be a in a store to buy items!")
	}

	item := e.current.Item(arg)
	if item == nil {
		return fail(`"%s" is not for sale!`, arg)
	}
	if e.player.Money() < item.Cost() {
		return fail("You don't have enough money!")
	}

	e.player.SubtractMoney(item.Cost())
	e.player.Inventory().Take(arg, e.current)
	return succeed("Transaction successful!")
}

// Sell hands a carried item to the current store for its value.
func (e *Engine) Sell(arg string) Result {
	if !e.current.IsStore() {
		return fail("You must be a in a store to sell items!")
	}

	item := e.player.Inventory().Get(arg)
	if item == nil {
		return fail(`You do not have "%s" in your inventory!`, arg)
	}

	// Credit only once the item has actually changed hands.
	if res := e.player.Inventory().Drop(arg, e.current); res.Outcome != Success {
		return res
	}
	e.player.AddMoney(item.Cost())
	return succeed("Transaction successful!")
}

// CheckMoney reports the player's balance.
func (e *Engine) CheckMoney() Result {
	return succeed(fmt.Sprintf("You have %s.", e.player.Money()))
}

// Teleport moves the player to any room, ignoring exits and requirements.
// It is a debugging aid and never evaluates victory.
func (e *Engine) Teleport(key string) error {
	room := e.world.Room(key)
	if room == nil {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, key)
	}
	e.current = room
	return nil
}

// missingRequirements lists, in declared order, the requirements of room
// the player does not carry.
func (e *Engine) missingRequirements(room *Room) []string {
	var missing []string
	for _, req := range room.Requirements {
		if !e.player.Inventory().Has(req) {
			missing = append(missing, req)
		}
	}
	return missing
}

func (e *Engine) hasWon() bool {
	if e.current.Key != e.config.WinningRoom {
		return false
	}
	for _, name := range e.config.WinningItems {
		if !e.player.Inventory().Has(name) {
			return false
		}
	}
	return true
}
