package game

// Player is the single adventurer of a session.
type Player struct {
	inventory *Inventory
	money     Money
}

// NewPlayer creates a player with no items and no money.
func NewPlayer() *Player {
	return &Player{
		inventory: NewInventory(),
	}
}

func (p *Player) Inventory() *Inventory {
	return p.inventory
}

func (p *Player) Money() Money {
	return p.money
}

// AddMoney credits the player. The amount must not be negative.
func (p *Player) AddMoney(amount Money) {
	p.money += amount
}

// SubtractMoney debits the player. Callers check the balance first; the
// balance never goes below zero.
func (p *Player) SubtractMoney(amount Money) {
	p.money -= amount
}
