package game

// Inventory holds the items a player carries, keyed by canonical name.
type Inventory struct {
	items map[string]*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		items: make(map[string]*Item),
	}
}

// Take moves the named item from the room into the inventory. On success
// the message is the item's description.
func (inv *Inventory) Take(name string, from *Room) Result {
	item := from.RemoveItem(name)
	if item == nil {
		return fail(`There is no item "%s" in the room!`, name)
	}
	inv.add(item)
	return succeed(item.Description)
}

// Drop moves the named item from the inventory into the room.
func (inv *Inventory) Drop(name string, into *Room) Result {
	item := inv.Get(name)
	if item == nil {
		return fail(`You do not have "%s" in your inventory!`, name)
	}
	if into.HasItem(name) {
		return fail(`The item "%s" is already in this room!`, name)
	}
	inv.remove(name)
	into.AddItem(item)
	return succeed("")
}

// Inspect returns the description of a carried item.
func (inv *Inventory) Inspect(name string) Result {
	item := inv.Get(name)
	if item == nil {
		return fail(`You do not have "%s" in your inventory!`, name)
	}
	return succeed(item.Description)
}

// Get returns the carried item with the given name, or nil if not found.
func (inv *Inventory) Get(name string) *Item {
	return inv.items[Canonical(name)]
}

// Has reports whether an item with the given name is carried.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.items[Canonical(name)]
	return ok
}

// Items returns the carried items sorted by name.
func (inv *Inventory) Items() []*Item {
	return sortedItems(inv.items)
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

func (inv *Inventory) add(item *Item) {
	inv.items[Canonical(item.Name)] = item
}

func (inv *Inventory) remove(name string) *Item {
	key := Canonical(name)
	if item, ok := inv.items[key]; ok {
		delete(inv.items, key)
		return item
	}
	return nil
}
