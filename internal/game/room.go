package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
)

// RoomType distinguishes ordinary rooms from stores.
type RoomType string

const (
	RoomTypeRoom  RoomType = "room"
	RoomTypeStore RoomType = "store"
)

// Room represents a location in the world.
type Room struct {
	// Key is the room's identifier in the world; it is filled in from the
	// map key when the world is built.
	Key string `json:"-" yaml:"-"`

	Name         string            `json:"name" yaml:"name" validate:"required"`
	Description  string            `json:"description" yaml:"description" validate:"required"`
	Type         RoomType          `json:"type" yaml:"type" validate:"required,oneof=room store"`
	Items        map[string]*Item  `json:"items" yaml:"items" validate:"omitempty,dive,required"`
	Directions   map[string]string `json:"directions" yaml:"directions" validate:"required,dive,keys,direction,endkeys,required"`
	Requirements []string          `json:"requirements" yaml:"requirements" validate:"required"`
}

// Validate satisfies storage.ValidatingSpec. Field presence and direction
// names are checked by struct tags; this catches keys that collide once
// names are compared case-insensitively.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	seenDirs := make(map[Direction]string, len(r.Directions))
	for dir := range r.Directions {
		d, ok := ParseDirection(dir)
		if !ok {
			continue
		}
		if prev, dup := seenDirs[d]; dup {
			el.Add(fmt.Errorf("direction %q duplicates %q", dir, prev))
		}
		seenDirs[d] = dir
	}

	seenItems := make(map[string]string, len(r.Items))
	for key, item := range r.Items {
		if item == nil || item.Name == "" {
			continue
		}
		name := Canonical(item.Name)
		if prev, dup := seenItems[name]; dup {
			el.Add(fmt.Errorf("items %q and %q share the name %q", prev, key, item.Name))
		}
		seenItems[name] = key
	}

	return el.Err()
}

// index re-keys items by canonical name and directions by display key.
// Call after Validate.
func (r *Room) index() {
	items := make(map[string]*Item, len(r.Items))
	for _, item := range r.Items {
		if item == nil {
			continue
		}
		items[Canonical(item.Name)] = item
	}
	r.Items = items

	dirs := make(map[string]string, len(r.Directions))
	for dir, target := range r.Directions {
		if d, ok := ParseDirection(dir); ok {
			dirs[d.Key()] = target
		}
	}
	r.Directions = dirs
}

// IsStore reports whether items in the room must be bought.
func (r *Room) IsStore() bool {
	return r.Type == RoomTypeStore
}

// Item returns the item with the given name, or nil if the room lacks it.
func (r *Room) Item(name string) *Item {
	return r.Items[Canonical(name)]
}

// HasItem reports whether the room contains an item with the given name.
func (r *Room) HasItem(name string) bool {
	_, ok := r.Items[Canonical(name)]
	return ok
}

// AddItem places an item in the room.
func (r *Room) AddItem(item *Item) {
	if r.Items == nil {
		r.Items = make(map[string]*Item)
	}
	r.Items[Canonical(item.Name)] = item
}

// RemoveItem removes an item from the room.
// Returns the removed item, or nil if not found.
func (r *Room) RemoveItem(name string) *Item {
	key := Canonical(name)
	if item, ok := r.Items[key]; ok {
		delete(r.Items, key)
		return item
	}
	return nil
}

// ItemList returns the room's items sorted by name.
func (r *Room) ItemList() []*Item {
	return sortedItems(r.Items)
}

// Exit returns the key of the room reached by going in dir.
func (r *Room) Exit(dir Direction) (string, bool) {
	target, ok := r.Directions[dir.Key()]
	return target, ok
}

// Exits returns the directions leading out of the room in listing order.
func (r *Room) Exits() []Direction {
	var exits []Direction
	for _, d := range Directions() {
		if _, ok := r.Directions[d.Key()]; ok {
			exits = append(exits, d)
		}
	}
	return exits
}

func sortedItems(items map[string]*Item) []*Item {
	list := make([]*Item, 0, len(items))
	for _, item := range items {
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool {
		return Canonical(list[i].Name) < Canonical(list[j].Name)
	})
	return list
}
