package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
)

// World holds every room of a loaded world description.
type World struct {
	rooms map[string]*Room
}

// NewWorld builds a world from rooms keyed by room key. Each room's Key is
// set and its items and directions are re-keyed to their canonical form.
func NewWorld(rooms map[string]*Room) *World {
	w := &World{rooms: make(map[string]*Room, len(rooms))}
	for key, room := range rooms {
		if room == nil {
			continue
		}
		room.Key = key
		room.index()
		w.rooms[key] = room
	}
	return w
}

// Room returns the room with the given key, or nil if there is none.
func (w *World) Room(key string) *Room {
	return w.rooms[key]
}

// Keys returns every room key in sorted order.
func (w *World) Keys() []string {
	keys := make([]string, 0, len(w.rooms))
	for k := range w.rooms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve checks references between rooms: every exit must lead to an
// existing room and no item may be placed in more than one room.
func (w *World) Resolve() error {
	el := errors.NewErrorList()

	owners := make(map[string]string)
	for _, key := range w.Keys() {
		room := w.rooms[key]

		for _, d := range room.Exits() {
			target, _ := room.Exit(d)
			if _, ok := w.rooms[target]; !ok {
				el.Add(fmt.Errorf("room %q: direction %s: %w: %q", key, d, ErrRoomNotFound, target))
			}
		}

		for name, item := range room.Items {
			if owner, dup := owners[name]; dup {
				el.Add(fmt.Errorf("item %q is placed in both %q and %q", item.Name, owner, key))
				continue
			}
			owners[name] = key
		}
	}

	return el.Err()
}
