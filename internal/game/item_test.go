package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCanonical(t *testing.T) {
	tests := map[string]struct {
		name string
		exp  string
	}{
		"lower case":        {name: "lamp", exp: "lamp"},
		"mixed case":        {name: "Dining Hall Key", exp: "dining hall key"},
		"surrounding space": {name: "  Lamp\t", exp: "lamp"},
		"inner whitespace":  {name: "Old  Map", exp: "old map"},
		"tabs and newlines": {name: "old\t\nmap", exp: "old map"},
		"empty":             {name: "   ", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "canonical", Canonical(tt.name), tt.exp)
		})
	}
}

func TestItem_ExtraSpacesInName(t *testing.T) {
	room := NewWorld(map[string]*Room{
		"attic": {
			Name:  "Attic",
			Type:  RoomTypeRoom,
			Items: map[string]*Item{"map": {Name: "Old  Map", Description: "Faded.", Value: Price(2)}},
		},
	}).Room("attic")
	inv := NewInventory()

	res := inv.Take("old map", room)
	testutil.AssertEqual(t, "take outcome", res.Outcome, Success)
	testutil.AssertEqual(t, "take message", res.Message, "Faded.")

	res = inv.Inspect("OLD MAP")
	testutil.AssertEqual(t, "inspect outcome", res.Outcome, Success)

	res = inv.Drop("old   map", room)
	testutil.AssertEqual(t, "drop outcome", res.Outcome, Success)
	testutil.AssertEqual(t, "back in room", room.HasItem("old map"), true)
}

func TestItem_Cost(t *testing.T) {
	testutil.AssertEqual(t, "unset", (&Item{Name: "Pebble"}).Cost(), Money(0))
	testutil.AssertEqual(t, "set", (&Item{Name: "Gem", Value: Price(0.25)}).Cost(), Money(25))
	testutil.AssertEqual(t, "listing", (&Item{Name: "Gem", Value: Price(0.25)}).String(), "Gem - $0.25")
}
