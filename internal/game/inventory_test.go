package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func newTestRoom() *Room {
	room := &Room{Name: "Commons", Type: RoomTypeRoom}
	room.AddItem(&Item{Name: "Dining Hall Key", Description: "A brass key.", Value: Price(5)})
	return room
}

func TestInventory_Take(t *testing.T) {
	tests := map[string]struct {
		name       string
		expOutcome Outcome
		expMsg     string
		expLen     int
	}{
		"exact case": {
			name:       "Dining Hall Key",
			expOutcome: Success,
			expMsg:     "A brass key.",
			expLen:     1,
		},
		"odd case": {
			name:       "diNINg hAll keY",
			expOutcome: Success,
			expMsg:     "A brass key.",
			expLen:     1,
		},
		"missing item": {
			name:       "lamp",
			expOutcome: Failure,
			expMsg:     `There is no item "lamp" in the room!`,
			expLen:     0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			room := newTestRoom()
			inv := NewInventory()

			res := inv.Take(tt.name, room)

			testutil.AssertEqual(t, "outcome", res.Outcome, tt.expOutcome)
			testutil.AssertEqual(t, "message", res.Message, tt.expMsg)
			testutil.AssertEqual(t, "inventory size", inv.Len(), tt.expLen)
			testutil.AssertEqual(t, "room still has key", room.HasItem("dining hall key"), tt.expLen == 0)
		})
	}
}

func TestInventory_Drop(t *testing.T) {
	t.Run("not carried", func(t *testing.T) {
		inv := NewInventory()

		res := inv.Drop("lamp", newTestRoom())

		testutil.AssertEqual(t, "outcome", res.Outcome, Failure)
		testutil.AssertEqual(t, "message", res.Message, `You do not have "lamp" in your inventory!`)
	})

	t.Run("room already has one", func(t *testing.T) {
		inv := NewInventory()
		inv.add(&Item{Name: "Dining Hall Key"})
		room := newTestRoom()

		res := inv.Drop("dining hall key", room)

		testutil.AssertEqual(t, "outcome", res.Outcome, Failure)
		testutil.AssertEqual(t, "message", res.Message, `The item "dining hall key" is already in this room!`)
		testutil.AssertEqual(t, "still carried", inv.Has("dining hall key"), true)
	})

	t.Run("round trip restores state", func(t *testing.T) {
		inv := NewInventory()
		room := newTestRoom()

		take := inv.Take("DINING HALL KEY", room)
		drop := inv.Drop("dining hall key", room)

		testutil.AssertEqual(t, "take outcome", take.Outcome, Success)
		testutil.AssertEqual(t, "drop outcome", drop.Outcome, Success)
		testutil.AssertEqual(t, "drop message", drop.Message, "")
		testutil.AssertEqual(t, "inventory size", inv.Len(), 0)
		testutil.AssertEqual(t, "room items", len(room.Items), 1)
		testutil.AssertEqual(t, "display name kept", room.Item("dining hall key").Name, "Dining Hall Key")
	})
}

func TestInventory_Inspect(t *testing.T) {
	inv := NewInventory()
	inv.add(&Item{Name: "Lamp", Description: "It glows."})

	res := inv.Inspect("LAMP")
	testutil.AssertEqual(t, "outcome", res.Outcome, Success)
	testutil.AssertEqual(t, "message", res.Message, "It glows.")

	res = inv.Inspect("rope")
	testutil.AssertEqual(t, "missing outcome", res.Outcome, Failure)
	testutil.AssertEqual(t, "missing message", res.Message, `You do not have "rope" in your inventory!`)
}

func TestInventory_Items(t *testing.T) {
	inv := NewInventory()
	inv.add(&Item{Name: "rope"})
	inv.add(&Item{Name: "Lamp"})

	items := inv.Items()
	testutil.AssertEqual(t, "count", len(items), 2)
	testutil.AssertEqual(t, "first", items[0].Name, "Lamp")
	testutil.AssertEqual(t, "second", items[1].Name, "rope")
	testutil.AssertEqual(t, "get", inv.Get("ROPE").Name, "rope")
	testutil.AssertEqual(t, "get missing", inv.Get("axe") == nil, true)
}
