package game

import "testing"

// newTestWorld builds a small campus: Ikenberry Commons holds the Dining
// Hall Key, The Ike leads North to the gated dining hall and East to the
// vending machine store, and three steps West of the store is the quad.
func newTestWorld(t *testing.T) (*World, Configuration) {
	t.Helper()

	rooms := map[string]*Room{
		"ikenberry_commons": {
			Name:        "Ikenberry Commons",
			Description: "You are in the commons.",
			Type:        RoomTypeRoom,
			Items: map[string]*Item{
				"key": {Name: "Dining Hall Key", Description: "A brass key.", Value: Price(5)},
			},
			Directions:   map[string]string{"east": "the_ike"},
			Requirements: []string{},
		},
		"the_ike": {
			Name:         "The Ike",
			Description:  "A busy lobby.",
			Type:         RoomTypeRoom,
			Directions:   map[string]string{"West": "ikenberry_commons", "North": "dining_hall", "East": "vending_machine"},
			Requirements: []string{},
		},
		"dining_hall": {
			Name:         "Ikenberry Dining Hall",
			Description:  "It smells of waffles.",
			Type:         RoomTypeRoom,
			Directions:   map[string]string{"South": "the_ike"},
			Requirements: []string{"Dining Hall Key"},
		},
		"vending_machine": {
			Name:        "Vending Machine",
			Description: "A humming machine.",
			Type:        RoomTypeStore,
			Items: map[string]*Item{
				"icard": {Name: "Blood-Stained Wassaja iCard", Description: "Someone lost this.", Value: Price(100)},
				"ramen": {Name: "Ramen Cup", Description: "Just add water.", Value: Price(2.5)},
			},
			Directions:   map[string]string{"West": "green_street", "South": "the_ike"},
			Requirements: []string{},
		},
		"green_street": {
			Name:         "Green Street",
			Description:  "Restaurants line the street.",
			Type:         RoomTypeRoom,
			Directions:   map[string]string{"West": "main_quad", "East": "vending_machine"},
			Requirements: []string{},
		},
		"main_quad": {
			Name:         "Main Quad",
			Description:  "Students everywhere.",
			Type:         RoomTypeRoom,
			Directions:   map[string]string{"West": "alma_mater", "East": "green_street"},
			Requirements: []string{},
		},
		"alma_mater": {
			Name:         "Alma Mater",
			Description:  "The statue welcomes you.",
			Type:         RoomTypeRoom,
			Directions:   map[string]string{"East": "main_quad"},
			Requirements: []string{},
		},
	}

	world := NewWorld(rooms)
	if err := world.Resolve(); err != nil {
		t.Fatalf("resolving test world: %v", err)
	}

	return world, Configuration{
		StartingRoom:       "ikenberry_commons",
		InitializationText: "Welcome to campus.",
		VictoryText:        "You made it!",
		WinningRoom:        "alma_mater",
		WinningItems:       []string{"Blood-Stained Wassaja iCard"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	world, cfg := newTestWorld(t)
	e, err := NewEngine(world, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func teleport(t *testing.T, e *Engine, key string) {
	t.Helper()

	if err := e.Teleport(key); err != nil {
		t.Fatalf("teleporting to %s: %v", key, err)
	}
}
