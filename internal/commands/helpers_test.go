package commands

import (
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
)

func newTestEngine(t *testing.T) *game.Engine {
	t.Helper()

	world := game.NewWorld(map[string]*game.Room{
		"commons": {
			Name:        "Ikenberry Commons",
			Description: "You are in the commons.",
			Type:        game.RoomTypeRoom,
			Items: map[string]*game.Item{
				"key": {Name: "Dining Hall Key", Description: "A brass key.", Value: game.Price(5)},
			},
			Directions:   map[string]string{"East": "ike"},
			Requirements: []string{},
		},
		"ike": {
			Name:         "The Ike",
			Description:  "A busy lobby.",
			Type:         game.RoomTypeRoom,
			Directions:   map[string]string{"West": "commons", "North": "hall", "East": "vending"},
			Requirements: []string{},
		},
		"hall": {
			Name:         "Dining Hall",
			Description:  "It smells of waffles.",
			Type:         game.RoomTypeRoom,
			Directions:   map[string]string{"South": "ike"},
			Requirements: []string{"Dining Hall Key"},
		},
		"vending": {
			Name:        "Vending Machine",
			Description: "A humming machine.",
			Type:        game.RoomTypeStore,
			Items: map[string]*game.Item{
				"ramen": {Name: "Ramen Cup", Description: "Just add water.", Value: game.Price(2.5)},
				"chips": {Name: "Chips", Description: "Salty.", Value: game.Price(1)},
			},
			Directions:   map[string]string{"West": "ike"},
			Requirements: []string{},
		},
		"closet": {
			Name:         "Closet",
			Description:  "Cramped.",
			Type:         game.RoomTypeRoom,
			Directions:   map[string]string{},
			Requirements: []string{},
		},
	})

	e, err := game.NewEngine(world, game.Configuration{
		StartingRoom:       "commons",
		InitializationText: "Welcome to campus.",
		VictoryText:        "You made it!",
		WinningRoom:        "hall",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

type recordedCommand struct {
	verb    string
	outcome game.Outcome
}

type fakeRecorder struct {
	observed []recordedCommand
}

func (r *fakeRecorder) ObserveCommand(verb string, outcome game.Outcome) {
	r.observed = append(r.observed, recordedCommand{verb: verb, outcome: outcome})
}
