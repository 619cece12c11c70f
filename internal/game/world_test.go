package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWorld_Resolve(t *testing.T) {
	tests := map[string]struct {
		rooms  map[string]*Room
		expErr string
	}{
		"connected": {
			rooms: map[string]*Room{
				"a": {Directions: map[string]string{"North": "b"}},
				"b": {Directions: map[string]string{"South": "a"}},
			},
		},
		"dangling exit": {
			rooms: map[string]*Room{
				"a": {Directions: map[string]string{"North": "nowhere"}},
			},
			expErr: `room "a": direction North: room not found: "nowhere"`,
		},
		"item in two rooms": {
			rooms: map[string]*Room{
				"a": {Items: map[string]*Item{"x": {Name: "Lamp"}}},
				"b": {Items: map[string]*Item{"y": {Name: "lamp"}}},
			},
			expErr: `is placed in both "a" and "b"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewWorld(tt.rooms).Resolve()

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWorld_Keys(t *testing.T) {
	world, _ := newTestWorld(t)

	keys := world.Keys()
	testutil.AssertEqual(t, "count", len(keys), 7)
	testutil.AssertEqual(t, "first", keys[0], "alma_mater")
	testutil.AssertEqual(t, "missing room", world.Room("attic") == nil, true)
}
