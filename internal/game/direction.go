package game

// Direction is one of the four compass directions a room may exit towards.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// directionKeys maps each direction to the key used in world files and listings.
var directionKeys = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

// Directions returns every direction in listing order.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Key returns the display form of the direction, e.g. "North".
func (d Direction) Key() string {
	if d < 0 || int(d) >= len(directionKeys) {
		return ""
	}
	return directionKeys[d]
}

func (d Direction) String() string {
	return d.Key()
}

// ParseDirection resolves a direction from user or file input, ignoring case.
func ParseDirection(s string) (Direction, bool) {
	want := Canonical(s)
	for _, d := range Directions() {
		if Canonical(d.Key()) == want {
			return d, true
		}
	}
	return 0, false
}
