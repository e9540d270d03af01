package grid

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists all legal directions.
var Directions = [...]Direction{Left, Up, Right, Down}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// rotations is the number of counter-clockwise quarter turns that bring
// the direction's movement axis onto "toward column 0".
func (d Direction) rotations() int {
	return int(d)
}
