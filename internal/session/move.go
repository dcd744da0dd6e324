package session

import "strings"

// Direction names a caret movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	DocStart
	DocEnd
)

var directionNames = [...]string{
	Left:      "left",
	Right:     "right",
	Up:        "up",
	Down:      "down",
	LineStart: "line_start",
	LineEnd:   "line_end",
	DocStart:  "doc_start",
	DocEnd:    "doc_end",
}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// ParseDirection parses a direction name such as "left" or "doc_end".
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return Direction(d), true
		}
	}
	return 0, false
}
