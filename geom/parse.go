package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPoint = errors.New("invalid point")

// ParsePoint accepts "x,y", "(x, y)" and "[x y]". Commas separate exactly
// two coordinates; without a comma the coordinates are separated by
// whitespace. Empty coordinates are rejected.
func ParsePoint(s string) (Point, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) >= 2 {
		first, last := trimmed[0], trimmed[len(trimmed)-1]
		if (first == '(' && last == ')') || (first == '[' && last == ']') {
			trimmed = trimmed[1 : len(trimmed)-1]
		}
	}

	var fields []string
	if strings.Contains(trimmed, ",") {
		fields = strings.Split(trimmed, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
			if fields[i] == "" {
				return Point{}, fmt.Errorf("%w: %q has an empty coordinate", ErrInvalidPoint, s)
			}
		}
	} else {
		fields = strings.Fields(trimmed)
	}
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("%w: %q needs exactly 2 coordinates, got %d", ErrInvalidPoint, s, len(fields))
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: x coordinate %q: %v", ErrInvalidPoint, fields[0], err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: y coordinate %q: %v", ErrInvalidPoint, fields[1], err)
	}
	return Point{X: x, Y: y}, nil
}
