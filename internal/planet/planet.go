package planet

import "strconv"

// Count is the number of planets in the table. Valid indices are [0, Count).
const Count = 8

// names holds the planets in orbital order from the sun. The table is fixed
// and never mutated; callers get copies via All.
var names = [Count]string{
	"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
}

// Planet pairs an orbital index with a planet name.
type Planet struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
}

// Name returns the planet at orbital index i, Mercury at 0 through Neptune
// at 7. Any other index yields an OutOfRangeError.
func Name(i int) (string, error) {
	if i < 0 || i >= Count {
		return "", OutOfRangeError{Index: i}
	}
	return names[i], nil
}

// ParseIndex parses s as a planet index. Non-numeric input is rejected with
// an InvalidArgumentError rather than silently read as zero.
func ParseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, InvalidArgumentError{Arg: s}
	}
	return i, nil
}

// All returns the planet table in orbital order.
func All() []Planet {
	out := make([]Planet, 0, Count)
	for i, n := range names {
		out = append(out, Planet{Index: i, Name: n})
	}
	return out
}
