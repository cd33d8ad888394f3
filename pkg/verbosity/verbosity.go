// Package verbosity controls how many suggestions a lookup returns.
package verbosity

type Verbosity int

const (
	// Top returns only the highest-ranked suggestion of the closest
	// non-empty tier.
	Top Verbosity = iota
	// Closest returns every suggestion of the closest non-empty tier.
	Closest
	// All returns every known suggestion within the maximum edit
	// distance, nearest first.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "top"
	case Closest:
		return "closest"
	case All:
		return "all"
	default:
		return "unknown"
	}
}
