package distance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMetric indicates an unrecognized metric identifier.
var ErrUnknownMetric = errors.New("distance: unknown metric")

// Metric identifies a distance function.
type Metric int

const (
	// None scores every pair of cells as 0.
	None Metric = iota
	// Manhattan is |dx| + |dy|.
	Manhattan
	// Euclidean is sqrt(dx² + dy²).
	Euclidean
)

// String returns the lower-case metric name.
func (m Metric) String() string {
	switch m {
	case None:
		return "none"
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Valid reports whether m is one of the known metrics.
func (m Metric) Valid() bool {
	return m >= None && m <= Euclidean
}

// ParseMetric maps a name to a Metric. Matching is case-insensitive and
// accepts "euclid" as an alias of "euclidean"; the empty string is None.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "manhattan":
		return Manhattan, nil
	case "euclidean", "euclid":
		return Euclidean, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
