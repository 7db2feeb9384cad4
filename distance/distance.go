package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the distance between cells (ax,ay) and (bx,by) under m.
// Manhattan and Euclidean are the L1 and L2 norms of the difference vector.
// Returns ErrUnknownMetric for any other metric value.
func Distance(ax, ay, bx, by int, m Metric) (float64, error) {
	if m == None {
		return 0, nil
	}
	a := []float64{float64(ax), float64(ay)}
	b := []float64{float64(bx), float64(by)}
	switch m {
	case Manhattan:
		return floats.Distance(a, b, 1), nil
	case Euclidean:
		return floats.Distance(a, b, 2), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}
