package gm

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the numeric types that can be combined with an Angle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

func isInteger[S Scalar]() bool {
	var one S = 1
	return one/2 == 0
}
