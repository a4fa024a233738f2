package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Angle {
	return Rad(RandomIn(0, fullTurn))
}

// RandomAngleRange returns an arc with random endpoints and random inclusiveness.
// The endpoints are not normalized and may lie a few turns away from zero.
func RandomAngleRange() AngleRange {
	start := Rad(RandomIn(-3*fullTurn, 3*fullTurn))
	end := Rad(RandomIn(-3*fullTurn, 3*fullTurn))
	return NewAngleRange(start, end, rand.N(2) == 1, rand.N(2) == 1)
}
