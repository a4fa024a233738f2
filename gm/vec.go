package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector in a y-up coordinate system, so that angles grow
// counter-clockwise.
type Vec struct {
	X, Y float64
}

// VecFromAngle returns a vector of the given length pointing in the
// direction of angle.
func VecFromAngle(angle Angle, length float64) Vec {
	sin, cos := math.Sincos(angle.Radians())
	return Vec{X: cos * length, Y: sin * length}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns the direction of the vector, measured counter-clockwise
// from the positive x axis. The result is in the range [-π, π].
func (v Vec) Angle() Angle {
	return Rad(math.Atan2(v.Y, v.X))
}

// FlipY converts between y-up and y-down (screen) coordinates.
func (v Vec) FlipY() Vec {
	v.Y = -v.Y
	return v
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
