package gm

import (
	"errors"
	"fmt"
	"math"
)

const (
	// EpsilonCompare is the tolerance below which two normalized angles are
	// considered equal. It makes 0 and values just below 2π compare equal.
	EpsilonCompare = 1e-10

	// EpsilonDivide is the smallest magnitude a floating point divisor may have.
	EpsilonDivide = 1e-15
)

const fullTurn = 2 * math.Pi

// ErrDivisionByZero is returned when an Angle is divided by zero, or by a float
// with a magnitude below EpsilonDivide.
var ErrDivisionByZero = errors.New("division by zero")

// Angle is an angle in radians. The stored value is not constrained to a single
// turn. Arithmetic keeps the raw value, comparisons operate on the normalized value.
//
// The zero value is an angle of 0 rad.
type Angle struct {
	rad float64
}

// Rad returns an Angle of the given radians.
func Rad(radians float64) Angle {
	return Angle{rad: radians}
}

// AngleOf returns an Angle from a radian value of any numeric type.
func AngleOf[S Scalar](radians S) Angle {
	return Angle{rad: float64(radians)}
}

// FromDegrees returns an Angle of the given degrees.
func FromDegrees(degrees float64) Angle {
	return Angle{rad: degrees * math.Pi / 180}
}

// Radians returns the value of the angle in radians as float64.
func (a Angle) Radians() float64 {
	return a.rad
}

// Degrees returns the value of the angle in degrees as float64.
func (a Angle) Degrees() float64 {
	return a.rad * 180 / math.Pi
}

func (a *Angle) SetRadians(radians float64) {
	a.rad = radians
}

func (a *Angle) SetDegrees(degrees float64) {
	a.rad = degrees * math.Pi / 180
}

// NormalizedRadians returns the angle reduced into the range [0, 2π).
func (a Angle) NormalizedRadians() float64 {
	return normalize(a.rad)
}

// Normalized returns a copy of the angle reduced into the range [0, 2π).
func (a Angle) Normalized() Angle {
	return Angle{rad: normalize(a.rad)}
}

func normalize(rad float64) float64 {
	res := math.Mod(rad, fullTurn)
	if res < 0 {
		res += fullTurn
	}

	// adding 2π to a tiny negative remainder can round up to exactly 2π
	if res >= fullTurn {
		res = 0
	}

	return res
}

// Compare returns -1, 0 or +1 depending on whether a is smaller than, equal to
// or larger than other. Both angles are normalized before comparing, and values
// closer than EpsilonCompare are equal. This includes values just below 2π,
// which are equal to 0.
func (a Angle) Compare(other Angle) int {
	n1 := normalize(a.rad)
	n2 := normalize(other.rad)

	diff := math.Abs(n1 - n2)
	if diff < EpsilonCompare || fullTurn-diff < EpsilonCompare {
		return 0
	}

	if n1 < n2 {
		return -1
	}

	return 1
}

func (a Angle) Equal(other Angle) bool {
	return a.Compare(other) == 0
}

func (a Angle) NotEqual(other Angle) bool {
	return !a.Equal(other)
}

func (a Angle) Less(other Angle) bool {
	return a.Compare(other) < 0
}

func (a Angle) Greater(other Angle) bool {
	return other.Less(a)
}

func (a Angle) LessOrEqual(other Angle) bool {
	return !other.Less(a)
}

func (a Angle) GreaterOrEqual(other Angle) bool {
	return !a.Less(other)
}

// Add returns the raw sum of both angles. The result is not normalized.
func (a Angle) Add(other Angle) Angle {
	return Angle{rad: a.rad + other.rad}
}

// Sub returns the raw difference of both angles. The result is not normalized.
func (a Angle) Sub(other Angle) Angle {
	return Angle{rad: a.rad - other.rad}
}

// Mul scales the raw radian value.
func (a Angle) Mul(factor float64) Angle {
	return Angle{rad: a.rad * factor}
}

// Div divides the raw radian value. It returns ErrDivisionByZero
// if the magnitude of divisor is below EpsilonDivide.
func (a Angle) Div(divisor float64) (Angle, error) {
	return DivScalar(a, divisor)
}

// AddScalar adds a radian value of any numeric type to the angle.
func AddScalar[S Scalar](a Angle, radians S) Angle {
	return Angle{rad: a.rad + float64(radians)}
}

// SubScalar subtracts a radian value of any numeric type from the angle.
func SubScalar[S Scalar](a Angle, radians S) Angle {
	return Angle{rad: a.rad - float64(radians)}
}

// MulScalar scales the angle by a factor of any numeric type.
func MulScalar[S Scalar](a Angle, factor S) Angle {
	return Angle{rad: a.rad * float64(factor)}
}

// DivScalar divides the angle by a divisor of any numeric type. Integer divisors
// fail only on an exact zero, floating point divisors fail when their magnitude
// is below EpsilonDivide.
func DivScalar[S Scalar](a Angle, divisor S) (Angle, error) {
	if isInteger[S]() {
		if divisor == 0 {
			return Angle{}, ErrDivisionByZero
		}
	} else if math.Abs(float64(divisor)) < EpsilonDivide {
		return Angle{}, ErrDivisionByZero
	}

	return Angle{rad: a.rad / float64(divisor)}, nil
}

// TruncatedInt returns the radian value truncated towards zero.
func (a Angle) TruncatedInt() int {
	return int(a.rad)
}

// ApproxFloat returns the radian value with float32 precision.
func (a Angle) ApproxFloat() float32 {
	return float32(a.rad)
}

// DisplayString formats the radian value, e.g. "3.141593 rad".
func (a Angle) DisplayString() string {
	return fmt.Sprintf("%f rad", a.rad)
}

// String formats the angle in degrees, e.g. "90.000000°".
func (a Angle) String() string {
	return fmt.Sprintf("%f°", a.Degrees())
}

// GoString formats the angle for debugging, e.g. "Angle(1.570796)".
// It is used by the %#v verb.
func (a Angle) GoString() string {
	return fmt.Sprintf("Angle(%f)", a.rad)
}
