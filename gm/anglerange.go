package gm

import (
	"cmp"
	"fmt"
	"math"
)

// AngleRange is an arc on the circle, swept counter-clockwise from start to end.
// If the normalized end is smaller than the normalized start, the arc wraps
// through 0. Start and end are never swapped.
//
// Each endpoint is either inclusive (closed) or exclusive (open).
type AngleRange struct {
	start, end Angle

	startInclusive bool
	endInclusive   bool
}

// NewAngleRange creates a new arc from start to end. The optional flags set
// whether the start and the end are inclusive, in that order. Omitted flags
// default to true.
func NewAngleRange(start, end Angle, inclusive ...bool) AngleRange {
	r := AngleRange{
		start:          start,
		end:            end,
		startInclusive: true,
		endInclusive:   true,
	}

	if len(inclusive) > 0 {
		r.startInclusive = inclusive[0]
	}

	if len(inclusive) > 1 {
		r.endInclusive = inclusive[1]
	}

	return r
}

// RangeOf creates a new arc from two radian values of any numeric type.
// It is the same as calling NewAngleRange with AngleOf(start) and AngleOf(end).
func RangeOf[S Scalar](start, end S, inclusive ...bool) AngleRange {
	return NewAngleRange(AngleOf(start), AngleOf(end), inclusive...)
}

func (r AngleRange) Start() Angle {
	return r.start
}

func (r AngleRange) End() Angle {
	return r.end
}

func (r AngleRange) StartInclusive() bool {
	return r.startInclusive
}

func (r AngleRange) EndInclusive() bool {
	return r.endInclusive
}

// Length returns the length of the arc in radians, in the range [0, 2π].
// The inclusiveness of the endpoints does not change the length.
func (r AngleRange) Length() float64 {
	start := r.start.NormalizedRadians()
	end := r.end.NormalizedRadians()

	if end >= start {
		return end - start
	}

	return (fullTurn - start) + end
}

// InclusiveCount returns the number of inclusive endpoints.
func (r AngleRange) InclusiveCount() int {
	return boolToInt(r.startInclusive) + boolToInt(r.endInclusive)
}

// Equal reports whether both ranges have equal start and end angles
// and the same inclusiveness at both endpoints.
func (r AngleRange) Equal(other AngleRange) bool {
	return r.start.Equal(other.start) &&
		r.end.Equal(other.end) &&
		r.startInclusive == other.startInclusive &&
		r.endInclusive == other.endInclusive
}

func (r AngleRange) NotEqual(other AngleRange) bool {
	return !r.Equal(other)
}

// Compare orders ranges by length first, then by the number of inclusive
// endpoints, then by start, end, start inclusiveness and end inclusiveness.
// Ranges that are Equal always compare as 0.
//
// The signature matches the one expected by slices.SortFunc.
func (r AngleRange) Compare(other AngleRange) int {
	// endpoints may drift by almost EpsilonCompare in opposite directions,
	// which the length comparison alone would not tolerate
	if r.Equal(other) {
		return 0
	}

	len1 := r.Length()
	len2 := other.Length()
	if math.Abs(len1-len2) > EpsilonCompare {
		return cmp.Compare(len1, len2)
	}

	if c1, c2 := r.InclusiveCount(), other.InclusiveCount(); c1 != c2 {
		return cmp.Compare(c1, c2)
	}

	if c := r.start.Compare(other.start); c != 0 {
		return c
	}

	if c := r.end.Compare(other.end); c != 0 {
		return c
	}

	if r.startInclusive != other.startInclusive {
		return cmp.Compare(boolToInt(r.startInclusive), boolToInt(other.startInclusive))
	}

	return cmp.Compare(boolToInt(r.endInclusive), boolToInt(other.endInclusive))
}

func (r AngleRange) Less(other AngleRange) bool {
	return r.Compare(other) < 0
}

func (r AngleRange) Greater(other AngleRange) bool {
	return other.Less(r)
}

func (r AngleRange) LessOrEqual(other AngleRange) bool {
	return !other.Less(r)
}

func (r AngleRange) GreaterOrEqual(other AngleRange) bool {
	return !r.Less(other)
}

// Contains reports whether the angle lies on the arc. Endpoints are matched
// with a tolerance of EpsilonCompare on the normalized values, without wrapping
// around the circle. An angle just below 2π therefore does not match a start at 0,
// even though Angle.Equal treats both as equal.
func (r AngleRange) Contains(angle Angle) bool {
	start := r.start.NormalizedRadians()
	end := r.end.NormalizedRadians()
	x := angle.NormalizedRadians()

	var afterStart bool
	if r.startInclusive {
		afterStart = x > start-EpsilonCompare || isClose(x, start)
	} else {
		afterStart = x > start+EpsilonCompare
	}

	var beforeEnd bool
	if r.endInclusive {
		beforeEnd = x < end+EpsilonCompare || isClose(x, end)
	} else {
		beforeEnd = x < end-EpsilonCompare
	}

	if end >= start-EpsilonCompare {
		return afterStart && beforeEnd
	}

	// the arc wraps through zero, the angle may lie in either part
	return afterStart || beforeEnd
}

// ContainsRange reports whether both endpoints of other lie on this arc.
// It does not check the arc between the endpoints of other.
func (r AngleRange) ContainsRange(other AngleRange) bool {
	return r.Contains(other.start) && r.Contains(other.end)
}

// Add returns the arc from start+other.start to end+other.end, both normalized.
// An endpoint of the result is inclusive only if it is inclusive in both inputs.
func (r AngleRange) Add(other AngleRange) []AngleRange {
	start := r.start.Add(other.start).Normalized()
	end := r.end.Add(other.end).Normalized()

	return []AngleRange{
		NewAngleRange(start, end,
			r.startInclusive && other.startInclusive,
			r.endInclusive && other.endInclusive,
		),
	}
}

// Sub returns the arc from start-other.end to end-other.start, both normalized.
// An endpoint of the result is inclusive only if it is inclusive in both inputs.
func (r AngleRange) Sub(other AngleRange) []AngleRange {
	start := r.start.Sub(other.end).Normalized()
	end := r.end.Sub(other.start).Normalized()

	return []AngleRange{
		NewAngleRange(start, end,
			r.startInclusive && other.startInclusive,
			r.endInclusive && other.endInclusive,
		),
	}
}

// String formats the range in degrees using interval notation,
// e.g. "[0.000000°, 90.000000°)".
func (r AngleRange) String() string {
	open, closing := "(", ")"
	if r.startInclusive {
		open = "["
	}

	if r.endInclusive {
		closing = "]"
	}

	return open + r.start.String() + ", " + r.end.String() + closing
}

// GoString formats the range for debugging, e.g.
// "AngleRange(Angle(0.000000), Angle(1.570796), true, false)".
func (r AngleRange) GoString() string {
	return fmt.Sprintf("AngleRange(%#v, %#v, %t, %t)",
		r.start, r.end, r.startInclusive, r.endInclusive)
}

func isClose(a, b float64) bool {
	return math.Abs(a-b) < EpsilonCompare
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
