package gm

import (
	"iter"

	"deedles.dev/xiter"
)

// SplitEven yields n consecutive arcs of equal length that together cover r.
// The first arc keeps the start inclusiveness of r and the last one keeps the
// end inclusiveness of r. Every other boundary is inclusive at the start of an
// arc and exclusive at its end, so each angle of r lies on exactly one arc.
//
// Nothing is yielded if n is not positive.
func SplitEven(r AngleRange, n int) iter.Seq[AngleRange] {
	return splitArc(r.start, r.Length(), n, r.startInclusive, r.endInclusive)
}

// SplitCircle is like SplitEven but splits the full circle, beginning at start,
// into n arcs. A single arc can not describe the full circle, so nothing is
// yielded if n is smaller than two.
func SplitCircle(start Angle, n int) iter.Seq[AngleRange] {
	if n < 2 {
		return func(yield func(AngleRange) bool) {}
	}

	return splitArc(start, fullTurn, n, true, false)
}

// SplitEvenInto is the same as SplitEven but fills the elements of
// arcs instead of yielding them from an iterator.
func SplitEvenInto(arcs []AngleRange, r AngleRange) {
	insertArcsFromSeq(arcs, SplitEven(r, len(arcs)))
}

func splitArc(start Angle, length float64, n int, startInclusive, endInclusive bool) iter.Seq[AngleRange] {
	return func(yield func(AngleRange) bool) {
		if n <= 0 {
			return
		}

		step := length / float64(n)
		for idx := range n {
			arc := AngleRange{
				start:          start.Add(Rad(step * float64(idx))).Normalized(),
				end:            start.Add(Rad(step * float64(idx+1))).Normalized(),
				startInclusive: idx > 0 || startInclusive,
				endInclusive:   idx == n-1 && endInclusive,
			}

			if !yield(arc) {
				return
			}
		}
	}
}

func insertArcsFromSeq(arcs []AngleRange, s iter.Seq[AngleRange]) {
	for i, arc := range xiter.Enumerate(s) {
		arcs[i] = arc
	}
}
