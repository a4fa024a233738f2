package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecFromAngle(t *testing.T) {
	v := VecFromAngle(FromDegrees(90), 2)
	require.InDelta(t, 0, v.X, 1e-12)
	require.InDelta(t, 2, v.Y, 1e-12)

	v = VecFromAngle(Rad(math.Pi), 1)
	require.InDelta(t, -1, v.X, 1e-12)
	require.InDelta(t, 0, v.Y, 1e-12)
}

func TestVec_Angle(t *testing.T) {
	require.True(t, Vec{X: 1}.Angle().Equal(Rad(0)))
	require.True(t, Vec{Y: 1}.Angle().Equal(FromDegrees(90)))
	require.True(t, Vec{X: -1, Y: -1}.Angle().Equal(FromDegrees(225)))

	for range 1_000 {
		v := VecFromAngle(RandomAngle(), RandomIn(0.1, 5.0))

		roundTrip := VecFromAngle(v.Angle(), v.Length())
		require.InDelta(t, v.X, roundTrip.X, 1e-9)
		require.InDelta(t, v.Y, roundTrip.Y, 1e-9)
	}
}

func TestVec_ScreenOffsetAngle(t *testing.T) {
	center := Vec{X: 100, Y: 100}

	// screen coordinates grow downwards
	above := Vec{X: 100, Y: 40}.Sub(center).FlipY()
	require.InDelta(t, 60, above.Length(), 1e-12)
	require.True(t, above.Angle().Equal(FromDegrees(90)))

	left := Vec{X: 70, Y: 100}.Sub(center).FlipY()
	require.True(t, left.Angle().Equal(FromDegrees(180)))

	belowRight := Vec{X: 110, Y: 110}.Sub(center).FlipY()
	require.True(t, belowRight.Angle().Equal(FromDegrees(-45)))
}

func TestVec_Arithmetic(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: 3, Y: -1}

	require.Equal(t, Vec{X: 4, Y: 1}, a.Add(b))
	require.Equal(t, Vec{X: -2, Y: 3}, a.Sub(b))
	require.Equal(t, Vec{X: 2, Y: 4}, a.Mul(2))
	require.Equal(t, Vec{X: 1, Y: -2}, a.FlipY())
	require.Equal(t, 5.0, Vec{X: 3, Y: 4}.Length())
}
