// Package gm (stands for geometry math) provides circular geometry primitives.
//
// Angle is a radian value on a circle of circumference 2π. Arithmetic on angles
// is never normalized, comparisons always are. AngleRange is an arc on that circle
// swept counter-clockwise from a start to an end angle, with each endpoint either
// open or closed. Arcs whose end lies numerically below their start wrap through 0.
//
// There is also a small 2d vector type named Vec to move between angles and points.
package gm
