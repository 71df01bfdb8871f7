package core

import (
	"math"
	"strconv"

	"github.com/paulmach/orb"
)

// Vec3 is a world-space coordinate. Y is the vertical axis; X and Z span the
// ground plane.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for Vec3{x, y, z}.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// SqrMagnitude returns the squared length of v.
func (v Vec3) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.SqrMagnitude()) }

// Planar projects v onto the ground plane as an orb.Point{X, Z}.
// Height is dropped, matching how followers steer toward a target at their own height.
func (v Vec3) Planar() orb.Point { return orb.Point{v.X, v.Z} }

// Pos returns v itself so bare positions can serve as cursor waypoints.
func (v Vec3) Pos() Vec3 { return v }

// String formats v as "(x,y,z)" with the shortest exact decimal form.
func (v Vec3) String() string {
	return "(" + strconv.FormatFloat(v.X, 'g', -1, 64) +
		"," + strconv.FormatFloat(v.Y, 'g', -1, 64) +
		"," + strconv.FormatFloat(v.Z, 'g', -1, 64) + ")"
}

// Metric maps two positions to a non-negative cost.
type Metric func(a, b Vec3) float64

// SquaredEuclidean is |a-b|². It is the default step cost and heuristic.
// It is monotonic in Euclidean distance but is not itself a metric, so an
// A* driven by it is not guaranteed admissible on arbitrary graphs.
func SquaredEuclidean(a, b Vec3) float64 { return a.Sub(b).SqrMagnitude() }

// Euclidean is |a-b|.
func Euclidean(a, b Vec3) float64 { return a.Sub(b).Magnitude() }

// Manhattan is |dx|+|dy|+|dz|.
func Manhattan(a, b Vec3) float64 {
	d := a.Sub(b)

	return math.Abs(d.X) + math.Abs(d.Y) + math.Abs(d.Z)
}
