// SPDX-License-Identifier: EPL-2.0

package scene

import "math"

// Vec3 is a cartesian position relative to the listener at the origin.
// X is right, Y is forward, Z is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Len is the Euclidean length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Chebyshev is the infinity-norm length, the distance to the nearest
// wall of the smallest origin-centered cube containing v.
func (v Vec3) Chebyshev() float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// RoomNorm projects v onto a cube shaped room with the listener at its
// center. Positions inside the room scale linearly with roomSize;
// positions outside are projected onto the walls, so every result lands
// in [-1,1] on each axis.
func RoomNorm(v Vec3, roomSize float64) Vec3 {
	chebyshev := v.Chebyshev()
	if chebyshev < roomSize {
		return v.Scale(1 / roomSize)
	}
	return v.Scale(1 / chebyshev)
}

// Lerp interpolates linearly between a and b. t is clamped to [0,1].
func Lerp(a, b Vec3, t float64) Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}
