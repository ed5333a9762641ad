package quat3d

import (
	"fmt"
	"math"
)

// Much of the harder code taken with HEAVY appreciation from quartercastle: https://github.com/quartercastle/vector

// VecX represents a unit vector in the global X direction.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global Y direction.
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global Z direction.
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used by the rotation functions for axes and rotated points.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors seem to be most efficient when copied (so try not to store pointers to them if possible, as dereferencing pointers
// can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector, with the values of 0, 0, and 0.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector with all components inverted.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < StandardMargin {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Set sets the values in the Vector to the x, y, and z values provided.
func (vec Vector) Set(x, y, z float64) Vector {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Equals returns true if the two Vectors are close enough in all values, using the standard margin.
func (vec Vector) Equals(other Vector) bool {
	return vec.EqualsWithMargin(other, StandardMargin)
}

// EqualsWithMargin returns true if the two Vectors are close enough in all values, using the margin provided.
func (vec Vector) EqualsWithMargin(other Vector, margin float64) bool {

	if math.Abs(vec.X-other.X) > margin || math.Abs(vec.Y-other.Y) > margin || math.Abs(vec.Z-other.Z) > margin {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {

	if math.Abs(vec.X) > StandardMargin || math.Abs(vec.Y) > StandardMargin || math.Abs(vec.Z) > StandardMargin {
		return false
	}

	return true

}

// String returns a string representation of the Vector, like "{0, 1, 0}".
func (vec Vector) String() string {
	return fmt.Sprintf("{%.6g, %.6g, %.6g}", vec.X, vec.Y, vec.Z)
}
