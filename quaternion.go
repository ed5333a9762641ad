package quat3d

import (
	"fmt"
	"math"
)

// Quaternion is a rotation represented as a four-component hypercomplex number:
// W + X*i + Y*j + Z*k, with (X, Y, Z) being the vector part and W the scalar part.
// Nothing enforces that a Quaternion stays unit-length; operations that only make
// sense for rotations (RotateVector, ToAxisAngle, Slerp) assume the caller passes
// in normalized Quaternions and do not renormalize internally except where noted.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion with the specified x, y, z, and w components.
// The components are stored as given; no normalization or validation takes place.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// NewQuaternionZero creates a new "zero-ed out" Quaternion, with the values of 0, 0, 0, and 0 (for W).
// Note that a zeroed Quaternion is NOT a valid rotation (that would be the identity; see
// NewQuaternionIdentity) - it exists so you can cheaply create a Quaternion to fill in afterwards
// through Set*() calls or assignment, without paying for a construction you'd overwrite anyway.
func NewQuaternionZero() Quaternion {
	return Quaternion{}
}

// NewQuaternionIdentity creates a new identity Quaternion (0, 0, 0, 1), representing "no rotation".
func NewQuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// NewQuaternionFromAxisAngle creates a new Quaternion representing a rotation of angle radians
// about the axis provided. The axis is assumed to be already normalized; no internal
// renormalization is performed.
func NewQuaternionFromAxisAngle(axis Vector, angle float64) Quaternion {
	quat := Quaternion{}
	quat.SetFromAxisAngle(axis, angle)
	return quat
}

// NewQuaternionRotationX creates a new Quaternion representing a rotation of angle radians about the X axis.
func NewQuaternionRotationX(angle float64) Quaternion {
	quat := Quaternion{}
	quat.SetRotationX(angle)
	return quat
}

// NewQuaternionRotationY creates a new Quaternion representing a rotation of angle radians about the Y axis.
func NewQuaternionRotationY(angle float64) Quaternion {
	quat := Quaternion{}
	quat.SetRotationY(angle)
	return quat
}

// NewQuaternionRotationZ creates a new Quaternion representing a rotation of angle radians about the Z axis.
func NewQuaternionRotationZ(angle float64) Quaternion {
	quat := Quaternion{}
	quat.SetRotationZ(angle)
	return quat
}

// NewQuaternionFromTo creates a new Quaternion representing the minimal-angle rotation that
// rotates the direction src to the direction des. Both Vectors are assumed to be normalized.
func NewQuaternionFromTo(src, des Vector) Quaternion {
	quat := Quaternion{}
	quat.SetFromTo(src, des)
	return quat
}

// Clone returns a copy of the Quaternion. As Quaternions are value types, this is equivalent
// to plain assignment; it exists for method-chaining convenience.
func (quat Quaternion) Clone() Quaternion {
	return quat
}

// Negated returns a copy of the Quaternion with the vector part (X, Y, Z) negated and W
// left unchanged. Note that this is NOT full quaternion negation - only the vector part
// flips, which makes the result the conjugate. For a full sign flip of all four
// components, negate them directly.
func (quat Quaternion) Negated() Quaternion {
	return quat.Conjugate()
}

// Conjugate returns the conjugate of the Quaternion - the vector part negated, W unchanged.
// For unit Quaternions the conjugate is also the inverse rotation.
func (quat Quaternion) Conjugate() Quaternion {
	quat.X = -quat.X
	quat.Y = -quat.Y
	quat.Z = -quat.Z
	return quat
}

// Add returns a copy of the calling Quaternion, added together componentwise with the other Quaternion provided.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Sub returns a copy of the calling Quaternion, with the other Quaternion subtracted from it componentwise.
func (quat Quaternion) Sub(other Quaternion) Quaternion {
	quat.X -= other.X
	quat.Y -= other.Y
	quat.Z -= other.Z
	quat.W -= other.W
	return quat
}

// Mult returns the Hamilton product of the calling Quaternion and the other Quaternion
// provided (calling Quaternion on the left). Quaternion multiplication is not commutative;
// for unit Quaternions acting on vectors through RotateVector, quat.Mult(other) represents
// applying other's rotation first and quat's rotation second.
func (quat Quaternion) Mult(other Quaternion) Quaternion {

	x1, y1, z1, w1 := quat.X, quat.Y, quat.Z, quat.W
	x2, y2, z2, w2 := other.X, other.Y, other.Z, other.W

	quat.X = w1*x2 + x1*w2 + y1*z2 - z1*y2
	quat.Y = w1*y2 + y1*w2 + z1*x2 - x1*z2
	quat.Z = w1*z2 + z1*w2 + x1*y2 - y1*x2
	quat.W = w1*w2 - x1*x2 - y1*y2 - z1*z2

	return quat

}

// Div returns the calling Quaternion divided by the other Quaternion provided, defined as
// quat.Mult(other.Inverse()). Dividing by a zero (or near-zero) magnitude Quaternion is a
// caller error; there is no guard, and the result will contain NaN or Inf values.
func (quat Quaternion) Div(other Quaternion) Quaternion {
	return quat.Mult(other.Inverse())
}

// Inverse returns the inverse of the Quaternion - the conjugate divided by the squared
// magnitude. For a zero Quaternion the result is NaN-valued; callers are responsible for
// ensuring the magnitude is non-negligible.
func (quat Quaternion) Inverse() Quaternion {
	conj := quat.Conjugate()
	magSq := quat.MagnitudeSquared()
	conj.X /= magSq
	conj.Y /= magSq
	conj.Z /= magSq
	conj.W /= magSq
	return conj
}

// Dot returns the four-component dot product of the calling Quaternion and the other Quaternion provided.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Quaternion; this is faster than Magnitude() as it avoids using math.Sqrt().
func (quat Quaternion) MagnitudeSquared() float64 {
	return quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z + quat.W*quat.W
}

// Unit returns a copy of the Quaternion, normalized (set to be of unit length).
// Normalizing a zero Quaternion divides by zero; the result will be NaN-valued.
func (quat Quaternion) Unit() Quaternion {
	quat.Normalize()
	return quat
}

// RotateVector rotates the given Vector by the rotation the unit Quaternion represents,
// returning the rotated copy (the q v q⁻¹ sandwich, expanded).
func (quat Quaternion) RotateVector(vec Vector) Vector {
	qv := NewVector(quat.X, quat.Y, quat.Z)
	cross := qv.Cross(vec)
	// v + 2w(qv x v) + 2qv x (qv x v)
	return vec.Add(cross.Scale(2 * quat.W)).Add(qv.Scale(2).Cross(cross))
}

// ToAxisAngle extracts the rotation the unit Quaternion represents as an axis Vector and an
// angle in radians (the inverse of SetFromAxisAngle). At the zero-rotation singularity
// (W ≈ ±1, vector part near zero) any axis is valid, so the X axis is returned along with the
// (near-zero) angle.
func (quat Quaternion) ToAxisAngle() (Vector, float64) {

	w := clamp(quat.W, -1, 1)
	angle := 2 * math.Acos(w)

	s := math.Sqrt(1 - w*w) // sin(angle / 2)
	if s < StandardMargin {
		return VecX, angle
	}

	return NewVector(quat.X/s, quat.Y/s, quat.Z/s), angle

}

// Equals returns true if the two Quaternions are close enough in all values, using the standard margin.
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat.EqualsWithMargin(other, StandardMargin)
}

// EqualsWithMargin returns true if the two Quaternions are close enough in all values, using the margin provided.
// Quaternion equality is always approximate; exact floating-point comparison is never the right call here.
func (quat Quaternion) EqualsWithMargin(other Quaternion, margin float64) bool {

	if math.Abs(quat.X-other.X) > margin ||
		math.Abs(quat.Y-other.Y) > margin ||
		math.Abs(quat.Z-other.Z) > margin ||
		math.Abs(quat.W-other.W) > margin {
		return false
	}

	return true

}

// IsZero returns true if all four components are extremely close to 0. A zero Quaternion is
// not a valid rotation (see NewQuaternionZero).
func (quat Quaternion) IsZero() bool {

	if math.Abs(quat.X) > StandardMargin ||
		math.Abs(quat.Y) > StandardMargin ||
		math.Abs(quat.Z) > StandardMargin ||
		math.Abs(quat.W) > StandardMargin {
		return false
	}

	return true

}

// String returns a string representation of the Quaternion, like "{0, 0, 0, w: 1}".
func (quat Quaternion) String() string {
	return fmt.Sprintf("{%.6g, %.6g, %.6g, w: %.6g}", quat.X, quat.Y, quat.Z, quat.W)
}

// Set sets the Quaternion's components to the x, y, z, and w values provided, returning the
// Quaternion for chaining.
func (quat *Quaternion) Set(x, y, z, w float64) *Quaternion {
	quat.X = x
	quat.Y = y
	quat.Z = z
	quat.W = w
	return quat
}

// SetIdentity resets the Quaternion to the identity rotation (0, 0, 0, 1), returning the
// Quaternion for chaining.
func (quat *Quaternion) SetIdentity() *Quaternion {
	return quat.Set(0, 0, 0, 1)
}

// SetAdd adds the other Quaternion into the calling one componentwise, returning the
// Quaternion for chaining.
func (quat *Quaternion) SetAdd(other Quaternion) *Quaternion {
	*quat = quat.Add(other)
	return quat
}

// SetSub subtracts the other Quaternion from the calling one componentwise, returning the
// Quaternion for chaining.
func (quat *Quaternion) SetSub(other Quaternion) *Quaternion {
	*quat = quat.Sub(other)
	return quat
}

// SetMult sets the calling Quaternion to the Hamilton product of its old value (left operand)
// and the other Quaternion provided (right operand), returning the Quaternion for chaining.
func (quat *Quaternion) SetMult(other Quaternion) *Quaternion {
	*quat = quat.Mult(other)
	return quat
}

// SetDiv sets the calling Quaternion to its old value divided by the other Quaternion
// provided, returning the Quaternion for chaining. See Div for the zero-magnitude caveat.
func (quat *Quaternion) SetDiv(other Quaternion) *Quaternion {
	*quat = quat.Div(other)
	return quat
}

// Normalize normalizes the Quaternion in place (sets it to be of unit length), returning the
// Quaternion for chaining. Normalizing a zero Quaternion divides by zero; the result will be
// NaN-valued.
func (quat *Quaternion) Normalize() *Quaternion {
	m := quat.Magnitude()
	quat.X /= m
	quat.Y /= m
	quat.Z /= m
	quat.W /= m
	return quat
}

// SetFromAxisAngle sets the Quaternion to a unit Quaternion representing a rotation of angle
// radians about the axis provided, using the half-angle convention
// ((axis * sin(angle/2)), cos(angle/2)). The axis is assumed to be already normalized; no
// internal renormalization is performed. Returns the Quaternion for chaining.
func (quat *Quaternion) SetFromAxisAngle(axis Vector, angle float64) *Quaternion {
	s := math.Sin(angle / 2)
	return quat.Set(axis.X*s, axis.Y*s, axis.Z*s, math.Cos(angle/2))
}

// SetRotationX sets the Quaternion to a unit Quaternion representing a rotation of angle
// radians about the X axis, returning the Quaternion for chaining. This is a specialization
// of SetFromAxisAngle for the (1, 0, 0) axis that skips the multiplies by zero.
func (quat *Quaternion) SetRotationX(angle float64) *Quaternion {
	return quat.Set(math.Sin(angle/2), 0, 0, math.Cos(angle/2))
}

// SetRotationY sets the Quaternion to a unit Quaternion representing a rotation of angle
// radians about the Y axis, returning the Quaternion for chaining.
func (quat *Quaternion) SetRotationY(angle float64) *Quaternion {
	return quat.Set(0, math.Sin(angle/2), 0, math.Cos(angle/2))
}

// SetRotationZ sets the Quaternion to a unit Quaternion representing a rotation of angle
// radians about the Z axis, returning the Quaternion for chaining.
func (quat *Quaternion) SetRotationZ(angle float64) *Quaternion {
	return quat.Set(0, 0, math.Sin(angle/2), math.Cos(angle/2))
}

// SetFromTo sets the Quaternion to the minimal-angle rotation that rotates the direction src
// to the direction des, returning the Quaternion for chaining. Both Vectors are assumed to be
// normalized. The rotation axis is the normalized cross product of the two, with the angle
// recovered through the (clamped) dot product. When the Vectors are parallel the cross
// product degenerates to zero length, so parallel inputs produce the identity and
// anti-parallel inputs produce a 180 degree rotation about an arbitrary axis orthogonal
// to src.
func (quat *Quaternion) SetFromTo(src, des Vector) *Quaternion {

	dot := clamp(src.Dot(des), -1, 1)
	axis := src.Cross(des)

	if axis.MagnitudeSquared() < StandardMargin {

		if dot > 0 {
			// Identical directions
			return quat.SetIdentity()
		}

		// Opposite directions; any axis orthogonal to src works
		if math.Abs(src.X) > math.Abs(src.Z) {
			axis = NewVector(-src.Y, src.X, 0)
		} else {
			axis = NewVector(0, -src.Z, src.Y)
		}

		return quat.SetFromAxisAngle(axis.Unit(), math.Pi)

	}

	return quat.SetFromAxisAngle(axis.Unit(), math.Acos(dot))

}
