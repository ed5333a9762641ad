package quat3d

import "math"

// Above this |dot| value, two rotations are so close together that the sin(theta)
// denominator in the slerp ratios can't be trusted, and interpolation falls back to
// normalized linear blending.
const slerpLerpThreshold = 0.9995

// SlerpParameters holds the values shared by every spherical interpolation between the
// same fixed pair of Quaternions - the pair's dot product, the angle between them, and the
// reciprocal of that angle's sine. When interpolating repeatedly between the same two
// rotations with only the percentage varying (keyframe sampling, tweening), precomputing
// these once through NewSlerpParameters and passing them to SlerpUsing skips the
// trigonometric setup on every call.
type SlerpParameters struct {
	Dot           float64 // Four-component dot product of the pair, sign preserved
	Theta         float64 // Angle between the pair, from the magnitude of Dot
	RecipSinTheta float64 // 1 / sin(Theta); 0 when unused (pair nearly identical)
}

// NewSlerpParameters precomputes the shared interpolation parameters for the pair of
// Quaternions provided. The pair is assumed to be normalized.
func NewSlerpParameters(q1, q2 Quaternion) SlerpParameters {

	dot := q1.Dot(q2)

	if math.Abs(dot) > slerpLerpThreshold {
		// sin(theta) is too small to divide by; SlerpUsing will blend linearly instead.
		return SlerpParameters{Dot: dot}
	}

	theta := math.Acos(math.Abs(dot))

	return SlerpParameters{
		Dot:           dot,
		Theta:         theta,
		RecipSinTheta: 1 / math.Sin(theta),
	}

}

// Slerp spherically interpolates between the calling Quaternion and the other Quaternion
// provided by the given percentage, which is clamped to the range of [0, 1]. Both
// Quaternions are assumed to be normalized. Interpolation always takes the shorter arc: as
// q and its full negation represent the same rotation, the other Quaternion's contribution
// is flipped in sign whenever the pair's dot product is negative. When the two rotations
// are nearly identical, the components are blended linearly and the result normalized
// instead, avoiding a division by a vanishing sin(theta).
func (quat Quaternion) Slerp(other Quaternion, percent float64) Quaternion {
	return quat.SlerpUsing(other, NewSlerpParameters(quat, other), percent)
}

// SlerpUsing performs the factor-application step of Slerp with parameters precomputed
// through NewSlerpParameters for this exact pair of Quaternions. For the same inputs, the
// result is identical to Slerp (Slerp is implemented with it); the precomputed form only
// skips the per-call trigonometric setup. Passing parameters computed for a different pair
// produces garbage.
func (quat Quaternion) SlerpUsing(other Quaternion, params SlerpParameters, percent float64) Quaternion {

	percent = clamp(percent, 0, 1)

	flipSign := 1.0
	if params.Dot < 0 {
		// Shorter-arc convention; -other is the same rotation as other.
		flipSign = -1
	}

	if math.Abs(params.Dot) > slerpLerpThreshold {

		ratioA := 1 - percent
		ratioB := percent * flipSign

		result := NewQuaternion(
			quat.X*ratioA+other.X*ratioB,
			quat.Y*ratioA+other.Y*ratioB,
			quat.Z*ratioA+other.Z*ratioB,
			quat.W*ratioA+other.W*ratioB,
		)
		result.Normalize()
		return result

	}

	ratioA := math.Sin((1-percent)*params.Theta) * params.RecipSinTheta
	ratioB := math.Sin(percent*params.Theta) * params.RecipSinTheta * flipSign

	return NewQuaternion(
		quat.X*ratioA+other.X*ratioB,
		quat.Y*ratioA+other.Y*ratioB,
		quat.Z*ratioA+other.Z*ratioB,
		quat.W*ratioA+other.W*ratioB,
	)

}
