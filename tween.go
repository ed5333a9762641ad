package quat3d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween interpolates between a starting and ending rotation over a duration,
// running the interpolation percentage through an easing function. The heavy lifting is
// done by a gween.Tween driving the percentage and precomputed slerp parameters applying
// it, so per-frame updates stay cheap.
type RotationTween struct {
	Start, End Quaternion
	tween      *gween.Tween
	params     SlerpParameters
}

// NewRotationTween creates a new RotationTween rotating from start to end over the given
// duration (in seconds), eased by the easing function provided (i.e. ease.Linear,
// ease.InOutCubic, etc. from gween's ease package). Both rotations are assumed to be
// normalized. Easing functions that overshoot (e.g. ease.OutBack) are clamped at the
// rotation endpoints.
func NewRotationTween(start, end Quaternion, duration float32, easing ease.TweenFunc) *RotationTween {
	return &RotationTween{
		Start:  start,
		End:    end,
		tween:  gween.New(0, 1, duration, easing),
		params: NewSlerpParameters(start, end),
	}
}

// Update advances the tween by dt seconds and returns the current rotation, along with a
// boolean indicating if the tween has finished.
func (rt *RotationTween) Update(dt float32) (Quaternion, bool) {
	t, finished := rt.tween.Update(dt)
	return rt.Start.SlerpUsing(rt.End, rt.params, float64(t)), finished
}

// Reset rewinds the tween back to the starting rotation.
func (rt *RotationTween) Reset() {
	rt.tween.Reset()
}
