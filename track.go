package quat3d

// RotationKeyframe pairs a time (in seconds) with a rotation to hold at that time.
type RotationKeyframe struct {
	Time     float64
	Rotation Quaternion
}

// RotationTrack is an ordered series of rotation keyframes that can be sampled at any
// time to give a spherically-interpolated rotation. Sampling outside of the keyframe
// range clamps to the first / last keyframe. The interpolation parameters for each
// consecutive keyframe pair are cached, so repeatedly sampling the same track (the usual
// case when driving an animation) doesn't redo the trigonometric setup every frame.
type RotationTrack struct {
	Keyframes []RotationKeyframe
	params    []SlerpParameters
	dirty     bool
}

// NewRotationTrack creates a new empty RotationTrack.
func NewRotationTrack() *RotationTrack {
	return &RotationTrack{}
}

// AddKeyframe adds a keyframe with the given time (in seconds) and rotation to the track.
// Keyframes are kept sorted by time, so they may be added in any order.
func (track *RotationTrack) AddKeyframe(time float64, rotation Quaternion) {

	keyframe := RotationKeyframe{Time: time, Rotation: rotation}

	inserted := false
	for i, k := range track.Keyframes {
		if time < k.Time {
			track.Keyframes = append(track.Keyframes[:i], append([]RotationKeyframe{keyframe}, track.Keyframes[i:]...)...)
			inserted = true
			break
		}
	}

	if !inserted {
		track.Keyframes = append(track.Keyframes, keyframe)
	}

	track.dirty = true

}

// Length returns the time of the last keyframe in the track (in seconds), or 0 if the
// track is empty.
func (track *RotationTrack) Length() float64 {
	if len(track.Keyframes) == 0 {
		return 0
	}
	return track.Keyframes[len(track.Keyframes)-1].Time
}

// ValueAt samples the track at the given time (in seconds), spherically interpolating
// between the two keyframes surrounding it. Times before the first keyframe return the
// first keyframe's rotation, and times past the last keyframe return the last one's. An
// empty track returns the identity rotation.
func (track *RotationTrack) ValueAt(time float64) Quaternion {

	if len(track.Keyframes) == 0 {
		return NewQuaternionIdentity()
	}

	if track.dirty {
		track.rebuildParams()
	}

	if first := track.Keyframes[0]; time <= first.Time {
		return first.Rotation
	}

	if last := track.Keyframes[len(track.Keyframes)-1]; time >= last.Time {
		return last.Rotation
	}

	for i := 0; i < len(track.Keyframes)-1; i++ {

		first := track.Keyframes[i]
		last := track.Keyframes[i+1]

		if time >= first.Time && time < last.Time {
			t := (time - first.Time) / (last.Time - first.Time)
			return first.Rotation.SlerpUsing(last.Rotation, track.params[i], t)
		}

	}

	return track.Keyframes[len(track.Keyframes)-1].Rotation

}

func (track *RotationTrack) rebuildParams() {

	track.params = track.params[:0]

	for i := 0; i < len(track.Keyframes)-1; i++ {
		track.params = append(track.params, NewSlerpParameters(track.Keyframes[i].Rotation, track.Keyframes[i+1].Rotation))
	}

	track.dirty = false

}
