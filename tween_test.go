package quat3d

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenEndpoints(t *testing.T) {

	start := NewQuaternionIdentity()
	end := NewQuaternionRotationY(math.Pi / 2)

	tween := NewRotationTween(start, end, 1, ease.Linear)

	rot, finished := tween.Update(0)
	if finished || !rot.Equals(start) {
		t.Fatal("tween at 0 gave", rot, "finished:", finished)
	}

	rot, finished = tween.Update(2)
	if !finished || !rot.Equals(end) {
		t.Fatal("tween past its duration gave", rot, "finished:", finished)
	}

}

func TestTweenLinearMatchesSlerp(t *testing.T) {

	start := NewQuaternionRotationX(0.2)
	end := NewQuaternionRotationZ(1.1)

	tween := NewRotationTween(start, end, 2, ease.Linear)

	rot, _ := tween.Update(1)

	// With linear easing, halfway through the duration is slerp at 0.5. The tween's
	// percentage is a float32, hence the wider margin.
	if !rot.EqualsWithMargin(start.Slerp(end, 0.5), 1e-6) {
		t.Fatal("linear tween at half duration gave", rot)
	}

}

func TestTweenReset(t *testing.T) {

	start := NewQuaternionIdentity()
	end := NewQuaternionRotationX(1)

	tween := NewRotationTween(start, end, 1, ease.InOutCubic)

	tween.Update(0.7)
	tween.Reset()

	rot, finished := tween.Update(0)
	if finished || !rot.Equals(start) {
		t.Fatal("reset tween gave", rot, "finished:", finished)
	}

}
