package quat3d

import (
	"math"
	"math/rand"
	"testing"
)

func TestVectorBasics(t *testing.T) {

	a := NewVector(1, 2, 3)
	b := NewVector(-2, 0.5, 4)

	if !a.Add(b).Sub(b).Equals(a) {
		t.Fatal("a + b - b is not a")
	}

	if d := a.Dot(b); d != 1*-2+2*0.5+3*4 {
		t.Fatal("dot product is", d)
	}

	if !VecX.Cross(VecY).Equals(VecZ) {
		t.Fatal("X cross Y is", VecX.Cross(VecY))
	}

	if !VecY.Cross(VecX).Equals(VecZ.Invert()) {
		t.Fatal("Y cross X is", VecY.Cross(VecX))
	}

	if m := NewVector(3, 4, 0).Magnitude(); m != 5 {
		t.Fatal("magnitude is", m)
	}

	if u := NewVector(0, -10, 0).Unit(); !u.Equals(VecY.Invert()) {
		t.Fatal("unit vector is", u)
	}

	if ms := NewVector(3, 4, 0).MagnitudeSquared(); ms != 25 {
		t.Fatal("squared magnitude is", ms)
	}

}

func TestVectorUnitZero(t *testing.T) {

	// Normalizing a zero vector leaves it alone rather than dividing by zero.
	zero := NewVectorZero()

	unit := zero.Unit()

	if math.IsNaN(unit.X) || !unit.IsZero() {
		t.Fatal("normalizing a zero vector gave", unit)
	}

}

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0, 0})
	}

}

func BenchmarkMathVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	// Main point of benchmarking
	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}
