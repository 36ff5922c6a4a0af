package kernels

import (
	"math"
	"math/rand"
	"strconv"
	"testing"
)

const tolerance = 1e-12

func randSlice(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func TestWeightedDotKnownValues(t *testing.T) {
	w := []float64{0.2, 0.3, 0.5}
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	// 0.2*1*4 + 0.3*2*5 + 0.5*3*6 = 0.8 + 3 + 9 = 12.8
	want := 12.8

	if got := WeightedDot(w, a, b); math.Abs(got-want) > tolerance {
		t.Fatalf("WeightedDot = %v, want %v", got, want)
	}
}

func TestWeightedDotEmpty(t *testing.T) {
	if got := WeightedDot(nil, nil, nil); got != 0 {
		t.Fatalf("WeightedDot(nil) = %v, want 0", got)
	}
}

func TestWeightedDotLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()

	WeightedDot([]float64{1, 2}, []float64{1}, []float64{1, 2})
}

func TestUnrolledMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 17, 100, 1023} {
		w := randSlice(rng, n)
		a := randSlice(rng, n)
		b := randSlice(rng, n)

		got := weightedDotUnrolled(w, a, b)
		want := weightedDotScalar(w, a, b)

		// Reassociation error scales with n; a relative bound is enough.
		bound := tolerance * math.Max(1, math.Abs(want)) * float64(n+1)
		if math.Abs(got-want) > bound {
			t.Errorf("n=%d: unrolled = %v, scalar = %v", n, got, want)
		}
	}
}

func BenchmarkWeightedDot(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{64, 1024, 16384} {
		w := randSlice(rng, n)
		x := randSlice(rng, n)
		y := randSlice(rng, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(3 * n * 8))

			for range b.N {
				WeightedDot(w, x, y)
			}
		})
	}
}
