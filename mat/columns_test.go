package mat

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestColView(t *testing.T) {
	// 3x2 column-major: col0 = {1,2,3}, col1 = {4,5,6}
	x := []float64{1, 2, 3, 4, 5, 6}

	col := Col(x, 3, 1)
	if len(col) != 3 || col[0] != 4 || col[2] != 6 {
		t.Fatalf("unexpected column view: %#v", col)
	}

	col[1] = 50
	if x[4] != 50 {
		t.Fatal("column view does not alias the matrix")
	}
}

func TestColMeans(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	means := make([]float64, 2)

	ColMeans(3, 2, x, means)

	if !almostEqual(means[0], 2, tolerance) || !almostEqual(means[1], 5, tolerance) {
		t.Fatalf("means = %v, want [2 5]", means)
	}
}

func TestCenterColumns(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	means := make([]float64, 2)

	ColMeans(3, 2, x, means)
	CenterColumns(3, 2, x, means)

	want := []float64{-1, 0, 1, -1, 0, 1}
	for i := range want {
		if !almostEqual(x[i], want[i], tolerance) {
			t.Fatalf("centered x = %v, want %v", x, want)
		}
	}
}

func TestStandardizeColumns(t *testing.T) {
	x := []float64{1, 2, 3, 10, 20, 30}
	means := make([]float64, 2)
	sds := make([]float64, 2)

	StandardizeColumns(3, 2, x, means, sds)

	if !almostEqual(means[0], 2, tolerance) || !almostEqual(means[1], 20, tolerance) {
		t.Fatalf("means = %v, want [2 20]", means)
	}

	if !almostEqual(sds[0], 1, tolerance) || !almostEqual(sds[1], 10, tolerance) {
		t.Fatalf("sds = %v, want [1 10]", sds)
	}

	// Both standardized columns must be identical: (-1, 0, 1).
	want := []float64{-1, 0, 1, -1, 0, 1}
	for i := range want {
		if !almostEqual(x[i], want[i], tolerance) {
			t.Fatalf("standardized x = %v, want %v", x, want)
		}
	}
}

func TestStandardizeConstantColumnIsNonFinite(t *testing.T) {
	x := []float64{5, 5, 5}
	means := make([]float64, 1)
	sds := make([]float64, 1)

	StandardizeColumns(3, 1, x, means, sds)

	if sds[0] != 0 {
		t.Fatalf("sd of constant column = %v, want 0", sds[0])
	}

	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			t.Fatalf("standardized constant column contains finite value %v", v)
		}
	}
}

func TestCheckDimsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short matrix buffer")
		}
	}()

	ColMeans(3, 2, []float64{1, 2, 3}, make([]float64, 2))
}

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}

	out = EnsureLen(buf, 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}
}

func TestZeroAndCopyInto(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for _, v := range buf {
		if v != 0 {
			t.Fatalf("Zero left %v", buf)
		}
	}

	n := CopyInto(buf, []float64{7, 8})
	if n != 2 || buf[0] != 7 || buf[1] != 8 || buf[2] != 0 {
		t.Fatalf("CopyInto: n=%d buf=%v", n, buf)
	}
}
