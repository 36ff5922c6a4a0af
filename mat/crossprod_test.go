package mat

import "testing"

func TestCrossprodLowerTriangle(t *testing.T) {
	// 2x2 column-major: col0 = {1,2}, col1 = {3,4}
	x := []float64{1, 2, 3, 4}
	c := make([]float64, 4)

	Crossprod(2, 2, 1, x, c)

	// XᵀX = [[5, 11], [11, 25]]; only the lower triangle is written.
	if c[0] != 5 || c[1] != 11 || c[3] != 25 {
		t.Fatalf("lower triangle = %v", c)
	}

	if c[2] != 0 {
		t.Fatalf("upper triangle written before Symmetrize: %v", c)
	}
}

func TestCrossprodAlpha(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	c := make([]float64, 4)

	Crossprod(2, 2, 0.5, x, c)

	if c[0] != 2.5 || c[1] != 5.5 || c[3] != 12.5 {
		t.Fatalf("scaled lower triangle = %v", c)
	}
}

func TestSymmetrizeMirrorsLower(t *testing.T) {
	c := []float64{
		1, 2, 3, // col 0
		0, 4, 5, // col 1
		0, 0, 6, // col 2
	}

	Symmetrize(3, c)

	for j := range 3 {
		for i := range 3 {
			if c[i+j*3] != c[j+i*3] {
				t.Fatalf("c[%d,%d] = %v, c[%d,%d] = %v", i, j, c[i+j*3], j, i, c[j+i*3])
			}
		}
	}
}

func TestSymmetrizeIdempotent(t *testing.T) {
	c := []float64{1, 2, 2, 4}

	Symmetrize(2, c)

	snapshot := make([]float64, len(c))
	copy(snapshot, c)

	Symmetrize(2, c)

	for i := range c {
		if c[i] != snapshot[i] {
			t.Fatalf("second Symmetrize changed c: %v vs %v", c, snapshot)
		}
	}
}

func TestCrossprodShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short output buffer")
		}
	}()

	Crossprod(2, 2, 1, []float64{1, 2, 3, 4}, make([]float64, 3))
}
