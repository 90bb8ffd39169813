package geom

import (
	"math"
	"testing"
)

func TestInverseTranslation(t *testing.T) {
	mat := NewTranslateMatrix4(0, -0.5, 0)
	inv := mat.Inverse()
	if !near(inv[:], NewTranslateMatrix4(0, 0.5, 0)[:]) {
		t.Error("inverse: ", inv)
	}
	if !near(mat.Mul(inv)[:], NewMatrix4()[:]) {
		t.Error("m * m^-1 != I")
	}
}

func TestTRSMatrix(t *testing.T) {
	rot := NewQuaternionFromAxisAngle(NewVector3(0, 0, 1), math.Pi/2)
	mat := NewTRSMatrix4(NewVector3(1, 2, 3), rot, NewVector3(2, 2, 2))

	// scale, then rotate 90 degrees around Z, then translate.
	v := mat.ApplyTo(NewVector3(1, 0, 0))
	if !near3(v, NewVector3(1, 4, 3)) {
		t.Error("TRS: ", v)
	}

	if *NewTRSMatrix4(nil, nil, nil) != *NewMatrix4() {
		t.Error("empty TRS should be identity")
	}
}

func TestColumns(t *testing.T) {
	cols := NewTranslateMatrix4(4, 5, 6).Columns()
	if cols[3] != [4]Element{4, 5, 6, 1} {
		t.Error("translation column: ", cols[3])
	}
	if cols[0] != [4]Element{1, 0, 0, 0} {
		t.Error("first column: ", cols[0])
	}
}
