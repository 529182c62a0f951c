package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if m.Det() != 1 {
		t.Errorf("Identity det = %f, want 1", m.Det())
	}
}

func TestAtSetColumnMajor(t *testing.T) {
	var m Mat4
	m.Set(1, 3, 7)
	if m[13] != 7 {
		t.Errorf("Set(1,3) should write index 13, got %v", m)
	}
	if m.At(1, 3) != 7 {
		t.Errorf("At(1,3) = %f, want 7", m.At(1, 3))
	}
	if c := m.Col(3); c != (Vec4{0, 7, 0, 0}) {
		t.Errorf("Col(3) = %v", c)
	}
}

func TestMulIdentity(t *testing.T) {
	m := PlaneRotation(AxisX, AxisW, 0.7)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulVec4Identity(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	if got := Identity().MulVec4(v); got != v {
		t.Errorf("I*v = %v, want %v", got, v)
	}
}

func TestPlaneRotation90(t *testing.T) {
	tests := []struct {
		a, b Axis
		in   Vec4
		want Vec4
	}{
		{AxisX, AxisY, Vec4{1, 0, 0, 0}, Vec4{0, 1, 0, 0}},
		{AxisX, AxisZ, Vec4{1, 0, 0, 0}, Vec4{0, 0, 1, 0}},
		{AxisY, AxisZ, Vec4{0, 1, 0, 0}, Vec4{0, 0, 1, 0}},
		{AxisX, AxisW, Vec4{1, 0, 0, 0}, Vec4{0, 0, 0, 1}},
		{AxisY, AxisW, Vec4{0, 1, 0, 0}, Vec4{0, 0, 0, 1}},
		{AxisZ, AxisW, Vec4{0, 0, 1, 0}, Vec4{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+tt.b.String(), func(t *testing.T) {
			m := PlaneRotation(tt.a, tt.b, float32(math.Pi/2))
			got := m.MulVec4(tt.in)
			if !got.ApproxEqual(tt.want, 1e-6) {
				t.Errorf("rotate %v: got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlaneRotationLeavesOtherAxes(t *testing.T) {
	m := PlaneRotation(AxisX, AxisY, 1.1)
	for _, v := range []Vec4{{0, 0, 1, 0}, {0, 0, 0, 1}} {
		if got := m.MulVec4(v); !got.ApproxEqual(v, 1e-6) {
			t.Errorf("xy rotation moved %v to %v", v, got)
		}
	}
}

func TestPlaneRotationSameAxis(t *testing.T) {
	if m := PlaneRotation(AxisZ, AxisZ, 1); m != Identity() {
		t.Errorf("degenerate plane should give identity, got %v", m)
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	r := PlaneRotation(AxisY, AxisW, 0.4).Mul(PlaneRotation(AxisX, AxisZ, -1.3))
	p := r.Transpose().Mul(r)
	if !p.ApproxEqual(Identity(), 1e-6) {
		t.Errorf("R^T R != I: %v", p)
	}
}

func TestTranspose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	tr := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if tr.At(r, c) != m.At(c, r) {
				t.Fatalf("transpose mismatch at (%d,%d)", r, c)
			}
		}
	}
}

func TestDet(t *testing.T) {
	// diag(2, 3, 4, 5)
	m := Mat4{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	}
	if got := m.Det(); got != 120 {
		t.Errorf("Det(diag) = %f, want 120", got)
	}

	// Swapping two columns flips the sign.
	swap := Mat4{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if got := swap.Det(); got != -1 {
		t.Errorf("Det(swap) = %f, want -1", got)
	}

	if got := PlaneRotation(AxisZ, AxisW, 0.9).Det(); abs(got-1) > 1e-6 {
		t.Errorf("Det(rotation) = %f, want 1", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
