package math

import (
	"testing"
)

func TestVec4Add(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{4, 3, 2, 1}
	got := a.Add(b)
	want := Vec4{5, 5, 5, 5}
	if got != want {
		t.Errorf("Vec4.Add() = %v, want %v", got, want)
	}
}

func TestVec4Length(t *testing.T) {
	v := Vec4{1, 1, 1, 1}
	if got := v.Length(); got != 2 {
		t.Errorf("Vec4.Length() = %v, want 2", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	v := Vec4{3, 0, 4, 0}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec4.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec4{}).Normalize(); z != (Vec4{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVec4Mul(t *testing.T) {
	got := Vec4{1, 2, 3, 4}.Mul(Vec4{2, 2, 2, 1})
	want := Vec4{2, 4, 6, 4}
	if got != want {
		t.Errorf("Vec4.Mul() = %v, want %v", got, want)
	}
}

func TestVec4AxisAccess(t *testing.T) {
	v := Vec4{1, 2, 3, 4}
	for i, a := range []Axis{AxisX, AxisY, AxisZ, AxisW} {
		if v.Get(a) != float32(i+1) {
			t.Errorf("Get(%v) = %v", a, v.Get(a))
		}
	}
	if got := v.With(AxisW, 9); got != (Vec4{1, 2, 3, 9}) {
		t.Errorf("With(w) = %v", got)
	}
	if v.W != 4 {
		t.Error("With should not modify the receiver")
	}
}
