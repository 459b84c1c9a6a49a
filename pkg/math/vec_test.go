package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Homogeneous(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.Point()[3] != 1 {
		t.Error("Point should have w=1")
	}
	if v.Direction()[3] != 0 {
		t.Error("Direction should have w=0")
	}
	if v.Point().XYZ() != v {
		t.Error("XYZ should round-trip")
	}
}
