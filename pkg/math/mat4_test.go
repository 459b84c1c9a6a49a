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
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"chain", Chain(Translate(1, 0, 0), Scale(2, 2, 2)), Vec3{1, 1, 1}, Vec3{3, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"Y 90 maps +X to -Z", RotateY(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"Z 90 maps +X to +Y", RotateZ(math.Pi / 2), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"X 90 maps +Y to +Z", RotateX(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"axis -X 90 maps +Z to +Y", RotateAxis(Vec3{-1, 0, 0}, math.Pi/2), Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"unnormalized axis", RotateAxis(Vec3{0, 5, 0}, math.Pi/2), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"zero axis is identity", RotateAxis(Vec3{}, 1), Vec3{1, 2, 3}, Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateAxisMatchesRotateY(t *testing.T) {
	a := RotateAxis(Vec3{0, 1, 0}, 0.7)
	b := RotateY(0.7)
	for i := range a {
		if abs(a[i]-b[i]) > 1e-6 {
			t.Fatalf("element %d: %f != %f", i, a[i], b[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math.Pi/4, 1, 1, 50)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	if got := m.TransformPoint(eye); got.Length() > 1e-5 {
		t.Errorf("eye should map to origin, got %v", got)
	}
	if got := m.TransformPoint(Vec3{}); got.Distance(Vec3{0, 0, -5}) > 1e-5 {
		t.Errorf("center should be in front of the camera, got %v", got)
	}
}

func TestMulVec4Direction(t *testing.T) {
	m := Translate(3, 4, 5)
	d := m.MulVec4(Vec3{1, 0, 0}.Direction())
	if d != (Vec4{1, 0, 0, 0}) {
		t.Errorf("directions ignore translation, got %v", d)
	}
	p := m.MulVec4(Vec3{1, 0, 0}.Point())
	if p != (Vec4{4, 4, 5, 1}) {
		t.Errorf("points are translated, got %v", p)
	}
}

func TestNormalMatrix(t *testing.T) {
	t.Run("rotation is its own normal matrix", func(t *testing.T) {
		m := RotateZ(0.3)
		n := m.NormalMatrix()
		u := m.Upper3x3()
		for i := range n {
			if abs(n[i]-u[i]) > 1e-5 {
				t.Fatalf("element %d: %f != %f", i, n[i], u[i])
			}
		}
	})

	t.Run("non-uniform scale keeps normals perpendicular", func(t *testing.T) {
		m := Scale(4, 1, 1)
		// Surface tangent along (1,-1,0) has normal (1,1,0).
		tangent := m.Upper3x3().MulVec3(Vec3{1, -1, 0})
		normal := m.NormalMatrix().MulVec3(Vec3{1, 1, 0})
		if d := tangent.Dot(normal); abs(d) > 1e-5 {
			t.Errorf("transformed normal not perpendicular: dot = %f", d)
		}
	})

	t.Run("translation is ignored", func(t *testing.T) {
		n := Translate(7, 8, 9).NormalMatrix()
		want := Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
		if n != want {
			t.Errorf("got %v, want %v", n, want)
		}
	})
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %f", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
