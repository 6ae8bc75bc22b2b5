package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
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
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestModelMatchesTranslateTimesRotation(t *testing.T) {
	pos := Vec3{3, 1, 6}
	rot := QuatFromEulerXYZ(0.4, 1.1, -2.3)

	got := Model(pos, rot)
	want := Translate(pos).Mul(rot.ToMat4())
	for i := range got {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("Model element %d: got %f, want %f", i, got[i], want[i])
		}
	}

	oracle := mgl32.Translate3D(pos.X, pos.Y, pos.Z).Mul4(
		mgl32.AnglesToQuat(0.4, 1.1, -2.3, mgl32.XYZ).Mat4())
	for i := range got {
		if abs(got[i]-oracle[i]) > 1e-5 {
			t.Fatalf("Model element %d: got %f, mgl32 %f", i, got[i], oracle[i])
		}
	}
}

func TestModelRotatesThenTranslates(t *testing.T) {
	m := Model(Vec3{0, 1, 0}, QuatRotationY(float32(math.Pi/2)))
	got := m.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) turns to (0,0,-1) then moves up by one.
	if !got.ApproxEqual(Vec3{0, 1, -1}, 1e-5) {
		t.Errorf("Model point: got %v, want (0, 1, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	m := Perspective(fov, 1.0, 0.1, 100.0)

	// Should be a valid projection matrix (not identity)
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

	oracle := mgl32.Perspective(fov, 1.0, 0.1, 100.0)
	for i := range m {
		if abs(m[i]-oracle[i]) > 1e-5 {
			t.Errorf("Perspective element %d: got %f, mgl32 %f", i, m[i], oracle[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{-2, 2.5, 5}
	center := Vec3{0, 1, 0}

	m := LookAt(eye, center, UnitY)
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye lands on the view-space origin.
	if got := m.TransformPoint(eye); !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt eye in view space: got %v, want origin", got)
	}

	oracle := mgl32.LookAtV(mgl32.Vec3{-2, 2.5, 5}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0})
	for i := range m {
		if abs(m[i]-oracle[i]) > 1e-5 {
			t.Errorf("LookAt element %d: got %f, mgl32 %f", i, m[i], oracle[i])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
