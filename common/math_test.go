package common

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < tolerance
}

func TestRadians(t *testing.T) {
	if got := Radians(180); !almostEqual(got, math.Pi) {
		t.Errorf("Radians(180) = %f, want %f", got, math.Pi)
	}
	if got := Radians(90); !almostEqual(got, math.Pi/2) {
		t.Errorf("Radians(90) = %f, want %f", got, math.Pi/2)
	}
}

func TestCross_RightHanded(t *testing.T) {
	x := Vec4{1, 0, 0, 0}
	y := Vec4{0, 1, 0, 0}

	z := Cross(x, y)
	want := Vec4{0, 0, 1, 0}
	for i := range 4 {
		if !almostEqual(z[i], want[i]) {
			t.Errorf("Cross(+X, +Y)[%d] = %f, want %f", i, z[i], want[i])
		}
	}
}

func TestCross_IgnoresW(t *testing.T) {
	a := Vec4{1, 0, 0, 1}
	b := Vec4{0, 1, 0, 1}
	if got := Cross(a, b); got[3] != 0 {
		t.Errorf("Cross result w = %f, want 0", got[3])
	}
}

func TestNormalize4(t *testing.T) {
	v := Normalize4(Vec4{3, 4, 0, 0})
	if !almostEqual(v[0], 0.6) || !almostEqual(v[1], 0.8) || !almostEqual(v[2], 0) {
		t.Errorf("Normalize4(3,4,0) = %v, want (0.6, 0.8, 0)", v)
	}

	// Zero vectors pass through instead of producing NaNs.
	z := Normalize4(Vec4{0, 0, 0, 1})
	if z != (Vec4{0, 0, 0, 1}) {
		t.Errorf("Normalize4(zero) = %v, want unchanged", z)
	}
}

func TestNormalize4_PreservesW(t *testing.T) {
	v := Normalize4(Vec4{0, 0, 2, 1})
	if v[3] != 1 {
		t.Errorf("Normalize4 w = %f, want 1", v[3])
	}
}

func TestRotateAxis_QuarterTurn(t *testing.T) {
	// -Z rotated a quarter turn about +Y lands on -X.
	v := RotateAxis(Vec4{0, 0, -1, 0}, Vec4{0, 1, 0, 0}, math.Pi/2)
	want := Vec4{-1, 0, 0, 0}
	for i := range 3 {
		if !almostEqual(v[i], want[i]) {
			t.Errorf("RotateAxis(-Z, +Y, pi/2)[%d] = %f, want %f", i, v[i], want[i])
		}
	}
}

func TestRotateAxis_PreservesLength(t *testing.T) {
	v := Normalize4(Vec4{0.3, -0.8, 0.5, 0})
	axis := Normalize4(Vec4{1, 2, -1, 0})
	for _, angle := range []float32{0.1, 1.0, 2.5, -0.7} {
		r := RotateAxis(v, axis, angle)
		len2 := Dot4(r, r)
		if math.Abs(float64(len2)-1) > 1e-5 {
			t.Errorf("RotateAxis(angle=%f) length^2 = %f, want 1", angle, len2)
		}
	}
}

func TestComposeViewToWorld_ColumnLayout(t *testing.T) {
	var m [16]float32
	side := Vec4{1, 2, 3, 0}
	up := Vec4{4, 5, 6, 0}
	lookAt := Vec4{7, 8, 9, 0}
	eye := Vec4{10, 11, 12, 1}
	ComposeViewToWorld(m[:], side, up, lookAt, eye)

	for i := range 4 {
		if m[i] != side[i] || m[4+i] != up[i] || m[8+i] != lookAt[i] || m[12+i] != eye[i] {
			t.Fatalf("column layout mismatch at element %d: %v", i, m)
		}
	}
}

func TestIdentity(t *testing.T) {
	m := []float32{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	Identity(m)
	for i := range 16 {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if m[i] != want {
			t.Errorf("Identity[%d] = %f, want %f", i, m[i], want)
		}
	}
}
