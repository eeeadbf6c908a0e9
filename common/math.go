// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain
// math helpers and data-types shared between the camera, the window layer, and the GPU upload path.
package common

import (
	"math"
	"unsafe"
)

// Vec4 is a homogeneous 4-component vector. Directions carry w = 0, points
// carry w = 1, matching the layout the ray-generation kernel expects.
type Vec4 = [4]float32

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Radians converts an angle in degrees to radians.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func Radians(degrees float32) float32 {
	return degrees * (math.Pi / 180.0)
}

// Dot4 returns the dot product of the xyz components of two vectors.
// The w components are ignored so directions and points mix safely.
//
// Parameters:
//   - a, b: the vectors to multiply
//
// Returns:
//   - float32: the dot product a.xyz · b.xyz
func Dot4(a, b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product of the xyz components of two vectors.
// The result is a direction (w = 0).
//
// Parameters:
//   - a, b: the vectors to cross
//
// Returns:
//   - Vec4: a × b with w = 0
func Cross(a, b Vec4) Vec4 {
	return Vec4{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

// Normalize4 returns the input vector scaled to unit length over its xyz
// components. The w component is preserved. A zero-length input is returned
// unchanged rather than producing NaNs.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - Vec4: the unit-length vector
func Normalize4(v Vec4) Vec4 {
	len2 := float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if len2 == 0 {
		return v
	}
	invLen := 1.0 / float32(math.Sqrt(len2))
	return Vec4{v[0] * invLen, v[1] * invLen, v[2] * invLen, v[3]}
}

// RotateAxis rotates the direction v about the unit axis k by angle radians
// using the Rodrigues rotation formula:
//
//	v' = v·cosθ + (k × v)·sinθ + k·(k·v)·(1 − cosθ)
//
// The axis must be unit length; the w component of v is preserved.
//
// Parameters:
//   - v: the vector to rotate
//   - k: the unit-length rotation axis
//   - angle: the rotation angle in radians
//
// Returns:
//   - Vec4: the rotated vector
func RotateAxis(v, k Vec4, angle float32) Vec4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	kv := Cross(k, v)
	kd := Dot4(k, v) * (1 - c)
	return Vec4{
		v[0]*c + kv[0]*s + k[0]*kd,
		v[1]*c + kv[1]*s + k[1]*kd,
		v[2]*c + kv[2]*s + k[2]*kd,
		v[3],
	}
}

// ComposeViewToWorld writes the view-to-world matrix whose columns are
// [side, up, lookAt, eye] into out. The matrix is stored in column-major
// order, so each input vector occupies four consecutive elements.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - side, up, lookAt: the camera basis vectors (w = 0)
//   - eye: the camera position (w = 1)
func ComposeViewToWorld(out []float32, side, up, lookAt, eye Vec4) {
	copy(out[0:4], side[:])
	copy(out[4:8], up[:])
	copy(out[8:12], lookAt[:])
	copy(out[12:16], eye[:])
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
