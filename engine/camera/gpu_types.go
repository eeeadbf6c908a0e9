package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraRecordSource is the canonical WGSL definition of the CameraRecord
// struct consumed by the ray-generation compute kernel.
// Matches GPUCameraRecord layout exactly (80 bytes, std430 aligned).
//
//go:embed assets/camera_record.wgsl
var GPUCameraRecordSource string

// GPUCameraRecord is the GPU-aligned representation of the camera uniform
// buffer read by the ray-generation kernel. Rays are generated in view space
// on the device; the kernel uses the basis vectors and the view plane
// distance to turn them into world-space rays.
// Matches the WGSL CameraRecord struct layout exactly (see GPUCameraRecordSource).
// Size: 80 bytes (std430 / WGSL aligned).
type GPUCameraRecord struct {
	Eye           [4]float32 // offset  0: world-space camera position (vec4<f32>, w = 1)
	Side          [4]float32 // offset 16: side basis vector (vec4<f32>, w = 0)
	Up            [4]float32 // offset 32: up basis vector (vec4<f32>, w = 0)
	LookAt        [4]float32 // offset 48: look-at basis vector (vec4<f32>, w = 0)
	ViewPlaneDist float32    // offset 64: distance from eye to the view plane (f32)
	_pad          [3]float32 // offset 68: padding to 80 bytes
}

// Size returns the size of the GPUCameraRecord struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCameraRecord) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraRecord struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraRecord) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Eye[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Side[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Up[i]))
		binary.LittleEndian.PutUint32(buf[48+i*4:], math.Float32bits(g.LookAt[i]))
	}
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(g.ViewPlaneDist))
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[68+i*4:], 0) // _pad
	}
	return buf
}
