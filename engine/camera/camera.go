package camera

import (
	"math"

	"github.com/asdlei99/Yune/common"
)

// worldUp is the fixed vertical axis yaw rotates around. Yawing about the
// world axis instead of the camera's own up vector keeps roll from
// accumulating under repeated pitch+yaw input.
var worldUp = common.Vec4{0, 1, 0, 0}

type cameraImpl struct {
	side   common.Vec4
	up     common.Vec4
	lookAt common.Vec4
	eye    common.Vec4

	viewToWorld [16]float32

	yFOV          float32
	viewPlaneDist float32

	rotationSpeed float32
	moveSpeed     float32

	changed bool
}

// Camera models a right-handed camera that drives ray generation for a
// physically based render pipeline. It owns an orthonormal basis
// (side/up/lookAt), the eye position, and the view-to-world transform the
// compute kernel uses to bring view-space ray directions into world space.
//
// Initially side is +X, up is +Y, and lookAt is -Z. The view plane sits at
// ViewPlaneDist along -lookAt, derived from the vertical field of view;
// larger FOV values produce a smaller view plane distance and vice versa.
//
// The camera is single-threaded by contract: the input layer mutates it and
// the render loop reads it within one serialized frame section. It never
// clears its own changed flag - the consumer acknowledges an upload with
// ClearChanged.
type Camera interface {
	// Side returns the camera's side basis vector (w = 0).
	//
	// Returns:
	//   - common.Vec4: the unit side vector
	Side() common.Vec4

	// Up returns the camera's up basis vector (w = 0).
	//
	// Returns:
	//   - common.Vec4: the unit up vector
	Up() common.Vec4

	// LookAt returns the camera's look-at basis vector (w = 0).
	//
	// Returns:
	//   - common.Vec4: the unit look-at vector
	LookAt() common.Vec4

	// Eye returns the camera's world-space position (w = 1).
	//
	// Returns:
	//   - common.Vec4: the eye position
	Eye() common.Vec4

	// ViewToWorld returns the current view-to-world matrix as 16 floats
	// (column-major, columns [side, up, lookAt, eye]). It is rebuilt inside
	// every mutating operation and is therefore always consistent with the
	// basis accessors.
	//
	// Returns:
	//   - [16]float32: the view-to-world matrix
	ViewToWorld() [16]float32

	// FOV returns the vertical field of view in degrees. The field of view
	// is fixed at construction.
	//
	// Returns:
	//   - float32: vertical field of view in degrees
	FOV() float32

	// ViewPlaneDist returns the distance from the eye to the view plane
	// along -lookAt, derived from the vertical field of view as
	// 1 / tan(radians(fov) / 2).
	//
	// Returns:
	//   - float32: the view plane distance
	ViewPlaneDist() float32

	// RotationSpeed returns the rotation sensitivity in [0, 1]. The camera
	// never applies it itself; the input layer uses it as a multiplier when
	// producing pitch/yaw deltas.
	//
	// Returns:
	//   - float32: the rotation sensitivity
	RotationSpeed() float32

	// MovementSpeed returns the movement sensitivity in [0, 1]. Like
	// RotationSpeed it is only a multiplier for the input layer.
	//
	// Returns:
	//   - float32: the movement sensitivity
	MovementSpeed() float32

	// Changed reports whether the pose mutated since the last ClearChanged.
	// A true value means the device camera record is stale and needs a
	// re-upload.
	//
	// Returns:
	//   - bool: true if the pose changed since the last acknowledge
	Changed() bool

	// SetOrientation reorients and repositions the camera from one input
	// tick. Pitch rotates lookAt and up about the side vector; yaw rotates
	// the whole basis about the world vertical axis. The basis is
	// re-orthonormalized afterwards so floating-point drift stays bounded
	// over arbitrarily many calls. The eye is translated by dir, a
	// world-space step already scaled by the input layer.
	//
	// Angles are radians. Inputs are caller-guaranteed finite; there is no
	// failure path. Always marks the camera changed, even for all-zero input.
	//
	// Parameters:
	//   - dir: world-space translation step (w ignored)
	//   - pitch: rotation about the side vector in radians
	//   - yaw: rotation about the world vertical axis in radians
	SetOrientation(dir common.Vec4, pitch, yaw float32)

	// SetViewMatrix hard-sets the camera pose from caller-supplied vectors,
	// e.g. to restore a known pose. The vectors are stored verbatim - no
	// normalization or orthogonalization is performed, so the caller must
	// supply an already-orthonormal right-handed basis. Rebuilds the
	// view-to-world matrix and marks the camera changed.
	//
	// Parameters:
	//   - side, up, lookAt: the orthonormal basis vectors (w = 0)
	//   - eye: the camera position (w = 1)
	SetViewMatrix(side, up, lookAt, eye common.Vec4)

	// WriteBuffer copies the camera state into the caller-owned device
	// record handed to the ray-generation kernel. Pure write: it does not
	// clear the changed flag, since the caller may need to retry a failed
	// upload before acknowledging.
	//
	// Parameters:
	//   - rec: the device camera record to populate
	WriteBuffer(rec *GPUCameraRecord)

	// SetRotationSpeed sets the rotation sensitivity. Expected range [0, 1],
	// values closer to 0 give a smoother and slower rotation; out-of-range
	// values are stored verbatim. Does not mark the camera changed.
	//
	// Parameters:
	//   - speed: the rotation sensitivity
	SetRotationSpeed(speed float32)

	// SetMovementSpeed sets the movement sensitivity. Expected range [0, 1],
	// values closer to 0 give a smoother and slower movement; out-of-range
	// values are stored verbatim. Does not mark the camera changed.
	//
	// Parameters:
	//   - speed: the movement sensitivity
	SetMovementSpeed(speed float32)

	// ClearChanged acknowledges that the current pose has been consumed
	// (uploaded). Only the consumer of the device record should call this.
	ClearChanged()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin with the default basis
// (side +X, up +Y, lookAt -Z), a 60 degree vertical field of view, and
// default sensitivities (rotation 0.25, movement 0.3). The camera starts
// marked changed so the first frame always uploads state.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		side:          common.Vec4{1, 0, 0, 0},
		up:            common.Vec4{0, 1, 0, 0},
		lookAt:        common.Vec4{0, 0, -1, 0},
		eye:           common.Vec4{0, 0, 0, 1},
		yFOV:          60.0,
		rotationSpeed: 0.25,
		moveSpeed:     0.3,
		changed:       true,
	}
	for _, option := range options {
		option(c)
	}
	c.viewPlaneDist = 1.0 / float32(math.Tan(float64(common.Radians(c.yFOV))/2.0))
	c.rebuildViewToWorld()
	return c
}

func (c *cameraImpl) Side() common.Vec4 {
	return c.side
}

func (c *cameraImpl) Up() common.Vec4 {
	return c.up
}

func (c *cameraImpl) LookAt() common.Vec4 {
	return c.lookAt
}

func (c *cameraImpl) Eye() common.Vec4 {
	return c.eye
}

func (c *cameraImpl) ViewToWorld() [16]float32 {
	return c.viewToWorld
}

func (c *cameraImpl) FOV() float32 {
	return c.yFOV
}

func (c *cameraImpl) ViewPlaneDist() float32 {
	return c.viewPlaneDist
}

func (c *cameraImpl) RotationSpeed() float32 {
	return c.rotationSpeed
}

func (c *cameraImpl) MovementSpeed() float32 {
	return c.moveSpeed
}

func (c *cameraImpl) Changed() bool {
	return c.changed
}

func (c *cameraImpl) SetOrientation(dir common.Vec4, pitch, yaw float32) {
	if pitch != 0 {
		c.lookAt = common.RotateAxis(c.lookAt, c.side, pitch)
		c.up = common.RotateAxis(c.up, c.side, pitch)
	}
	if yaw != 0 {
		c.lookAt = common.RotateAxis(c.lookAt, worldUp, yaw)
		c.up = common.RotateAxis(c.up, worldUp, yaw)
		c.side = common.RotateAxis(c.side, worldUp, yaw)
	}

	// Re-derive the basis from lookAt and up so rounding errors from the
	// incremental rotations cannot accumulate into a skewed frame.
	c.lookAt = common.Normalize4(c.lookAt)
	c.side = common.Normalize4(common.Cross(c.lookAt, c.up))
	c.up = common.Cross(c.side, c.lookAt)

	c.eye[0] += dir[0]
	c.eye[1] += dir[1]
	c.eye[2] += dir[2]
	c.eye[3] = 1

	c.rebuildViewToWorld()
	c.changed = true
}

func (c *cameraImpl) SetViewMatrix(side, up, lookAt, eye common.Vec4) {
	c.side = side
	c.up = up
	c.lookAt = lookAt
	c.eye = eye
	c.rebuildViewToWorld()
	c.changed = true
}

func (c *cameraImpl) WriteBuffer(rec *GPUCameraRecord) {
	rec.Eye = c.eye
	rec.Side = c.side
	rec.Up = c.up
	rec.LookAt = c.lookAt
	rec.ViewPlaneDist = c.viewPlaneDist
}

func (c *cameraImpl) SetRotationSpeed(speed float32) {
	c.rotationSpeed = speed
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.moveSpeed = speed
}

func (c *cameraImpl) ClearChanged() {
	c.changed = false
}

// rebuildViewToWorld refreshes the cached matrix from the four vectors.
// Called by every mutating operation so the matrix is never stale.
func (c *cameraImpl) rebuildViewToWorld() {
	common.ComposeViewToWorld(c.viewToWorld[:], c.side, c.up, c.lookAt, c.eye)
}
