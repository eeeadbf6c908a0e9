package camera

import "github.com/asdlei99/Yune/common"

// CameraBuilderOption is a functional option for configuring a cameraImpl.
// Use the With* functions to create options.
type CameraBuilderOption func(*cameraImpl)

// WithFOV sets the vertical field of view in degrees. Values must lie in
// (0, 180); values outside that range produce an invalid or infinite view
// plane distance. The field of view cannot change after construction.
//
// Parameters:
//   - fov: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFOV(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yFOV = fov
	}
}

// WithRotationSpeed sets the rotation sensitivity. Expected range [0, 1],
// values closer to 0 give a smoother and slower rotation.
//
// Parameters:
//   - speed: the rotation sensitivity
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithRotationSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotationSpeed = speed
	}
}

// WithMovementSpeed sets the movement sensitivity. Expected range [0, 1],
// values closer to 0 give a smoother and slower movement.
//
// Parameters:
//   - speed: the movement sensitivity
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithPose sets the initial camera pose from caller-supplied vectors. Like
// SetViewMatrix the vectors are stored verbatim, so the caller must supply
// an orthonormal right-handed basis.
//
// Parameters:
//   - side, up, lookAt: the orthonormal basis vectors (w = 0)
//   - eye: the camera position (w = 1)
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithPose(side, up, lookAt, eye common.Vec4) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.side = side
		c.up = up
		c.lookAt = lookAt
		c.eye = eye
	}
}
