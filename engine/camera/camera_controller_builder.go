package camera

// CameraControllerOption is a functional option for configuring a
// cameraControllerImpl. Use the With* functions to create options.
type CameraControllerOption func(*cameraControllerImpl)

// WithBaseSpeed sets the translation rate in world units per second before
// the camera's movement sensitivity is applied.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithBaseSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.baseSpeed = speed
	}
}

// WithMouseSensitivity sets the cursor-pixels-to-radians conversion factor
// applied before the camera's rotation sensitivity.
//
// Parameters:
//   - sensitivity: radians per cursor pixel
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithInvertY inverts the vertical mouse axis.
//
// Parameters:
//   - invert: true to pitch down when the mouse moves up
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.invertY = invert
	}
}
