package camera

// CameraController defines the interface for the input layer that drives a
// Camera. The controller owns no pose state of its own: it accumulates raw
// key and mouse input between ticks and folds it into a single
// SetOrientation call per Update, scaled by the camera's rotation and
// movement sensitivities. When a tick carries no input the camera is left
// untouched, so it stays clean and the render loop skips the re-upload.
//
// Controls are fly-style: W/S move along the look-at axis, A/D along the
// side axis, Space/LeftShift along the up axis. Mouse deltas translate to
// pitch/yaw while looking is engaged (typically while a mouse button is
// held or the cursor is captured).
type CameraController interface {
	// Camera returns the driven camera.
	//
	// Returns:
	//   - Camera: the camera this controller mutates
	Camera() Camera

	// OnKeyDown records a key press. Unknown key codes are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key codes)
	OnKeyDown(keyCode uint32)

	// OnKeyUp records a key release. Unknown key codes are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code (see common key codes)
	OnKeyUp(keyCode uint32)

	// OnMouseMove records the cursor position. While looking is engaged the
	// delta from the previous position accumulates into pitch/yaw for the
	// next Update; otherwise only the reference position is refreshed.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	OnMouseMove(x, y int32)

	// SetLooking engages or disengages mouse look. Disengaging drops the
	// stored reference position so re-engaging does not produce a jump.
	//
	// Parameters:
	//   - active: true to engage mouse look
	SetLooking(active bool)

	// Update folds the accumulated input into the camera: movement scaled by
	// the camera's movement sensitivity, base speed, and dt; angles scaled
	// by the camera's rotation sensitivity and the mouse sensitivity.
	// A tick with no pressed keys and no accumulated mouse delta is a no-op.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous tick
	Update(dt float32)
}
