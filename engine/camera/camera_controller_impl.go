package camera

import (
	"github.com/asdlei99/Yune/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Key state is tracked as a pressed-set; mouse deltas accumulate between
// ticks and are consumed by Update.
type cameraControllerImpl struct {
	cam Camera

	keys map[uint32]bool

	looking    bool
	haveCursor bool
	lastX      int32
	lastY      int32

	pitchDelta float32
	yawDelta   float32

	// baseSpeed is the translation rate in world units per second before the
	// camera's movement sensitivity is applied.
	baseSpeed float32

	// mouseSensitivity converts cursor pixels to radians before the camera's
	// rotation sensitivity is applied.
	mouseSensitivity float32

	invertY bool
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a fly-style controller driving the given
// camera.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		cam:              cam,
		keys:             make(map[uint32]bool),
		baseSpeed:        10.0,
		mouseSensitivity: 0.005,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.cam
}

func (cc *cameraControllerImpl) OnKeyDown(keyCode uint32) {
	cc.keys[keyCode] = true
}

func (cc *cameraControllerImpl) OnKeyUp(keyCode uint32) {
	delete(cc.keys, keyCode)
}

func (cc *cameraControllerImpl) OnMouseMove(x, y int32) {
	if cc.looking && cc.haveCursor {
		dx := float32(x - cc.lastX)
		dy := float32(y - cc.lastY)
		if cc.invertY {
			dy = -dy
		}
		// Moving the mouse right yaws toward +X (negative angle about +Y);
		// moving it up (dy < 0 in window coordinates) pitches upward.
		cc.yawDelta -= dx * cc.mouseSensitivity
		cc.pitchDelta -= dy * cc.mouseSensitivity
	}
	cc.lastX = x
	cc.lastY = y
	cc.haveCursor = true
}

func (cc *cameraControllerImpl) SetLooking(active bool) {
	cc.looking = active
	if !active {
		cc.haveCursor = false
	}
}

func (cc *cameraControllerImpl) Update(dt float32) {
	var dir common.Vec4
	moved := false

	add := func(axis common.Vec4, sign float32) {
		dir[0] += axis[0] * sign
		dir[1] += axis[1] * sign
		dir[2] += axis[2] * sign
		moved = true
	}

	if cc.keys[common.KeyW] {
		add(cc.cam.LookAt(), 1)
	}
	if cc.keys[common.KeyS] {
		add(cc.cam.LookAt(), -1)
	}
	if cc.keys[common.KeyD] {
		add(cc.cam.Side(), 1)
	}
	if cc.keys[common.KeyA] {
		add(cc.cam.Side(), -1)
	}
	if cc.keys[common.KeySpace] {
		add(cc.cam.Up(), 1)
	}
	if cc.keys[common.KeyLeftShift] {
		add(cc.cam.Up(), -1)
	}

	pitch := cc.pitchDelta * cc.cam.RotationSpeed()
	yaw := cc.yawDelta * cc.cam.RotationSpeed()
	cc.pitchDelta = 0
	cc.yawDelta = 0

	if !moved && pitch == 0 && yaw == 0 {
		return
	}

	if moved {
		step := cc.cam.MovementSpeed() * cc.baseSpeed * dt
		dir = common.Normalize4(dir)
		dir[0] *= step
		dir[1] *= step
		dir[2] *= step
	}

	cc.cam.SetOrientation(dir, pitch, yaw)
}
