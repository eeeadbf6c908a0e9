package camera

import (
	"math"
	"testing"

	"github.com/asdlei99/Yune/common"
)

func TestControllerUpdate_NoInputLeavesCameraClean(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam)
	cam.ClearChanged()

	for range 10 {
		ctrl.Update(0.016)
	}

	if cam.Changed() {
		t.Error("Update with no input must not dirty the camera")
	}
	vecAlmostEqual(t, "eye", cam.Eye(), common.Vec4{0, 0, 0, 1}, 1e-6)
}

func TestControllerUpdate_ForwardKeyMovesAlongLookAt(t *testing.T) {
	cam := NewCamera() // moveSpeed 0.3
	ctrl := NewCameraController(cam, WithBaseSpeed(10))

	ctrl.OnKeyDown(common.KeyW)
	ctrl.Update(1.0)

	// step = moveSpeed * baseSpeed * dt = 3 along lookAt (-Z).
	vecAlmostEqual(t, "eye", cam.Eye(), common.Vec4{0, 0, -3, 1}, 1e-5)
	if !cam.Changed() {
		t.Error("movement must dirty the camera")
	}

	ctrl.OnKeyUp(common.KeyW)
	cam.ClearChanged()
	ctrl.Update(1.0)
	if cam.Changed() {
		t.Error("released key must stop movement")
	}
}

func TestControllerUpdate_DiagonalMovementIsNormalized(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam, WithBaseSpeed(10))

	ctrl.OnKeyDown(common.KeyW)
	ctrl.OnKeyDown(common.KeyD)
	ctrl.Update(1.0)

	eye := cam.Eye()
	dist := math.Sqrt(float64(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2]))
	if math.Abs(dist-3.0) > 1e-4 {
		t.Errorf("diagonal step length = %f, want 3.0 (direction must be normalized)", dist)
	}
}

func TestControllerUpdate_VerticalKeys(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam, WithBaseSpeed(10))

	ctrl.OnKeyDown(common.KeySpace)
	ctrl.Update(1.0)
	if cam.Eye()[1] <= 0 {
		t.Errorf("Space must move up, eye = %v", cam.Eye())
	}

	ctrl.OnKeyUp(common.KeySpace)
	ctrl.OnKeyDown(common.KeyLeftShift)
	ctrl.Update(1.0)
	if math.Abs(float64(cam.Eye()[1])) > 1e-5 {
		t.Errorf("LeftShift must move back down, eye = %v", cam.Eye())
	}
}

func TestControllerMouseLook_TurnsRightOnRightDrag(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam, WithMouseSensitivity(0.005))

	ctrl.SetLooking(true)
	ctrl.OnMouseMove(100, 100)
	ctrl.OnMouseMove(150, 100)
	ctrl.Update(0.016)

	// Dragging right yaws the camera right: lookAt swings from -Z toward +X.
	if cam.LookAt()[0] <= 0 {
		t.Errorf("lookAt = %v, want positive x after right drag", cam.LookAt())
	}
	checkOrthonormal(t, cam)
}

func TestControllerMouseLook_IgnoredWhileNotLooking(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam)
	cam.ClearChanged()

	ctrl.OnMouseMove(100, 100)
	ctrl.OnMouseMove(500, 400)
	ctrl.Update(0.016)

	if cam.Changed() {
		t.Error("mouse movement without looking engaged must not dirty the camera")
	}
}

func TestControllerMouseLook_NoJumpAfterReengage(t *testing.T) {
	cam := NewCamera()
	ctrl := NewCameraController(cam)

	ctrl.SetLooking(true)
	ctrl.OnMouseMove(0, 0)
	ctrl.SetLooking(false)
	ctrl.OnMouseMove(900, 900)
	ctrl.SetLooking(true)

	// The intermediate move refreshed the reference position, so the 900px
	// travel must not replay as a rotation when looking re-engages.
	ctrl.OnMouseMove(901, 900)
	cam.ClearChanged()
	ctrl.Update(0.016)

	look := cam.LookAt()
	if math.Abs(float64(look[0])) > 0.05 {
		t.Errorf("re-engage produced a view jump: lookAt = %v", look)
	}
}

func TestControllerUpdate_UsesCameraSensitivities(t *testing.T) {
	slow := NewCamera(WithMovementSpeed(0.1))
	fast := NewCamera(WithMovementSpeed(1.0))
	slowCtrl := NewCameraController(slow, WithBaseSpeed(10))
	fastCtrl := NewCameraController(fast, WithBaseSpeed(10))

	slowCtrl.OnKeyDown(common.KeyW)
	fastCtrl.OnKeyDown(common.KeyW)
	slowCtrl.Update(1.0)
	fastCtrl.Update(1.0)

	if math.Abs(float64(slow.Eye()[2])*10-float64(fast.Eye()[2])) > 1e-4 {
		t.Errorf("movement must scale with the camera's sensitivity: slow %v, fast %v",
			slow.Eye(), fast.Eye())
	}
}
