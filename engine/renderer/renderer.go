package renderer

import (
	"runtime"

	"github.com/asdlei99/Yune/engine/camera"
	"github.com/asdlei99/Yune/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

type rendererImpl struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode

	forceFallbackAdapter bool

	// cameraBuffer is the uniform buffer holding the device camera record.
	cameraBuffer *wgpu.Buffer

	// rec is scratch space reused across uploads to avoid per-frame allocation.
	rec camera.GPUCameraRecord
}

// Renderer owns the WebGPU device state and the camera uniform buffer, and
// carries the render-loop side of the camera's dirty-flag contract: each
// frame it checks whether the camera changed, and only then re-uploads the
// device camera record and acknowledges the change. The ray-generation
// kernel that consumes the buffer is assembled by the caller from
// CameraBuffer and the canonical WGSL record source.
type Renderer interface {
	// Device returns the WebGPU device.
	//
	// Returns:
	//   - *wgpu.Device: the device
	Device() *wgpu.Device

	// Queue returns the WebGPU queue used for buffer uploads.
	//
	// Returns:
	//   - *wgpu.Queue: the queue
	Queue() *wgpu.Queue

	// CameraBuffer returns the uniform buffer holding the device camera
	// record, for bind group assembly by downstream pipelines.
	//
	// Returns:
	//   - *wgpu.Buffer: the camera uniform buffer
	CameraBuffer() *wgpu.Buffer

	// UploadCamera re-uploads the camera record if and only if the camera is
	// marked changed, then acknowledges the change with ClearChanged. The
	// flag is cleared only after the write is queued, so a camera left
	// unconsumed stays dirty.
	//
	// Parameters:
	//   - cam: the camera to upload
	UploadCamera(cam camera.Camera)

	// Resize reconfigures the surface for a new framebuffer size. Call from
	// the window resize callback.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Release frees the GPU resources owned by the renderer.
	Release()
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a Renderer targeting the given window's surface and
// allocates the camera uniform buffer. Adapter or device acquisition failure
// is unrecoverable and panics, matching the window layer.
//
// Parameters:
//   - win: the window providing the surface descriptor and initial size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(win window.Window, options ...RendererBuilderOption) Renderer {
	runtime.LockOSThread()
	r := &rendererImpl{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	for _, option := range options {
		option(r)
	}

	r.surface = r.instance.CreateSurface(win.SurfaceDescriptor())

	a, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		panic(err)
	}
	r.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	r.device = d
	r.queue = d.GetQueue()

	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Record Buffer",
		Size:  uint64(r.rec.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	r.cameraBuffer = buf

	r.Resize(win.Width(), win.Height())

	return r
}

func (r *rendererImpl) Device() *wgpu.Device {
	return r.device
}

func (r *rendererImpl) Queue() *wgpu.Queue {
	return r.queue
}

func (r *rendererImpl) CameraBuffer() *wgpu.Buffer {
	return r.cameraBuffer
}

func (r *rendererImpl) UploadCamera(cam camera.Camera) {
	if !cam.Changed() {
		return
	}
	cam.WriteBuffer(&r.rec)
	r.queue.WriteBuffer(r.cameraBuffer, 0, r.rec.Marshal())
	cam.ClearChanged()
}

func (r *rendererImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = &capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (r *rendererImpl) Release() {
	if r.cameraBuffer != nil {
		r.cameraBuffer.Release()
		r.cameraBuffer = nil
	}
}
