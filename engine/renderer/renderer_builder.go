package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option for configuring a
// rendererImpl. Use the With* functions to create options.
type RendererBuilderOption func(*rendererImpl)

// PresentMode controls how frames are delivered to the display.
type PresentMode int

const (
	// PresentModeVSync caps presentation to the display refresh rate.
	PresentModeVSync PresentMode = iota
	// PresentModeUncapped presents as fast as frames are produced.
	PresentModeUncapped
	// PresentModeTripleBuffered uses mailbox presentation where available.
	PresentModeTripleBuffered
)

// WithPresentMode sets the surface present mode.
//
// Parameters:
//   - mode: the PresentMode to use (VSync, Uncapped, or TripleBuffered)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *rendererImpl) {
		switch mode {
		case PresentModeUncapped:
			r.presentMode = wgpu.PresentModeImmediate
		case PresentModeTripleBuffered:
			r.presentMode = wgpu.PresentModeMailbox
		default:
			r.presentMode = wgpu.PresentModeFifo
		}
	}
}

// WithForceFallbackAdapter forces adapter selection to the fallback
// (software) adapter. Useful on headless or driverless systems.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithForceFallbackAdapter(force bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.forceFallbackAdapter = force
	}
}
