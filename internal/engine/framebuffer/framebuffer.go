// Package framebuffer provides OpenGL framebuffer utilities for offscreen rendering.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MaxSamples caps the multisample count requested from the driver.
const MaxSamples = 16

// attachments is one framebuffer object with a color and a depth buffer.
// The color buffer is a texture for the resolve target and a renderbuffer
// for the multisampled one.
type attachments struct {
	fbo   uint32
	color uint32
	depth uint32
}

// Framebuffer is an offscreen render target. With samples > 1 drawing goes
// to a multisampled buffer and Resolve copies it into the sampleable color
// texture.
type Framebuffer struct {
	resolve attachments
	msaa    attachments
	samples int32
	width   int32
	height  int32
}

// New creates a framebuffer of the given size. samples of 0 or 1 disables
// multisampling.
func New(width, height, samples int32) (*Framebuffer, error) {
	width, height = clampSize(width, height)

	fb := &Framebuffer{
		samples: clampSamples(samples),
		width:   width,
		height:  height,
	}

	if err := fb.create(); err != nil {
		fb.Destroy()
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}
	return fb, nil
}

func (fb *Framebuffer) create() error {
	gl.GenFramebuffers(1, &fb.resolve.fbo)
	gl.GenTextures(1, &fb.resolve.color)
	gl.GenRenderbuffers(1, &fb.resolve.depth)
	if fb.multisampled() {
		gl.GenFramebuffers(1, &fb.msaa.fbo)
		gl.GenRenderbuffers(1, &fb.msaa.color)
		gl.GenRenderbuffers(1, &fb.msaa.depth)
	}
	fb.allocate()

	if err := complete(fb.resolve.fbo); err != nil {
		return fmt.Errorf("resolve target: %w", err)
	}
	if fb.multisampled() {
		if err := complete(fb.msaa.fbo); err != nil {
			return fmt.Errorf("%dx multisample target: %w", fb.samples, err)
		}
	}
	return nil
}

// allocate (re)creates storage for the current size and attaches it.
func (fb *Framebuffer) allocate() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.resolve.fbo)
	gl.BindTexture(gl.TEXTURE_2D, fb.resolve.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.resolve.color, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.resolve.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.resolve.depth)

	if fb.multisampled() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.msaa.fbo)
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msaa.color)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.RGBA8, fb.width, fb.height)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.msaa.color)
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msaa.depth)
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.DEPTH_COMPONENT24, fb.width, fb.height)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.msaa.depth)
	}

	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func complete(fbo uint32) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}
	return nil
}

// BindWithViewport binds the draw target and sets the viewport, saving
// previous state. Returns a restore function.
func (fb *Framebuffer) BindWithViewport() func() {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.drawFBO())
	gl.Viewport(0, 0, fb.width, fb.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// Resolve copies the multisampled image into the color texture. It is a
// no-op without multisampling.
func (fb *Framebuffer) Resolve() {
	if !fb.multisampled() {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.msaa.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.resolve.fbo)
	gl.BlitFramebuffer(0, 0, fb.width, fb.height, 0, 0, fb.width, fb.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Aspect returns width / height.
func (fb *Framebuffer) Aspect() float32 {
	return aspect(fb.width, fb.height)
}

// Clear clears color and depth buffers with the specified color.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ColorTexture returns the texture holding the resolved image.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.resolve.color
}

// Samples returns the multisample count, 0 when disabled.
func (fb *Framebuffer) Samples() int32 {
	return fb.samples
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize reallocates storage if the dimensions changed.
func (fb *Framebuffer) Resize(width, height int32) {
	width, height = clampSize(width, height)
	if width == fb.width && height == fb.height {
		return
	}
	fb.width = width
	fb.height = height
	fb.allocate()
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	fb.msaa.destroy()
	if fb.resolve.color != 0 {
		gl.DeleteTextures(1, &fb.resolve.color)
		fb.resolve.color = 0
	}
	fb.resolve.destroy()
}

func (a *attachments) destroy() {
	if a.fbo != 0 {
		gl.DeleteFramebuffers(1, &a.fbo)
		a.fbo = 0
	}
	if a.color != 0 {
		gl.DeleteRenderbuffers(1, &a.color)
		a.color = 0
	}
	if a.depth != 0 {
		gl.DeleteRenderbuffers(1, &a.depth)
		a.depth = 0
	}
}

func (fb *Framebuffer) multisampled() bool {
	return fb.samples > 1
}

func (fb *Framebuffer) drawFBO() uint32 {
	if fb.multisampled() {
		return fb.msaa.fbo
	}
	return fb.resolve.fbo
}

// clampSize keeps both dimensions at least one pixel.
func clampSize(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}

// clampSamples maps anything below 2 to 0 and caps at MaxSamples.
func clampSamples(samples int32) int32 {
	if samples < 2 {
		return 0
	}
	return min(samples, MaxSamples)
}

func aspect(width, height int32) float32 {
	width, height = clampSize(width, height)
	return float32(width) / float32(height)
}
