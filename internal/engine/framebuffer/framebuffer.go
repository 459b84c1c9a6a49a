// Package framebuffer provides the offscreen target the control panel shows
// the scene in. Screenshots read back from it too.
package framebuffer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/logger"
)

// Framebuffer is a color texture plus a depth renderbuffer.
type Framebuffer struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
	log    *zap.Logger
}

// New allocates a target of the given size. Sizes below one pixel are clamped.
func New(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{log: logger.Named("framebuffer")}
	fb.width, fb.height = clampSize(width, height)

	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	gl.GenTextures(1, &fb.color)
	gl.GenRenderbuffers(1, &fb.depth)
	fb.allocate()

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	fb.log.Debug("framebuffer created",
		zap.Int32("width", fb.width),
		zap.Int32("height", fb.height),
	)
	return fb, nil
}

func clampSize(width, height int) (int32, int32) {
	return int32(max(width, 1)), int32(max(height, 1))
}

// allocate (re)creates storage for both attachments at the current size.
func (fb *Framebuffer) allocate() {
	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// Bind directs rendering into the target and sets the viewport to cover it.
// The returned func restores the previous binding and viewport.
func (fb *Framebuffer) Bind() (restore func()) {
	var prev int32
	var viewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))
		gl.Viewport(viewport[0], viewport[1], viewport[2], viewport[3])
	}
}

// Texture returns the color attachment, for display in the panel.
func (fb *Framebuffer) Texture() uint32 {
	return fb.color
}

// Size returns the current dimensions in pixels.
func (fb *Framebuffer) Size() (width, height int) {
	return int(fb.width), int(fb.height)
}

// Resize reallocates storage when the size changed. It reports whether it did.
func (fb *Framebuffer) Resize(width, height int) bool {
	w, h := clampSize(width, height)
	if w == fb.width && h == fb.height {
		return false
	}
	fb.width, fb.height = w, h
	fb.allocate()
	fb.log.Debug("framebuffer resized", zap.Int32("width", w), zap.Int32("height", h))
	return true
}

// ReadPixels returns the color attachment as tightly packed RGBA rows,
// bottom row first as GL stores them.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, int(fb.width)*int(fb.height)*4)

	var prev int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))

	return pixels
}

// Destroy releases the GL objects. It is safe to call twice.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != 0 {
		gl.DeleteTextures(1, &fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.depth)
		fb.depth = 0
	}
}
