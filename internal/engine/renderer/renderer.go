// Package renderer draws the scene with OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/carscene/internal/engine/lighting"
	"github.com/Faultbox/carscene/internal/engine/mesh"
	"github.com/Faultbox/carscene/internal/engine/renderer/shaders"
	"github.com/Faultbox/carscene/internal/engine/shader"
	"github.com/Faultbox/carscene/internal/logger"
	"github.com/Faultbox/carscene/internal/scene"
	"github.com/Faultbox/carscene/pkg/math"
)

// Fixed material terms shared by every mesh.
var (
	specularColor    = [3]float32{0.1, 0.1, 0.1}
	specularExponent = float32(16)
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	loc     locations

	meshes []mesh.Handle

	// Last uploaded material, to skip redundant uniform calls.
	diffuse  [4]float32
	emissive [3]float32
}

var (
	_ scene.Backend     = (*Renderer)(nil)
	_ scene.MeshFactory = (*Renderer)(nil)
)

// InitGL loads the OpenGL function pointers for the current context.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// New compiles the scene program and sets up GL state. On error nothing is
// left allocated.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	program, err := shader.CompileProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		r.log.Error("scene program failed", zap.Error(err))
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.program = program
	r.loc = lookupLocations(program)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	gl.UseProgram(r.program)
	gl.Uniform3fv(r.loc.specularColor, 1, &specularColor[0])
	gl.Uniform1f(r.loc.specularExponent, specularExponent)
	gl.Uniform3f(r.loc.emissiveColor, 0, 0, 0)

	r.Resize(cfg.Width, cfg.Height)

	r.log.Debug("scene program created", zap.Uint32("program", program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, h := range r.meshes {
		buffers := []uint32{h.VertexVBO, h.NormalVBO, h.EBO}
		gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
		vao := h.VAO
		gl.DeleteVertexArrays(1, &vao)
	}
	r.meshes = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport width over height.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame. The panel's UI pass changes shared GL state, so
// the state the scene needs is set again every frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.ClearColor(0, 0, 0, 1)
	gl.UseProgram(r.program)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// CreateMesh uploads positions, normals and indices into a new VAO.
func (r *Renderer) CreateMesh(kind mesh.Kind, data *mesh.Data) (mesh.Handle, error) {
	if len(data.Indices) == 0 || len(data.Positions) == 0 {
		return mesh.Handle{}, fmt.Errorf("%s: empty geometry", kind)
	}

	var h mesh.Handle
	gl.GenVertexArrays(1, &h.VAO)
	gl.BindVertexArray(h.VAO)

	gl.GenBuffers(1, &h.VertexVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.VertexVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Positions)*4, unsafe.Pointer(&data.Positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &h.NormalVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.NormalVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Normals)*4, unsafe.Pointer(&data.Normals[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &h.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*2, unsafe.Pointer(&data.Indices[0]), gl.STATIC_DRAW)
	h.IndexCount = int32(len(data.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes = append(r.meshes, h)
	r.log.Debug("mesh uploaded",
		zap.Stringer("kind", kind),
		zap.Uint32("vao", h.VAO),
		zap.Int32("indices", h.IndexCount),
	)
	return h, nil
}

// SetProjection uploads the projection matrix.
func (r *Renderer) SetProjection(p math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.loc.projection, 1, false, p.Ptr())
}

// SetLights uploads all light slots.
func (r *Renderer) SetLights(t *lighting.Table) {
	gl.UseProgram(r.program)
	for i := range t {
		s := &t[i]
		l := &r.loc.lights[i]

		enabled := int32(0)
		if s.Enabled {
			enabled = 1
		}
		gl.Uniform1i(l.enabled, enabled)
		gl.Uniform4fv(l.position, 1, &s.Position[0])
		gl.Uniform3fv(l.color, 1, &s.Color[0])
		gl.Uniform3f(l.spotDirection, s.SpotDirection.X, s.SpotDirection.Y, s.SpotDirection.Z)
		gl.Uniform1f(l.spotCosineCutoff, s.SpotCosineCutoff)
		gl.Uniform1f(l.spotExponent, s.SpotExponent)
		gl.Uniform1f(l.attenuation, s.Attenuation)
	}
}

// Draw issues one mesh draw with the call's transform and material.
func (r *Renderer) Draw(call *scene.DrawCall) {
	if call.Diffuse != r.diffuse {
		r.diffuse = call.Diffuse
		gl.Uniform4fv(r.loc.diffuseColor, 1, &r.diffuse[0])
	}
	if call.Emissive != r.emissive {
		r.emissive = call.Emissive
		gl.Uniform3fv(r.loc.emissiveColor, 1, &r.emissive[0])
	}

	gl.UniformMatrix4fv(r.loc.modelview, 1, false, call.ModelView.Ptr())
	gl.UniformMatrix3fv(r.loc.normalMatrix, 1, false, call.Normal.Ptr())

	gl.BindVertexArray(call.Mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, call.Mesh.IndexCount, gl.UNSIGNED_SHORT, nil)
}

// ReadPixels reads the current viewport of the bound framebuffer as
// bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
