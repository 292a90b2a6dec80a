// Package glbackend implements the render.Backend interface on OpenGL 4.1
// core: program setup, uniform binding, geometry buffers and the procedural
// skydome and water plane meshes.
package glbackend

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lowtide/openworld/internal/engine/render"
	"github.com/lowtide/openworld/internal/engine/render/glbackend/shaders"
	"github.com/lowtide/openworld/internal/engine/shader"
	"github.com/lowtide/openworld/pkg/math"
)

// Skydome tessellation.
const (
	skydomeSegments = 8
	skydomeRows     = 10
)

// Backend submits frames through OpenGL. Create it after the GL context is
// current; all methods must run on the context thread.
type Backend struct {
	// World program
	worldProgram   uint32
	locModel       int32
	locView        int32
	locProj        int32
	locBaseColor   int32
	locAmbient     int32
	locDirectLight int32
	locSunDir      int32
	locFogNear     int32
	locFogFar      int32
	locMatDiffuse  int32
	locMatAmbient  int32

	// Water program
	waterProgram   uint32
	locWaterMVP    int32
	locWaterSize   int32
	locWaterHeight int32
	waterVAO       uint32
	waterVBO       uint32

	// Sky program
	skyProgram   uint32
	locSkyView   int32
	locSkyProj   int32
	locSkyTop    int32
	locSkyBottom int32
	skyVAO       uint32
	skyVBO       uint32
	skyIBO       uint32
	skyIndices   int32

	// Line program
	lineProgram  uint32
	locLineView  int32
	locLineProj  int32
	locLineColor int32
	lineVAO      uint32
	lineVBO      uint32

	buffers map[geomKey]geomBuffer

	// Per-frame cached matrices for the water MVP.
	view math.Mat4
	proj math.Mat4
}

// New compiles the pipeline programs and builds the shared meshes.
// Failure here is fatal to the caller; nothing can draw without programs.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	b := &Backend{
		buffers: make(map[geomKey]geomBuffer),
	}

	var err error
	if b.worldProgram, err = shader.CompileProgram(shaders.WorldVertexShader, shaders.WorldFragmentShader); err != nil {
		return nil, fmt.Errorf("world shader: %w", err)
	}
	b.locModel = shader.GetUniform(b.worldProgram, "uModel")
	b.locView = shader.GetUniform(b.worldProgram, "uView")
	b.locProj = shader.GetUniform(b.worldProgram, "uProj")
	b.locBaseColor = shader.GetUniform(b.worldProgram, "uBaseColor")
	b.locAmbient = shader.GetUniform(b.worldProgram, "uAmbient")
	b.locDirectLight = shader.GetUniform(b.worldProgram, "uDirectLight")
	b.locSunDir = shader.GetUniform(b.worldProgram, "uSunDir")
	b.locFogNear = shader.GetUniform(b.worldProgram, "uFogNear")
	b.locFogFar = shader.GetUniform(b.worldProgram, "uFogFar")
	b.locMatDiffuse = shader.GetUniform(b.worldProgram, "uMatDiffuse")
	b.locMatAmbient = shader.GetUniform(b.worldProgram, "uMatAmbient")

	if b.waterProgram, err = shader.CompileProgram(shaders.WaterVertexShader, shaders.WaterFragmentShader); err != nil {
		return nil, fmt.Errorf("water shader: %w", err)
	}
	b.locWaterMVP = shader.GetUniform(b.waterProgram, "uMVP")
	b.locWaterSize = shader.GetUniform(b.waterProgram, "uSize")
	b.locWaterHeight = shader.GetUniform(b.waterProgram, "uHeight")

	if b.skyProgram, err = shader.CompileProgram(shaders.SkyVertexShader, shaders.SkyFragmentShader); err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	b.locSkyView = shader.GetUniform(b.skyProgram, "uView")
	b.locSkyProj = shader.GetUniform(b.skyProgram, "uProj")
	b.locSkyTop = shader.GetUniform(b.skyProgram, "uTopColor")
	b.locSkyBottom = shader.GetUniform(b.skyProgram, "uBottomColor")

	if b.lineProgram, err = shader.CompileProgram(shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	b.locLineView = shader.GetUniform(b.lineProgram, "uView")
	b.locLineProj = shader.GetUniform(b.lineProgram, "uProj")
	b.locLineColor = shader.GetUniform(b.lineProgram, "uColor")

	b.createWaterPlane()
	b.createSkydome()
	b.createLineBuffer()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return b, nil
}

// createWaterPlane uploads the shared unit water quad, drawn as a triangle
// strip and positioned per tile through uniforms.
func (b *Backend) createWaterPlane() {
	vertices := []float32{
		1, 1,
		0, 1,
		1, 0,
		0, 0,
	}

	gl.GenVertexArrays(1, &b.waterVAO)
	gl.BindVertexArray(b.waterVAO)

	gl.GenBuffers(1, &b.waterVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.waterVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// createSkydome tessellates a unit hemisphere around +Z and uploads it.
func (b *Backend) createSkydome() {
	rows, segments := skydomeRows, skydomeSegments
	r := 1.0 / float64(rows-1)
	s := 1.0 / float64(segments-1)

	vertices := make([]float32, 0, rows*segments*3)
	for row := 0; row < rows; row++ {
		for seg := 0; seg < segments; seg++ {
			lat := gomath.Pi / 2 * float64(row) * r
			lon := 2 * gomath.Pi * float64(seg) * s
			vertices = append(vertices,
				float32(gomath.Cos(lon)*gomath.Cos(lat)),
				float32(gomath.Sin(lon)*gomath.Cos(lat)),
				float32(gomath.Sin(lat)),
			)
		}
	}

	indices := make([]uint16, 0, (rows-1)*(segments-1)*6)
	for row := 0; row < rows-1; row++ {
		for seg := 0; seg < segments-1; seg++ {
			a := uint16(row*segments + seg)
			bb := uint16(row*segments + seg + 1)
			c := uint16((row+1)*segments + seg + 1)
			d := uint16((row+1)*segments + seg)
			indices = append(indices, a, bb, c, a, c, d)
		}
	}
	b.skyIndices = int32(len(indices))

	gl.GenVertexArrays(1, &b.skyVAO)
	gl.BindVertexArray(b.skyVAO)

	gl.GenBuffers(1, &b.skyVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.skyVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &b.skyIBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.skyIBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// createLineBuffer allocates the streaming buffer for debug lines.
func (b *Backend) createLineBuffer() {
	gl.GenVertexArrays(1, &b.lineVAO)
	gl.BindVertexArray(b.lineVAO)

	gl.GenBuffers(1, &b.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
}

// BeginFrame implements render.Backend.
func (b *Backend) BeginFrame(view, proj math.Mat4, env render.Environment) {
	b.view, b.proj = view, proj

	gl.ClearColor(env.Horizon[0], env.Horizon[1], env.Horizon[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(b.worldProgram)
	gl.UniformMatrix4fv(b.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(b.locProj, 1, false, proj.Ptr())
	gl.Uniform4f(b.locAmbient, env.Ambient[0], env.Ambient[1], env.Ambient[2], 1)
	gl.Uniform4f(b.locDirectLight, env.DirectLight[0], env.DirectLight[1], env.DirectLight[2], 1)
	gl.Uniform3f(b.locSunDir, env.SunDirection.X, env.SunDirection.Y, env.SunDirection.Z)
	gl.Uniform1f(b.locFogNear, env.FogStart)
	gl.Uniform1f(b.locFogFar, env.FogEnd)
	gl.Uniform1f(b.locMatDiffuse, 0.9)
	gl.Uniform1f(b.locMatAmbient, 0.1)
}

// SetModelMatrix implements render.Backend.
func (b *Backend) SetModelMatrix(m math.Mat4) {
	gl.UniformMatrix4fv(b.locModel, 1, false, m.Ptr())
}

// SetColor implements render.Backend.
func (b *Backend) SetColor(c render.Color) {
	gl.Uniform4f(b.locBaseColor, c[0], c[1], c[2], c[3])
}

// SetMaterialIntensity implements render.Backend.
func (b *Backend) SetMaterialIntensity(diffuse, ambient float32) {
	gl.Uniform1f(b.locMatDiffuse, diffuse)
	gl.Uniform1f(b.locMatAmbient, ambient)
}

// BindTexture implements render.Backend.
func (b *Backend) BindTexture(handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// BeginWaterPass implements render.Backend.
func (b *Backend) BeginWaterPass(tex uint32) {
	gl.UseProgram(b.waterProgram)
	gl.BindVertexArray(b.waterVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// DrawWaterTile implements render.Backend.
func (b *Backend) DrawWaterTile(x, y, size, height float32) {
	mvp := b.proj.Mul(b.view).Mul(math.Translate(math.Vec3{X: x, Y: y}))
	gl.UniformMatrix4fv(b.locWaterMVP, 1, false, mvp.Ptr())
	gl.Uniform1f(b.locWaterSize, size)
	gl.Uniform1f(b.locWaterHeight, height)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// DrawSky implements render.Backend.
func (b *Backend) DrawSky(top, bottom render.Color) {
	gl.UseProgram(b.skyProgram)
	gl.BindVertexArray(b.skyVAO)

	gl.UniformMatrix4fv(b.locSkyView, 1, false, b.view.Ptr())
	gl.UniformMatrix4fv(b.locSkyProj, 1, false, b.proj.Ptr())
	gl.Uniform4f(b.locSkyTop, top[0], top[1], top[2], 1)
	gl.Uniform4f(b.locSkyBottom, bottom[0], bottom[1], bottom[2], 1)

	gl.DrawElements(gl.TRIANGLES, b.skyIndices, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// DrawLines implements render.Backend.
func (b *Backend) DrawLines(verts []float32, c render.Color) {
	if len(verts) == 0 {
		return
	}
	gl.UseProgram(b.lineProgram)
	gl.BindVertexArray(b.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)

	gl.UniformMatrix4fv(b.locLineView, 1, false, b.view.Ptr())
	gl.UniformMatrix4fv(b.locLineProj, 1, false, b.proj.Ptr())
	gl.Uniform4f(b.locLineColor, c[0], c[1], c[2], c[3])

	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)
}

// Resize adjusts the viewport after a window resize.
func (b *Backend) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// EndFrame implements render.Backend.
func (b *Backend) EndFrame() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}
