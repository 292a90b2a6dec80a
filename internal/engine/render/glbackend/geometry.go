package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/lowtide/openworld/internal/engine/model"
)

// Vertex is the interleaved vertex layout of world geometry.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [4]uint8
	TexCoord [2]float32
}

const vertexStride = int32(unsafe.Sizeof(Vertex{}))

// geomKey identifies one uploaded geometry of one model.
type geomKey struct {
	model    *model.Model
	geometry int
}

// geomBuffer holds the GPU buffers for one geometry.
type geomBuffer struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadGeometry uploads one geometry's vertex and index data. Must be
// called once per geometry before its model is drawn; indices are the full
// index buffer spanned by the geometry's subgeometry ranges.
func (b *Backend) UploadGeometry(m *model.Model, geometry int, vertices []Vertex, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return fmt.Errorf("geometry %d: empty vertex or index data", geometry)
	}

	var buf geomBuffer
	buf.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, uintptr(unsafe.Offsetof(Vertex{}.Normal)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, vertexStride, uintptr(unsafe.Offsetof(Vertex{}.Color)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, vertexStride, uintptr(unsafe.Offsetof(Vertex{}.TexCoord)))
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	b.buffers[geomKey{model: m, geometry: geometry}] = buf
	return nil
}

// DrawSubgeometry implements render.Backend. Geometry that was never
// uploaded is silently skipped.
func (b *Backend) DrawSubgeometry(m *model.Model, geometry, subgeom int) {
	buf, ok := b.buffers[geomKey{model: m, geometry: geometry}]
	if !ok {
		return
	}

	sub := &m.Geometries[geometry].Subgeoms[subgeom]

	gl.BindVertexArray(buf.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(sub.IndexCount), gl.UNSIGNED_INT, uintptr(sub.Start*4))
}

// ReleaseModel frees the GPU buffers of every geometry uploaded for a model.
func (b *Backend) ReleaseModel(m *model.Model) {
	for key, buf := range b.buffers {
		if key.model != m {
			continue
		}
		gl.DeleteBuffers(1, &buf.vbo)
		gl.DeleteBuffers(1, &buf.ebo)
		gl.DeleteVertexArrays(1, &buf.vao)
		delete(b.buffers, key)
	}
}
