package engine

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/der-antikeks/nightcity/geometry"
)

const sizeofFloat = 4

// Mesh is a static, unindexed vertex buffer with its vertex array
type Mesh struct {
	vertexArrayObject uint32
	buffer            uint32
	count             int32
}

func NewMesh(geo *geometry.Geometry) *Mesh {
	data := geo.Interleaved()
	m := &Mesh{
		count: int32(geo.VerticesCount()),
	}

	gl.GenVertexArrays(1, &m.vertexArrayObject)
	gl.GenBuffers(1, &m.buffer)

	gl.BindVertexArray(m.vertexArrayObject)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*sizeofFloat, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(geometry.Stride * sizeofFloat)

	// position
	gl.VertexAttribPointerWithOffset(positionLocation, geometry.PositionSize, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(positionLocation)

	// normal
	gl.VertexAttribPointerWithOffset(normalLocation, geometry.NormalSize, gl.FLOAT, false, stride,
		geometry.PositionSize*sizeofFloat)
	gl.EnableVertexAttribArray(normalLocation)

	// uv
	gl.VertexAttribPointerWithOffset(uvLocation, geometry.UvSize, gl.FLOAT, false, stride,
		(geometry.PositionSize+geometry.NormalSize)*sizeofFloat)
	gl.EnableVertexAttribArray(uvLocation)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m
}

func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vertexArrayObject)
}

func (m *Mesh) Unbind() {
	gl.BindVertexArray(0)
}

// Draw the bound mesh with the current uniforms
func (m *Mesh) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *Mesh) Dispose() {
	if m.buffer != 0 {
		gl.DeleteBuffers(1, &m.buffer)
		m.buffer = 0
	}

	if m.vertexArrayObject != 0 {
		gl.DeleteVertexArrays(1, &m.vertexArrayObject)
		m.vertexArrayObject = 0
	}
}
