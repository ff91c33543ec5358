/*
	mesh data without gl state

	vertices are stored unindexed, three per triangle, and flattened into
	an interleaved float32 array for upload:

		position(3) normal(3) uv(2)
*/
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PositionSize = 3
	NormalSize   = 3
	UvSize       = 2

	// floats per interleaved vertex
	Stride = PositionSize + NormalSize + UvSize
)

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Uv       mgl32.Vec2
}

type Geometry struct {
	vertices []Vertex
}

func NewGeometry() *Geometry {
	return &Geometry{}
}

func (g *Geometry) AddFace(a, b, c Vertex) {
	g.vertices = append(g.vertices, a, b, c)
}

func (g *Geometry) Vertices() []Vertex {
	return g.vertices
}

func (g *Geometry) VerticesCount() int {
	return len(g.vertices)
}

func (g *Geometry) FaceCount() int {
	return len(g.vertices) / 3
}

// Interleaved flattens the vertices for a single static array buffer
func (g *Geometry) Interleaved() []float32 {
	data := make([]float32, 0, len(g.vertices)*Stride)
	for _, v := range g.vertices {
		data = append(data,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.Uv[0], v.Uv[1],
		)
	}
	return data
}
