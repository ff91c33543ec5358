package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NewCube builds an axis aligned cube centered at the origin,
// two counter-clockwise triangles per side.
func NewCube(size float32) *Geometry {
	geo := NewGeometry()
	s := size / 2.0

	/*
		    vertices			uvs

		  h +------+ e
			|\     |\
			| \    | \
			|b +------+ a   tl +------+ tr
		  g +--|---+ f|        |      |
			 \ |    \ |        |      |
			  \|     \|        |      |
			 c +------+ d   bl +------+ br
	*/

	a := mgl32.Vec3{s, s, s}
	b := mgl32.Vec3{-s, s, s}
	c := mgl32.Vec3{-s, -s, s}
	d := mgl32.Vec3{s, -s, s}
	e := mgl32.Vec3{s, s, -s}
	f := mgl32.Vec3{s, -s, -s}
	g := mgl32.Vec3{-s, -s, -s}
	h := mgl32.Vec3{-s, s, -s}

	tl := mgl32.Vec2{0, 1}
	tr := mgl32.Vec2{1, 1}
	bl := mgl32.Vec2{0, 0}
	br := mgl32.Vec2{1, 0}

	side := func(normal mgl32.Vec3, topRight, topLeft, bottomLeft, bottomRight mgl32.Vec3) {
		geo.AddFace(
			Vertex{topRight, normal, tr},
			Vertex{topLeft, normal, tl},
			Vertex{bottomLeft, normal, bl})
		geo.AddFace(
			Vertex{bottomLeft, normal, bl},
			Vertex{bottomRight, normal, br},
			Vertex{topRight, normal, tr})
	}

	side(mgl32.Vec3{0, 0, 1}, a, b, c, d)   // front
	side(mgl32.Vec3{0, 0, -1}, h, e, f, g)  // back
	side(mgl32.Vec3{-1, 0, 0}, b, h, g, c)  // left
	side(mgl32.Vec3{1, 0, 0}, e, a, d, f)   // right
	side(mgl32.Vec3{0, 1, 0}, e, h, b, a)   // top
	side(mgl32.Vec3{0, -1, 0}, d, c, g, f)  // bottom

	return geo
}
