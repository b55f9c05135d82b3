package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitQuad is a unit quad in the xy plane stored as two triangles with
// their shared vertices duplicated.
func splitQuad() *Geometry {
	v := func(x, y float32) Vertex3D {
		return Vertex3D{Position: NewVec3(x, y, 0), Texcoord: NewVec2(x, y)}
	}
	return &Geometry{
		Vertices: []Vertex3D{v(0, 0), v(1, 0), v(0, 1), v(0, 1), v(1, 0), v(1, 1)},
		Indices:  []uint32{0, 1, 2, 3, 4, 5},
	}
}

func TestGeometryGenerateNormals(t *testing.T) {
	t.Parallel()

	g := splitQuad()
	g.GenerateNormals()
	for i, v := range g.Vertices {
		assert.Equal(t, NewVec3ZAxis(), v.Normal, "vertex %d", i)
	}

	degenerate := &Geometry{
		Vertices: []Vertex3D{{}, {}, {}},
		Indices:  []uint32{0, 1, 2},
	}
	degenerate.GenerateNormals()
	assert.Equal(t, NewVec3YAxis(), degenerate.Vertices[0].Normal)
}

func TestGeometryGenerateTangents(t *testing.T) {
	t.Parallel()

	g := splitQuad()
	g.GenerateTangents()
	for _, v := range g.Vertices {
		assertVec3InDelta(t, NewVec3XAxis(), v.Tangent, 1e-6)
	}

	// mirrored uvs flip the tangent
	m := splitQuad()
	for i := range m.Vertices {
		m.Vertices[i].Texcoord.X = 1 - m.Vertices[i].Texcoord.X
	}
	m.GenerateTangents()
	assertVec3InDelta(t, NewVec3(-1, 0, 0), m.Vertices[0].Tangent, 1e-6)

	// collapsed uvs give no tangent
	flat := splitQuad()
	for i := range flat.Vertices {
		flat.Vertices[i].Texcoord = NewVec2Zero()
	}
	flat.GenerateTangents()
	assert.Equal(t, NewVec3Zero(), flat.Vertices[0].Tangent)
}

func TestGeometryDeduplicateVertices(t *testing.T) {
	t.Parallel()

	g := splitQuad()
	removed := g.DeduplicateVertices()
	assert.Equal(t, 2, removed)
	require.Len(t, g.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, g.Indices)
	assert.Equal(t, NewVec3(1, 1, 0), g.Vertices[3].Position)

	assert.Zero(t, g.DeduplicateVertices())
}

func TestGeometryTransform(t *testing.T) {
	t.Parallel()

	g := &Geometry{
		Vertices: []Vertex3D{{
			Position: NewVec3(1, 1, 1),
			Normal:   NewVec3(1, 1, 0).Normalize(),
			Tangent:  NewVec3XAxis(),
		}},
		Indices: []uint32{0},
	}
	m := NewMat4Scale(NewVec3(2, 1, 1))
	m.SetPosition(NewVec3(0, 0, 5))

	require.True(t, g.Transform(m))
	v := g.Vertices[0]
	assert.Equal(t, NewVec3(2, 1, 6), v.Position)
	// normals go through the inverse transpose and stay unit length
	assertVec3InDelta(t, NewVec3(1, 2, 0).Normalize(), v.Normal, 1e-6)
	assertVec3InDelta(t, NewVec3XAxis(), v.Tangent, 1e-6)

	flat := &Geometry{Vertices: []Vertex3D{{Position: NewVec3(3, 3, 3)}}}
	assert.False(t, flat.Transform(NewMat4Scale(NewVec3(0, 1, 1))))
	assert.Equal(t, NewVec3(0, 3, 3), flat.Vertices[0].Position)
}

func TestGeometryExtents(t *testing.T) {
	t.Parallel()

	g := splitQuad()
	g.Vertices[5].Position.Z = -2
	e := g.Extents()
	assert.Equal(t, NewVec3(0, 0, -2), e.Min)
	assert.Equal(t, NewVec3(1, 1, 0), e.Max)

	assert.Equal(t, Extents3D{}, (&Geometry{}).Extents())
}

func TestVertex3dEqual(t *testing.T) {
	t.Parallel()

	a := Vertex3D{Position: NewVec3(1, 2, 3), Colour: NewVec4One()}
	b := a
	assert.True(t, Vertex3dEqual(a, b))
	b.Texcoord.Y = 0.5
	assert.False(t, Vertex3dEqual(a, b))
}
