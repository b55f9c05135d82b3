package math

/**
 * @brief Writes a flat face normal to the three vertices of every triangle.
 * Degenerate triangles (zero area) get the y axis instead of NaN.
 */
func (g *Geometry) GenerateNormals() {
	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0, i1, i2 := g.Indices[i], g.Indices[i+1], g.Indices[i+2]

		edge1 := g.Vertices[i1].Position.Sub(g.Vertices[i0].Position)
		edge2 := g.Vertices[i2].Position.Sub(g.Vertices[i0].Position)

		// NOTE: face normals only. Smoothing belongs in a separate pass.
		normal := edge1.Cross(edge2).NormalizeRobust()
		g.Vertices[i0].Normal = normal
		g.Vertices[i1].Normal = normal
		g.Vertices[i2].Normal = normal
	}
}

/**
 * @brief Computes per-triangle tangents from positions and texture
 * coordinates. Triangles with a degenerate UV mapping get a zero tangent.
 */
func (g *Geometry) GenerateTangents() {
	for i := 0; i+2 < len(g.Indices); i += 3 {
		i0, i1, i2 := g.Indices[i], g.Indices[i+1], g.Indices[i+2]
		v0, v1, v2 := g.Vertices[i0], g.Vertices[i1], g.Vertices[i2]

		edge1 := v1.Position.Sub(v0.Position)
		edge2 := v2.Position.Sub(v0.Position)

		deltaU1 := v1.Texcoord.X - v0.Texcoord.X
		deltaV1 := v1.Texcoord.Y - v0.Texcoord.Y
		deltaU2 := v2.Texcoord.X - v0.Texcoord.X
		deltaV2 := v2.Texcoord.Y - v0.Texcoord.Y

		dividend := deltaU1*deltaV2 - deltaU2*deltaV1
		var tangent Vec3
		if kabs(dividend) > K_FLOAT_EPSILON {
			fc := 1.0 / dividend
			tangent = edge1.MulScalar(deltaV2).Sub(edge2.MulScalar(deltaV1)).MulScalar(fc)
			tangent = tangent.NormalizeSafe(NewVec3Zero())
		}

		// the sign of dividend already orients mirrored UVs
		g.Vertices[i0].Tangent = tangent
		g.Vertices[i1].Tangent = tangent
		g.Vertices[i2].Tangent = tangent
	}
}

/**
 * @brief Merges bit-identical vertices and rewrites the index list to match.
 * Returns how many vertices were removed.
 */
func (g *Geometry) DeduplicateVertices() int {
	seen := make(map[Vertex3D]uint32, len(g.Vertices))
	remap := make([]uint32, len(g.Vertices))
	unique := g.Vertices[:0:0]

	for i, v := range g.Vertices {
		if at, ok := seen[v]; ok {
			remap[i] = at
			continue
		}
		at := uint32(len(unique))
		seen[v] = at
		remap[i] = at
		unique = append(unique, v)
	}
	for i, idx := range g.Indices {
		g.Indices[i] = remap[idx]
	}

	removed := len(g.Vertices) - len(unique)
	g.Vertices = unique
	return removed
}

/**
 * @brief Moves the mesh by m: positions with translation, normals and
 * tangents through the inverse transpose so they stay perpendicular under
 * non-uniform scale. Returns false if m's 3x3 block is singular; positions
 * are still transformed in that case.
 */
func (g *Geometry) Transform(m Mat4) bool {
	positions := make([]Vec3, len(g.Vertices))
	for i := range g.Vertices {
		positions[i] = g.Vertices[i].Position
	}
	TransformPoints3x4(m, positions, positions)
	for i := range g.Vertices {
		g.Vertices[i].Position = positions[i]
	}

	normalMatrix := NewMat3FromMat4(m)
	if !normalMatrix.InvertTranspose() {
		return false
	}
	for i := range g.Vertices {
		v := &g.Vertices[i]
		v.Normal = normalMatrix.MultiplyVector3(v.Normal).NormalizeSafe(v.Normal)
		v.Tangent = m.MultiplyVector3(v.Tangent).NormalizeSafe(NewVec3Zero())
	}
	return true
}

/**
 * @brief Axis-aligned bounds of the vertex positions. An empty mesh returns
 * zero extents.
 */
func (g *Geometry) Extents() Extents3D {
	if len(g.Vertices) == 0 {
		return Extents3D{}
	}
	e := Extents3D{Min: g.Vertices[0].Position, Max: g.Vertices[0].Position}
	for _, v := range g.Vertices[1:] {
		e.Min = e.Min.Min(v.Position)
		e.Max = e.Max.Max(v.Position)
	}
	return e
}

/**
 * @brief Reports whether the two vertices match within K_FLOAT_EPSILON in
 * every attribute.
 */
func Vertex3dEqual(vert0 Vertex3D, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON)
}
