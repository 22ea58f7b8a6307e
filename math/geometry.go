package math

import "github.com/spaghettifunk/gmath/core"

// GeometryGenerateNormals writes a face normal into the three vertices of
// every triangle in indices.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalize()

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives a per-triangle tangent from positions and
// texture coordinates. Triangles with degenerate UVs are left untouched.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaUV1 := vertices[i1].Texcoord.Sub(vertices[i0].Texcoord)
		deltaUV2 := vertices[i2].Texcoord.Sub(vertices[i0].Texcoord)

		dividend := deltaUV1.U()*deltaUV2.V() - deltaUV2.U()*deltaUV1.V()
		if dividend == 0.0 {
			continue
		}
		fc := 1.0 / dividend

		// fc carries the winding of the UV triangle, so mirrored UVs already
		// flip the tangent here.
		tangent := edge1.MulScalar(deltaUV2.V()).Sub(edge2.MulScalar(deltaUV1.V())).MulScalar(fc).Normalize()

		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
}

// Vertex3DEqual compares every attribute of two vertices within
// FloatEpsilon.
func Vertex3DEqual(vert0, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, FloatEpsilon) &&
		vert0.Normal.Compare(vert1.Normal, FloatEpsilon) &&
		vert0.Texcoord.Compare(vert1.Texcoord, FloatEpsilon) &&
		vert0.Colour.Compare(vert1.Colour, FloatEpsilon) &&
		vert0.Tangent.Compare(vert1.Tangent, FloatEpsilon)
}

func reassignIndex(indices []uint32, from, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indices higher than 'from' by 1.
			indices[i]--
		}
	}
}

// GeometryDeduplicateVertices collapses vertices that compare equal and
// rewrites indices in place to point at the survivors. The returned slice
// holds the unique vertices in first-seen order.
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if Vertex3DEqual(vertices[v], unique[u]) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}
		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(unique), len(vertices), len(unique))
	return unique
}
