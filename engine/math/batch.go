package math

// Batch transforms. Every element is read into locals before its output is
// written, so in and out may be the same slice, and no element depends on
// another; callers are free to split a batch across goroutines.

// TransformPoints3x3 applies the rotation and scale of m to the first
// min(len(in), len(out)) points.
func TransformPoints3x3(m Mat4, in, out []Vec3) {
	n := Min(len(in), len(out))
	for i := 0; i < n; i++ {
		out[i] = m.MultiplyVector3(in[i])
	}
}

// TransformPoints3x4 is TransformPoints3x3 plus the translation of m.
func TransformPoints3x4(m Mat4, in, out []Vec3) {
	n := Min(len(in), len(out))
	for i := 0; i < n; i++ {
		out[i] = m.MultiplyPoint3(in[i])
	}
}

// TransformPointsStrided3x3 transforms count points packed in float buffers
// where consecutive points start inStride and outStride floats apart.
// Interleaved vertex buffers (position, normal, uv...) fit this directly.
func TransformPointsStrided3x3(m Mat4, in []float32, inStride int, out []float32, outStride int, count int) {
	for i := 0; i < count; i++ {
		src := in[i*inStride : i*inStride+3]
		v := m.MultiplyVector3(Vec3{src[0], src[1], src[2]})
		dst := out[i*outStride : i*outStride+3]
		dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	}
}

// TransformPointsStrided3x4 is TransformPointsStrided3x3 with translation.
func TransformPointsStrided3x4(m Mat4, in []float32, inStride int, out []float32, outStride int, count int) {
	for i := 0; i < count; i++ {
		src := in[i*inStride : i*inStride+3]
		v := m.MultiplyPoint3(Vec3{src[0], src[1], src[2]})
		dst := out[i*outStride : i*outStride+3]
		dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	}
}
