package math

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new Vec4 using vector as the x, y and z components and w for w.
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func NewVec4FromSlice(p []float32) Vec4 {
	return Vec4{p[0], p[1], p[2], p[3]}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

func NewVec4Infinity() Vec4 {
	inf := Vec3Infinity()
	return Vec4{inf, inf, inf, inf}
}

/**
 * @brief Returns a new Vec3 containing the x, y and z components, dropping w.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Ptr returns a pointer to the first of four contiguous floats.
func (v *Vec4) Ptr() *float32 {
	return &v.X
}

// Index returns component i in x, y, z, w order, or 0 when i is out of
// range.
func (v Vec4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	return 0
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v Vec4) MulScalar(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vec4) Dot(other Vec4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

func (v Vec4) Length() float32 {
	return ksqrt(v.LengthSquared())
}

// Normalize divides by the length; the zero vector yields NaN.
func (v Vec4) Normalize() Vec4 {
	return v.MulScalar(1.0 / v.Length())
}

func (v Vec4) Lerp(to Vec4, t float32) Vec4 {
	return to.MulScalar(t).Add(v.MulScalar(1.0 - t))
}

func (v Vec4) IsFinite() bool {
	return kisfinite(v.X) && kisfinite(v.Y) && kisfinite(v.Z) && kisfinite(v.W)
}

/**
 * @brief Reports whether the two vectors are no more than maxDist apart.
 */
func (v Vec4) CompareApproximately(other Vec4, maxDist float32) bool {
	return other.Sub(v).LengthSquared() <= maxDist*maxDist
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	return kabs(v.X-other.X) <= tolerance &&
		kabs(v.Y-other.Y) <= tolerance &&
		kabs(v.Z-other.Z) <= tolerance &&
		kabs(v.W-other.W) <= tolerance
}
