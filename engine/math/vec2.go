package math

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates a vector from the first two values of p.
 */
func NewVec2FromSlice(p []float32) Vec2 {
	return Vec2{p[0], p[1]}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

/**
 * @brief Creates a 2-component vector with both components at +Inf.
 */
func NewVec2Infinity() Vec2 {
	inf := Vec2Infinity()
	return Vec2{inf, inf}
}

// Vec2Infinity is the scalar used to fill NewVec2Infinity.
func Vec2Infinity() float32 {
	return Vec3Infinity()
}

/**
 * @brief Returns a pointer to the first component. X and Y are contiguous.
 */
func (v *Vec2) Ptr() *float32 {
	return &v.X
}

// Index returns component i (0 for X, 1 for Y), or 0 when i is out of range.
func (v Vec2) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return 0
}

// SetIndex writes component i. Out of range indices are ignored.
func (v *Vec2) SetIndex(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts v from other and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

/**
 * Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) DivScalar(s float32) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @param vector The vector to retrieve the length of.
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns the unsigned angle in radians between v and other.
 * The cosine is clamped to [-1, 1] before acos.
 */
func (v Vec2) Angle(other Vec2) float32 {
	return kacos(Min(1.0, Max(-1.0, v.Dot(other)/(v.Length()*other.Length()))))
}

/**
 * @brief Returns (1/x, 1/y).
 */
func (v Vec2) Inverse() Vec2 {
	return Vec2{1.0 / v.X, 1.0 / v.Y}
}

/**
 * @brief Returns to*t + v*(1-t).
 */
func (v Vec2) Lerp(to Vec2, t float32) Vec2 {
	return to.MulScalar(t).Add(v.MulScalar(1.0 - t))
}

func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

func (v Vec2) Abs() Vec2 {
	return Vec2{kabs(v.X), kabs(v.Y)}
}

func (v Vec2) IsFinite() bool {
	return kisfinite(v.X) && kisfinite(v.Y)
}

/**
 * @brief Reports whether the squared length is within epsilon of 1.
 */
func (v Vec2) IsNormalized(epsilon float32) bool {
	return CompareApproximatelyEpsilon(v.LengthSquared(), 1.0, epsilon)
}

/**
 * @brief Returns v divided by its length. A zero vector produces NaN.
 */
func (v Vec2) Normalize() Vec2 {
	return v.DivScalar(v.Length())
}

/**
 * @brief Normalizes through FastInvSqrt of the squared length. A zero
 * vector stays zero.
 */
func (v Vec2) NormalizeFast() Vec2 {
	return v.MulScalar(FastInvSqrt(v.LengthSquared()))
}

/**
 * @brief Returns v normalized, or def when the length is not above
 * K_VEC_EPSILON.
 */
func (v Vec2) NormalizeSafe(def Vec2) Vec2 {
	l := v.Length()
	if l > K_VEC_EPSILON {
		return v.DivScalar(l)
	}
	return def
}

/**
 * @brief Compares all elements of vector_0 and vector_1 and ensures the difference
 * is less than tolerance.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Reports whether the two points are no more than maxDist apart.
 */
func (v Vec2) CompareApproximately(other Vec2, maxDist float32) bool {
	return other.Sub(v).LengthSquared() <= maxDist*maxDist
}

/**
 * @brief Returns the distance between vector_0 and vector_1.
 *
 * @param vector_0 The first vector.
 * @param vector_1 The second vector.
 * @return The distance between vector_0 and vector_1.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}
