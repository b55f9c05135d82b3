package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Creates a vector from the first three values of p.
 */
func NewVec3FromSlice(p []float32) Vec3 {
	return Vec3{p[0], p[1], p[2]}
}

/**
 * @brief Returns a new Vec3 containing the x, y and z components of the
 * supplied Vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new Vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{
		X: vector.X,
		Y: vector.Y,
		Z: vector.Z,
	}
}

/**
 * @brief Returns a new Vec4 using vector as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new Vec4
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// Axis constructors. Forward above follows the right-handed camera
// convention; these are the plain basis vectors.
func NewVec3XAxis() Vec3 { return Vec3{1, 0, 0} }
func NewVec3YAxis() Vec3 { return Vec3{0, 1, 0} }
func NewVec3ZAxis() Vec3 { return Vec3{0, 0, 1} }

/**
 * @brief Creates a 3-component vector with every component at +Inf.
 */
func NewVec3Infinity() Vec3 {
	inf := Vec3Infinity()
	return Vec3{inf, inf, inf}
}

// Vec3Infinity returns +Inf as a float32.
func Vec3Infinity() float32 {
	return math32.Inf(1)
}

/**
 * @brief Returns a pointer to the first component. X, Y and Z are
 * contiguous, so the pointer addresses a 3-float block.
 */
func (v *Vec3) Ptr() *float32 {
	return &v.X
}

// Index returns component i (0 for X, 1 for Y, 2 for Z), or 0 when i is
// out of range.
func (v Vec3) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return 0
}

// SetIndex writes component i. Out of range indices are ignored.
func (v *Vec3) SetIndex(i int, f float32) {
	switch i {
	case 0:
		v.X = f
	case 1:
		v.Y = f
	case 2:
		v.Z = f
	}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns x*y*z.
 */
func (v Vec3) Volume() float32 {
	return v.X * v.Y * v.Z
}

/**
 * @brief Returns (1/x, 1/y, 1/z).
 */
func (v Vec3) Inverse() Vec3 {
	return Vec3{1.0 / v.X, 1.0 / v.Y, 1.0 / v.Z}
}

/**
 * @brief Returns the unsigned angle in radians between v and other.
 */
func (v Vec3) Angle(other Vec3) float32 {
	return kacos(Min(1.0, Max(-1.0, v.Dot(other)/(v.Length()*other.Length()))))
}

/**
 * @brief Calculates and returns the dot product between the provided vectors.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Reflects v off the plane with the given unit normal.
 */
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return normal.MulScalar(-2.0 * normal.Dot(v)).Add(v)
}

/**
 * @brief Projects v onto onto.
 */
func (v Vec3) Project(onto Vec3) Vec3 {
	return onto.MulScalar(v.Dot(onto)).DivScalar(onto.Dot(onto))
}

/**
 * @brief Returns to*t + v*(1-t). t is not clamped.
 */
func (v Vec3) Lerp(to Vec3, t float32) Vec3 {
	return to.MulScalar(t).Add(v.MulScalar(1.0 - t))
}

func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

func (v Vec3) Abs() Vec3 {
	return Vec3{kabs(v.X), kabs(v.Y), kabs(v.Z)}
}

func (v Vec3) IsFinite() bool {
	return kisfinite(v.X) && kisfinite(v.Y) && kisfinite(v.Z)
}

/**
 * @brief Snaps each component to the nearest multiple of factor, halfway
 * cases rounding away from zero.
 */
func (v Vec3) Round(factor float32) Vec3 {
	r := func(f float32) float32 {
		return float32(stdmath.Round(float64(f/factor))) * factor
	}
	return Vec3{r(v.X), r(v.Y), r(v.Z)}
}

/**
 * @brief Reports whether the squared length is within epsilon of 1.
 */
func (v Vec3) IsNormalized(epsilon float32) bool {
	return CompareApproximatelyEpsilon(v.LengthSquared(), 1.0, epsilon)
}

/**
 * @brief Returns v divided by its length. The zero vector has no direction
 * and yields NaN components; use NormalizeSafe or NormalizeRobust when the
 * input can be degenerate.
 */
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Length())
}

/**
 * @brief Returns v normalized, or def when the length is not above
 * K_VEC_EPSILON.
 */
func (v Vec3) NormalizeSafe(def Vec3) Vec3 {
	mag := v.Length()
	if mag > K_VEC_EPSILON {
		return v.DivScalar(mag)
	}
	return def
}

/**
 * @brief Normalizes through FastInvSqrt of the squared length. The zero
 * vector stays the zero vector.
 */
func (v Vec3) NormalizeFast() Vec3 {
	return v.MulScalar(FastInvSqrt(v.LengthSquared()))
}

/**
 * @brief Low precision normalize through FastestInvSqrt (about 1e-3
 * relative error). The zero vector yields NaN components.
 */
func (v Vec3) NormalizeFastest() Vec3 {
	return v.MulScalar(FastestInvSqrt(v.LengthSquared()))
}

/**
 * @brief Normalizes vectors whose squared length would overflow or
 * underflow float32. See NormalizeRobustInvLength.
 */
func (v Vec3) NormalizeRobust() Vec3 {
	n, _ := v.NormalizeRobustInvLength()
	return n
}

/**
 * @brief Normalizes v after first scaling it by its largest absolute
 * component, so the squared length is computed on values in [-1, 1].
 *
 * Also returns 1/|v|. The zero vector (and any vector without a usable
 * component, e.g. all NaN) returns the y axis and an inverse length of 0.
 */
func (v Vec3) NormalizeRobustInvLength() (Vec3, float32) {
	a0, a1, a2 := v.X, v.Y, v.Z
	aa0, aa1, aa2 := kabs(a0), kabs(a1), kabs(a2)

	var l, div float32
	switch {
	case aa1 > aa0 && aa2 > aa1, aa1 <= aa0 && aa2 > aa0:
		a0 /= aa2
		a1 /= aa2
		l = InvSqrt(a0*a0 + a1*a1 + 1.0)
		a2 = CopySign(l, a2)
		a0 *= l
		a1 *= l
		div = aa2
	case aa1 > aa0:
		a0 /= aa1
		a2 /= aa1
		l = InvSqrt(a0*a0 + a2*a2 + 1.0)
		a1 = CopySign(l, a1)
		a0 *= l
		a2 *= l
		div = aa1
	case aa0 > 0.0:
		a1 /= aa0
		a2 /= aa0
		l = InvSqrt(a1*a1 + a2*a2 + 1.0)
		a0 = CopySign(l, a0)
		a1 *= l
		a2 *= l
		div = aa0
	default:
		return NewVec3YAxis(), 0.0
	}
	return Vec3{a0, a1, a2}, l / div
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Reports whether the two points are no more than maxDist apart.
 */
func (v Vec3) CompareApproximately(other Vec3, maxDist float32) bool {
	return other.Sub(v).LengthSquared() <= maxDist*maxDist
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The second vector.
 * @return The distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}
