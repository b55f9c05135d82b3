package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846264338327950288419716939937510
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI float32 = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE float32 = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float32 = 0.7071067811865475244008443621048490
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE float32 = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = 2.0 * K_PI / 360.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 1.0 / K_DEG2RAD_MULTIPLIER
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
	/** @brief Default tolerance of the scalar CompareApproximately. */
	K_APPROX_EPSILON float32 = 0.000001
	/**
	 * @brief Tolerance shared by the vector, matrix and quaternion types for
	 * "is this length zero" and "is this close to identity" decisions.
	 */
	K_VEC_EPSILON float32 = 0.00001
	/** @brief Below this |w| a perspective divide is refused. */
	K_PERSPECTIVE_W_EPSILON float32 = 1e-7
)

// float32 shims over math32 so the rest of the package reads like scalar C.
func ksin(x float32) float32 {
	return math32.Sin(x)
}

func kcos(x float32) float32 {
	return math32.Cos(x)
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

func kacos(x float32) float32 {
	return math32.Acos(x)
}

func kasin(x float32) float32 {
	return math32.Asin(x)
}

func katan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

func kisfinite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Clamp01 saturates t to [0, 1].
func Clamp01[T constraints.Float](t T) T {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Sqr returns t*t.
func Sqr[T constraints.Integer | constraints.Float](t T) T {
	return t * t
}

/**
 * @brief Reciprocal square root at full float32 precision. Zero (of either
 * sign) is returned unchanged instead of producing an infinity.
 */
func FastInvSqrt(f float32) float32 {
	if kabs(f) == 0.0 {
		return f
	}
	return 1.0 / ksqrt(f)
}

/**
 * @brief Reciprocal square root via the 0x5f3759df bit trick and a single
 * Newton iteration. Relative error is up to about 1.8e-3; do not use it where
 * an exact unit length matters.
 *
 * Zero maps to +Inf (-Inf for -0) rather than the huge finite value the bit
 * trick would give, so normalizing a zero vector with it yields NaN.
 */
func FastestInvSqrt(f float32) float32 {
	if f == 0.0 {
		return CopySign(math32.Inf(1), f)
	}
	fhalf := 0.5 * f
	i := stdmath.Float32bits(f)
	i = 0x5f3759df - (i >> 1)
	f = stdmath.Float32frombits(i)
	f = f * (1.5 - fhalf*f*f)
	return f
}

// InvSqrt returns 1/sqrt(p) with no zero check.
func InvSqrt(p float32) float32 {
	return 1.0 / ksqrt(p)
}

/**
 * @brief Returns true when |f0-f1| <= K_APPROX_EPSILON.
 */
func CompareApproximately(f0, f1 float32) bool {
	return CompareApproximatelyEpsilon(f0, f1, K_APPROX_EPSILON)
}

/**
 * @brief Returns true when |f0-f1| <= epsilon.
 */
func CompareApproximatelyEpsilon(f0, f1, epsilon float32) bool {
	return kabs(f0-f1) <= epsilon
}

// Sign returns -1 for negative f and 1 otherwise (including -0).
func Sign(f float32) float32 {
	if f < 0.0 {
		return -1.0
	}
	return 1.0
}

/**
 * @brief Returns x with its sign bit replaced by the sign bit of y.
 * Works on the IEEE-754 representation, so CopySign(0, -1) is -0.
 */
func CopySign(x, y float32) float32 {
	const signMask = uint32(1) << 31
	a := stdmath.Float32bits(x)
	b := stdmath.Float32bits(y)
	return stdmath.Float32frombits((a &^ signMask) | (b & signMask))
}

// Lerp interpolates scalars as to*t + from*(1-t).
func Lerp(from, to, t float32) float32 {
	return to*t + from*(1.0-t)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * Evaluated as deg/360*2*PI. Recorded data replays depend on the exact bits,
 * so do not rewrite this as deg*K_DEG2RAD_MULTIPLIER.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	r := degrees / 360.0
	r = r * 2.0
	return r * K_PI
}

/**
 * @brief Converts provided radians to degrees.
 *
 * Evaluated as rad/2/PI*360, see DegToRad.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	d := radians / 2.0
	d = d / K_PI
	return d * 360.0
}

// Radians converts with the precomputed multiplier.
func Radians(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

// Degrees converts with the precomputed multiplier.
func Degrees(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
