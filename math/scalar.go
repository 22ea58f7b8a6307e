package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

const (
	/** @brief An approximate representation of PI. */
	Pi float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI divided by 2. */
	HalfPi float32 = 0.5 * Pi
	/** @brief An approximate representation of PI multiplied by 2. */
	TwoPi float32 = 2.0 * Pi
	/** @brief An approximation of Euler's number. */
	E float32 = 2.71828182845904523536
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2RadMultiplier float32 = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2DegMultiplier float32 = 180.0 / Pi
	/** @brief Smallest positive number where 1.0 + FloatEpsilon != 1.0 */
	FloatEpsilon float32 = 1.192092896e-07
	/** @brief Default length below which SafeNormalize returns the zero vector. */
	DefaultTolerance float32 = 0.001
)

// Primitives is the set of transcendental functions every other helper in
// this package is built on. Replacing them lets a host supply its own
// implementations (fixed-cost approximations, deterministic software math)
// without touching the vector code.
type Primitives struct {
	Sin   func(float32) float32
	Cos   func(float32) float32
	Tan   func(float32) float32
	ACos  func(float32) float32
	ATan  func(float32) float32
	ATan2 func(y, x float32) float32
	Sqrt  func(float32) float32
	Exp   func(float32) float32
	Log   func(float32) float32
}

// DefaultPrimitives returns the float32 primitives from chewxy/math32.
func DefaultPrimitives() Primitives {
	return Primitives{
		Sin:   math32.Sin,
		Cos:   math32.Cos,
		Tan:   math32.Tan,
		ACos:  math32.Acos,
		ATan:  math32.Atan,
		ATan2: math32.Atan2,
		Sqrt:  math32.Sqrt,
		Exp:   math32.Exp,
		Log:   math32.Log,
	}
}

var prims = DefaultPrimitives()

// SetPrimitives replaces every primitive for which p holds a non-nil
// function; the rest keep their current implementation. It must be called
// during program initialisation, before any goroutine uses the package.
func SetPrimitives(p Primitives) {
	if p.Sin != nil {
		prims.Sin = p.Sin
	}
	if p.Cos != nil {
		prims.Cos = p.Cos
	}
	if p.Tan != nil {
		prims.Tan = p.Tan
	}
	if p.ACos != nil {
		prims.ACos = p.ACos
	}
	if p.ATan != nil {
		prims.ATan = p.ATan
	}
	if p.ATan2 != nil {
		prims.ATan2 = p.ATan2
	}
	if p.Sqrt != nil {
		prims.Sqrt = p.Sqrt
	}
	if p.Exp != nil {
		prims.Exp = p.Exp
	}
	if p.Log != nil {
		prims.Log = p.Log
	}
}

func Sin(radians float32) float32     { return prims.Sin(radians) }
func Cos(radians float32) float32     { return prims.Cos(radians) }
func Tan(radians float32) float32     { return prims.Tan(radians) }
func ACos(cos float32) float32        { return prims.ACos(cos) }
func ATan(tan float32) float32        { return prims.ATan(tan) }
func ATan2(y, x float32) float32      { return prims.ATan2(y, x) }
func Sqrt(x float32) float32          { return prims.Sqrt(x) }
func Exp(x float32) float32           { return prims.Exp(x) }
func Log(x float32) float32           { return prims.Log(x) }
func PowF(base, exp float32) float32  { return prims.Exp(exp * prims.Log(base)) }
func Radians(degrees float32) float32 { return degrees * Deg2RadMultiplier }
func Degrees(radians float32) float32 { return radians * Rad2DegMultiplier }

// RSqrt returns an approximation of 1/sqrt(x), good to roughly 1e-5
// relative error. Every kernel uses the same estimate, and RSqrt(0) is
// finite.
func RSqrt(x float32) float32 {
	return rsqrt(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return Radians(degrees)
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return Degrees(radians)
}

func Min[T constraints.Ordered](a, b T) T {
	if a > b {
		return b
	}
	return a
}

func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v > 0 {
		return v
	}
	return -v
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

// Mod returns a modulo b with the sign of b, so Mod(-3, 5) is 2 rather than
// the -3 that Go's % operator produces.
func Mod[T constraints.Integer](a, b T) T {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// Pow raises base to an integral exponent by repeated squaring.
func Pow(base float32, exponent int) float32 {
	result := float32(1.0)
	mul := base
	x := uint(exponent)
	if exponent < 0 {
		mul = 1.0 / base
		// -(exponent+1) cannot overflow, even for the most negative int.
		x = uint(-(exponent + 1)) + 1
	}
	for x != 0 {
		if x&1 != 0 {
			result *= mul
		}
		mul *= mul
		x >>= 1
	}
	return result
}

// Lerp blends a and b. alpha is clamped to [0, 1]; there is no
// extrapolation.
func Lerp(a, b, alpha float32) float32 {
	t := Clamp(alpha, 0.0, 1.0)
	return (1.0-t)*a + t*b
}
