package math

import m "math"

// Portable 4-wide kernel. The scalar build calls it directly; the SIMD build
// falls back to it when the CPU lacks AVX2.

func add4Generic(a, b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub4Generic(a, b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mul4Generic(a, b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func div4Generic(a, b Vec4) Vec4 {
	return Vec4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func addScalar4Generic(a Vec4, s float32) Vec4 {
	return Vec4{a[0] + s, a[1] + s, a[2] + s, a[3] + s}
}

func subScalar4Generic(a Vec4, s float32) Vec4 {
	return Vec4{a[0] - s, a[1] - s, a[2] - s, a[3] - s}
}

func mulScalar4Generic(a Vec4, s float32) Vec4 {
	return Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func divScalar4Generic(a Vec4, s float32) Vec4 {
	return Vec4{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

func dot4Generic(a, b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// linearCombineGeneric returns mat applied to v: the columns of mat
// weighted by the lanes of v.
func linearCombineGeneric(v Vec4, mat Mat4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = mat[0][i]*v[0] + mat[1][i]*v[1] + mat[2][i]*v[2] + mat[3][i]*v[3]
	}
	return out
}

func quatMulGeneric(a, b Quat) Quat {
	return Quat{
		a[0]*b[3] + a[1]*b[2] - a[2]*b[1] + a[3]*b[0],
		-a[0]*b[2] + a[1]*b[3] + a[2]*b[0] + a[3]*b[1],
		a[0]*b[1] - a[1]*b[0] + a[2]*b[3] + a[3]*b[2],
		-a[0]*b[0] - a[1]*b[1] - a[2]*b[2] + a[3]*b[3],
	}
}

// rsqrt is the estimate shared by every kernel: a bit-level seed refined
// by two Newton-Raphson steps, good to roughly 1e-5 relative error for
// positive normal inputs. rsqrt(0) is finite, so a zero vector
// fast-normalizes to zero.
func rsqrt(x float32) float32 {
	half := 0.5 * x
	y := m.Float32frombits(0x5f375a86 - m.Float32bits(x)>>1)
	y = y * (1.5 - half*y*y)
	y = y * (1.5 - half*y*y)
	return y
}
