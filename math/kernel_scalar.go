//go:build !(amd64 && goexperiment.simd) || gmath_nosimd

package math

// SIMDEnabled reports whether the 4-wide kernel runs on SIMD lanes.
func SIMDEnabled() bool { return false }

func strategyName() string {
	return "scalar"
}

func add4(a, b Vec4) Vec4                 { return add4Generic(a, b) }
func sub4(a, b Vec4) Vec4                 { return sub4Generic(a, b) }
func mul4(a, b Vec4) Vec4                 { return mul4Generic(a, b) }
func div4(a, b Vec4) Vec4                 { return div4Generic(a, b) }
func addScalar4(a Vec4, s float32) Vec4   { return addScalar4Generic(a, s) }
func subScalar4(a Vec4, s float32) Vec4   { return subScalar4Generic(a, s) }
func mulScalar4(a Vec4, s float32) Vec4   { return mulScalar4Generic(a, s) }
func divScalar4(a Vec4, s float32) Vec4   { return divScalar4Generic(a, s) }
func dot4(a, b Vec4) float32              { return dot4Generic(a, b) }
func linearCombine(v Vec4, mat Mat4) Vec4 { return linearCombineGeneric(v, mat) }
func quatMul(a, b Quat) Quat              { return quatMulGeneric(a, b) }
