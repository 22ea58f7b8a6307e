//go:build amd64 && goexperiment.simd && !gmath_nosimd

package math

import "simd/archsimd"

// useSIMD is fixed at start-up from the CPU feature flags. The 128-bit
// float ops and broadcasts are VEX encoded and need AVX2; older CPUs take
// the portable kernel.
var useSIMD = archsimd.X86.AVX2()

// SIMDEnabled reports whether the 4-wide kernel runs on SIMD lanes.
func SIMDEnabled() bool { return useSIMD }

func strategyName() string {
	switch {
	case !useSIMD:
		return "scalar"
	case archsimd.X86.AVX512():
		return "simd/avx512"
	default:
		return "simd/avx2"
	}
}

func load4(v *Vec4) archsimd.Float32x4 {
	return archsimd.LoadFloat32x4((*[4]float32)(v))
}

func store4(x archsimd.Float32x4) Vec4 {
	var out Vec4
	x.Store((*[4]float32)(&out))
	return out
}

func add4(a, b Vec4) Vec4 {
	if !useSIMD {
		return add4Generic(a, b)
	}
	return store4(load4(&a).Add(load4(&b)))
}

func sub4(a, b Vec4) Vec4 {
	if !useSIMD {
		return sub4Generic(a, b)
	}
	return store4(load4(&a).Sub(load4(&b)))
}

func mul4(a, b Vec4) Vec4 {
	if !useSIMD {
		return mul4Generic(a, b)
	}
	return store4(load4(&a).Mul(load4(&b)))
}

func div4(a, b Vec4) Vec4 {
	if !useSIMD {
		return div4Generic(a, b)
	}
	return store4(load4(&a).Div(load4(&b)))
}

func addScalar4(a Vec4, s float32) Vec4 {
	if !useSIMD {
		return addScalar4Generic(a, s)
	}
	return store4(load4(&a).Add(archsimd.BroadcastFloat32x4(s)))
}

func subScalar4(a Vec4, s float32) Vec4 {
	if !useSIMD {
		return subScalar4Generic(a, s)
	}
	return store4(load4(&a).Sub(archsimd.BroadcastFloat32x4(s)))
}

func mulScalar4(a Vec4, s float32) Vec4 {
	if !useSIMD {
		return mulScalar4Generic(a, s)
	}
	return store4(load4(&a).Mul(archsimd.BroadcastFloat32x4(s)))
}

func divScalar4(a Vec4, s float32) Vec4 {
	if !useSIMD {
		return divScalar4Generic(a, s)
	}
	return store4(load4(&a).Div(archsimd.BroadcastFloat32x4(s)))
}

// dot4 multiplies on the lanes and sums the products in lane order, the
// same order the portable kernel adds them.
func dot4(a, b Vec4) float32 {
	if !useSIMD {
		return dot4Generic(a, b)
	}
	p := store4(load4(&a).Mul(load4(&b)))
	return p[0] + p[1] + p[2] + p[3]
}

// linearCombine returns mat applied to v: each column of mat is scaled by
// the matching lane of v and the four products are summed.
func linearCombine(v Vec4, mat Mat4) Vec4 {
	if !useSIMD {
		return linearCombineGeneric(v, mat)
	}
	r := load4(&mat[0]).Mul(archsimd.BroadcastFloat32x4(v[0]))
	r = r.Add(load4(&mat[1]).Mul(archsimd.BroadcastFloat32x4(v[1])))
	r = r.Add(load4(&mat[2]).Mul(archsimd.BroadcastFloat32x4(v[2])))
	r = r.Add(load4(&mat[3]).Mul(archsimd.BroadcastFloat32x4(v[3])))
	return store4(r)
}

// quatMul is the Hamilton product laid out as four multiply-add steps over
// shuffled copies of b, with the sign pattern folded into the lanes of a.
func quatMul(a, b Quat) Quat {
	if !useSIMD {
		return quatMulGeneric(a, b)
	}
	b0 := Vec4{b[3], b[2], b[1], b[0]}
	b1 := Vec4{b[2], b[3], b[0], b[1]}
	b2 := Vec4{b[1], b[0], b[3], b[2]}
	b3 := Vec4(b)
	a0 := Vec4{a[0], -a[0], a[0], -a[0]}
	a1 := Vec4{a[1], a[1], -a[1], -a[1]}
	a2 := Vec4{-a[2], a[2], a[2], -a[2]}

	r := load4(&b0).Mul(load4(&a0))
	r = r.Add(load4(&b1).Mul(load4(&a1)))
	r = r.Add(load4(&b2).Mul(load4(&a2)))
	r = r.Add(load4(&b3).Mul(archsimd.BroadcastFloat32x4(a[3])))
	return Quat(store4(r))
}
