package math

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The same cases run against whichever kernel the package was built with;
// `mage test:all` builds both.

var kernelInputs = []Vec4{
	{1, 2, 3, 4},
	{-0.5, 0.25, 8, -16},
	{1e-3, -7.75, 0, 3.5},
	{100, -200, 300, -400},
}

func TestStrategy(t *testing.T) {
	if SIMDEnabled() {
		assert.True(t, strings.HasPrefix(Strategy(), "simd/"), Strategy())
	} else {
		assert.Equal(t, "scalar", Strategy())
	}
}

func TestKernelElementwise(t *testing.T) {
	for _, a := range kernelInputs {
		for _, b := range kernelInputs {
			var add, sub, mul, div Vec4
			for i := range a {
				add[i] = a[i] + b[i]
				sub[i] = a[i] - b[i]
				mul[i] = a[i] * b[i]
				div[i] = a[i] / b[i]
			}
			assertVec4(t, add, add4(a, b), 0)
			assertVec4(t, sub, sub4(a, b), 0)
			assertVec4(t, mul, mul4(a, b), 0)
			if b[0] != 0 && b[1] != 0 && b[2] != 0 && b[3] != 0 {
				assertVec4(t, div, div4(a, b), 0)
			}
		}
	}
}

func TestKernelScalarBroadcast(t *testing.T) {
	for _, a := range kernelInputs {
		for _, s := range []float32{-2, 0.5, 3} {
			assertVec4(t, Vec4{a[0] + s, a[1] + s, a[2] + s, a[3] + s}, addScalar4(a, s), 0)
			assertVec4(t, Vec4{a[0] - s, a[1] - s, a[2] - s, a[3] - s}, subScalar4(a, s), 0)
			assertVec4(t, Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}, mulScalar4(a, s), 0)
			assertVec4(t, Vec4{a[0] / s, a[1] / s, a[2] / s, a[3] / s}, divScalar4(a, s), 0)
		}
	}
}

func TestKernelDot(t *testing.T) {
	for _, a := range kernelInputs {
		for _, b := range kernelInputs {
			want, bound := refDot(a, b)
			assert.InDelta(t, want, dot4(a, b), 1e-6*(1+bound))
		}
	}
}

func TestKernelLinearCombine(t *testing.T) {
	m := NewMat4FromColumns(kernelInputs[0], kernelInputs[1], kernelInputs[2], kernelInputs[3])
	for _, v := range kernelInputs {
		got := linearCombine(v, m)
		for r := 0; r < 4; r++ {
			want, bound := refDot(Vec4{m[0][r], m[1][r], m[2][r], m[3][r]}, v)
			assert.InDelta(t, want, got[r], 1e-6*(1+bound), "row %d", r)
		}
	}
}

func TestKernelQuatMul(t *testing.T) {
	for _, av := range kernelInputs {
		for _, bv := range kernelInputs {
			a, b := Quat(av), Quat(bv)
			// each lane of the product is a signed dot product of a with a
			// permutation of b
			rows := [4]Vec4{
				{b[3], b[2], -b[1], b[0]},
				{-b[2], b[3], b[0], b[1]},
				{b[1], -b[0], b[3], b[2]},
				{-b[0], -b[1], -b[2], b[3]},
			}
			got := quatMul(a, b)
			for i, row := range rows {
				want, bound := refDot(Vec4(a), row)
				assert.InDelta(t, want, got[i], 1e-6*(1+bound), "lane %d", i)
			}
		}
	}
}

func TestKernelMatchesGeneric(t *testing.T) {
	m := NewMat4FromColumns(kernelInputs[0], kernelInputs[1], kernelInputs[2], kernelInputs[3])
	for _, a := range kernelInputs {
		for _, b := range kernelInputs {
			assert.Equal(t, add4Generic(a, b), add4(a, b))
			assert.Equal(t, sub4Generic(a, b), sub4(a, b))
			assert.Equal(t, mul4Generic(a, b), mul4(a, b))
			assert.Equal(t, addScalar4Generic(a, b[0]), addScalar4(a, b[0]))
			assert.Equal(t, mulScalar4Generic(a, b[1]), mulScalar4(a, b[1]))

			want, bound := refDot(a, b)
			assert.InDelta(t, dot4Generic(a, b), dot4(a, b), 1e-6*(1+bound))
			assert.InDelta(t, want, dot4Generic(a, b), 1e-6*(1+bound))

			// every lane of the Hamilton product sums the four |a_i| times
			// some lane of b, so this bounds each lane's magnitude
			_, absA := refDot(a, Vec4{1, 1, 1, 1})
			maxB := float64(Max(Max(Abs(b[0]), Abs(b[1])), Max(Abs(b[2]), Abs(b[3]))))
			assertQuat(t, quatMulGeneric(Quat(a), Quat(b)), quatMul(Quat(a), Quat(b)), 1e-6*(1+absA*maxB))
		}

		got, want := linearCombine(a, m), linearCombineGeneric(a, m)
		for r := 0; r < 4; r++ {
			_, bound := refDot(Vec4{m[0][r], m[1][r], m[2][r], m[3][r]}, a)
			assert.InDelta(t, want[r], got[r], 1e-6*(1+bound), "row %d", r)
		}
	}
}

// refDot returns the float64 dot product of a and b together with the sum
// of the absolute products, which bounds the float32 rounding error.
func refDot(a, b Vec4) (dot, bound float64) {
	for i := range a {
		p := float64(a[i]) * float64(b[i])
		dot += p
		if p < 0 {
			p = -p
		}
		bound += p
	}
	return dot, bound
}
