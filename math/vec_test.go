package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorIdentities(t *testing.T) {
	v2 := NewVec2(1.5, -2.25)
	v3 := NewVec3(3, -1, 0.5)
	v4 := NewVec4(-7, 2, 0.125, 9)

	assert.Equal(t, NewVec2Zero(), v2.Add(v2.Neg()))
	assert.Equal(t, NewVec3Zero(), v3.Add(v3.Neg()))
	assert.Equal(t, NewVec4Zero(), v4.Add(v4.Neg()))

	assert.Equal(t, v2, v2.MulScalar(1))
	assert.Equal(t, v3, v3.MulScalar(1))
	assert.Equal(t, v4, v4.MulScalar(1))

	assert.Equal(t, NewVec2Zero(), v2.Sub(v2))
	assert.Equal(t, NewVec3Zero(), v3.Sub(v3))
	assert.Equal(t, NewVec4Zero(), v4.Sub(v4))
}

func TestVec4Arithmetic(t *testing.T) {
	a := NewVec4(1, 2, 3, 4)
	b := NewVec4(2, 4, 6, 8)

	assert.Equal(t, Vec4{3, 6, 9, 12}, a.Add(b))
	assert.Equal(t, Vec4{-1, -2, -3, -4}, a.Sub(b))
	assert.Equal(t, Vec4{2, 8, 18, 32}, a.Mul(b))
	assert.Equal(t, Vec4{0.5, 0.5, 0.5, 0.5}, a.Div(b))
	assert.Equal(t, Vec4{2, 3, 4, 5}, a.AddScalar(1))
	assert.Equal(t, Vec4{0, 1, 2, 3}, a.SubScalar(1))
	assert.Equal(t, Vec4{0.5, 1, 1.5, 2}, a.DivScalar(2))
	assert.Equal(t, float32(60), a.Dot(b))
	assert.Equal(t, float32(60), Vec4DotFloat32(1, 2, 3, 4, 2, 4, 6, 8))
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{3, 3, 3}, b.Sub(a))
	assert.Equal(t, Vec3{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Vec3{4, 2.5, 2}, b.Div(a))
	assert.Equal(t, Vec3{2, 3, 4}, a.AddScalar(1))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3{-3, 6, -3}, a.Cross(b))
}

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(1, 2)

	assert.Equal(t, Vec2{4, 6}, a.Add(b))
	assert.Equal(t, Vec2{2, 2}, a.Sub(b))
	assert.Equal(t, Vec2{3, 8}, a.Mul(b))
	assert.Equal(t, Vec2{3, 2}, a.Div(b))
	assert.Equal(t, Vec2{1.5, 2}, a.DivScalar(2))
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(5), a.Length())
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 1.0, NewVec2(3, -7).Normalize().Length(), tol)
	assert.InDelta(t, 1.0, NewVec3(1, 2, -9).Normalize().Length(), tol)
	assert.InDelta(t, 1.0, NewVec4(0.1, 0.2, 0.3, 0.4).Normalize().Length(), tol)
	assertVec3(t, NewVec3(0.6, 0, 0.8), NewVec3(3, 0, 4).Normalized(), tol)

	assert.Equal(t, NewVec2Zero(), NewVec2Zero().Normalize())
	assert.Equal(t, NewVec3Zero(), NewVec3Zero().Normalize())
	assert.Equal(t, NewVec4Zero(), NewVec4Zero().Normalize())
}

func TestSafeNormalize(t *testing.T) {
	tiny := NewVec3(0.0001, 0, 0)
	assert.Equal(t, NewVec3Zero(), tiny.SafeNormalize(DefaultTolerance))
	assertVec3(t, NewVec3Right(), tiny.SafeNormalize(0.00001), tol)

	assert.Equal(t, NewVec2Zero(), NewVec2(0.0005, 0).SafeNormalize(DefaultTolerance))
	assertVec2(t, NewVec2Up(), NewVec2(0, 2).SafeNormalize(DefaultTolerance), tol)

	assert.Equal(t, NewVec4Zero(), NewVec4(0, 0, 0, 0.0009).SafeNormalize(DefaultTolerance))
	assertVec4(t, NewVec4(0, 0, 0, 1), NewVec4(0, 0, 0, 3).SafeNormalize(DefaultTolerance), tol)
}

func TestFastNormalize(t *testing.T) {
	assert.InDelta(t, 1.0, NewVec2(3, 4).FastNormalize().Length(), 1e-3)
	assert.InDelta(t, 1.0, NewVec3(-2, 5, 1).FastNormalize().Length(), 1e-3)
	assert.InDelta(t, 1.0, NewVec4(9, 1, 1, 2).FastNormalize().Length(), 1e-3)
}

func TestClampLength(t *testing.T) {
	v := NewVec3(0, 10, 0)
	assertVec3(t, NewVec3(0, 5, 0), v.ClampLength(1, 5), tol)
	assertVec3(t, NewVec3(0, 20, 0), v.ClampLength(20, 30), tol)
	assert.Equal(t, v, v.ClampLength(1, 100))

	assertVec2(t, NewVec2(3, 4), NewVec2(6, 8).ClampLength(0, 5), tol)
	assertVec4(t, NewVec4(0, 0, 2, 0), NewVec4(0, 0, 1, 0).ClampLength(2, 3), tol)
}

func TestCrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{NewVec3(1, 2, 3), NewVec3(-4, 5, 0.5)},
		{NewVec3(-0.3, 7, 2), NewVec3(3, 3, 3)},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		assert.InDelta(t, 0.0, c.Dot(p[0]), 1e-4)
		assert.InDelta(t, 0.0, c.Dot(p[1]), 1e-4)
	}
	assert.Equal(t, NewVec3Backward(), NewVec3Right().Cross(NewVec3Up()))
}

func TestDistanceAndCompare(t *testing.T) {
	assert.Equal(t, float32(5), NewVec2(0, 0).Distance(NewVec2(3, 4)))
	assert.InDelta(t, 3.0, NewVec3(1, 1, 1).Distance(NewVec3(3, 3, 2)), tol)
	assert.InDelta(t, 2.0, NewVec4(1, 1, 1, 1).Distance(NewVec4(2, 2, 2, 2)), tol)

	assert.True(t, NewVec3(1, 2, 3).Compare(NewVec3(1.0005, 2, 3), 0.001))
	assert.False(t, NewVec3(1, 2, 3).Compare(NewVec3(1.01, 2, 3), 0.001))
	assert.False(t, NewVec2(1, 2).Compare(NewVec2(1, 2.5), 0.1))
	assert.False(t, NewVec4(1, 2, 3, 4).Compare(NewVec4(1, 2, 3, 5), 0.1))
}

func TestVectorViews(t *testing.T) {
	v4 := NewVec4(1, 2, 3, 4)
	assert.Equal(t, Vec3{1, 2, 3}, v4.XYZ())
	assert.Equal(t, Vec3{1, 2, 3}, v4.RGB())
	assert.Equal(t, Vec3{1, 2, 3}, v4.ToVec3())
	assert.Equal(t, Vec3{1, 2, 3}, NewVec3FromVec4(v4))
	assert.Equal(t, Vec2{3, 4}, v4.ZW())
	assert.Equal(t, Vec2{2, 3}, v4.YZ())
	assert.Equal(t, float32(4), v4.A())

	// views are copies, not aliases
	xyz := v4.XYZ()
	xyz[0] = 100
	assert.Equal(t, float32(1), v4.X())

	v4.SetXYZ(NewVec3(7, 8, 9))
	assert.Equal(t, Vec4{7, 8, 9, 4}, v4)
	v4.SetZW(NewVec2(0, 0))
	assert.Equal(t, Vec4{7, 8, 0, 0}, v4)
	v4.SetRGB(NewVec3One())
	assert.Equal(t, Vec4{1, 1, 1, 0}, v4)

	v3 := NewVec3FromVec2(NewVec2(5, 6), 7)
	assert.Equal(t, Vec3{5, 6, 7}, v3)
	assert.Equal(t, Vec2{6, 7}, v3.VW())
	assert.Equal(t, Vec2{5, 6}, v3.UV())
	assert.Equal(t, float32(7), v3.Depth())
	assert.Equal(t, Vec4{5, 6, 7, 1}, v3.ToVec4(1))
	assert.Equal(t, Vec4{5, 6, 7, 0}, NewVec4FromVec3(v3, 0))

	v3.SetXY(NewVec2Zero())
	assert.Equal(t, Vec3{0, 0, 7}, v3)
	v3.SetYZ(NewVec2One())
	assert.Equal(t, Vec3{0, 1, 1}, v3)
	assert.Equal(t, Vec3{9, 1, 2}, NewVec3FromYZ(9, NewVec2(1, 2)))
}

func TestNamedConstants(t *testing.T) {
	assert.Equal(t, Vec3{0, 0, -1}, NewVec3Forward())
	assert.Equal(t, Vec4{0, 0, -1, 0}, NewVec4Forward())
	assert.Equal(t, Vec4{1, 0, 1, 1}, NewVec4Purple())
	assert.Equal(t, Vec3{1, 1, 0}, NewVec3Yellow())
	assert.Equal(t, Vec2{-1, 0}, NewVec2Left())
	assert.Equal(t, NewVec3Fill(1), NewVec3White())
	assert.Equal(t, NewVec4Fill(0), NewVec4Black())
}

func TestVec3Transform(t *testing.T) {
	p := NewVec3(1, 2, 3)
	assertVec3(t, NewVec3(2, 2, 3), p.Transform(NewMat4Translation(NewVec3(1, 0, 0))), tol)
	assertVec3(t, NewVec3(2, 4, 6), p.Transform(NewMat4Scale(NewVec3Fill(2))), tol)
}
