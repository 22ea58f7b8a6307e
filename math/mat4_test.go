package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMat4() Mat4 {
	return NewMat4FromColumns(
		NewVec4(1, 2, 3, 4),
		NewVec4(5, 6, 7, 8),
		NewVec4(9, 10, 11, 12),
		NewVec4(13, 14, 15, 16),
	)
}

func TestMat4Constructors(t *testing.T) {
	id := NewMat4Identity()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			want := float32(0)
			if c == r {
				want = 1
			}
			assert.Equal(t, want, id[c][r])
		}
	}
	assert.Equal(t, Mat4{}, NewMat4Zero())
	d := NewMat4Diagonal(3)
	assert.Equal(t, float32(3), d[2][2])
	assert.Equal(t, float32(0), d[2][1])

	m := sampleMat4()
	assert.Equal(t, float32(7), m[1][2], "column 1, row 2")
	assert.Equal(t, m, NewMat4FromFlat(m.Flatten()))
	flat := m.Flatten()
	assert.Equal(t, float32(5), flat[4])
}

func TestMat4Identity(t *testing.T) {
	m := sampleMat4()
	assert.Equal(t, m, m.Mul(NewMat4Identity()))
	assert.Equal(t, m, NewMat4Identity().Mul(m))
}

func TestMat4Columnwise(t *testing.T) {
	m := sampleMat4()
	assert.Equal(t, m.MulScalar(2), m.Add(m))
	assert.Equal(t, NewMat4Zero(), m.Sub(m))
	assert.Equal(t, m, m.MulScalar(4).DivScalar(4))
}

func TestMat4MulOrder(t *testing.T) {
	// a scales, b translates. a*b translates first, then scales the result.
	a := NewMat4Scale(NewVec3Fill(2))
	b := NewMat4Translation(NewVec3(1, 0, 0))
	p := NewVec4(0, 0, 0, 1)

	assertVec4(t, NewVec4(2, 0, 0, 1), a.Mul(b).MulVec4(p), tol)
	assertVec4(t, NewVec4(1, 0, 0, 1), b.Mul(a).MulVec4(p), tol)

	// (A*B) column i is A applied to B's column i.
	x, y := sampleMat4(), NewMat4EulerZ(0.3).Mul(NewMat4Translation(NewVec3(1, 2, 3)))
	xy := x.Mul(y)
	for i := 0; i < 4; i++ {
		assertVec4(t, x.MulVec4(y[i]), xy[i], 1e-4)
	}
}

func TestMat4MulVec4(t *testing.T) {
	m := sampleMat4()
	assert.Equal(t, Vec4{1, 2, 3, 4}, m.MulVec4(NewVec4(1, 0, 0, 0)))
	assert.Equal(t, Vec4{27, 30, 33, 36}, m.MulVec4(NewVec4(0, 1, 1, 1)))
}

func TestMat4Transpose(t *testing.T) {
	m := sampleMat4()
	tr := m.Transpose()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			assert.Equal(t, m[c][r], tr[r][c])
		}
	}
	assert.Equal(t, m, tr.Transpose())
	assert.Equal(t, float32(2), m[0][1], "receiver left untouched")
}

func TestMat4Inverse(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, -2, 3)).
		Mul(NewMat4Rotation(NewVec3(1, 1, 0), 40)).
		Mul(NewMat4Scale(NewVec3(2, 3, 4)))

	assertMat4(t, NewMat4Identity(), m.Mul(m.Inverse()), 1e-4)
	assertMat4(t, NewMat4Identity(), m.Inverse().Mul(m), 1e-4)
	assertMat4(t, NewMat4Translation(NewVec3(-1, 2, -3)), NewMat4Translation(NewVec3(1, -2, 3)).Inverse(), tol)
}

func TestMat4Compare(t *testing.T) {
	m := sampleMat4()
	n := m
	n[3][3] += 0.01
	assert.True(t, m.Compare(m, 0))
	assert.True(t, m.Compare(n, 0.1))
	assert.False(t, m.Compare(n, 0.001))
}

func TestTranslationScenario(t *testing.T) {
	got := NewMat4Translation(NewVec3(1, 2, 3)).MulVec4(NewVec4(0, 0, 0, 1))
	assertVec4(t, NewVec4(1, 2, 3, 1), got, tol)

	// directions are unaffected by translation
	dir := NewMat4Translation(NewVec3(1, 2, 3)).MulVec4(NewVec4Up())
	assertVec4(t, NewVec4Up(), dir, tol)
}

func TestRotationScenario(t *testing.T) {
	got := NewMat4Rotation(NewVec3Up(), 90).MulVec4(NewVec4(1, 0, 0, 0))
	assertVec4(t, NewVec4(0, 0, -1, 0), got, tol)

	// the axis is normalized internally
	assertMat4(t, NewMat4Rotation(NewVec3Up(), 90), NewMat4Rotation(NewVec3(0, 5, 0), 90), tol)
}

func TestRotationMatchesEuler(t *testing.T) {
	assertMat4(t, NewMat4EulerX(Radians(30)), NewMat4Rotation(NewVec3Right(), 30), tol)
	assertMat4(t, NewMat4EulerY(Radians(-75)), NewMat4Rotation(NewVec3Up(), -75), tol)
	assertMat4(t, NewMat4EulerZ(Radians(120)), NewMat4Rotation(NewVec3Backward(), 120), tol)

	xyz := NewMat4EulerXYZ(0.1, 0.2, 0.3)
	want := NewMat4EulerX(0.1).Mul(NewMat4EulerY(0.2)).Mul(NewMat4EulerZ(0.3))
	assertMat4(t, want, xyz, tol)
}

func TestRotationIsOrthonormal(t *testing.T) {
	r := NewMat4Rotation(NewVec3(1, -2, 0.5), 33)
	assertMat4(t, NewMat4Identity(), r.Mul(r.Transpose()), 1e-5)
	for c := 0; c < 3; c++ {
		assert.InDelta(t, 1.0, r[c].XYZ().Length(), 1e-5)
	}
}

func TestLookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	view := NewMat4LookAt(eye, NewVec3Zero(), NewVec3Up())

	assertMat4(t, NewMat4Translation(NewVec3(0, 0, -5)), view, tol)
	assertVec3(t, NewVec3Zero(), eye.Transform(view), tol)
	assertVec3(t, NewVec3Forward(), view.Forward(), tol)
	assertVec3(t, NewVec3Backward(), view.Backward(), tol)
	assertVec3(t, NewVec3Up(), view.Up(), tol)
	assertVec3(t, NewVec3Down(), view.Down(), tol)
	assertVec3(t, NewVec3Right(), view.Right(), tol)
	assertVec3(t, NewVec3Left(), view.Left(), tol)
}

func TestLookAtOffAxis(t *testing.T) {
	eye := NewVec3(3, 4, -2)
	target := NewVec3(-1, 0.5, 6)
	view := NewMat4LookAt(eye, target, NewVec3Up())

	assertVec3(t, NewVec3Zero(), eye.Transform(view), 1e-4)
	// the target lands on the -Z axis at its distance from the eye
	assertVec3(t, NewVec3(0, 0, -eye.Distance(target)), target.Transform(view), 1e-4)
	assertVec3(t, target.Sub(eye).Normalize(), view.Forward(), 1e-5)
}

func TestLookAtDegenerate(t *testing.T) {
	t.Run("forward parallel to up", func(t *testing.T) {
		view := NewMat4LookAt(NewVec3(0, 10, 0), NewVec3Zero(), NewVec3Up())
		assertOrthonormalBasis(t, view)
		assertVec3(t, NewVec3Down(), view.Forward(), tol)
	})
	t.Run("forward along z and up along z", func(t *testing.T) {
		view := NewMat4LookAt(NewVec3Zero(), NewVec3(0, 0, -3), NewVec3Forward())
		assertOrthonormalBasis(t, view)
		assertVec3(t, NewVec3Forward(), view.Forward(), tol)
	})
	t.Run("eye on target", func(t *testing.T) {
		view := NewMat4LookAt(NewVec3One(), NewVec3One(), NewVec3Up())
		assertOrthonormalBasis(t, view)
		assertVec3(t, NewVec3Forward(), view.Forward(), tol)
	})
}

func assertOrthonormalBasis(t *testing.T, view Mat4) {
	t.Helper()
	basis := view
	basis[3] = NewVec4(0, 0, 0, 1)
	assertMat4(t, NewMat4Identity(), basis.Mul(basis.Transpose()), 1e-5)
	for _, f := range view.Flatten() {
		assert.False(t, f != f, "NaN in view matrix")
	}
}
