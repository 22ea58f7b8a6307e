package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec2(t *testing.T, want, got Vec2, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertVec3(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertVec4(t *testing.T, want, got Vec4, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertQuat(t *testing.T, want, got Quat, delta float64) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], delta, "want %v, got %v", want, got)
}

func assertMat4(t *testing.T, want, got Mat4, delta float64) {
	t.Helper()
	w, g := want.Flatten(), got.Flatten()
	assert.InDeltaSlice(t, w[:], g[:], delta, "want\n%v\ngot\n%v", want, got)
}

// assertSameRotation accepts got == want or got == -want.
func assertSameRotation(t *testing.T, want, got Quat, delta float32) {
	t.Helper()
	assert.True(t, want.Compare(got, delta) || want.Compare(got.Neg(), delta),
		"want %v or its negation, got %v", want, got)
}

// sampleQuats is a spread of unit rotations that exercises every branch of
// NewQuatFromMat4.
func sampleQuats() []Quat {
	return []Quat{
		NewQuatIdentity(),
		NewQuatFromAxisAngle(NewVec3Right(), Radians(30)),
		NewQuatFromAxisAngle(NewVec3Up(), Radians(170)),
		NewQuatFromAxisAngle(NewVec3Backward(), Radians(120)),
		NewQuatFromAxisAngle(NewVec3(1, 2, 3), Radians(75)),
		NewQuatFromAxisAngle(NewVec3(-2, 0.5, 1), Radians(200)),
		NewQuatFromAxisAngle(NewVec3(0, 1, 1), Radians(180)),
		NewQuatFromAxisAngle(NewVec3(1, 0, 0), Radians(180)),
	}
}
