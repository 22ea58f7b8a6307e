package math

import (
	"golang.org/x/image/math/f32"
)

// Conversions to and from the x/image/math/f32 types. The vectors share
// their layout; f32.Mat4 is row-major, so matrices are transposed on the
// way through.

func (v Vec2) F32() f32.Vec2 { return f32.Vec2(v) }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3(v) }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4(v) }

func NewVec2FromF32(v f32.Vec2) Vec2 { return Vec2(v) }
func NewVec3FromF32(v f32.Vec3) Vec3 { return Vec3(v) }
func NewVec4FromF32(v f32.Vec4) Vec4 { return Vec4(v) }

// F32 returns mt in row-major order: element m[4*r+c] is mt[c][r].
func (mt Mat4) F32() f32.Mat4 {
	var out f32.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[4*r+c] = mt[c][r]
		}
	}
	return out
}

func NewMat4FromF32(m f32.Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = m[4*r+c]
		}
	}
	return out
}

// F32Mat3 returns the upper-left 3x3 block of mt in row-major order.
func (mt Mat4) F32Mat3() f32.Mat3 {
	var out f32.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[3*r+c] = mt[c][r]
		}
	}
	return out
}
