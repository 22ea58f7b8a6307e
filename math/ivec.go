package math

// IVec2 is a 2-lane signed integer vector. Lanes can be read as x/y, r/g
// or width/height.
type IVec2 [2]int32

// IVec3 is a 3-lane signed integer vector. Lanes can be read as x/y/z,
// r/g/b or width/height/depth.
type IVec3 [3]int32

// ------------------------------------------
// Integer Vector 2
// ------------------------------------------

func NewIVec2(x, y int32) IVec2 {
	return IVec2{x, y}
}

func NewIVec2Fill(fill int32) IVec2 {
	return IVec2{fill, fill}
}

func NewIVec2Zero() IVec2  { return IVec2{0, 0} }
func NewIVec2One() IVec2   { return IVec2{1, 1} }
func NewIVec2Up() IVec2    { return IVec2{0, 1} }
func NewIVec2Down() IVec2  { return IVec2{0, -1} }
func NewIVec2Left() IVec2  { return IVec2{-1, 0} }
func NewIVec2Right() IVec2 { return IVec2{1, 0} }

func (v IVec2) X() int32      { return v[0] }
func (v IVec2) Y() int32      { return v[1] }
func (v IVec2) R() int32      { return v[0] }
func (v IVec2) G() int32      { return v[1] }
func (v IVec2) Width() int32  { return v[0] }
func (v IVec2) Height() int32 { return v[1] }

func (v IVec2) Add(other IVec2) IVec2 { return IVec2{v[0] + other[0], v[1] + other[1]} }
func (v IVec2) Sub(other IVec2) IVec2 { return IVec2{v[0] - other[0], v[1] - other[1]} }
func (v IVec2) Mul(other IVec2) IVec2 { return IVec2{v[0] * other[0], v[1] * other[1]} }
func (v IVec2) Div(other IVec2) IVec2 { return IVec2{v[0] / other[0], v[1] / other[1]} }

func (v IVec2) AddScalar(s int32) IVec2 { return IVec2{v[0] + s, v[1] + s} }
func (v IVec2) SubScalar(s int32) IVec2 { return IVec2{v[0] - s, v[1] - s} }
func (v IVec2) MulScalar(s int32) IVec2 { return IVec2{v[0] * s, v[1] * s} }
func (v IVec2) DivScalar(s int32) IVec2 { return IVec2{v[0] / s, v[1] / s} }

func (v IVec2) Neg() IVec2 { return IVec2{-v[0], -v[1]} }

// Inc returns v with every lane incremented by one.
func (v IVec2) Inc() IVec2 { return v.AddScalar(1) }

// Dec returns v with every lane decremented by one.
func (v IVec2) Dec() IVec2 { return v.SubScalar(1) }

func (v IVec2) Dot(other IVec2) int32 {
	return v[0]*other[0] + v[1]*other[1]
}

func (v IVec2) LengthSquared() int32 {
	return v.Dot(v)
}

// Vec2 widens v to floating point.
func (v IVec2) Vec2() Vec2 {
	return Vec2{float32(v[0]), float32(v[1])}
}

// ------------------------------------------
// Integer Vector 3
// ------------------------------------------

func NewIVec3(x, y, z int32) IVec3 {
	return IVec3{x, y, z}
}

func NewIVec3Fill(fill int32) IVec3 {
	return IVec3{fill, fill, fill}
}

func NewIVec3FromIVec2(xy IVec2, z int32) IVec3 {
	return IVec3{xy[0], xy[1], z}
}

func NewIVec3FromYZ(x int32, yz IVec2) IVec3 {
	return IVec3{x, yz[0], yz[1]}
}

func NewIVec3Zero() IVec3     { return IVec3{0, 0, 0} }
func NewIVec3One() IVec3      { return IVec3{1, 1, 1} }
func NewIVec3Right() IVec3    { return IVec3{1, 0, 0} }
func NewIVec3Up() IVec3       { return IVec3{0, 1, 0} }
func NewIVec3Left() IVec3     { return IVec3{-1, 0, 0} }
func NewIVec3Down() IVec3     { return IVec3{0, -1, 0} }
func NewIVec3Forward() IVec3  { return IVec3{0, 0, -1} }
func NewIVec3Backward() IVec3 { return IVec3{0, 0, 1} }

func (v IVec3) X() int32      { return v[0] }
func (v IVec3) Y() int32      { return v[1] }
func (v IVec3) Z() int32      { return v[2] }
func (v IVec3) R() int32      { return v[0] }
func (v IVec3) G() int32      { return v[1] }
func (v IVec3) B() int32      { return v[2] }
func (v IVec3) Width() int32  { return v[0] }
func (v IVec3) Height() int32 { return v[1] }
func (v IVec3) Depth() int32  { return v[2] }
func (v IVec3) XY() IVec2     { return IVec2{v[0], v[1]} }
func (v IVec3) YZ() IVec2     { return IVec2{v[1], v[2]} }
func (v IVec3) RG() IVec2     { return IVec2{v[0], v[1]} }
func (v IVec3) GB() IVec2     { return IVec2{v[1], v[2]} }

func (v *IVec3) SetXY(xy IVec2) { v[0], v[1] = xy[0], xy[1] }
func (v *IVec3) SetYZ(yz IVec2) { v[1], v[2] = yz[0], yz[1] }

func (v IVec3) Add(other IVec3) IVec3 {
	return IVec3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

func (v IVec3) Sub(other IVec3) IVec3 {
	return IVec3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

func (v IVec3) Mul(other IVec3) IVec3 {
	return IVec3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

func (v IVec3) Div(other IVec3) IVec3 {
	return IVec3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

func (v IVec3) AddScalar(s int32) IVec3 { return IVec3{v[0] + s, v[1] + s, v[2] + s} }
func (v IVec3) SubScalar(s int32) IVec3 { return IVec3{v[0] - s, v[1] - s, v[2] - s} }
func (v IVec3) MulScalar(s int32) IVec3 { return IVec3{v[0] * s, v[1] * s, v[2] * s} }
func (v IVec3) DivScalar(s int32) IVec3 { return IVec3{v[0] / s, v[1] / s, v[2] / s} }

func (v IVec3) Neg() IVec3 { return IVec3{-v[0], -v[1], -v[2]} }
func (v IVec3) Inc() IVec3 { return v.AddScalar(1) }
func (v IVec3) Dec() IVec3 { return v.SubScalar(1) }

func (v IVec3) Dot(other IVec3) int32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

func (v IVec3) LengthSquared() int32 {
	return v.Dot(v)
}

// Vec3 widens v to floating point.
func (v IVec3) Vec3() Vec3 {
	return Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
