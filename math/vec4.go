package math

// Vec4 represents a 4D vector. Lanes can be read as x/y/z/w or r/g/b/a, the
// first three as a Vec3 (XYZ, RGB) and adjacent pairs as a Vec2. All
// arithmetic goes through the 4-wide kernel selected at build time.
type Vec4 [4]float32

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @param w The w value.
 * @return A new 4-element vector.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func NewVec4Fill(fill float32) Vec4 {
	return Vec4{fill, fill, fill, fill}
}

/**
 * @brief Returns a new vec4 using xyz as the x, y and z components and w for w.
 *
 * @param xyz The 3-component vector.
 * @param w The w component.
 * @return A new vec4
 */
func NewVec4FromVec3(xyz Vec3, w float32) Vec4 {
	return Vec4{xyz[0], xyz[1], xyz[2], w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0f.
 */
func NewVec4Zero() Vec4 {
	return Vec4{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0f.
 */
func NewVec4One() Vec4 {
	return Vec4{1.0, 1.0, 1.0, 1.0}
}

// Directions carry w = 0.
func NewVec4Right() Vec4    { return Vec4{1.0, 0.0, 0.0, 0.0} }
func NewVec4Up() Vec4       { return Vec4{0.0, 1.0, 0.0, 0.0} }
func NewVec4Left() Vec4     { return Vec4{-1.0, 0.0, 0.0, 0.0} }
func NewVec4Down() Vec4     { return Vec4{0.0, -1.0, 0.0, 0.0} }
func NewVec4Forward() Vec4  { return Vec4{0.0, 0.0, -1.0, 0.0} }
func NewVec4Backward() Vec4 { return Vec4{0.0, 0.0, 1.0, 0.0} }

// Colours are opaque, except Black which is all zero.
func NewVec4Red() Vec4    { return Vec4{1.0, 0.0, 0.0, 1.0} }
func NewVec4Green() Vec4  { return Vec4{0.0, 1.0, 0.0, 1.0} }
func NewVec4Blue() Vec4   { return Vec4{0.0, 0.0, 1.0, 1.0} }
func NewVec4Cyan() Vec4   { return Vec4{0.0, 1.0, 1.0, 1.0} }
func NewVec4Yellow() Vec4 { return Vec4{1.0, 1.0, 0.0, 1.0} }
func NewVec4Purple() Vec4 { return Vec4{1.0, 0.0, 1.0, 1.0} }
func NewVec4Black() Vec4  { return Vec4{0.0, 0.0, 0.0, 0.0} }
func NewVec4White() Vec4  { return Vec4{1.0, 1.0, 1.0, 1.0} }

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }
func (v Vec4) R() float32 { return v[0] }
func (v Vec4) G() float32 { return v[1] }
func (v Vec4) B() float32 { return v[2] }
func (v Vec4) A() float32 { return v[3] }
func (v Vec4) XY() Vec2   { return Vec2{v[0], v[1]} }
func (v Vec4) YZ() Vec2   { return Vec2{v[1], v[2]} }
func (v Vec4) ZW() Vec2   { return Vec2{v[2], v[3]} }

/**
 * @brief Returns a new vec3 containing the x, y and z components of v,
 * essentially dropping the w component.
 */
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) RGB() Vec3 {
	return v.XYZ()
}

// ToVec3 is XYZ under the name the rest of the engine code uses.
func (v Vec4) ToVec3() Vec3 {
	return v.XYZ()
}

func (v *Vec4) SetXYZ(xyz Vec3) { v[0], v[1], v[2] = xyz[0], xyz[1], xyz[2] }
func (v *Vec4) SetRGB(rgb Vec3) { v.SetXYZ(rgb) }
func (v *Vec4) SetXY(xy Vec2)   { v[0], v[1] = xy[0], xy[1] }
func (v *Vec4) SetYZ(yz Vec2)   { v[1], v[2] = yz[0], yz[1] }
func (v *Vec4) SetZW(zw Vec2)   { v[2], v[3] = zw[0], zw[1] }

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec4) Add(other Vec4) Vec4 {
	return add4(v, other)
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec4) Sub(other Vec4) Vec4 {
	return sub4(v, other)
}

/**
 * @brief Multiplies v by other and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec4) Mul(other Vec4) Vec4 {
	return mul4(v, other)
}

/**
 * @brief Divides v by other and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec4) Div(other Vec4) Vec4 {
	return div4(v, other)
}

func (v Vec4) AddScalar(scalar float32) Vec4 { return addScalar4(v, scalar) }
func (v Vec4) SubScalar(scalar float32) Vec4 { return subScalar4(v, scalar) }
func (v Vec4) MulScalar(scalar float32) Vec4 { return mulScalar4(v, scalar) }
func (v Vec4) DivScalar(scalar float32) Vec4 { return divScalar4(v, scalar) }

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Dot(other Vec4) float32 {
	return dot4(v, other)
}

/**
 * @brief Calculates the dot product using the elements of vec4s provided in split-out format.
 *
 * @return The dot product of vectors a and b.
 */
func Vec4DotFloat32(a0, a1, a2, a3, b0, b1, b2, b3 float32) float32 {
	return dot4(Vec4{a0, a1, a2, a3}, Vec4{b0, b1, b2, b3})
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec4) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v, or the zero vector when v has a
 * length of exactly zero.
 */
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length == 0.0 {
		return NewVec4Zero()
	}
	return v.DivScalar(length)
}

func (v Vec4) SafeNormalize(tolerance float32) Vec4 {
	length := v.Length()
	if length < tolerance {
		return NewVec4Zero()
	}
	return v.DivScalar(length)
}

// FastNormalize scales v by an approximate reciprocal length. There is no
// zero-length guard.
func (v Vec4) FastNormalize() Vec4 {
	return v.MulScalar(RSqrt(v.Dot(v)))
}

func (v Vec4) ClampLength(minLength, maxLength float32) Vec4 {
	length := v.Length()
	if length < minLength || length > maxLength {
		return v.Normalize().MulScalar(Clamp(length, minLength, maxLength))
	}
	return v
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically FloatEpsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec4) Compare(other Vec4, tolerance float32) bool {
	for i := range v {
		if Abs(v[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}

func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}
