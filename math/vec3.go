package math

// Vec3 represents a 3D vector. Lanes can be read as x/y/z, r/g/b, u/v/w or
// width/height/depth, and pairs of adjacent lanes as 2D vectors.
type Vec3 [3]float32

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func NewVec3Fill(fill float32) Vec3 {
	return Vec3{fill, fill, fill}
}

func NewVec3FromVec2(xy Vec2, z float32) Vec3 {
	return Vec3{xy[0], xy[1], z}
}

func NewVec3FromYZ(x float32, yz Vec2) Vec3 {
	return Vec3{x, yz[0], yz[1]}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return vector.XYZ()
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Backward() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

func NewVec3Red() Vec3    { return Vec3{1.0, 0.0, 0.0} }
func NewVec3Green() Vec3  { return Vec3{0.0, 1.0, 0.0} }
func NewVec3Blue() Vec3   { return Vec3{0.0, 0.0, 1.0} }
func NewVec3Cyan() Vec3   { return Vec3{0.0, 1.0, 1.0} }
func NewVec3Yellow() Vec3 { return Vec3{1.0, 1.0, 0.0} }
func NewVec3Purple() Vec3 { return Vec3{1.0, 0.0, 1.0} }
func NewVec3Black() Vec3  { return Vec3{0.0, 0.0, 0.0} }
func NewVec3White() Vec3  { return Vec3{1.0, 1.0, 1.0} }

func (v Vec3) X() float32      { return v[0] }
func (v Vec3) Y() float32      { return v[1] }
func (v Vec3) Z() float32      { return v[2] }
func (v Vec3) R() float32      { return v[0] }
func (v Vec3) G() float32      { return v[1] }
func (v Vec3) B() float32      { return v[2] }
func (v Vec3) U() float32      { return v[0] }
func (v Vec3) V() float32      { return v[1] }
func (v Vec3) W() float32      { return v[2] }
func (v Vec3) Width() float32  { return v[0] }
func (v Vec3) Height() float32 { return v[1] }
func (v Vec3) Depth() float32  { return v[2] }
func (v Vec3) XY() Vec2        { return Vec2{v[0], v[1]} }
func (v Vec3) YZ() Vec2        { return Vec2{v[1], v[2]} }
func (v Vec3) UV() Vec2        { return Vec2{v[0], v[1]} }
func (v Vec3) VW() Vec2        { return Vec2{v[1], v[2]} }
func (v Vec3) RG() Vec2        { return Vec2{v[0], v[1]} }
func (v Vec3) GB() Vec2        { return Vec2{v[1], v[2]} }

// SetXY overwrites the first two lanes.
func (v *Vec3) SetXY(xy Vec2) { v[0], v[1] = xy[0], xy[1] }

// SetYZ overwrites the last two lanes.
func (v *Vec3) SetYZ(yz Vec2) { v[1], v[2] = yz[0], yz[1] }

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v[0] + other[0],
		v[1] + other[1],
		v[2] + other[2]}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v[0] - other[0],
		v[1] - other[1],
		v[2] - other[2]}
}

/**
 * @brief Multiplies v by other and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v[0] * other[0],
		v[1] * other[1],
		v[2] * other[2]}
}

/**
 * @brief Divides v by other and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v[0] / other[0],
		v[1] / other[1],
		v[2] / other[2]}
}

func (v Vec3) AddScalar(scalar float32) Vec3 {
	return Vec3{v[0] + scalar, v[1] + scalar, v[2] + scalar}
}

func (v Vec3) SubScalar(scalar float32) Vec3 {
	return Vec3{v[0] - scalar, v[1] - scalar, v[2] - scalar}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v[0] * scalar,
		v[1] * scalar,
		v[2] * scalar}
}

func (v Vec3) DivScalar(scalar float32) Vec3 {
	return Vec3{v[0] / scalar, v[1] / scalar, v[2] / scalar}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

/**
 * @brief Returns the squared length of the provided vector.
 *
 * @return The squared length.
 */
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v. A vector of length exactly zero
 * yields the zero vector instead of a division by zero.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0.0 {
		return NewVec3Zero()
	}
	return v.DivScalar(length)
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 *
 * @return A normalized copy of the supplied vector
 */
func (v Vec3) Normalized() Vec3 {
	return v.Normalize()
}

// SafeNormalize returns the zero vector when the length of v is below
// tolerance, otherwise a unit length copy of v.
func (v Vec3) SafeNormalize(tolerance float32) Vec3 {
	length := v.Length()
	if length < tolerance {
		return NewVec3Zero()
	}
	return v.DivScalar(length)
}

// FastNormalize scales v by an approximate reciprocal length. There is no
// zero-length guard.
func (v Vec3) FastNormalize() Vec3 {
	return v.MulScalar(RSqrt(v.Dot(v)))
}

// ClampLength rescales v so that its length lies in [minLength, maxLength], keeping its
// direction.
func (v Vec3) ClampLength(minLength, maxLength float32) Vec3 {
	length := v.Length()
	if length < minLength || length > maxLength {
		return v.Normalize().MulScalar(Clamp(length, minLength, maxLength))
	}
	return v
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v[0] * other[0]
	p += v[1] * other[1]
	p += v[2] * other[2]
	return p
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0]}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically FloatEpsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	for i := range v {
		if Abs(v[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.MulVec4(v.ToVec4(1.0)).XYZ()
}

// IVec3 truncates every lane toward zero.
func (v Vec3) IVec3() IVec3 {
	return IVec3{int32(v[0]), int32(v[1]), int32(v[2])}
}
