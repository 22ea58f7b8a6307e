package math

// Vec2 represents a 2D vector. Lanes can be read as x/y, r/g, u/v or
// width/height.
type Vec2 [2]float32

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

/**
 * @brief Creates and returns a 2-component vector with both components set to fill.
 */
func NewVec2Fill(fill float32) Vec2 {
	return Vec2{fill, fill}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{0.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

func (v Vec2) X() float32      { return v[0] }
func (v Vec2) Y() float32      { return v[1] }
func (v Vec2) R() float32      { return v[0] }
func (v Vec2) G() float32      { return v[1] }
func (v Vec2) U() float32      { return v[0] }
func (v Vec2) V() float32      { return v[1] }
func (v Vec2) Width() float32  { return v[0] }
func (v Vec2) Height() float32 { return v[1] }

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v[0] + other[0], v[1] + other[1]}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v[0] - other[0], v[1] - other[1]}
}

/**
 *  Multiplies v by other and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v[0] * other[0], v[1] * other[1]}
}

/**
 * Divides v by other and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v[0] / other[0], v[1] / other[1]}
}

func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v[0] + s, v[1] + s} }
func (v Vec2) SubScalar(s float32) Vec2 { return Vec2{v[0] - s, v[1] - s} }
func (v Vec2) MulScalar(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{v[0] / s, v[1] / s} }

func (v Vec2) Neg() Vec2 {
	return Vec2{-v[0], -v[1]}
}

func (v Vec2) Dot(other Vec2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v, or the zero vector if v has
 * a length of exactly zero.
 */
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0.0 {
		return NewVec2Zero()
	}
	return v.DivScalar(length)
}

/**
 * @brief Returns a unit length copy of v, or the zero vector if the length
 * of v is below tolerance (typically DefaultTolerance).
 */
func (v Vec2) SafeNormalize(tolerance float32) Vec2 {
	length := v.Length()
	if length < tolerance {
		return NewVec2Zero()
	}
	return v.DivScalar(length)
}

// FastNormalize scales v by an approximate reciprocal length. There is no
// zero-length guard.
func (v Vec2) FastNormalize() Vec2 {
	return v.MulScalar(RSqrt(v.Dot(v)))
}

// ClampLength rescales v so that its length lies in [minLength, maxLength], keeping its
// direction.
func (v Vec2) ClampLength(minLength, maxLength float32) Vec2 {
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
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if Abs(v[0]-other[0]) > tolerance {
		return false
	}
	if Abs(v[1]-other[1]) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// IVec2 truncates every lane toward zero.
func (v Vec2) IVec2() IVec2 {
	return IVec2{int32(v[0]), int32(v[1])}
}
