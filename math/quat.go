package math

// Quat is a quaternion stored as (x, y, z, w): vector part first, scalar
// part last. Only unit quaternions describe rotations and nothing here
// renormalises implicitly; call Normalize after composing.
type Quat [4]float32

// ------------------------------------------
// Quaternion
// ------------------------------------------

func NewQuat(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

func NewQuatFill(fill float32) Quat {
	return Quat{fill, fill, fill, fill}
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quat {
	return Quat{0, 0, 0, 1.0}
}

func NewQuatZero() Quat {
	return Quat{}
}

func NewQuatFromVec4(v Vec4) Quat {
	return Quat(v)
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation. It is normalized first.
 * @param angleRadians The angle of rotation.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angleRadians float32) Quat {
	a := axis.Normalize()
	halfAngle := 0.5 * angleRadians
	s := Sin(halfAngle)
	return Quat{a[0] * s, a[1] * s, a[2] * s, Cos(halfAngle)}
}

// NewQuatFromMat4 extracts the rotation held in the upper 3x3 block of mat,
// which must be orthonormal. The branch is picked from the largest diagonal
// term so the square root never sees a small or negative argument.
func NewQuatFromMat4(mat Mat4) Quat {
	var t float32
	var q Quat
	if mat[2][2] < 0.0 {
		if mat[0][0] > mat[1][1] {
			t = 1.0 + mat[0][0] - mat[1][1] - mat[2][2]
			q = Quat{t, mat[0][1] + mat[1][0], mat[2][0] + mat[0][2], mat[1][2] - mat[2][1]}
		} else {
			t = 1.0 - mat[0][0] + mat[1][1] - mat[2][2]
			q = Quat{mat[0][1] + mat[1][0], t, mat[1][2] + mat[2][1], mat[2][0] - mat[0][2]}
		}
	} else {
		if mat[0][0] < -mat[1][1] {
			t = 1.0 - mat[0][0] - mat[1][1] + mat[2][2]
			q = Quat{mat[2][0] + mat[0][2], mat[1][2] + mat[2][1], t, mat[0][1] - mat[1][0]}
		} else {
			t = 1.0 + mat[0][0] + mat[1][1] + mat[2][2]
			q = Quat{mat[1][2] - mat[2][1], mat[2][0] - mat[0][2], mat[0][1] - mat[1][0], t}
		}
	}
	return q.MulScalar(0.5 / Sqrt(t))
}

func (q Quat) X() float32 { return q[0] }
func (q Quat) Y() float32 { return q[1] }
func (q Quat) Z() float32 { return q[2] }
func (q Quat) W() float32 { return q[3] }

// XYZ returns the vector part.
func (q Quat) XYZ() Vec3 { return Vec3{q[0], q[1], q[2]} }

func (q Quat) Vec4() Vec4 { return Vec4(q) }

func (q Quat) Add(other Quat) Quat { return Quat(add4(Vec4(q), Vec4(other))) }
func (q Quat) Sub(other Quat) Quat { return Quat(sub4(Vec4(q), Vec4(other))) }

func (q Quat) MulScalar(scalar float32) Quat { return Quat(mulScalar4(Vec4(q), scalar)) }
func (q Quat) DivScalar(scalar float32) Quat { return Quat(divScalar4(Vec4(q), scalar)) }

func (q Quat) Neg() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product).
 *
 * q.Mul(other) rotates by other first and then by q, matching
 * q.ToMat4().Mul(other.ToMat4()).
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quat) Mul(other Quat) Quat {
	return quatMul(q, other)
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quat) Dot(other Quat) float32 {
	return dot4(Vec4(q), Vec4(other))
}

func (q Quat) LengthSquared() float32 {
	return q.Dot(q)
}

func (q Quat) Length() float32 {
	return Sqrt(q.Dot(q))
}

/**
 * @brief Returns a normalized copy of the provided quaternion, or the zero
 * quaternion when its length is exactly zero.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quat) Normalize() Quat {
	length := q.Length()
	if length == 0.0 {
		return NewQuatZero()
	}
	return q.DivScalar(length)
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

/**
 * @brief Returns the multiplicative inverse: the conjugate divided by the
 * squared length. For unit quaternions this is the conjugate. The zero
 * quaternion inverts to itself.
 *
 * @return An inverse copy of the provided quaternion.
 */
func (q Quat) Invert() Quat {
	lengthSquared := q.Dot(q)
	if lengthSquared == 0.0 {
		return NewQuatZero()
	}
	return q.Conjugate().DivScalar(lengthSquared)
}

// Lerp blends q and other componentwise with alpha clamped to [0, 1] and
// normalizes the result. The angular velocity is not constant; use Slerp
// when that matters.
func (q Quat) Lerp(other Quat, alpha float32) Quat {
	t := Clamp(alpha, 0.0, 1.0)
	blended := q.MulScalar(1.0 - t).Add(other.MulScalar(t))
	return blended.Normalize()
}

// slerpMinAngle is the angle, in radians, below which the endpoints are
// treated as identical.
const slerpMinAngle float32 = 1e-3

/**
 * @brief Calculates spherical linear interpolation between q and other.
 *
 * alpha is clamped to [0, 1]. The shorter of the two arcs is taken. When
 * the endpoints are (nearly) identical, q is returned for alpha < 0.5 and
 * other for the rest of the range.
 *
 * @param other The second quaternion.
 * @param alpha The amount of interpolation.
 * @return An interpolated quaternion.
 */
func (q Quat) Slerp(other Quat, alpha float32) Quat {
	t := Clamp(alpha, 0.0, 1.0)

	b := other
	dot := Clamp(q.Dot(other), -1.0, 1.0)
	if dot < 0.0 {
		b = b.Neg()
		dot = -dot
	}

	angle := ACos(dot)
	if angle < slerpMinAngle {
		if t < 0.5 {
			return q
		}
		return other
	}

	sinAngle := Sin(angle)
	left := q.MulScalar(Sin((1.0-t)*angle) / sinAngle)
	right := b.MulScalar(Sin(t*angle) / sinAngle)
	return left.Add(right)
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The
 * quaternion is normalized first.
 *
 * @return A rotation matrix.
 */
func (q Quat) ToMat4() Mat4 {
	n := q.Normalize()
	xx := n[0] * n[0]
	yy := n[1] * n[1]
	zz := n[2] * n[2]
	xy := n[0] * n[1]
	xz := n[0] * n[2]
	yz := n[1] * n[2]
	wx := n[3] * n[0]
	wy := n[3] * n[1]
	wz := n[3] * n[2]

	return Mat4{
		{1.0 - 2.0*(yy+zz), 2.0 * (xy + wz), 2.0 * (xz - wy), 0.0},
		{2.0 * (xy - wz), 1.0 - 2.0*(xx+zz), 2.0 * (yz + wx), 0.0},
		{2.0 * (xz + wy), 2.0 * (yz - wx), 1.0 - 2.0*(xx+yy), 0.0},
		{0.0, 0.0, 0.0, 1.0},
	}
}

// Rotate applies the rotation held by q, which must be unit length, to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.XYZ()
	t := u.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q[3])).Add(u.Cross(t))
}

func (q Quat) Compare(other Quat, tolerance float32) bool {
	return Vec4(q).Compare(Vec4(other), tolerance)
}
