package math

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out[3] = position.ToVec4(1.0)
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out[0][0] = scale[0]
	out[1][1] = scale[1]
	out[2][2] = scale[2]
	return out
}

// NewMat4Rotation returns a right-handed rotation of angleDegrees around
// axis. The axis does not need to be unit length; a zero axis yields a
// uniform scale by cos(angle).
func NewMat4Rotation(axis Vec3, angleDegrees float32) Mat4 {
	a := axis.Normalize()
	x, y, z := a[0], a[1], a[2]

	rad := Radians(angleDegrees)
	c := Cos(rad)
	s := Sin(rad)
	k := 1.0 - c

	out := Mat4{}
	out[0][0] = x*x*k + c
	out[0][1] = x*y*k + z*s
	out[0][2] = x*z*k - y*s

	out[1][0] = y*x*k - z*s
	out[1][1] = y*y*k + c
	out[1][2] = y*z*k + x*s

	out[2][0] = z*x*k + y*s
	out[2][1] = z*y*k - x*s
	out[2][2] = z*z*k + c

	out[3][3] = 1.0
	return out
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angleRadians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)

	out[1][1] = c
	out[1][2] = s
	out[2][1] = -s
	out[2][2] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angleRadians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)

	out[0][0] = c
	out[0][2] = -s
	out[2][0] = s
	out[2][2] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angleRadians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := Cos(angleRadians)
	s := Sin(angleRadians)

	out[0][0] = c
	out[0][1] = s
	out[1][0] = -s
	out[1][1] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * The result is Rx * Ry * Rz, so a vector is rotated around z first.
 *
 * @param xRadians The x rotation.
 * @param yRadians The y rotation.
 * @param zRadians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	rx := NewMat4EulerX(xRadians)
	ry := NewMat4EulerY(yRadians)
	rz := NewMat4EulerZ(zRadians)
	return rx.Mul(ry).Mul(rz)
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of eye.
 *
 * When eye and target coincide the view looks down -Z. When the view
 * direction is parallel to worldUp another up axis is picked so the basis
 * stays orthonormal.
 *
 * @param eye The position of the viewer.
 * @param target The position to "look at".
 * @param worldUp The up hint.
 * @return A view matrix.
 */
func NewMat4LookAt(eye, target, worldUp Vec3) Mat4 {
	forward := target.Sub(eye)
	if forward.LengthSquared() <= FloatEpsilon {
		forward = NewVec3Forward()
	} else {
		forward = forward.Normalize()
	}

	right := forward.Cross(worldUp)
	if right.LengthSquared() <= FloatEpsilon {
		alt := NewVec3Forward()
		if Abs(forward[2]) > 0.9 {
			alt = NewVec3Up()
		}
		right = forward.Cross(alt)
	}
	right = right.Normalize()
	up := right.Cross(forward)

	return Mat4{
		{right[0], up[0], -forward[0], 0.0},
		{right[1], up[1], -forward[1], 0.0},
		{right[2], up[2], -forward[2], 0.0},
		{-right.Dot(eye), -up.Dot(eye), forward.Dot(eye), 1.0},
	}
}
