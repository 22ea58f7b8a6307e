package math

/** @brief a 4x4 column-major matrix, typically used to represent object transformations.
 *
 * m[c] is column c and m[c][r] the element at column c, row r.
 */
type Mat4 [4]Vec4

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	return NewMat4Diagonal(1.0)
}

func NewMat4Zero() Mat4 {
	return Mat4{}
}

// NewMat4Diagonal returns a matrix with d on the main diagonal and zero
// elsewhere.
func NewMat4Diagonal(d float32) Mat4 {
	return Mat4{
		{d, 0, 0, 0},
		{0, d, 0, 0},
		{0, 0, d, 0},
		{0, 0, 0, d},
	}
}

func NewMat4FromColumns(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{c0, c1, c2, c3}
}

// NewMat4FromFlat builds a matrix from 16 column-major floats, the layout
// graphics APIs expect for uniform uploads.
func NewMat4FromFlat(data [16]float32) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = data[c*4+r]
		}
	}
	return out
}

// Flatten returns the 16 elements in column-major order.
func (mt Mat4) Flatten() [16]float32 {
	var out [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = mt[c][r]
		}
	}
	return out
}

func (mt Mat4) Add(other Mat4) Mat4 {
	return Mat4{
		mt[0].Add(other[0]),
		mt[1].Add(other[1]),
		mt[2].Add(other[2]),
		mt[3].Add(other[3]),
	}
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	return Mat4{
		mt[0].Sub(other[0]),
		mt[1].Sub(other[1]),
		mt[2].Sub(other[2]),
		mt[3].Sub(other[3]),
	}
}

func (mt Mat4) MulScalar(scalar float32) Mat4 {
	return Mat4{
		mt[0].MulScalar(scalar),
		mt[1].MulScalar(scalar),
		mt[2].MulScalar(scalar),
		mt[3].MulScalar(scalar),
	}
}

func (mt Mat4) DivScalar(scalar float32) Mat4 {
	return Mat4{
		mt[0].DivScalar(scalar),
		mt[1].DivScalar(scalar),
		mt[2].DivScalar(scalar),
		mt[3].DivScalar(scalar),
	}
}

/**
 * @brief Returns the result of multiplying mt and other.
 *
 * Column i of the result is mt applied to column i of other, so
 * mt.Mul(other) applied to a vector transforms it by other first and by mt
 * second.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	return Mat4{
		linearCombine(other[0], mt),
		linearCombine(other[1], mt),
		linearCombine(other[2], mt),
		linearCombine(other[3], mt),
	}
}

// MulVec4 transforms the column vector v by mt.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	return linearCombine(v, mt)
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (mt Mat4) Transpose() Mat4 {
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			mt[c][r], mt[r][c] = mt[r][c], mt[c][r]
		}
	}
	return mt
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * A singular matrix yields non-finite elements.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Flatten()

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	var o [16]float32

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return NewMat4FromFlat(o)
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for c := range mt {
		if !mt[c].Compare(other[c], tolerance) {
			return false
		}
	}
	return true
}

// row returns row r as a 3-component vector, dropping the last column.
func (mt Mat4) row(r int) Vec3 {
	return Vec3{mt[0][r], mt[1][r], mt[2][r]}
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	return mt.row(2).Neg().Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Backward() Vec3 {
	return mt.row(2).Normalize()
}

/**
 * @brief Returns a upward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Up() Vec3 {
	return mt.row(1).Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Down() Vec3 {
	return mt.row(1).Neg().Normalize()
}

/**
 * @brief Returns a left vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Left() Vec3 {
	return mt.row(0).Neg().Normalize()
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Right() Vec3 {
	return mt.row(0).Normalize()
}
