package math

// DepthRange selects the clip-space depth interval produced by the
// projection builders.
type DepthRange int

const (
	// DepthNegativeOneToOne maps [near, far] to [-1, 1] (OpenGL).
	DepthNegativeOneToOne DepthRange = iota
	// DepthZeroToOne maps [near, far] to [0, 1] (Vulkan, Direct3D, Metal).
	DepthZeroToOne
)

func (d DepthRange) String() string {
	switch d {
	case DepthNegativeOneToOne:
		return "[-1, 1]"
	case DepthZeroToOne:
		return "[0, 1]"
	default:
		return "unknown"
	}
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. Depth follows DefaultDepthRange.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	return NewMat4OrthographicWithDepth(left, right, bottom, top, nearClip, farClip, DefaultDepthRange)
}

func NewMat4OrthographicWithDepth(left, right, bottom, top, nearClip, farClip float32, depth DepthRange) Mat4 {
	out := Mat4{}
	nf := 1.0 / (nearClip - farClip)

	out[0][0] = 2.0 / (right - left)
	out[1][1] = 2.0 / (top - bottom)
	out[3][0] = (left + right) / (left - right)
	out[3][1] = (bottom + top) / (bottom - top)
	out[3][3] = 1.0
	if depth == DepthZeroToOne {
		out[2][2] = nf
		out[3][2] = nearClip * nf
	} else {
		out[2][2] = 2.0 * nf
		out[3][2] = (nearClip + farClip) * nf
	}
	return out
}

// NewMat4OrthographicCentered builds a box of the given width and height
// centred on the view axis, spanning depth units from nearClip.
func NewMat4OrthographicCentered(width, height, depth, nearClip float32) Mat4 {
	return NewMat4OrthographicCenteredWithDepth(width, height, depth, nearClip, DefaultDepthRange)
}

func NewMat4OrthographicCenteredWithDepth(width, height, depth, nearClip float32, dr DepthRange) Mat4 {
	return NewMat4OrthographicWithDepth(
		-(width * 0.5), width*0.5,
		-(height * 0.5), height*0.5,
		nearClip, nearClip+depth, dr)
}

// NewMat4OrthographicExtent is NewMat4OrthographicCentered with the box
// given as width/height/depth lanes of extent.
func NewMat4OrthographicExtent(extent Vec3, nearClip float32) Mat4 {
	return NewMat4OrthographicCentered(extent.Width(), extent.Height(), extent.Depth(), nearClip)
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d
 * scenes. Depth follows DefaultDepthRange.
 *
 * @param fovDegrees The vertical field of view in degrees.
 * @param aspectRatio The aspect ratio (width / height).
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovDegrees, aspectRatio, nearClip, farClip float32) Mat4 {
	return NewMat4PerspectiveWithDepth(fovDegrees, aspectRatio, nearClip, farClip, DefaultDepthRange)
}

func NewMat4PerspectiveWithDepth(fovDegrees, aspectRatio, nearClip, farClip float32, depth DepthRange) Mat4 {
	cotan := 1.0 / Tan(fovDegrees*(Pi/360.0))
	nf := 1.0 / (nearClip - farClip)

	out := Mat4{}
	out[0][0] = cotan / aspectRatio
	out[1][1] = cotan
	out[2][3] = -1.0
	if depth == DepthZeroToOne {
		out[2][2] = farClip * nf
		out[3][2] = nearClip * farClip * nf
	} else {
		out[2][2] = (nearClip + farClip) * nf
		out[3][2] = 2.0 * nearClip * farClip * nf
	}
	return out
}
