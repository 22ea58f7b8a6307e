//go:build !gmath_depth_zo

package math

// DefaultDepthRange is the clip-space depth convention used by the
// package-level projection builders. Build with -tags gmath_depth_zo to
// switch to DepthZeroToOne.
const DefaultDepthRange = DepthNegativeOneToOne
