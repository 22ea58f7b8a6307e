package math

import (
	"fmt"

	"github.com/spaghettifunk/gmath/core"
)

// Settings carries the construction-time choices that the package-level
// helpers take from build tags and constants. A zero Settings is not
// useful; start from DefaultSettings or NewSettings.
type Settings struct {
	Depth     DepthRange
	Tolerance float32
}

func DefaultSettings() Settings {
	return Settings{
		Depth:     DefaultDepthRange,
		Tolerance: DefaultTolerance,
	}
}

// ParseDepthRange maps a configuration value to a DepthRange. The empty
// string selects DefaultDepthRange.
func ParseDepthRange(name string) (DepthRange, error) {
	switch name {
	case "":
		return DefaultDepthRange, nil
	case core.DepthRangeNegativeOneToOne:
		return DepthNegativeOneToOne, nil
	case core.DepthRangeZeroToOne:
		return DepthZeroToOne, nil
	default:
		return DefaultDepthRange, fmt.Errorf("%w: %q", core.ErrUnknownDepthRange, name)
	}
}

// NewSettings validates cfg and resolves it into Settings. Unset fields
// keep their defaults. A non-empty log level is applied to the shared
// logger as a side effect. A nil cfg yields DefaultSettings.
func NewSettings(cfg *core.Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}
	if err := cfg.Validate(); err != nil {
		return s, err
	}

	depth, err := ParseDepthRange(cfg.DepthRange)
	if err != nil {
		return s, err
	}
	s.Depth = depth
	if cfg.NormalizeTolerance > 0 {
		s.Tolerance = cfg.NormalizeTolerance
	}
	if cfg.LogLevel != "" {
		if err := core.SetLogLevel(cfg.LogLevel); err != nil {
			return s, err
		}
	}

	core.LogInfo("gmath settings: kernel=%s depth=%s tolerance=%g", Strategy(), s.Depth, s.Tolerance)
	return s, nil
}

func (s Settings) Orthographic(left, right, bottom, top, nearClip, farClip float32) Mat4 {
	return NewMat4OrthographicWithDepth(left, right, bottom, top, nearClip, farClip, s.Depth)
}

func (s Settings) OrthographicCentered(width, height, depth, nearClip float32) Mat4 {
	return NewMat4OrthographicCenteredWithDepth(width, height, depth, nearClip, s.Depth)
}

func (s Settings) OrthographicExtent(extent Vec3, nearClip float32) Mat4 {
	return s.OrthographicCentered(extent.Width(), extent.Height(), extent.Depth(), nearClip)
}

func (s Settings) Perspective(fovDegrees, aspectRatio, nearClip, farClip float32) Mat4 {
	return NewMat4PerspectiveWithDepth(fovDegrees, aspectRatio, nearClip, farClip, s.Depth)
}

func (s Settings) SafeNormalize2(v Vec2) Vec2 { return v.SafeNormalize(s.Tolerance) }
func (s Settings) SafeNormalize3(v Vec3) Vec3 { return v.SafeNormalize(s.Tolerance) }
func (s Settings) SafeNormalize4(v Vec4) Vec4 { return v.SafeNormalize(s.Tolerance) }
