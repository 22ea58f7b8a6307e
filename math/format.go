//go:build !gmath_noformat

package math

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/gmath/core"
)

// Text formatting for debugging. Build with -tags gmath_noformat to leave
// it out.

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloats(lanes ...float32) string {
	parts := make([]string, len(lanes))
	for i, f := range lanes {
		parts[i] = formatFloat(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatInts(lanes ...int32) string {
	parts := make([]string, len(lanes))
	for i, n := range lanes {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (v IVec2) String() string { return formatInts(v[:]...) }
func (v IVec3) String() string { return formatInts(v[:]...) }
func (v Vec2) String() string  { return formatFloats(v[:]...) }
func (v Vec3) String() string  { return formatFloats(v[:]...) }
func (v Vec4) String() string  { return formatFloats(v[:]...) }
func (q Quat) String() string  { return formatFloats(q[:]...) }

// String prints one row per line, so the matrix reads the way it is
// written on paper rather than in storage order.
func (mt Mat4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("| ")
		for c := 0; c < 4; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(mt[c][r]))
		}
		b.WriteString(" |")
	}
	return b.String()
}

// LogValue writes "name: value" at debug level through the shared logger.
func LogValue(name string, v fmt.Stringer) {
	core.LogDebug("%s: %s", name, v.String())
}
