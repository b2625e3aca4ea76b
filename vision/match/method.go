package match

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vision/vision/plane"
)

// Method selects a template-matching measure.
type Method int

const (
	// MethodCC is plain cross-correlation.
	MethodCC Method = iota
	// MethodZeroMean is zero-mean cross-correlation.
	MethodZeroMean
	// MethodNormalized is normalized cross-correlation.
	MethodNormalized
)

var methodNames = map[Method]string{
	MethodCC:         "cc",
	MethodZeroMean:   "zmcc",
	MethodNormalized: "ncc",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "cc", "zmcc" or "ncc" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("match: unknown method %q", s)
}

// Match computes the response of template g over image f with method m.
func Match(f, g *plane.Plane, m Method) (*plane.Plane, error) {
	switch m {
	case MethodCC:
		return CrossCorrelate(f, g)
	case MethodZeroMean:
		return ZeroMeanCrossCorrelate(f, g)
	case MethodNormalized:
		return NormalizedCrossCorrelate(f, g)
	default:
		return nil, fmt.Errorf("match: unsupported method %v", m)
	}
}
