package stats

import (
	"fmt"
	"math"
	"strings"

	"code.cloudfoundry.org/bytefmt"
)

// Format selects the text a caller appends to the bar each step.
type Format int

const (
	FormatNone Format = iota
	FormatCount
	FormatPercent
	FormatBytes
)

var formatNames = map[string]Format{
	"none":    FormatNone,
	"count":   FormatCount,
	"percent": FormatPercent,
	"bytes":   FormatBytes,
}

func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return FormatNone, nil
	}
	f, ok := formatNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown suffix format [none,count,percent,bytes]: %q", s)
	}
	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Step describes where a process is. Unit is the size of one step in bytes
// and is only used by FormatBytes.
type Step struct {
	Current int
	Total   int
	Unit    uint64
}

// PercentCompleted returns the rounded completion percentage in [0, 100].
func (s Step) PercentCompleted() int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.clamped()) / float64(s.Total) * 100.0))
}

func (s Step) clamped() int {
	return min(max(s.Current, 0), max(s.Total, 0))
}

// Text renders s in format f, with a leading space so it can be used as a
// bar suffix directly.
func Text(f Format, s Step) string {
	switch f {
	case FormatCount:
		return fmt.Sprintf(" %d/%d", s.clamped(), s.Total)
	case FormatPercent:
		return fmt.Sprintf(" %3d%%", s.PercentCompleted())
	case FormatBytes:
		return fmt.Sprintf(" %s/%s",
			bytefmt.ByteSize(uint64(s.clamped())*s.Unit),
			bytefmt.ByteSize(uint64(max(s.Total, 0))*s.Unit))
	default:
		return ""
	}
}
