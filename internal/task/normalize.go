package task

import (
	"math"
	"strconv"
	"strings"
)

// Clamp bounds an integer progress value to [0,100].
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// ClampFloat rounds to the nearest integer and clamps to [0,100].
// NaN and infinities collapse to 0.
func ClampFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Clamp(int(math.Round(f)))
}

// ParseProgress converts loose textual input to a progress value.
// Non-numeric input yields 0; numeric input is rounded and clamped.
func ParseProgress(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return ClampFloat(f)
}

// ResolveStatus normalizes a raw status value. A valid literal passes
// through verbatim; anything else is inferred from progress.
func ResolveStatus(raw string, progress int) Status {
	val := Status(strings.TrimSpace(raw))
	for _, s := range Statuses {
		if val == s {
			return s
		}
	}
	switch {
	case progress >= 100:
		return StatusDone
	case progress > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// ResolvePriority normalizes a raw priority value, defaulting to Media.
func ResolvePriority(raw string) Priority {
	val := Priority(strings.TrimSpace(raw))
	for _, p := range Priorities {
		if val == p {
			return p
		}
	}
	return PriorityMedium
}
