// Package gesture turns pointer input on the guest counter into committed guest counts.
package gesture

import "math"

const (
	// MinCount and MaxCount bound the guest count.
	MinCount = 1
	MaxCount = 9

	// DefaultItemWidth is the width in pixels of one number on the counter track.
	DefaultItemWidth = 80
)

// Clamp limits n to [MinCount, MaxCount].
func Clamp(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// round matches the browser's Math.round: halves round towards +Inf.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Delta converts a horizontal displacement into a count change.
// Dragging left (negative dx) pulls later numbers into view and increases the count.
func Delta(dx, itemWidth float64) int {
	if itemWidth <= 0 {
		itemWidth = DefaultItemWidth
	}
	return -round(dx / itemWidth)
}

// Release returns the count proposed when a drag of dx ends.
func Release(current int, dx, itemWidth float64) int {
	delta := Delta(dx, itemWidth)
	if delta == 0 {
		return current
	}
	return Clamp(current + delta)
}

// Select commits a clicked number directly.
func Select(n int) int {
	return Clamp(n)
}

// Step moves the count by exactly one in the direction of dir.
func Step(current, dir int) int {
	switch {
	case dir > 0:
		return Clamp(current + 1)
	case dir < 0:
		return Clamp(current - 1)
	}
	return current
}

// CanIncrement reports whether the increment control is enabled.
func CanIncrement(current int) bool { return current < MaxCount }

// CanDecrement reports whether the decrement control is enabled.
func CanDecrement(current int) bool { return current > MinCount }
