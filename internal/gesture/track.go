package gesture

import "math"

// TrackOffset is the pixel term of the counter track's translateX.
// The track is centered at 50% and shifted so the active number sits in the middle.
func TrackOffset(count int, itemWidth, offset float64) float64 {
	return -float64(count-1)*itemWidth - itemWidth/2 + offset
}

// Scale is the size factor of a number at the given distance from the active one.
func Scale(distance int) float64 {
	return math.Max(0.7, 1.2-float64(abs(distance))*0.25)
}

// Opacity is the opacity of a number at the given distance from the active one.
func Opacity(distance int) float64 {
	return math.Max(0.2, 1-float64(abs(distance))*0.4)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
