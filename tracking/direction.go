package tracking

import (
	"math"

	"tracker/landmarks"
)

type Direction string

const (
	DirectionCenter Direction = "center"
	DirectionLeft   Direction = "left"
	DirectionRight  Direction = "right"
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
)

// DirectionColors maps each direction to the border color the UI shows.
// All five values must stay pairwise distinct.
var DirectionColors = map[Direction]string{
	DirectionCenter: "#22c55e",
	DirectionLeft:   "#3b82f6",
	DirectionRight:  "#f97316",
	DirectionUp:     "#a855f7",
	DirectionDown:   "#eab308",
}

// ClassifyDirection maps one landmark frame to a head direction.
// It is a pure function: no state, same frame and threshold always give
// the same answer. A short frame degrades to center.
//
// The face center takes its x from the two outer eye corners and its y
// from eyes and chin together, which keeps the vertical reference stable
// when the head tilts.
func ClassifyDirection(frame landmarks.Frame, threshold float64) Direction {
	if !frame.Detected() {
		return DirectionCenter
	}
	nose := frame[landmarks.NoseTip]
	leftEye := frame[landmarks.LeftEyeOuter]
	rightEye := frame[landmarks.RightEyeOuter]
	chin := frame[landmarks.Chin]

	centerX := (leftEye.X + rightEye.X) / 2
	centerY := (leftEye.Y + rightEye.Y + chin.Y) / 3

	horizontal := nose.X - centerX
	vertical := nose.Y - centerY

	// Only the axis with the larger offset is tested each frame;
	// horizontal wins ties.
	if math.Abs(horizontal) >= math.Abs(vertical) {
		if horizontal > threshold {
			return DirectionRight
		}
		if horizontal < -threshold {
			return DirectionLeft
		}
		return DirectionCenter
	}
	if vertical > threshold {
		return DirectionDown
	}
	if vertical < -threshold {
		return DirectionUp
	}
	return DirectionCenter
}
