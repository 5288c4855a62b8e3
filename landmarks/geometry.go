package landmarks

import "math"

// VerticalGap returns how far point b sits below point a.
func (f Frame) VerticalGap(top, bottom int) float64 {
	return f[bottom].Y - f[top].Y
}

// HorizontalSpan returns the absolute x distance between two landmarks.
func (f Frame) HorizontalSpan(a, b int) float64 {
	return math.Abs(f[b].X - f[a].X)
}

// MidX returns the x midpoint of two landmarks.
func (f Frame) MidX(a, b int) float64 {
	return (f[a].X + f[b].X) / 2
}

// MidY returns the y midpoint of two landmarks.
func (f Frame) MidY(a, b int) float64 {
	return (f[a].Y + f[b].Y) / 2
}

// EyeOpenness averages the vertical lid gap over the given top/bottom pairs.
func (f Frame) EyeOpenness(pairs [4][2]int) float64 {
	total := 0.0
	for _, p := range pairs {
		total += f[p[1]].Y - f[p[0]].Y
	}
	return total / float64(len(pairs))
}

// BrowRaise measures how far above the eye top the brow sits on one side,
// averaged over the three brow sample points. Larger means more raised.
func (f Frame) BrowRaise(browInner, browMid, browOuter, eyeTop int) float64 {
	browY := (f[browInner].Y + f[browMid].Y + f[browOuter].Y) / 3
	return f[eyeTop].Y - browY
}
