package landmarks

// Point is a single face landmark in normalized image coordinates:
// x and y in [0,1] relative to frame width/height, z is relative depth.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NumPoints is the number of landmarks produced by the face mesh model
// for one fully resolved face.
const NumPoints = 468

// Frame holds all landmarks of one face for one video frame.
// An empty (or short) frame means the face was not fully resolved.
type Frame []Point

// Detected returns true when the frame carries a complete landmark set.
// Anything shorter is treated as "no face", not as an error.
func (f Frame) Detected() bool {
	return len(f) >= NumPoints
}
