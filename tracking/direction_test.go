package tracking

import (
	"testing"

	"tracker/landmarks"
)

// directionFrame builds a full frame with just the four reference points
// the direction classifier reads.
func directionFrame(nose, leftEye, rightEye, chin landmarks.Point) landmarks.Frame {
	f := make(landmarks.Frame, landmarks.NumPoints)
	f[landmarks.NoseTip] = nose
	f[landmarks.LeftEyeOuter] = leftEye
	f[landmarks.RightEyeOuter] = rightEye
	f[landmarks.Chin] = chin
	return f
}

func TestClassifyDirection(t *testing.T) {
	leftEye := landmarks.Point{X: 0.4, Y: 0.4}
	rightEye := landmarks.Point{X: 0.6, Y: 0.4}
	chin := landmarks.Point{X: 0.5, Y: 0.7}
	// center works out to (0.5, 0.5)

	tests := []struct {
		name      string
		nose      landmarks.Point
		threshold float64
		want      Direction
	}{
		{"nose at center", landmarks.Point{X: 0.5, Y: 0.5}, 0.05, DirectionCenter},
		{"nose at center, tiny threshold", landmarks.Point{X: 0.5, Y: 0.5}, 0.001, DirectionCenter},
		{"offset within threshold", landmarks.Point{X: 0.54, Y: 0.5}, 0.05, DirectionCenter},
		{"nose right of center", landmarks.Point{X: 0.7, Y: 0.5}, 0.15, DirectionRight},
		{"nose left of center", landmarks.Point{X: 0.3, Y: 0.5}, 0.15, DirectionLeft},
		{"nose above center", landmarks.Point{X: 0.5, Y: 0.3}, 0.15, DirectionUp},
		{"nose below center", landmarks.Point{X: 0.5, Y: 0.7}, 0.15, DirectionDown},
		// Horizontal takes precedence when offsets tie
		{"equal offsets favor horizontal", landmarks.Point{X: 0.7, Y: 0.7}, 0.15, DirectionRight},
		// The losing axis is not tested at all that frame
		{"larger vertical hides horizontal", landmarks.Point{X: 0.6, Y: 0.8}, 0.15, DirectionDown},
		{"larger vertical, both small", landmarks.Point{X: 0.52, Y: 0.56}, 0.15, DirectionCenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := directionFrame(tt.nose, leftEye, rightEye, chin)
			got := ClassifyDirection(frame, tt.threshold)
			if got != tt.want {
				t.Errorf("ClassifyDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyDirectionShortFrame(t *testing.T) {
	short := make(landmarks.Frame, 10)
	if got := ClassifyDirection(short, 0.05); got != DirectionCenter {
		t.Errorf("short frame = %v, want center", got)
	}
	if got := ClassifyDirection(nil, 0.05); got != DirectionCenter {
		t.Errorf("nil frame = %v, want center", got)
	}
}

func TestClassifyDirectionDeterministic(t *testing.T) {
	frame := directionFrame(
		landmarks.Point{X: 0.67, Y: 0.43},
		landmarks.Point{X: 0.4, Y: 0.4},
		landmarks.Point{X: 0.6, Y: 0.4},
		landmarks.Point{X: 0.5, Y: 0.7},
	)
	first := ClassifyDirection(frame, 0.08)
	for i := 0; i < 100; i++ {
		if got := ClassifyDirection(frame, 0.08); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestDirectionColorsDistinct(t *testing.T) {
	directions := []Direction{DirectionCenter, DirectionLeft, DirectionRight, DirectionUp, DirectionDown}
	seen := map[string]Direction{}
	for _, d := range directions {
		color, ok := DirectionColors[d]
		if !ok || color == "" {
			t.Errorf("no color for %v", d)
			continue
		}
		if other, dup := seen[color]; dup {
			t.Errorf("%v and %v share color %s", d, other, color)
		}
		seen[color] = d
	}
}
