package tracking

import (
	"sync/atomic"

	"tracker/landmarks"
)

// Result is the combined per-frame output handed to the UI side.
// When no face was resolved, direction falls back to center and the
// expression fields stay empty. Confidence is a fixed 1.0 on detection
// because the mesh model supplies no per-face confidence of its own.
type Result struct {
	Detected       bool            `json:"detected"`
	Landmarks      landmarks.Frame `json:"landmarks,omitempty"`
	Direction      Direction       `json:"direction"`
	Color          string          `json:"color"`
	Confidence     float64         `json:"confidence"`
	Expression     Expression      `json:"expression,omitempty"`
	Emoji          string          `json:"emoji,omitempty"`
	ExprConfidence float64         `json:"expressionConfidence,omitempty"`
	Skipped        bool            `json:"skipped,omitempty"`
}

// Tracker runs both classifiers over one stream of landmark frames.
// One Tracker per stream: the embedded Analyzer state must not be
// shared across streams.
type Tracker struct {
	threshold float64
	analyzer  *Analyzer
	busy      atomic.Bool
}

func NewTracker(directionThreshold float64) *Tracker {
	return &Tracker{
		threshold: directionThreshold,
		analyzer:  NewAnalyzer(),
	}
}

// Track processes one frame fully: direction, expression, packaging.
func (t *Tracker) Track(frame landmarks.Frame) Result {
	if !frame.Detected() {
		return Result{
			Detected:  false,
			Direction: DirectionCenter,
			Color:     DirectionColors[DirectionCenter],
		}
	}
	direction := ClassifyDirection(frame, t.threshold)
	expr := t.analyzer.Analyze(frame)
	return Result{
		Detected:       true,
		Landmarks:      frame,
		Direction:      direction,
		Color:          DirectionColors[direction],
		Confidence:     1.0,
		Expression:     expr.Expression,
		Emoji:          expr.Glyph,
		ExprConfidence: expr.Confidence,
	}
}

// TryTrack is the drop-oldest entry point: if a previous frame is still
// being processed the new one is skipped outright, never queued. Stale
// frames are worth less than fresh ones here.
func (t *Tracker) TryTrack(frame landmarks.Frame) (Result, bool) {
	if !t.busy.CompareAndSwap(false, true) {
		return Result{Direction: DirectionCenter, Color: DirectionColors[DirectionCenter], Skipped: true}, false
	}
	defer t.busy.Store(false)
	return t.Track(frame), true
}
