package tracking

import (
	"testing"

	"tracker/landmarks"
)

func TestTrackNoFace(t *testing.T) {
	tracker := NewTracker(0.08)
	result := tracker.Track(landmarks.Frame{})
	if result.Detected {
		t.Error("empty frame reported as detected")
	}
	if result.Direction != DirectionCenter {
		t.Errorf("direction = %v, want center", result.Direction)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", result.Confidence)
	}
	if result.Expression != "" || result.Emoji != "" {
		t.Errorf("expression fields set without a face: %+v", result)
	}
}

func TestTrackDetected(t *testing.T) {
	tracker := NewTracker(0.08)
	result := tracker.Track(neutralFace())
	if !result.Detected {
		t.Fatal("full frame not detected")
	}
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %v, want fixed 1.0", result.Confidence)
	}
	if result.Direction != DirectionCenter {
		t.Errorf("direction = %v, want center", result.Direction)
	}
	if result.Expression != ExpressionNeutral {
		t.Errorf("expression = %v, want neutral", result.Expression)
	}
	if result.Emoji != Glyphs[ExpressionNeutral] {
		t.Errorf("emoji = %q", result.Emoji)
	}
	if result.Color != DirectionColors[DirectionCenter] {
		t.Errorf("color = %q", result.Color)
	}
}

func TestTryTrackSkipsWhenBusy(t *testing.T) {
	tracker := NewTracker(0.08)
	tracker.busy.Store(true)
	result, processed := tracker.TryTrack(neutralFace())
	if processed {
		t.Error("busy tracker still processed the frame")
	}
	if !result.Skipped {
		t.Error("skipped frame not marked as skipped")
	}
	tracker.busy.Store(false)
	if _, processed = tracker.TryTrack(neutralFace()); !processed {
		t.Error("idle tracker refused the frame")
	}
}
