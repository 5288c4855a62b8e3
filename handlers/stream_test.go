package handlers

import (
	"encoding/json"
	"testing"

	"tracker/landmarks"
)

func TestFrameMessageToFrame(t *testing.T) {
	msg := frameMessage{}
	if err := json.Unmarshal([]byte(`{"landmarks": [[0.5, 0.4, 0.01], [0.6, 0.3, 0.0]]}`), &msg); err != nil {
		t.Fatal(err)
	}
	frame := msg.toFrame()
	if len(frame) != 2 {
		t.Fatalf("got %d points", len(frame))
	}
	if frame[0] != (landmarks.Point{X: 0.5, Y: 0.4, Z: 0.01}) {
		t.Errorf("point = %+v", frame[0])
	}
	if frame.Detected() {
		t.Error("partial frame reported as detected")
	}

	// No landmarks at all is a valid "no face" message
	msg = frameMessage{}
	if err := json.Unmarshal([]byte(`{"landmarks": []}`), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.toFrame().Detected() {
		t.Error("empty frame reported as detected")
	}
}

func TestLiveCount(t *testing.T) {
	token := "live-count-test"
	if got := LiveCount(token); got != 0 {
		t.Errorf("unknown token live count = %d, want 0", got)
	}

	// Two tabs on the same session
	first := &LiveClient{}
	second := &LiveClient{}
	addClient(token, first)
	addClient(token, second)
	if got := LiveCount(token); got != 2 {
		t.Errorf("live count = %d, want 2", got)
	}

	removeClient(token, first)
	if got := LiveCount(token); got != 1 {
		t.Errorf("live count after one disconnect = %d, want 1", got)
	}
	removeClient(token, second)
	if got := LiveCount(token); got != 0 {
		t.Errorf("live count after both disconnect = %d, want 0", got)
	}
}
