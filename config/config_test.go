package config

import "testing"

func TestClampLimits(t *testing.T) {
	savedThreshold := DIRECTION_THRESHOLD
	savedMaxSize := DETECT_MAX_SIZE
	defer func() {
		DIRECTION_THRESHOLD = savedThreshold
		DETECT_MAX_SIZE = savedMaxSize
	}()

	tests := []struct {
		name          string
		threshold     float64
		maxSize       int
		wantThreshold float64
		wantMaxSize   int
	}{
		{"in range untouched", 0.08, 1280, 0.08, 1280},
		{"threshold too low", 0.01, 1280, 0.05, 1280},
		{"threshold too high", 0.5, 1280, 0.15, 1280},
		{"max size zero", 0.08, 0, 0.08, 320},
		{"max size negative", 0.08, -100, 0.08, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			DIRECTION_THRESHOLD = tt.threshold
			DETECT_MAX_SIZE = tt.maxSize
			clampLimits()
			if DIRECTION_THRESHOLD != tt.wantThreshold {
				t.Errorf("DIRECTION_THRESHOLD = %v, want %v", DIRECTION_THRESHOLD, tt.wantThreshold)
			}
			if DETECT_MAX_SIZE != tt.wantMaxSize {
				t.Errorf("DETECT_MAX_SIZE = %v, want %v", DETECT_MAX_SIZE, tt.wantMaxSize)
			}
		})
	}
}
