package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = "" // e.g. "example.com,example2.com"
	BIND_ADDRESS = "0.0.0.0:8080"
	MYSQL_DSN    = ""           // MySQL will be used if this is set
	SQLITE_FILE  = "tracker.db" // SQLite will be used if MYSQL_DSN is not configured
	DEBUG_MODE   = true
	// Minimum nose offset (in normalized coordinate units) before a frame
	// leaves "center". Clamped to [0.05, 0.15].
	DIRECTION_THRESHOLD = 0.08
	// MediaPipe bridge script for server-side landmark extraction
	LANDMARKER_SCRIPT = "./landmarks/face-mesh.py"
	// Images larger than this are downscaled before landmark extraction
	DETECT_MAX_SIZE = 1280
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvFloat("DIRECTION_THRESHOLD", &DIRECTION_THRESHOLD)
	readEnvString("LANDMARKER_SCRIPT", &LANDMARKER_SCRIPT)
	readEnvInt("DETECT_MAX_SIZE", &DETECT_MAX_SIZE)

	clampLimits()
}

func clampLimits() {
	if DIRECTION_THRESHOLD < 0.05 {
		DIRECTION_THRESHOLD = 0.05
	}
	if DIRECTION_THRESHOLD > 0.15 {
		DIRECTION_THRESHOLD = 0.15
	}
	// DETECT_MAX_SIZE is converted to uint at the call site; zero or
	// negative values would wrap and disable downscaling entirely
	if DETECT_MAX_SIZE < 320 {
		DETECT_MAX_SIZE = 320
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
