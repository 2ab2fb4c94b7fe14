package logger

import (
	"bytes"
	"os"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestLevels_NoPanic(t *testing.T) {
	out := capture(t, func() {
		Info("TAG", "message")
		Success("TAG", "message")
		Warn("TAG", "message")
		Error("TAG", "message")
	})
	// Output is environment-dependent (colors), but every line carries
	// the tag.
	if bytes.Count([]byte(out), []byte("[TAG]")) != 4 {
		t.Errorf("expected 4 tagged lines, got: %q", out)
	}
}

func TestBanner_NoPanic(t *testing.T) {
	capture(t, func() {
		Banner("v1.0.0")
		Banner("")
	})
}
