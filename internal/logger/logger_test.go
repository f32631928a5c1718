package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects stdout for the duration of fn and returns what was
// printed. A pipe is not a terminal, so output is uncolored and stable.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestTaggedLevels(t *testing.T) {
	out := capture(t, func() {
		Info("INGEST", "fetching prices")
		Success("DB", "catalog saved")
		Warn("CATALOG", "implausible duration")
		Error("Server", "listen failed")
	})

	for _, line := range []string{
		"[INGEST] fetching prices",
		"[DB] catalog saved",
		"[CATALOG] implausible duration",
		"[Server] listen failed",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestBanner(t *testing.T) {
	out := capture(t, func() { Banner("v1.2.0") })
	if !strings.Contains(out, "Hideout Tracker v1.2.0") {
		t.Errorf("banner missing name and version:\n%s", out)
	}

	out = capture(t, func() { Banner("") })
	if !strings.Contains(out, "Hideout Tracker dev") {
		t.Errorf("empty version should fall back to dev:\n%s", out)
	}
}

func TestSectionStatsServer(t *testing.T) {
	out := capture(t, func() {
		Section("Startup")
		Stats("Crafts", 114)
		Server("127.0.0.1:13380")
	})

	if !strings.Contains(out, "--- Startup ---") {
		t.Errorf("section divider missing:\n%s", out)
	}
	if !strings.Contains(out, "Crafts: 114") {
		t.Errorf("stats line missing:\n%s", out)
	}
	if !strings.Contains(out, "Listening on http://127.0.0.1:13380") {
		t.Errorf("server line missing:\n%s", out)
	}
}
