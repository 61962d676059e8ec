package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("arcade %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	for _, want := range []string{"fps", "Console FPS", "flappy", "snake", "cube"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestMapsCommand(t *testing.T) {
	out := execute(t, "maps")
	for _, want := range []string{"arena", "maze", "pillars", "16x16", "built-in"} {
		if !strings.Contains(out, want) {
			t.Errorf("maps output missing %q:\n%s", want, out)
		}
	}
}

func TestFrameCommand(t *testing.T) {
	out := execute(t, "frame", "--width", "40", "--height", "12", "--log-level", "error")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("frame has %d lines, expected 12:\n%s", len(lines), out)
	}
	if !strings.ContainsAny(out, "█▓▒░") {
		t.Errorf("frame has no wall shading:\n%s", out)
	}
	// The bottom row is the nearest floor
	if !strings.Contains(lines[11], "#") {
		t.Errorf("bottom row %q should be drawn as near floor", lines[11])
	}
	if strings.Contains(out, "X=") {
		t.Error("HUD should be hidden by default")
	}
}

func TestMapPreviewMarksSpawn(t *testing.T) {
	arena, err := maps.Find(maps.Builtin(), "arena")
	if err != nil {
		t.Fatal(err)
	}

	rows := strings.Split(strings.TrimRight(mapPreview(arena), "\n"), "\n")
	if len(rows) != 16 {
		t.Fatalf("preview has %d rows, expected 16", len(rows))
	}
	if got := rows[8][8]; got != '@' {
		t.Errorf("spawn cell = %q, expected '@'", got)
	}
	if strings.Count(strings.Join(rows, ""), "@") != 1 {
		t.Error("exactly one cell should be marked")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	if _, _, err := newLogger(false); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogLevel = "debug"
	logger, closeLog, err := newLogger(true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	if logger == nil {
		t.Error("expected a logger")
	}
}
