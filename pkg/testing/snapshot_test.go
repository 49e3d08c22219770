package testing

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/uicontrols/pkg/graphics"
)

func dotPainter(color graphics.Color, x float64) func(graphics.Canvas, graphics.Size) {
	return func(c graphics.Canvas, _ graphics.Size) {
		c.DrawCircle(graphics.Offset{X: x, Y: 10}, 4, graphics.FillPaint(color))
	}
}

func TestCaptureSnapshot(t *testing.T) {
	snap := CaptureSnapshot(graphics.Size{Width: 40, Height: 20}, dotPainter(graphics.ColorRed, 10))
	if snap.Size != [2]float64{40, 20} {
		t.Errorf("expected size [40 20], got %v", snap.Size)
	}
	if len(snap.DisplayOps) != 1 || snap.DisplayOps[0].Op != "drawCircle" {
		t.Errorf("expected one circle, got %v", snap.DisplayOps)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	size := graphics.Size{Width: 40, Height: 20}
	a := CaptureSnapshot(size, dotPainter(graphics.ColorRed, 10))
	b := CaptureSnapshot(size, dotPainter(graphics.ColorRed, 10))
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	c := CaptureSnapshot(size, dotPainter(graphics.ColorPurple, 20))
	if diff := a.Diff(c); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_DiffUnencodable(t *testing.T) {
	good := CaptureSnapshot(graphics.Size{Width: 40, Height: 20}, dotPainter(graphics.ColorRed, 10))
	bad := &Snapshot{DisplayOps: []DisplayOp{{Op: "translate", Params: map[string]any{"dx": math.NaN()}}}}

	if diff := bad.Diff(good); diff == "" {
		t.Error("expected an unencodable actual snapshot to differ")
	}
	if diff := good.Diff(bad); diff == "" {
		t.Error("expected an unencodable expected snapshot to differ")
	}
	if diff := bad.Diff(bad); diff == "" {
		t.Error("expected an unencodable snapshot to differ from itself")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(graphics.Size{Width: 40, Height: 20}, dotPainter(graphics.ColorRed, 10))
	path := filepath.Join(t.TempDir(), "testdata", "dot.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := CaptureSnapshot(graphics.Size{Width: 40, Height: 20}, dotPainter(graphics.ColorRed, 10))

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	size := graphics.Size{Width: 40, Height: 20}
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := CaptureSnapshot(size, dotPainter(graphics.ColorRed, 10)).UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	CaptureSnapshot(size, dotPainter(graphics.ColorPurple, 30)).MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := CaptureSnapshot(graphics.Size{Width: 40, Height: 20}, dotPainter(graphics.ColorRed, 10))
	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
