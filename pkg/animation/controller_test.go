package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/uicontrols/pkg/animation"
	drifttest "github.com/go-drift/uicontrols/pkg/testing"
)

func TestAnimationController_StatusSequence(t *testing.T) {
	clk := drifttest.InstallClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { statuses = append(statuses, s) })

	c.Forward()
	drifttest.Settle(clk, 100*time.Millisecond)
	c.Reverse()
	drifttest.Settle(clk, 100*time.Millisecond)

	want := []animation.AnimationStatus{
		animation.AnimationForward,
		animation.AnimationCompleted,
		animation.AnimationReverse,
		animation.AnimationDismissed,
	}
	if len(statuses) != len(want) {
		t.Fatalf("expected %v, got %v", want, statuses)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("status %d: expected %v, got %v", i, want[i], statuses[i])
		}
	}
	if animation.HasActiveTickers() {
		t.Error("expected ticker stopped after completion")
	}
}

func TestAnimationController_RestartsFromCurrentValue(t *testing.T) {
	clk := drifttest.InstallClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	drifttest.Settle(clk, 40*time.Millisecond)
	mid := c.Value

	c.Reverse()
	if c.Value != mid {
		t.Errorf("expected reverse to start at %v, got %v", mid, c.Value)
	}
	drifttest.Settle(clk, 50*time.Millisecond)
	if c.Value >= mid || c.Value <= 0 {
		t.Errorf("expected value between 0 and %v, got %v", mid, c.Value)
	}
}

func TestAnimationController_SetValue(t *testing.T) {
	drifttest.InstallClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	notified := 0
	c.AddListener(func() { notified++ })
	var last animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) { last = s })

	c.Forward()
	c.SetValue(2)
	if c.Value != 1 {
		t.Errorf("expected clamp to upper bound, got %v", c.Value)
	}
	if last != animation.AnimationCompleted || c.IsAnimating() {
		t.Errorf("expected completed status, got %v", last)
	}
	if notified != 1 {
		t.Errorf("expected one value notification, got %d", notified)
	}
	if animation.HasActiveTickers() {
		t.Error("expected SetValue to stop the ticker")
	}
}

func TestAnimationController_ZeroDuration(t *testing.T) {
	clk := drifttest.InstallClock(t)
	c := animation.NewAnimationController(0)
	defer c.Dispose()

	c.AnimateTo(1)
	drifttest.Settle(clk, time.Millisecond)
	if c.Value != 1 || c.Status() != animation.AnimationCompleted {
		t.Errorf("expected immediate completion, got %v (%v)", c.Value, c.Status())
	}
}

func TestAnimationController_RemoveListener(t *testing.T) {
	drifttest.InstallClock(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	calls := 0
	remove := c.AddListener(func() { calls++ })
	remove()
	c.SetValue(0.5)
	if calls != 0 {
		t.Errorf("expected removed listener to stay silent, got %d calls", calls)
	}
}
