package animation

import (
	"math"

	"github.com/go-drift/uicontrols/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates each ARGB channel between a and b.
// t = 0 yields a and t = 1 yields b exactly.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR, aG, aB, aA := a.Components()
	bR, bG, bB, bA := b.Components()
	return graphics.RGBA8(
		lerpByte(aR, bR, t),
		lerpByte(aG, bG, t),
		lerpByte(aB, bB, t),
		lerpByte(aA, bA, t),
	)
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := math.Round(LerpFloat64(float64(a), float64(b), t))
	return uint8(math.Max(0, math.Min(255, v)))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
