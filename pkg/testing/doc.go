// Package testing provides helpers for testing controls without a host.
//
// # Deterministic animation
//
// Install a [FakeClock], trigger a transition, advance the clock and step
// the tickers the way a host frame loop would:
//
//	clk := drifttest.InstallClock(t)
//	field.EditingChanged("a")
//	clk.Advance(100 * time.Millisecond)
//	animation.StepTickers()
//
// # Draw assertions
//
// [Record] paints into a display list and serializes every call into a
// [DisplayOp], so tests assert on what was drawn rather than on pixels:
//
//	ops := drifttest.Record(size, indicator.Paint)
//	pills := drifttest.OpsNamed(ops, "drawRRect")
package testing
