// Package animation provides the short, fire-and-forget transitions the
// controls use: a label fading and sliding into its floating position, a
// toggle fading in and out.
//
// # Core Components
//
//   - [AnimationController]: drives a value from its current position to a
//     target over a fixed Duration and reports status changes, so completion
//     arrives as an [AnimationStatus] event instead of a captured callback.
//
//   - [Tween]: maps the controller's 0-1 value to a color or a float, such
//     as a dot's fill or the label's sink offset.
//
//   - [Ticker]: the per-frame timing primitive. Hosts call [StepTickers]
//     once per frame on the UI thread.
//
// # Basic Usage
//
//	c := animation.NewAnimationController(100 * time.Millisecond)
//	c.AddStatusListener(func(s animation.AnimationStatus) {
//	    if s == animation.AnimationCompleted {
//	        // settle
//	    }
//	})
//	c.Forward()
//
//	// host frame loop
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
