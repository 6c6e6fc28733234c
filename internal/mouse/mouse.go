// Package mouse drives the OS pointer from hand landmarks.
package mouse

import (
	"sync"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// Config holds the mouse sink configuration.
type Config struct {
	// PinchThreshold is the normalized thumb-to-index distance below which
	// a pinch registers as a click.
	PinchThreshold float64
	// ClickCooldown is the minimum time between two clicks.
	ClickCooldown time.Duration
}

// DefaultConfig returns the default mouse sink configuration.
func DefaultConfig() Config {
	return Config{
		PinchThreshold: 0.05,
		ClickCooldown:  500 * time.Millisecond,
	}
}

// Sink moves the system pointer to follow the index fingertip and clicks
// on a thumb-index pinch. It implements both the cursor and the hand sink
// interfaces; with the full hand available it can detect pinches, with a
// bare cursor sample it only moves.
type Sink struct {
	config  Config
	screenW int
	screenH int

	mu        sync.Mutex
	lastClick time.Time
}

// New creates a Sink sized to the current screen.
func New(config Config) *Sink {
	w, h := robotgo.GetScreenSize()
	return &Sink{
		config:  config,
		screenW: w,
		screenH: h,
	}
}

// Publish moves the pointer to the sample's position.
func (s *Sink) Publish(sample gesture.CursorSample) error {
	x, y := toScreen(sample.X, sample.Y, s.screenW, s.screenH)
	robotgo.MoveMouse(x, y)
	return nil
}

// PublishHand moves the pointer and clicks when the thumb and index
// fingertips pinch together.
func (s *Sink) PublishHand(hand detector.Hand) error {
	if err := s.Publish(gesture.Cursor(hand)); err != nil {
		return err
	}

	if gesture.PinchDistance(hand) < s.config.PinchThreshold && s.shouldClick(time.Now()) {
		robotgo.Click("left")
	}

	return nil
}

// shouldClick reports whether the cooldown since the last click has elapsed,
// claiming the click slot when it has.
func (s *Sink) shouldClick(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastClick) <= s.config.ClickCooldown {
		return false
	}
	s.lastClick = now
	return true
}

// Attached always reports true; the pointer is always there to drive.
func (s *Sink) Attached() bool {
	return true
}

// toScreen maps normalized [0,1] coordinates to screen pixels, clamping
// out-of-range landmark positions to the screen edge.
func toScreen(x, y float64, screenW, screenH int) (int, int) {
	return int(clamp01(x) * float64(screenW-1)), int(clamp01(y) * float64(screenH-1))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
