package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// CursorSample is the normalized cursor position published once per frame
// when a hand is visible. Consumers parse it by key, so field order in the
// encoded message is not significant.
type CursorSample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Pinch bool    `json:"pinch"`
}

// Cursor extracts a cursor sample from the index fingertip.
//
// Pinch is reserved for a thumb-index distance trigger and always reports
// false; the streamed message carries "pinch": false on every frame. Sinks
// that want a pinch trigger use PinchDistance directly.
func Cursor(hand detector.Hand) CursorSample {
	tip := hand.Points[detector.IndexTip]
	return CursorSample{X: tip.X, Y: tip.Y}
}

// PinchDistance returns the image-plane distance between the thumb tip and
// the index fingertip, in normalized coordinates.
func PinchDistance(hand detector.Hand) float64 {
	thumb := hand.Points[detector.ThumbTip]
	index := hand.Points[detector.IndexTip]
	dx := thumb.X - index.X
	dy := thumb.Y - index.Y
	return math.Sqrt(dx*dx + dy*dy)
}
