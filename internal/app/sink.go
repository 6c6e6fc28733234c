// Package app provides the frame loops: the overlay viewer and the cursor
// streamer.
package app

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// Sink consumes one cursor sample per frame with a visible hand.
type Sink interface {
	// Publish delivers a cursor sample. With no consumer attached it is a
	// silent no-op; a delivery failure is returned so the loop can log it
	// and move on.
	Publish(sample gesture.CursorSample) error

	// Attached reports whether anyone is listening. The streamer idles
	// while this is false, skipping capture and detection entirely.
	Attached() bool
}

// HandSink is an optional upgrade for sinks that need the full observation,
// not just the derived cursor sample. The streamer prefers PublishHand when
// a sink implements it.
type HandSink interface {
	PublishHand(hand detector.Hand) error
}
