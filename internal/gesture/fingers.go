// Package gesture derives per-frame gesture facts from hand observations.
// Every derivation is a pure function of a single observation; tracking and
// smoothing across frames belong to the detector.
package gesture

import "github.com/ayusman/mudra/internal/detector"

// Finger identifiers, in FingerState order.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState is the per-finger up/down classification for one hand.
type FingerState struct {
	// Raised holds one flag per finger in thumb..pinky order.
	Raised [NumFingers]bool
	// Count is the number of raised fingers, 0 to 5.
	Count int
}

// fingertip/PIP joint pairs for the four non-thumb fingers, in
// index..pinky order.
var fingerJoints = [4][2]int{
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// Classify reports which fingers of the observed hand are raised.
//
// The thumb compares tip x against the IP joint x. Frames are mirrored
// before detection, so the comparison direction flips with the anatomical
// label: a "Right" thumb is raised when the tip is left of the joint, a
// "Left" thumb when it is right of the joint. This asymmetry is mirror
// compensation, not a bug.
//
// The other four fingers are raised when the fingertip sits strictly above
// its PIP joint (smaller y). The hand is assumed upright; there is no
// correction for rotation.
func Classify(hand detector.Hand) FingerState {
	var state FingerState

	thumbTip := hand.Points[detector.ThumbTip]
	thumbIP := hand.Points[detector.ThumbIP]
	if hand.Handedness == detector.Right {
		state.Raised[Thumb] = thumbTip.X < thumbIP.X
	} else {
		state.Raised[Thumb] = thumbTip.X > thumbIP.X
	}

	for i, joints := range fingerJoints {
		state.Raised[Index+i] = hand.Points[joints[0]].Y < hand.Points[joints[1]].Y
	}

	for _, raised := range state.Raised {
		if raised {
			state.Count++
		}
	}

	return state
}
