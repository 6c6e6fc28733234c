package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenPalmHand returns a preset Right-hand observation with all five fingers
// raised, as seen in a mirrored frame: the thumb tip sits left of the thumb IP
// joint and every fingertip sits above its PIP joint.
func OpenPalmHand() Hand {
	hand := Hand{
		Handedness: Right,
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb swept out to the left
	hand.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75}
	hand.Points[ThumbMCP] = Point3D{X: 0.40, Y: 0.70}
	hand.Points[ThumbIP] = Point3D{X: 0.36, Y: 0.66}
	hand.Points[ThumbTip] = Point3D{X: 0.31, Y: 0.62}

	// Index finger straight up
	hand.Points[IndexMCP] = Point3D{X: 0.46, Y: 0.60}
	hand.Points[IndexPIP] = Point3D{X: 0.46, Y: 0.50}
	hand.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.43}
	hand.Points[IndexTip] = Point3D{X: 0.46, Y: 0.36}

	// Middle finger straight up (slightly longer)
	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.58}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.47}
	hand.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.39}
	hand.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.31}

	// Ring finger straight up
	hand.Points[RingMCP] = Point3D{X: 0.54, Y: 0.60}
	hand.Points[RingPIP] = Point3D{X: 0.54, Y: 0.50}
	hand.Points[RingDIP] = Point3D{X: 0.54, Y: 0.43}
	hand.Points[RingTip] = Point3D{X: 0.54, Y: 0.36}

	// Pinky straight up
	hand.Points[PinkyMCP] = Point3D{X: 0.58, Y: 0.62}
	hand.Points[PinkyPIP] = Point3D{X: 0.58, Y: 0.54}
	hand.Points[PinkyDIP] = Point3D{X: 0.58, Y: 0.48}
	hand.Points[PinkyTip] = Point3D{X: 0.58, Y: 0.42}

	return hand
}

// FistHand returns a preset Right-hand observation with no fingers raised:
// the thumb is folded across the palm and every fingertip is curled below
// its PIP joint.
func FistHand() Hand {
	hand := Hand{
		Handedness: Right,
		Score:      0.95,
	}

	hand.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb folded across the palm
	hand.Points[ThumbCMC] = Point3D{X: 0.45, Y: 0.75}
	hand.Points[ThumbMCP] = Point3D{X: 0.42, Y: 0.71}
	hand.Points[ThumbIP] = Point3D{X: 0.43, Y: 0.68}
	hand.Points[ThumbTip] = Point3D{X: 0.47, Y: 0.67}

	// Index finger curled
	hand.Points[IndexMCP] = Point3D{X: 0.46, Y: 0.62}
	hand.Points[IndexPIP] = Point3D{X: 0.46, Y: 0.56}
	hand.Points[IndexDIP] = Point3D{X: 0.47, Y: 0.61}
	hand.Points[IndexTip] = Point3D{X: 0.47, Y: 0.65}

	// Middle finger curled
	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.61}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.54}
	hand.Points[MiddleDIP] = Point3D{X: 0.51, Y: 0.60}
	hand.Points[MiddleTip] = Point3D{X: 0.51, Y: 0.64}

	// Ring finger curled
	hand.Points[RingMCP] = Point3D{X: 0.54, Y: 0.62}
	hand.Points[RingPIP] = Point3D{X: 0.54, Y: 0.56}
	hand.Points[RingDIP] = Point3D{X: 0.55, Y: 0.61}
	hand.Points[RingTip] = Point3D{X: 0.55, Y: 0.65}

	// Pinky curled
	hand.Points[PinkyMCP] = Point3D{X: 0.58, Y: 0.64}
	hand.Points[PinkyPIP] = Point3D{X: 0.58, Y: 0.59}
	hand.Points[PinkyDIP] = Point3D{X: 0.59, Y: 0.63}
	hand.Points[PinkyTip] = Point3D{X: 0.59, Y: 0.66}

	return hand
}

// PointingHand returns a preset Right-hand observation with only the index
// finger raised, the pose used to drive the cursor.
func PointingHand() Hand {
	hand := FistHand()

	hand.Points[IndexMCP] = Point3D{X: 0.46, Y: 0.60}
	hand.Points[IndexPIP] = Point3D{X: 0.46, Y: 0.50}
	hand.Points[IndexDIP] = Point3D{X: 0.46, Y: 0.43}
	hand.Points[IndexTip] = Point3D{X: 0.46, Y: 0.36}

	return hand
}
