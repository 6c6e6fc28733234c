package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// handWithThumb builds a fist-like hand with the thumb tip and IP joint at
// the given x positions.
func handWithThumb(handedness detector.Handedness, tipX, ipX float64) detector.Hand {
	hand := detector.FistHand()
	hand.Handedness = handedness
	hand.Points[detector.ThumbTip] = detector.Point3D{X: tipX, Y: 0.67}
	hand.Points[detector.ThumbIP] = detector.Point3D{X: ipX, Y: 0.68}
	return hand
}

func TestClassify_Thumb(t *testing.T) {
	tests := []struct {
		name       string
		handedness detector.Handedness
		tipX       float64
		ipX        float64
		wantRaised bool
	}{
		{
			name:       "right hand tip left of joint is raised",
			handedness: detector.Right,
			tipX:       0.30,
			ipX:        0.50,
			wantRaised: true,
		},
		{
			name:       "right hand tip right of joint is not raised",
			handedness: detector.Right,
			tipX:       0.50,
			ipX:        0.30,
			wantRaised: false,
		},
		{
			name:       "left hand tip right of joint is raised",
			handedness: detector.Left,
			tipX:       0.50,
			ipX:        0.30,
			wantRaised: true,
		},
		{
			name:       "left hand tip left of joint is not raised",
			handedness: detector.Left,
			tipX:       0.30,
			ipX:        0.50,
			wantRaised: false,
		},
		{
			name:       "right hand tip equal to joint is not raised",
			handedness: detector.Right,
			tipX:       0.40,
			ipX:        0.40,
			wantRaised: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Classify(handWithThumb(tt.handedness, tt.tipX, tt.ipX))

			if state.Raised[Thumb] != tt.wantRaised {
				t.Errorf("thumb raised = %v, want %v", state.Raised[Thumb], tt.wantRaised)
			}
		})
	}
}

func TestClassify_Fingers(t *testing.T) {
	tips := [4]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}
	pips := [4]int{detector.IndexPIP, detector.MiddlePIP, detector.RingPIP, detector.PinkyPIP}
	names := [4]string{"index", "middle", "ring", "pinky"}

	for i := range tips {
		t.Run(names[i]+" raised iff tip above pip", func(t *testing.T) {
			hand := detector.FistHand()
			hand.Points[tips[i]] = detector.Point3D{X: 0.5, Y: 0.40}
			hand.Points[pips[i]] = detector.Point3D{X: 0.5, Y: 0.55}

			state := Classify(hand)
			if !state.Raised[Index+i] {
				t.Errorf("%s should be raised when tip is above pip", names[i])
			}

			// Swap so the tip is below the pip
			hand.Points[tips[i]], hand.Points[pips[i]] = hand.Points[pips[i]], hand.Points[tips[i]]
			state = Classify(hand)
			if state.Raised[Index+i] {
				t.Errorf("%s should not be raised when tip is below pip", names[i])
			}
		})

		t.Run(names[i]+" equal heights is not raised", func(t *testing.T) {
			hand := detector.FistHand()
			hand.Points[tips[i]] = detector.Point3D{X: 0.5, Y: 0.50}
			hand.Points[pips[i]] = detector.Point3D{X: 0.5, Y: 0.50}

			if state := Classify(hand); state.Raised[Index+i] {
				t.Errorf("%s should not be raised at equal heights", names[i])
			}
		})
	}
}

func TestClassify_Scenarios(t *testing.T) {
	// Right hand, thumb tip left of the joint, all fingertips above their
	// PIPs: every finger raised.
	t.Run("right open hand counts five", func(t *testing.T) {
		hand := detector.OpenPalmHand()
		hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.3, Y: 0.62}
		hand.Points[detector.ThumbIP] = detector.Point3D{X: 0.5, Y: 0.66}

		state := Classify(hand)

		for i, raised := range state.Raised {
			if !raised {
				t.Errorf("finger %d should be raised", i)
			}
		}
		if state.Count != 5 {
			t.Errorf("count = %d, want 5", state.Count)
		}
	})

	// Same landmarks labeled Left: the thumb comparison flips, so only the
	// four fingers count.
	t.Run("same landmarks labeled left counts four", func(t *testing.T) {
		hand := detector.OpenPalmHand()
		hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.3, Y: 0.62}
		hand.Points[detector.ThumbIP] = detector.Point3D{X: 0.5, Y: 0.66}
		hand.Handedness = detector.Left

		state := Classify(hand)

		if state.Raised[Thumb] {
			t.Error("thumb should not be raised for a Left label with tip left of joint")
		}
		if state.Count != 4 {
			t.Errorf("count = %d, want 4", state.Count)
		}
	})

	t.Run("fist counts zero", func(t *testing.T) {
		state := Classify(detector.FistHand())

		if state.Count != 0 {
			t.Errorf("count = %d, want 0", state.Count)
		}
	})

	t.Run("pointing hand counts one", func(t *testing.T) {
		state := Classify(detector.PointingHand())

		if !state.Raised[Index] {
			t.Error("index should be raised")
		}
		if state.Count != 1 {
			t.Errorf("count = %d, want 1", state.Count)
		}
	})
}

func TestClassify_Pure(t *testing.T) {
	hand := detector.OpenPalmHand()

	first := Classify(hand)
	second := Classify(hand)

	if first != second {
		t.Errorf("Classify is not deterministic: %v vs %v", first, second)
	}

	raised := 0
	for _, up := range first.Raised {
		if up {
			raised++
		}
	}
	if first.Count != raised {
		t.Errorf("count = %d, want %d raised flags", first.Count, raised)
	}
	if first.Count < 0 || first.Count > 5 {
		t.Errorf("count = %d, want within [0,5]", first.Count)
	}
}
