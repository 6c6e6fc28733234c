// Package render draws hand landmark overlays onto video frames.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
)

// connections defines the hand skeleton edges to draw lines between,
// as landmark index pairs (MediaPipe HAND_CONNECTIONS).
var connections = [42]int{
	0, 1, 1, 2, 2, 3, 3, 4, // thumb
	0, 5, 5, 6, 6, 7, 7, 8, // index
	5, 9, 9, 10, 10, 11, 11, 12, // middle
	9, 13, 13, 14, 14, 15, 15, 16, // ring
	13, 17, 17, 18, 18, 19, 19, 20, // pinky
	0, 17, // palm base
}

var (
	boneColor  = color.RGBA{R: 0, G: 200, B: 255, A: 0}
	jointColor = color.RGBA{R: 255, G: 80, B: 80, A: 0}
	textColor  = color.RGBA{R: 0, G: 255, B: 0, A: 0}
)

// Label text placement: labels for successive hands stack downward so two
// hands never overlap.
const (
	labelX       = 10
	labelBaseY   = 60
	labelSpacing = 40
)

// Hand draws the landmark skeleton of one hand onto the frame. Landmark
// coordinates are normalized, so they are scaled by the frame size.
func Hand(frame *gocv.Mat, hand *detector.Hand) {
	w := frame.Cols()
	h := frame.Rows()

	for i := 0; i < len(connections)/2; i++ {
		a := hand.Points[connections[2*i]]
		b := hand.Points[connections[2*i+1]]

		gocv.Line(frame,
			image.Pt(int(a.X*float64(w)), int(a.Y*float64(h))),
			image.Pt(int(b.X*float64(w)), int(b.Y*float64(h))),
			boneColor, 2)
	}

	for _, p := range hand.Points {
		gocv.Circle(frame, image.Pt(int(p.X*float64(w)), int(p.Y*float64(h))), 4, jointColor, -1)
	}
}

// CountLabel draws "<Left|Right>: N fingers" for the hand at position index
// in the detection list.
func CountLabel(frame *gocv.Mat, hand *detector.Hand, state gesture.FingerState, index int) {
	text := fmt.Sprintf("%s: %d fingers", hand.Handedness, state.Count)
	origin := image.Pt(labelX, labelBaseY+labelSpacing*index)
	gocv.PutText(frame, text, origin, gocv.FontHersheySimplex, 1.0, textColor, 2)
}
