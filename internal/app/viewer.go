package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
	"github.com/ayusman/mudra/internal/store"
)

// DefaultWindowTitle is the overlay window name.
const DefaultWindowTitle = "Mudra"

// escKey is the key code that stops the viewer.
const escKey = 27

// ViewerConfig holds the collaborators of a Viewer, fixed at construction.
type ViewerConfig struct {
	Camera      capture.Camera
	Detector    detector.Detector
	WindowTitle string

	// Store, when set, records per-frame finger counts under a viewer
	// session.
	Store *store.Store
}

// Viewer runs the overlay loop: read, mirror, detect, draw the skeleton and
// finger-count labels, show the frame, poll for ESC. It blocks the calling
// goroutine until stopped.
type Viewer struct {
	config    ViewerConfig
	sessionID string
	seq       int
}

// NewViewer creates a Viewer.
func NewViewer(config ViewerConfig) *Viewer {
	if config.WindowTitle == "" {
		config.WindowTitle = DefaultWindowTitle
	}
	return &Viewer{config: config}
}

// Run executes the overlay loop until ESC is pressed or the camera fails.
// The camera, detector and window are released on every exit path.
func (v *Viewer) Run() error {
	if err := v.config.Camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer v.config.Camera.Close()
	defer v.config.Detector.Close()

	window := gocv.NewWindow(v.config.WindowTitle)
	defer window.Close()

	v.startSession()
	defer v.endSession()

	for {
		frame, err := v.config.Camera.ReadFrame()
		if err != nil {
			// Here a dead camera is terminal: there is nothing to show.
			return fmt.Errorf("read frame: %w", err)
		}

		// Mirror so on-screen motion matches the user's physical motion.
		gocv.Flip(*frame, frame, 1)

		hands, err := v.config.Detector.Detect(frame)
		if err != nil {
			log.Printf("Error detecting hands: %v", err)
			hands = nil
		}

		v.annotate(frame, hands)

		window.IMShow(*frame)
		frame.Close()

		if window.WaitKey(1) == escKey {
			return nil
		}
	}
}

// annotate draws the skeleton and a stacked count label for each detected
// hand, in detector order. Zero hands leaves the frame untouched.
func (v *Viewer) annotate(frame *gocv.Mat, hands []detector.Hand) {
	for i := range hands {
		hand := &hands[i]
		state := gesture.Classify(*hand)

		render.Hand(frame, hand)
		render.CountLabel(frame, hand, state, i)

		v.record(hand, state)
	}
}

func (v *Viewer) startSession() {
	if v.config.Store == nil {
		return
	}

	sess := &store.Session{ID: uuid.New().String(), Kind: store.SessionKindViewer}
	if err := v.config.Store.Sessions().Create(sess); err != nil {
		log.Printf("Error creating session record: %v", err)
		return
	}
	v.sessionID = sess.ID
}

func (v *Viewer) endSession() {
	if v.config.Store == nil || v.sessionID == "" {
		return
	}

	if err := v.config.Store.Sessions().End(v.sessionID); err != nil {
		log.Printf("Error ending session record: %v", err)
	}
}

func (v *Viewer) record(hand *detector.Hand, state gesture.FingerState) {
	if v.config.Store == nil || v.sessionID == "" {
		return
	}

	if err := v.config.Store.Fingers().Append(v.sessionID, v.seq, string(hand.Handedness), state.Count); err != nil {
		log.Printf("Error recording finger count: %v", err)
		return
	}
	v.seq++
}
