package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

const (
	// DefaultRate is the target number of published updates per second.
	DefaultRate = 60

	// readRetryWait is how long the streamer waits after a failed camera
	// read before trying again.
	readRetryWait = 10 * time.Millisecond
)

// StreamerConfig holds the collaborators of a Streamer, fixed at
// construction.
type StreamerConfig struct {
	Camera   capture.Camera
	Detector detector.Detector
	Sink     Sink

	// Rate is the target publishes per second; DefaultRate when zero.
	Rate int

	// Store, when set, records published samples under a streamer session.
	Store *store.Store
}

// Streamer runs the publish loop: read, mirror, detect, derive a cursor
// sample from the first hand, hand it to the sink, pause. The pause is a
// fixed fraction of the target rate with no compensation for detection
// time, so the rate is a best-effort upper bound, not a guarantee.
type Streamer struct {
	config    StreamerConfig
	enabled   bool
	mu        sync.RWMutex
	stopCh    chan struct{}
	done      chan struct{}
	onPublish func(gesture.CursorSample)
	sessionID string
	seq       int
}

// NewStreamer creates a Streamer. Publishing starts enabled.
func NewStreamer(config StreamerConfig) *Streamer {
	if config.Rate <= 0 {
		config.Rate = DefaultRate
	}

	return &Streamer{
		config:  config,
		enabled: true,
	}
}

// SetEnabled enables or disables publishing. While disabled the loop idles
// exactly as it does with no peer attached.
func (s *Streamer) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// OnPublish sets a callback invoked after every successful publish. The
// callback runs on the loop goroutine and must not block.
func (s *Streamer) OnPublish(fn func(gesture.CursorSample)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPublish = fn
}

// IsEnabled returns whether publishing is currently enabled.
func (s *Streamer) IsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Start opens the camera and begins the publish loop in its own goroutine.
func (s *Streamer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Don't start if already running
	if s.stopCh != nil {
		return nil
	}

	if err := s.config.Camera.Open(); err != nil {
		return err
	}

	if s.config.Store != nil {
		sess := &store.Session{ID: uuid.New().String(), Kind: store.SessionKindStreamer}
		if err := s.config.Store.Sessions().Create(sess); err != nil {
			log.Printf("Error creating session record: %v", err)
		} else {
			s.sessionID = sess.ID
		}
	}

	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stopCh, s.done)

	log.Println("Cursor streamer started")
	return nil
}

// Stop halts the publish loop and releases the camera and detector.
func (s *Streamer) Stop() {
	s.mu.Lock()
	stopCh, done := s.stopCh, s.done
	s.stopCh, s.done = nil, nil
	s.mu.Unlock()

	if stopCh == nil {
		return
	}

	close(stopCh)
	<-done

	if err := s.config.Camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if err := s.config.Detector.Close(); err != nil {
		log.Printf("Error closing detector: %v", err)
	}

	if s.config.Store != nil && s.sessionID != "" {
		if err := s.config.Store.Sessions().End(s.sessionID); err != nil {
			log.Printf("Error ending session record: %v", err)
		}
	}

	log.Println("Cursor streamer stopped")
}

// run is the publish loop. One frame is fully processed before the next is
// read; detection blocks the loop for its full duration.
func (s *Streamer) run(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	pause := time.Second / time.Duration(s.config.Rate)

	for {
		select {
		case <-stopCh:
			return
		default:
		}

		// Idle while disabled or while nobody is listening.
		if !s.IsEnabled() || !s.config.Sink.Attached() {
			wait(stopCh, pause)
			continue
		}

		frame, err := s.config.Camera.ReadFrame()
		if err != nil {
			// Camera hiccups are transient here: retry, never terminate.
			wait(stopCh, readRetryWait)
			continue
		}

		// Mirror so remote motion matches the user's physical motion.
		gocv.Flip(*frame, frame, 1)

		hands, err := s.config.Detector.Detect(frame)
		frame.Close()
		if err != nil {
			log.Printf("Error detecting hands: %v", err)
			wait(stopCh, pause)
			continue
		}

		// No hand means no message this frame: no heartbeat, no
		// "hand lost" marker.
		if len(hands) > 0 {
			s.publish(hands[0])
		}

		wait(stopCh, pause)
	}
}

// publish derives a sample from the hand and hands it to the sink. A failed
// publish ends that peer's session, never the process.
func (s *Streamer) publish(hand detector.Hand) {
	sample := gesture.Cursor(hand)

	var err error
	if hs, ok := s.config.Sink.(HandSink); ok {
		err = hs.PublishHand(hand)
	} else {
		err = s.config.Sink.Publish(sample)
	}
	if err != nil {
		log.Printf("Error publishing cursor sample: %v", err)
		return
	}

	s.mu.RLock()
	callback := s.onPublish
	s.mu.RUnlock()
	if callback != nil {
		callback(sample)
	}

	s.record(sample)
}

func (s *Streamer) record(sample gesture.CursorSample) {
	if s.config.Store == nil || s.sessionID == "" {
		return
	}

	if err := s.config.Store.Cursors().Append(s.sessionID, s.seq, sample.X, sample.Y, sample.Pinch); err != nil {
		log.Printf("Error recording cursor sample: %v", err)
		return
	}
	s.seq++
}

func wait(stopCh <-chan struct{}, d time.Duration) {
	select {
	case <-stopCh:
	case <-time.After(d):
	}
}
