package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand observations.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]Hand, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection. The values are
// fixed at construction and are not reconfigurable at runtime.
type Config struct {
	// Streaming enables video-stream mode, where the model tracks hands
	// across frames instead of detecting from scratch every frame.
	Streaming bool

	// MaxHands is the maximum number of hands to detect.
	MaxHands int

	// MinDetectionConf is the minimum detection confidence threshold (0.0-1.0).
	MinDetectionConf float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns the configuration used by the overlay viewer:
// up to two hands at moderate confidence.
func DefaultConfig() Config {
	return Config{
		Streaming:        true,
		MaxHands:         2,
		MinDetectionConf: 0.5,
		MinTrackingConf:  0.5,
	}
}

// SingleHandConfig returns the configuration used by the cursor streamer:
// one hand at higher confidence, so the published cursor does not jump
// between hands.
func SingleHandConfig() Config {
	return Config{
		Streaming:        true,
		MaxHands:         1,
		MinDetectionConf: 0.7,
		MinTrackingConf:  0.7,
	}
}
