package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/mouse"
)

func main() {
	fmt.Println("Mudra - Hand Mouse")

	det, err := detector.NewMediaPipeDetector(detector.SingleHandConfig())
	if err != nil {
		log.Fatalf("Failed to start hand detector: %v", err)
	}

	streamer := app.NewStreamer(app.StreamerConfig{
		Camera:   capture.NewCamera(capture.DefaultConfig()),
		Detector: det,
		Sink:     mouse.New(mouse.DefaultConfig()),
	})

	if err := streamer.Start(); err != nil {
		log.Fatalf("Failed to start streamer: %v", err)
	}
	defer streamer.Stop()

	fmt.Println("Move your index finger to steer the pointer, pinch to click")
	fmt.Println("Press Ctrl+C to quit")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}
