// Command camera-check verifies that the default webcam can be opened and
// produces frames at the configured resolution.
package main

import (
	"fmt"
	"log"

	"github.com/ayusman/mudra/internal/capture"
)

func main() {
	config := capture.DefaultConfig()
	fmt.Printf("Opening camera %d at %dx%d\n", config.DeviceID, config.Width, config.Height)

	camera := capture.NewCamera(config)
	if err := camera.Open(); err != nil {
		log.Fatalf("Failed to open camera: %v", err)
	}
	defer camera.Close()

	frame, err := camera.ReadFrame()
	if err != nil {
		log.Fatalf("Failed to read a frame: %v", err)
	}
	defer frame.Close()

	fmt.Printf("Got a %dx%d frame, camera is working\n", frame.Cols(), frame.Rows())
}
