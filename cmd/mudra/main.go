package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/store"
)

func main() {
	fmt.Println("Mudra - Hand Tracking Viewer")

	var st *store.Store
	if os.Getenv("MUDRA_RECORD") == "1" {
		var err error
		st, err = openStore()
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		defer st.Close()
		fmt.Println("Recording finger counts")
	}

	det, err := detector.NewMediaPipeDetector(detector.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to start hand detector: %v", err)
	}

	viewer := app.NewViewer(app.ViewerConfig{
		Camera:   capture.NewCamera(capture.DefaultConfig()),
		Detector: det,
		Store:    st,
	})

	fmt.Println("Press ESC in the video window to quit")
	if err := viewer.Run(); err != nil {
		log.Fatalf("Viewer failed: %v", err)
	}
}

// openStore opens the recording database under ~/.mudra.
func openStore() (*store.Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, err
	}

	return store.New(filepath.Join(dbDir, "mudra.db"))
}
