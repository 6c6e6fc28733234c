package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

const addr = "localhost:8765"

func main() {
	fmt.Println("Mudra - Cursor Streamer")

	var st *store.Store
	if os.Getenv("MUDRA_RECORD") == "1" {
		var err error
		st, err = openStore()
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		defer st.Close()
		fmt.Println("Recording cursor samples")
	}

	det, err := detector.NewMediaPipeDetector(detector.SingleHandConfig())
	if err != nil {
		log.Fatalf("Failed to start hand detector: %v", err)
	}

	socket := server.NewCursorSocket()

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Cursor:    socket,
	})

	go func() {
		fmt.Printf("Listening on http://%s (cursor feed at ws://%s/ws)\n", addr, addr)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	streamer := app.NewStreamer(app.StreamerConfig{
		Camera:   capture.NewCamera(capture.DefaultConfig()),
		Detector: det,
		Sink:     socket,
		Store:    st,
	})

	if err := streamer.Start(); err != nil {
		log.Fatalf("Failed to start streamer: %v", err)
	}
	defer streamer.Stop()

	if os.Getenv("MUDRA_TRAY") == "1" {
		runTray(streamer, socket)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	fmt.Println("Shutting down")
}

// runTray blocks in the system tray event loop, wiring the tray controls
// to the streamer.
func runTray(streamer *app.Streamer, socket *server.CursorSocket) {
	t := tray.New()
	t.OnToggle(streamer.SetEnabled)
	t.OnDashboard(func() {
		url := "http://" + addr
		if err := exec.Command("open", url).Start(); err != nil {
			log.Printf("Error opening dashboard: %v", err)
		}
	})
	t.OnQuit(func() {
		streamer.Stop()
	})
	streamer.OnPublish(func(sample gesture.CursorSample) {
		t.SetLastCursor(sample.X, sample.Y)
	})
	t.Run()
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

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
