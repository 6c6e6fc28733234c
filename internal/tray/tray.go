// Package tray provides a macOS system tray interface for the Mudra cursor streamer.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the macOS system tray application.
type Tray struct {
	onToggle    func(streaming bool)
	onDashboard func()
	onQuit      func()
	streaming   bool
	mu          sync.RWMutex

	// Menu items stored for later updates
	menuToggle     *systray.MenuItem
	menuLastCursor *systray.MenuItem
}

// New creates a new Tray instance with streaming enabled by default.
func New() *Tray {
	return &Tray{
		streaming: true,
	}
}

// OnToggle sets the callback function to be called when streaming is toggled.
func (t *Tray) OnToggle(fn func(streaming bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnDashboard sets the callback function to be called when the dashboard menu item is clicked.
func (t *Tray) OnDashboard(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onDashboard = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	// Set the tray title and tooltip
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Hand Tracker")

	// Create menu items
	t.menuToggle = systray.AddMenuItem("● Streaming", "Toggle cursor streaming")
	systray.AddSeparator()

	t.menuLastCursor = systray.AddMenuItem("Cursor: —", "Last published cursor position")
	t.menuLastCursor.Disable()
	systray.AddSeparator()

	menuDashboard := systray.AddMenuItem("Open Dashboard...", "Open dashboard in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuDashboard.ClickedCh:
				t.handleDashboard()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.streaming = !t.streaming
	streaming := t.streaming

	// Update menu item text based on new state
	if streaming {
		t.menuToggle.SetTitle("● Streaming")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(streaming)
	}
}

// handleDashboard handles the dashboard menu item click.
func (t *Tray) handleDashboard() {
	t.mu.RLock()
	callback := t.onDashboard
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastCursor updates the last published cursor position in the menu.
func (t *Tray) SetLastCursor(x, y float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastCursor != nil {
		t.menuLastCursor.SetTitle(fmt.Sprintf("Cursor: %.2f, %.2f", x, y))
	}
}

// IsStreaming returns whether streaming is currently enabled.
func (t *Tray) IsStreaming() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.streaming
}
