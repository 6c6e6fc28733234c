package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
)

func TestE2E_CursorStreamWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()

	s, err := store.New(filepath.Join(tmpDir, "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	socket := server.NewCursorSocket()
	srv := server.New(server.Config{Store: s, Cursor: socket})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	mockDetector := detector.NewMockDetector()
	mockDetector.SetHands([]detector.Hand{detector.PointingHand()})

	streamer := app.NewStreamer(app.StreamerConfig{
		Camera:   capture.NewMockCamera([]*gocv.Mat{&frame}, true),
		Detector: mockDetector,
		Sink:     socket,
		Rate:     100,
		Store:    s,
	})

	if err := streamer.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Attach a WebSocket peer; the streamer idles until one shows up.
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	want := gesture.Cursor(detector.PointingHand())

	t.Run("PeerReceivesCursorSamples", func(t *testing.T) {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage() error = %v", err)
		}

		var got gesture.CursorSample
		if err := json.Unmarshal(msg, &got); err != nil {
			t.Fatalf("unmarshal error = %v", err)
		}
		if got != want {
			t.Errorf("sample = %+v, want %+v", got, want)
		}
		if got.Pinch {
			t.Error("pinch should always be false on the wire")
		}
	})

	// Let a few more samples through, then stop.
	time.Sleep(100 * time.Millisecond)
	streamer.Stop()

	t.Run("SessionIsRecorded", func(t *testing.T) {
		client := ts.Client()

		resp, err := client.Get(ts.URL + "/api/sessions")
		if err != nil {
			t.Fatalf("GET /api/sessions error = %v", err)
		}
		defer resp.Body.Close()

		var listed struct {
			Sessions []struct {
				ID      string `json:"id"`
				Kind    string `json:"kind"`
				EndedAt string `json:"ended_at"`
			} `json:"sessions"`
		}
		json.NewDecoder(resp.Body).Decode(&listed)

		if len(listed.Sessions) != 1 {
			t.Fatalf("len(sessions) = %d, want 1", len(listed.Sessions))
		}
		sess := listed.Sessions[0]
		if sess.Kind != "streamer" {
			t.Errorf("kind = %s, want streamer", sess.Kind)
		}
		if sess.EndedAt == "" {
			t.Error("stopped session should be ended")
		}

		resp, err = client.Get(ts.URL + "/api/sessions/" + sess.ID + "/cursor")
		if err != nil {
			t.Fatalf("GET cursor error = %v", err)
		}
		defer resp.Body.Close()

		var cursor struct {
			Samples []struct {
				Seq int     `json:"seq"`
				X   float64 `json:"x"`
				Y   float64 `json:"y"`
			} `json:"samples"`
		}
		json.NewDecoder(resp.Body).Decode(&cursor)

		if len(cursor.Samples) == 0 {
			t.Fatal("expected recorded cursor samples")
		}
		for i, sample := range cursor.Samples {
			if sample.Seq != i {
				t.Errorf("samples[%d].Seq = %d, want %d", i, sample.Seq, i)
			}
			if sample.X != want.X || sample.Y != want.Y {
				t.Errorf("samples[%d] = (%v, %v), want (%v, %v)",
					i, sample.X, sample.Y, want.X, want.Y)
			}
		}
	})

	t.Run("APIStillWorks", func(t *testing.T) {
		resp, _ := ts.Client().Get(ts.URL + "/api/health")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("health check failed after streaming")
		}
		resp.Body.Close()
	})
}

func TestE2E_FingerCountPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	// The classifier output for the canonical fixtures, end to end through
	// the mock detector.
	mockDetector := detector.NewMockDetector()
	mockDetector.SetHands([]detector.Hand{detector.OpenPalmHand(), detector.FistHand()})

	hands, err := mockDetector.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(hands) != 2 {
		t.Fatalf("len(hands) = %d, want 2", len(hands))
	}

	if got := gesture.Classify(hands[0]).Count; got != 5 {
		t.Errorf("open palm count = %d, want 5", got)
	}
	if got := gesture.Classify(hands[1]).Count; got != 0 {
		t.Errorf("fist count = %d, want 0", got)
	}
}
