package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/gesture"
)

// dialCursor connects a test WebSocket client to the server's /ws endpoint.
func dialCursor(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	return conn
}

// waitAttached polls until the socket reports a peer, or fails the test.
func waitAttached(t *testing.T, socket *CursorSocket) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if socket.Attached() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no peer attached before deadline")
}

func TestCursorSocket_PublishToPeer(t *testing.T) {
	socket := NewCursorSocket()
	ts := httptest.NewServer(New(Config{Cursor: socket}))
	defer ts.Close()

	conn := dialCursor(t, ts)
	defer conn.Close()
	waitAttached(t, socket)

	sample := gesture.CursorSample{X: 0.25, Y: 0.75}
	if err := socket.Publish(sample); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Errorf("message type = %d, want text", msgType)
	}

	var got gesture.CursorSample
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if got != sample {
		t.Errorf("received %+v, want %+v", got, sample)
	}

	// Wire keys stay short and lowercase.
	var raw map[string]interface{}
	json.Unmarshal(msg, &raw)
	for _, key := range []string{"x", "y", "pinch"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("message missing key %q", key)
		}
	}
}

func TestCursorSocket_PublishWithoutPeer(t *testing.T) {
	socket := NewCursorSocket()

	if socket.Attached() {
		t.Error("fresh socket should have no peer")
	}

	// No peer: publishing is a silent no-op.
	if err := socket.Publish(gesture.CursorSample{X: 0.5, Y: 0.5}); err != nil {
		t.Errorf("Publish() without peer error = %v, want nil", err)
	}
}

func TestCursorSocket_NewPeerReplacesOld(t *testing.T) {
	socket := NewCursorSocket()
	ts := httptest.NewServer(New(Config{Cursor: socket}))
	defer ts.Close()

	first := dialCursor(t, ts)
	defer first.Close()
	waitAttached(t, socket)

	second := dialCursor(t, ts)
	defer second.Close()

	// The first connection gets closed by the replacement.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := first.ReadMessage(); err == nil {
		t.Error("first peer should be disconnected when a second one arrives")
	}

	waitAttached(t, socket)
	if err := socket.Publish(gesture.CursorSample{X: 0.1, Y: 0.2}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got gesture.CursorSample
	if _, msg, err := second.ReadMessage(); err != nil {
		t.Fatalf("second peer ReadMessage() error = %v", err)
	} else if json.Unmarshal(msg, &got); got.X != 0.1 {
		t.Errorf("second peer got %+v, want X=0.1", got)
	}
}

func TestCursorSocket_FailedWriteDetachesPeer(t *testing.T) {
	socket := NewCursorSocket()
	ts := httptest.NewServer(New(Config{Cursor: socket}))
	defer ts.Close()

	conn := dialCursor(t, ts)
	waitAttached(t, socket)

	// Kill the client side, then publish until the broken pipe surfaces.
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	var publishErr error
	for time.Now().Before(deadline) {
		if publishErr = socket.Publish(gesture.CursorSample{}); publishErr != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if publishErr == nil && socket.Attached() {
		t.Fatal("publishing to a dead peer should eventually fail or detach")
	}

	// Once detached, publishing goes back to being a no-op.
	deadline = time.Now().Add(2 * time.Second)
	for socket.Attached() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if socket.Attached() {
		t.Fatal("peer should be detached after the connection died")
	}
	if err := socket.Publish(gesture.CursorSample{}); err != nil {
		t.Errorf("Publish() after detach error = %v, want nil", err)
	}
}
