package transport

import (
	"errors"
	"go-hangman/internal/state"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, words WordFunc) string {
	t.Helper()
	mux := httprouter.New()
	mux.GET("/ws", ServeWS(words, zerolog.Nop()))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func readUpdate(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	var m serverMessage
	if err := conn.ReadJSON(&m); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if m.Type != TypeUpdate {
		t.Fatalf("Expected an update, got %q", m.Type)
	}
	return m
}

func TestServeWS_Game(t *testing.T) {
	url := newTestServer(t, func() (string, error) { return "Go", nil })

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	if m := readUpdate(t, conn); m.State.WordToGuess != "__" {
		t.Errorf("Expected '__', got %q", m.State.WordToGuess)
	}

	if err := conn.WriteJSON(ClientMessage{Type: TypeAction, Action: &state.GuessAction{Letter: "G"}}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if m := readUpdate(t, conn); m.State.WordToGuess != "G_" {
		t.Errorf("Expected 'G_', got %q", m.State.WordToGuess)
	}

	if err := conn.WriteJSON(map[string]any{"type": "action", "action": map[string]string{"letter": "o"}}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	m := readUpdate(t, conn)
	if m.State.WordToGuess != "Go" || m.State.Phase != "finished" {
		t.Errorf("Expected finished 'Go', got %q (%s)", m.State.WordToGuess, m.State.Phase)
	}

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("Expected a normal close after the game, got %v", err)
	}
}

func TestServeWS_NoWord(t *testing.T) {
	url := newTestServer(t, func() (string, error) { return "", errors.New("empty list") })

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Dial should fail when no word is available")
	}
	if resp == nil || resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %v", resp)
	}
}
