package transport

import (
	"errors"
	"go-hangman/internal/game"
	"io"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

// WordFunc chooses the secret word for a new connection.
type WordFunc func() (string, error)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the request and plays one single-player game on the
// connection. Every connection gets its own engine.
func ServeWS(words WordFunc, logger zerolog.Logger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		log := logger.With().Str("remote", r.RemoteAddr).Logger()

		word, err := words()
		if err != nil {
			log.Error().Err(err).Msg("choose word")
			http.Error(w, "no word available", http.StatusInternalServerError)
			return
		}

		g, err := game.NewWithWord(word)
		if err != nil {
			log.Error().Err(err).Str("word", word).Msg("new game")
			http.Error(w, "invalid word", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade")
			return
		}
		defer conn.Close()

		log.Info().Msg("client connected")

		const observer = 0
		err = Serve(r.Context(), conn, g, observer, log)
		switch {
		case err == nil:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
		case isDisconnect(err):
			log.Info().Msg("client disconnected")
		default:
			log.Error().Err(err).Msg("session ended")
		}
	}
}

func isDisconnect(err error) bool {
	var closeErr *websocket.CloseError
	return errors.As(err, &closeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed)
}
