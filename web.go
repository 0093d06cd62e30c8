package main

import (
	"context"
	"errors"
	"fmt"
	"go-hangman/internal/transport"
	"go-hangman/internal/words"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

const timeout time.Duration = 10 * time.Second

func securityHeaders(w http.ResponseWriter) {
	w.Header().Set("Cross-Origin-Resource-Policy", "same-site")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'self'")
}

func serveText(body string, logger zerolog.Logger) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte(body)); err != nil {
			logger.Warn().Err(err).Str("path", r.URL.Path).Msg("write response")
		}
	}
}

// wordPicker draws secret words for concurrent connections from one shared
// random source.
type wordPicker struct {
	mu   sync.Mutex
	list []string
	rng  *rand.Rand
}

func (p *wordPicker) pick() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return words.Pick(p.list, p.rng)
}

func newMux(cfg *Config, logger zerolog.Logger) (*httprouter.Router, error) {
	list, err := cfg.wordList()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, words.ErrNoWords
	}

	picker := &wordPicker{list: list, rng: cfg.rng()}

	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, i any) {
		logger.Error().Str("path", r.URL.Path).Interface("panic", i).Msg("handler panicked")

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		securityHeaders(w)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("An error has occurred. Please try again.\n"))
	}

	prefix := strings.TrimSuffix(cfg.prefix, "/")

	mux.GET(prefix+"/hangman/singleplayer/ws", transport.ServeWS(picker.pick, logger))

	mux.GET(prefix+"/healthz", serveText("Ok\n", logger))

	mux.GET(prefix+"/version", serveText("hangman v"+releaseVersion+"\n", logger))

	return mux, nil
}

// runServe serves single-player games until ctx is cancelled.
func runServe(ctx context.Context, cfg *Config, logger zerolog.Logger) error {
	mux, err := newMux(cfg, logger)
	if err != nil {
		return err
	}

	// WriteTimeout is left unset: it would cut WebSocket games short.
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.bind, strconv.Itoa(cfg.port)),
		Handler:           mux,
		IdleTimeout:       10 * time.Minute,
		ReadHeaderTimeout: timeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	logger.Info().Str("version", releaseVersion).Msg("starting hangman")

	errs := make(chan error, 1)
	go func() {
		logger.Info().Msgf("listening on http://%s%s/hangman/singleplayer/ws", srv.Addr, strings.TrimSuffix(cfg.prefix, "/"))
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
