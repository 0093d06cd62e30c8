package main

import (
	"errors"
	"fmt"
	"go-hangman/internal/player"
	"go-hangman/internal/words"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind     string
	logLevel string
	port     int
	prefix   string
	rounds   int
	seed     int64
	strategy string
	verbose  bool
	word     string
	words    []string
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.rounds < 1 {
		return fmt.Errorf("invalid rounds (must be at least 1): %d", c.rounds)
	}
	if _, err := zerolog.ParseLevel(c.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	if _, err := player.ByName(c.strategy, rand.NewSource(0)); err != nil {
		return err
	}
	if c.word != "" && len(c.words) > 0 {
		return errors.New("--word and --words cannot be used together")
	}
	if c.word != "" && !words.Solvable(c.word) {
		return fmt.Errorf("invalid word %q (must contain A-Z letters and no other letters)", c.word)
	}
	return nil
}

// rng returns a random source seeded from --seed, or from the clock when no
// seed was given.
func (c *Config) rng() *rand.Rand {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// wordList returns the candidate secret words: --word, else the files given
// with --words, else the embedded list.
func (c *Config) wordList() ([]string, error) {
	switch {
	case c.word != "":
		return []string{strings.TrimSpace(c.word)}, nil
	case len(c.words) > 0:
		return words.Load(c.words)
	}
	return words.Default(), nil
}

func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HANGMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "hangman",
		Short:   "Guess the hidden word one letter at a time before the gallows is complete.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindEnv(v, cmd.Flags())
			return cfg.validate()
		},
	}

	normalize := func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(normalize)
	fs.StringVar(&cfg.logLevel, "log-level", "info", "minimum log level: debug, info, warn, error (env: HANGMAN_LOG_LEVEL)")
	fs.IntVarP(&cfg.rounds, "rounds", "r", 1, "number of words to play in a row (env: HANGMAN_ROUNDS)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for word choice and the computer player, 0 uses the clock (env: HANGMAN_SEED)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: HANGMAN_VERBOSE)")
	fs.StringVarP(&cfg.word, "word", "w", "", "secret word to guess instead of a random one (env: HANGMAN_WORD)")
	fs.StringSliceVar(&cfg.words, "words", nil, "word list files or directories (.json array or one word per line) (env: HANGMAN_WORDS)")

	cmd.AddCommand(newPlayCmd(cfg), newAutoCmd(cfg), newServeCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("hangman v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the terminal UI apart.
			var w io.Writer = io.Discard
			if cfg.verbose {
				w = cmd.ErrOrStderr()
			}
			return runPlay(cmd.Context(), cfg, newLogger(cfg, w))
		},
	}
}

func newAutoCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Watch a computer player guess.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg, cmd.ErrOrStderr())
			return runAuto(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.strategy, "strategy", "s", "random", "computer player: random or frequency (env: HANGMAN_STRATEGY)")

	return cmd
}

func newServeCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve single-player games over WebSocket.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg, cmd.ErrOrStderr())
			return runServe(cmd.Context(), cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: HANGMAN_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: HANGMAN_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: HANGMAN_PREFIX)")

	return cmd
}
