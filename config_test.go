package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		logLevel: "info",
		port:     8080,
		rounds:   1,
		strategy: "random",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"frequency", func(c *Config) { c.strategy = "frequency" }, false},
		{"port zero", func(c *Config) { c.port = 0 }, true},
		{"port too high", func(c *Config) { c.port = 70000 }, true},
		{"no rounds", func(c *Config) { c.rounds = 0 }, true},
		{"bad level", func(c *Config) { c.logLevel = "loud" }, true},
		{"bad strategy", func(c *Config) { c.strategy = "psychic" }, true},
		{"word and words", func(c *Config) { c.word = "GO"; c.words = []string{"list.txt"} }, true},
		{"word", func(c *Config) { c.word = "ice cream" }, false},
		{"word with accent", func(c *Config) { c.word = "café" }, true},
		{"word without letters", func(c *Config) { c.word = "123" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(c)
			err := c.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_WordList(t *testing.T) {
	c := validConfig()
	c.word = "Gopher"
	list, err := c.wordList()
	if err != nil || len(list) != 1 || list[0] != "Gopher" {
		t.Errorf("Expected [Gopher], got %v (%v)", list, err)
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	c = validConfig()
	c.words = []string{path}
	list, err = c.wordList()
	if err != nil || len(list) != 2 {
		t.Errorf("Expected 2 words from file, got %v (%v)", list, err)
	}

	c = validConfig()
	list, err = c.wordList()
	if err != nil || len(list) == 0 {
		t.Errorf("Expected the embedded list, got %v (%v)", list, err)
	}
}

func TestConfig_SeededRNG(t *testing.T) {
	c := validConfig()
	c.seed = 42
	if a, b := c.rng().Int63(), c.rng().Int63(); a != b {
		t.Errorf("The same seed should give the same sequence, got %d and %d", a, b)
	}
}

func TestRunAuto(t *testing.T) {
	c := validConfig()
	c.word = "Go"
	c.strategy = "frequency"

	var out bytes.Buffer
	if err := runAuto(t.Context(), c, &out, newLogger(c, &bytes.Buffer{})); err != nil {
		t.Fatalf("runAuto failed: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "Phase: setup\nWord to guess: __\n") {
		t.Errorf("The first board should hide the word, got:\n%s", got)
	}
	for _, want := range []string{"Phase: finished", `"Go"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}
}

func TestNewCmd_Env(t *testing.T) {
	t.Setenv("HANGMAN_WORD", "Gopher")
	t.Setenv("HANGMAN_STRATEGY", "frequency")

	cfg := &Config{}
	cmd := newCmd(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"auto"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if cfg.word != "Gopher" || cfg.strategy != "frequency" {
		t.Errorf("Expected env values, got word=%q strategy=%q", cfg.word, cfg.strategy)
	}
	if !strings.Contains(out.String(), `"Gopher"`) {
		t.Errorf("Expected the env word to be played, got:\n%s", out.String())
	}
}
