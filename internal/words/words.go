// Package words supplies candidate secret words: a small embedded default
// list, or lists loaded from files and directories.
package words

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ErrNoWords is returned when a word list turns out empty.
var ErrNoWords = errors.New("no words available")

//go:embed words.json
var embedded []byte

// Default returns the embedded word list.
func Default() []string {
	var list []string
	if err := json.Unmarshal(embedded, &list); err != nil {
		panic("words: embedded list is not valid JSON: " + err.Error())
	}
	return clean(list)
}

// Load reads words from a list of paths (files or directories). A .json file
// holds a JSON array of strings; any other file has one word per line, with
// blank lines and lines starting with '#' skipped.
func Load(paths []string) ([]string, error) {
	var list []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			w, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			list = append(list, w...)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			w, err := loadFile(filepath.Join(path, entry.Name()))
			if err != nil {
				return nil, err
			}
			list = append(list, w...)
		}
	}

	if len(list) == 0 {
		return nil, ErrNoWords
	}
	return list, nil
}

func loadFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return clean(list), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var list []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return clean(list), nil
}

// clean trims words and drops the ones that cannot be played: no letter to
// guess, or a letter outside A-Z that no guess could ever uncover.
func clean(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.TrimSpace(w)
		if !Solvable(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Solvable reports whether w can be won with A-Z guesses: it has at least
// one ASCII letter and no other letters.
func Solvable(w string) bool {
	return strings.ContainsFunc(w, isASCIILetter) && !strings.ContainsFunc(w, isForeignLetter)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isForeignLetter(r rune) bool {
	return unicode.IsLetter(r) && !isASCIILetter(r)
}

// Pick returns a random word from list.
func Pick(list []string, rng *rand.Rand) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	return list[rng.Intn(len(list))], nil
}

// PickN returns n words drawn from list without repeats while possible.
func PickN(list []string, n int, rng *rand.Rand) ([]string, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	out := make([]string, 0, n)
	for len(out) < n {
		for _, i := range rng.Perm(len(list)) {
			if len(out) == n {
				break
			}
			out = append(out, list[i])
		}
	}
	return out, nil
}
