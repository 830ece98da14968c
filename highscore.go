package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// MaxSavedScores caps the number of entries persisted to disk
const MaxSavedScores = 50

// HighscoreEntry is one committed (name, score) record
type HighscoreEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// HighscoreStore persists scores as a plain text file, one
// "name, score" line per record, sorted descending by score. A missing or
// unreadable file reads as an empty list; individual malformed lines are
// skipped rather than failing the load.
type HighscoreStore struct {
	mu   sync.Mutex
	path string
}

// NewHighscoreStore creates a store backed by the given file path. The
// file is created on first write.
func NewHighscoreStore(path string) *HighscoreStore {
	return &HighscoreStore{path: path}
}

// Load reads all valid records, sorted descending by score
func (s *HighscoreStore) Load() []HighscoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *HighscoreStore) load() []HighscoreEntry {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("highscores: read %s: %v", s.path, err)
		}
		return nil
	}
	defer f.Close()

	var entries []HighscoreEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		name, rest, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || score < 0 {
			continue
		}
		entries = append(entries, HighscoreEntry{Name: strings.TrimSpace(name), Score: score})
	}
	if err := sc.Err(); err != nil {
		log.Printf("highscores: scan %s: %v", s.path, err)
	}

	sortEntries(entries)
	return entries
}

// Append adds a record, re-sorts, and rewrites the file. Names longer than
// the cap are truncated; the in-memory session score is unaffected by a
// write failure.
func (s *HighscoreStore) Append(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runes := []rune(name)
	if len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}

	entries := s.load()
	entries = append(entries, HighscoreEntry{Name: name, Score: score})
	sortEntries(entries)
	if len(entries) > MaxSavedScores {
		entries = entries[:MaxSavedScores]
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("highscores: create %s: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		fmt.Fprintf(w, "%s, %d\n", e.Name, e.Score)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("highscores: write %s: %w", s.path, err)
	}
	return nil
}

// Top returns up to n best entries
func (s *HighscoreStore) Top(n int) []HighscoreEntry {
	entries := s.Load()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// sortEntries orders descending by score; ties keep insertion order
func sortEntries(entries []HighscoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
