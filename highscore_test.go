package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) (*HighscoreStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.txt")
	return NewHighscoreStore(path), path
}

func TestHighscoreRoundTrip(t *testing.T) {
	s, _ := tempStore(t)
	s.Append("alice", 100)
	s.Append("bob", 300)
	s.Append("carol", 200)

	entries := s.Load()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "bob" || entries[0].Score != 300 {
		t.Errorf("expected bob/300 first, got %s/%d", entries[0].Name, entries[0].Score)
	}
	if entries[2].Name != "alice" || entries[2].Score != 100 {
		t.Errorf("expected alice/100 last, got %s/%d", entries[2].Name, entries[2].Score)
	}
}

func TestHighscoreMissingFile(t *testing.T) {
	s, _ := tempStore(t)
	if entries := s.Load(); len(entries) != 0 {
		t.Errorf("missing file should load as empty, got %d entries", len(entries))
	}
}

func TestHighscoreSkipsMalformedLines(t *testing.T) {
	s, path := tempStore(t)
	raw := strings.Join([]string{
		"alice, 100",
		"garbage line without comma",
		"bob, notanumber",
		"carol, -5",
		"dave, 200",
		"",
	}, "\n")
	os.WriteFile(path, []byte(raw), 0o644)

	entries := s.Load()
	if len(entries) != 2 {
		t.Fatalf("expected 2 valid entries, got %d", len(entries))
	}
	if entries[0].Name != "dave" || entries[1].Name != "alice" {
		t.Errorf("expected dave then alice, got %s then %s", entries[0].Name, entries[1].Name)
	}
}

func TestHighscoreSplitsOnFirstComma(t *testing.T) {
	s, path := tempStore(t)
	os.WriteFile(path, []byte("last, first, 42\nplain, 7\n"), 0o644)

	// an extra comma makes the score field non-numeric, so the line is
	// dropped like any other malformed one
	entries := s.Load()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "plain" || entries[0].Score != 7 {
		t.Errorf("expected plain/7, got %q/%d", entries[0].Name, entries[0].Score)
	}
}

func TestHighscoreNameTruncated(t *testing.T) {
	s, _ := tempStore(t)
	s.Append(strings.Repeat("Z", 40), 10)

	entries := s.Load()
	if len([]rune(entries[0].Name)) != MaxNameLen {
		t.Errorf("stored name should be truncated to %d, got %d", MaxNameLen, len(entries[0].Name))
	}
}

func TestHighscorePersistCap(t *testing.T) {
	s, _ := tempStore(t)
	for i := 0; i < MaxSavedScores+10; i++ {
		s.Append(fmt.Sprintf("p%d", i), i)
	}

	entries := s.Load()
	if len(entries) != MaxSavedScores {
		t.Fatalf("file should keep at most %d entries, got %d", MaxSavedScores, len(entries))
	}
	// The cap keeps the best scores, not the earliest writes
	if entries[0].Score != MaxSavedScores+9 {
		t.Errorf("top score should survive the cap, got %d", entries[0].Score)
	}
	if entries[len(entries)-1].Score != 10 {
		t.Errorf("lowest kept score should be 10, got %d", entries[len(entries)-1].Score)
	}
}

func FuzzHighscoreLoad(f *testing.F) {
	f.Add([]byte("alice, 100\nbob, 50\n"))
	f.Add([]byte("no comma\n, 5\nname, -3\nname, x\nlast, first, 42\n"))
	f.Add([]byte("trunc, 12"))
	f.Add([]byte{0xff, 0xfe, 0x00, ','})
	f.Fuzz(func(t *testing.T, data []byte) {
		path := filepath.Join(t.TempDir(), "scores.txt")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		entries := NewHighscoreStore(path).Load()
		for i, e := range entries {
			if e.Score < 0 {
				t.Errorf("entry %d: negative score %d survived load", i, e.Score)
			}
			if strings.Contains(e.Name, "\n") {
				t.Errorf("entry %d: name carries a line break: %q", i, e.Name)
			}
			if i > 0 && entries[i-1].Score < e.Score {
				t.Errorf("entries not sorted descending at %d", i)
			}
		}
	})
}

func TestHighscoreTop(t *testing.T) {
	s, _ := tempStore(t)
	for i := 1; i <= 15; i++ {
		s.Append(fmt.Sprintf("p%d", i), i*10)
	}
	top := s.Top(10)
	if len(top) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(top))
	}
	if top[0].Score != 150 {
		t.Errorf("expected best score 150 first, got %d", top[0].Score)
	}
}
