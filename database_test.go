package main

import (
	"path/filepath"
	"testing"
)

func tempDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndTopSessions(t *testing.T) {
	db := tempDB(t)

	if _, err := db.RecordSession("alice", 100, 3, 45.5); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := db.RecordSession("bob", 300, 7, 120.0); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := db.RecordSession("carol", 200, 5, 80.0); err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := db.TopSessions(2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].Name != "bob" || top[0].Score != 300 || top[0].Wave != 7 {
		t.Errorf("expected bob/300/7 first, got %s/%d/%d", top[0].Name, top[0].Score, top[0].Wave)
	}
	if top[1].Name != "carol" {
		t.Errorf("expected carol second, got %s", top[1].Name)
	}
}

func TestSessionCountAndBestWave(t *testing.T) {
	db := tempDB(t)

	count, err := db.SessionCount()
	if err != nil || count != 0 {
		t.Errorf("empty archive should count 0, got %d (%v)", count, err)
	}
	best, err := db.BestWave()
	if err != nil || best != 0 {
		t.Errorf("empty archive best wave should be 0, got %d (%v)", best, err)
	}

	db.RecordSession("alice", 100, 3, 10)
	db.RecordSession("bob", 50, 9, 10)

	count, _ = db.SessionCount()
	if count != 2 {
		t.Errorf("expected 2 sessions, got %d", count)
	}
	best, _ = db.BestWave()
	if best != 9 {
		t.Errorf("expected best wave 9, got %d", best)
	}
}

func TestAnalyticsFlushOnStop(t *testing.T) {
	db := tempDB(t)
	a := NewAnalytics(db)

	a.Track(EvtEnemyDestroyed, "alice", intJSON("type", 0))
	a.Track(EvtEnemyDestroyed, "alice", intJSON("type", 2))
	a.Track(EvtEnemyDestroyed, "alice", intJSON("type", 2))
	a.Track(EvtWaveCleared, "alice", intJSON("wave", 1))
	a.Stop()

	counts, err := a.EventCounts(1)
	if err != nil {
		t.Fatalf("event counts: %v", err)
	}
	if counts[EvtEnemyDestroyed] != 3 {
		t.Errorf("expected 3 destroy events, got %d", counts[EvtEnemyDestroyed])
	}
	if counts[EvtWaveCleared] != 1 {
		t.Errorf("expected 1 wave clear, got %d", counts[EvtWaveCleared])
	}

	kills, err := a.KillsByType()
	if err != nil {
		t.Fatalf("kills by type: %v", err)
	}
	if kills[0] != 1 || kills[2] != 2 {
		t.Errorf("expected kills {0:1, 2:2}, got %v", kills)
	}
}

func TestGameArchivesSessionOnGameOver(t *testing.T) {
	db := tempDB(t)
	a := NewAnalytics(db)

	g, _ := newTestGame(t)
	g.SetArchive(db, a)
	startTestRun(t, g, "ACE")
	g.score = 70
	g.enemies[0].Y = ScreenHeight - DefenderLine + 1
	g.Step(TickDT, Input{})
	a.Stop()

	top, err := db.TopSessions(1)
	if err != nil || len(top) != 1 {
		t.Fatalf("expected one archived session, got %d (%v)", len(top), err)
	}
	if top[0].Name != "ACE" || top[0].Score != 70 {
		t.Errorf("archived session should match the run, got %s/%d", top[0].Name, top[0].Score)
	}
}
