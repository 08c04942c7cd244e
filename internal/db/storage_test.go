package db

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(filepath.Join(t.TempDir(), "wtf.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndLookup(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	if err := s.RecordFix(ctx, "gti status", "git status", "exact"); err != nil {
		t.Fatal(err)
	}

	rec, found, err := s.Lookup(ctx, "gti status")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected record to be found")
	}
	if rec.Command != "git status" || rec.Confidence != "exact" || rec.Count != 1 {
		t.Errorf("unexpected record: %+v", rec)
	}

	_, found, err = s.Lookup(ctx, "never seen")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("lookup of unknown input should not be found")
	}
}

func TestRecordFixIncrementsCount(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.RecordFix(ctx, "sl", "ls", "exact"); err != nil {
			t.Fatal(err)
		}
	}

	rec, found, err := s.Lookup(ctx, "sl")
	if err != nil || !found {
		t.Fatalf("lookup failed: %v, found=%v", err, found)
	}
	if rec.Count != 3 {
		t.Errorf("Count = %d, want 3", rec.Count)
	}
}

func TestStatsAndClear(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	_ = s.RecordFix(ctx, "sl", "ls", "exact")
	_ = s.RecordFix(ctx, "sl", "ls", "exact")
	_ = s.RecordFix(ctx, "gti", "git", "exact")

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.UniqueTypos != 2 || stats.TotalFixes != 3 {
		t.Errorf("stats = %+v, want 2 unique / 3 total", stats)
	}
	if stats.MostFixed != "sl" || stats.MostFixedN != 2 {
		t.Errorf("most fixed = %q (%d), want sl (2)", stats.MostFixed, stats.MostFixedN)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	stats, err = s.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.UniqueTypos != 0 {
		t.Errorf("store not empty after Clear: %+v", stats)
	}
}

func TestRecentOrder(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	_ = s.RecordFix(ctx, "a1", "a", "exact")
	_ = s.RecordFix(ctx, "b1", "b", "exact")
	_ = s.RecordFix(ctx, "a1", "a", "exact") // touch a1 again

	recent, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d records, want 1", len(recent))
	}
	if recent[0].Input != "a1" {
		t.Errorf("most recent = %q, want a1", recent[0].Input)
	}
}
