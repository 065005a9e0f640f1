package analysis

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := openTestStore(t)

	hash := uint64(0x1122334455667788)
	rec := Record{
		Depth:    12,
		Score:    35,
		BestMove: "e2e4",
		PV:       []string{"e2e4", "e7e5", "g1f3"},
		Nodes:    1_000_000,
	}

	if err := s.Put(hash, rec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("expected record to be found")
	}
	if got.BestMove != "e2e4" || got.Depth != 12 || got.Score != 35 {
		t.Errorf("got %+v, want matching fields from %+v", got, rec)
	}
	if len(got.PV) != 3 {
		t.Errorf("PV length = %d, want 3", len(got.PV))
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Get(0xDEADBEEF)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("expected no record for an unwritten hash")
	}
}

func TestPutDoesNotDowngradeDepth(t *testing.T) {
	s := openTestStore(t)
	hash := uint64(42)

	if err := s.Put(hash, Record{Depth: 20, Score: 100, BestMove: "d2d4"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(hash, Record{Depth: 5, Score: 1, BestMove: "a2a3"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := s.Get(hash)
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if got.Depth != 20 || got.BestMove != "d2d4" {
		t.Errorf("shallower record overwrote the deeper one: got %+v", got)
	}
}

func TestDeleteAndCount(t *testing.T) {
	s := openTestStore(t)

	for i, h := range []uint64{1, 2, 3} {
		if err := s.Put(h, Record{Depth: i + 1, BestMove: "e2e4"}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Count = %d, want 3", count)
	}

	if err := s.Delete(2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, found, _ := s.Get(2); found {
		t.Error("expected record 2 to be deleted")
	}
}

func TestDefaultDBDirCreatesDirectory(t *testing.T) {
	dir, err := DefaultDBDir()
	if err != nil {
		t.Fatalf("DefaultDBDir failed: %v", err)
	}
	if dir == "" {
		t.Fatal("DefaultDBDir returned empty path")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("analysis data directory was not created: %s", dir)
	}
}
