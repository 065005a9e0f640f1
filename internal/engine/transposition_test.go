package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelchess/sirostrike/internal/board"
)

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(1)

	hash := uint64(0x1234567890ABCDEF)
	tt.Store(hash, 6, 42, 30, TTExact, board.Move(0x1234), true)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatal("expected to find stored entry")
	}
	if entry.Score != 42 {
		t.Errorf("Score = %d, want 42", entry.Score)
	}
	if entry.StaticEval != 30 {
		t.Errorf("StaticEval = %d, want 30", entry.StaticEval)
	}
	if entry.Depth != 6 {
		t.Errorf("Depth = %d, want 6", entry.Depth)
	}
	if entry.Flag != TTExact {
		t.Errorf("Flag = %v, want TTExact", entry.Flag)
	}
	if !entry.IsPV {
		t.Error("expected IsPV to be true")
	}
}

func TestTranspositionTableMiss(t *testing.T) {
	tt := NewTranspositionTable(1)

	if _, found := tt.Probe(0xDEADBEEF); found {
		t.Error("expected miss on empty table")
	}
}

func TestTranspositionTableExactBoundSurvivesNonExactOfEqualDepth(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0xAAAABBBBCCCCDDDD)

	tt.Store(hash, 8, 100, 90, TTExact, board.Move(1), false)
	tt.Store(hash, 8, 50, 90, TTUpperBound, board.Move(2), false)

	entry, found := tt.Probe(hash)
	if !found {
		t.Fatal("expected entry to still be present")
	}
	if entry.Flag != TTExact {
		t.Errorf("exact bound was overwritten by a non-exact bound of equal depth: got flag %v", entry.Flag)
	}
	if entry.Score != 100 {
		t.Errorf("Score = %d, want 100 (original exact store)", entry.Score)
	}
}

func TestTranspositionTableClear(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x1111)

	tt.Store(hash, 4, 10, 5, TTExact, board.NoMove, false)
	tt.Clear()

	if _, found := tt.Probe(hash); found {
		t.Error("expected table to be empty after Clear")
	}
}

func TestTranspositionTableSaveLoadRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x778899AABBCCDDEE)
	tt.Store(hash, 10, -250, -200, TTLowerBound, board.Move(77), true)
	tt.NewSearch()

	path := filepath.Join(t.TempDir(), "tt.bin")
	if err := tt.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewTranspositionTable(1)
	if err := loaded.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	entry, found := loaded.Probe(hash)
	if !found {
		t.Fatal("expected entry to survive save/load round trip")
	}
	if entry.Score != -250 || entry.StaticEval != -200 || entry.Depth != 10 || entry.Flag != TTLowerBound || !entry.IsPV {
		t.Errorf("round-tripped entry mismatch: %+v", entry)
	}
}

func TestTranspositionTableLoadRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.bin")
	if err := os.WriteFile(path, []byte("NOPE0000"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tt := NewTranspositionTable(1)
	if err := tt.Load(path); err == nil {
		t.Error("expected Load to reject a file with a bad magic header")
	}
}
