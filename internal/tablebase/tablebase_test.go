package tablebase

import (
	"path/filepath"
	"testing"

	"github.com/kestrelchess/sirostrike/internal/board"
)

func TestNoopProber(t *testing.T) {
	prober := NoopProber{}

	if prober.Available() {
		t.Error("NoopProber should not be available")
	}

	if prober.MaxPieces() != 0 {
		t.Errorf("NoopProber MaxPieces should be 0, got %d", prober.MaxPieces())
	}

	pos := board.NewPosition()
	result := prober.Probe(pos)
	if result.Found {
		t.Error("NoopProber should not find anything")
	}

	rootResult := prober.ProbeRoot(pos)
	if rootResult.Found {
		t.Error("NoopProber ProbeRoot should not find anything")
	}
}

func TestCountPieces(t *testing.T) {
	pos := board.NewPosition()
	count := CountPieces(pos)

	// Starting position has 32 pieces
	if count != 32 {
		t.Errorf("Starting position should have 32 pieces, got %d", count)
	}
}

func TestSyzygyCatalogEmptyDir(t *testing.T) {
	catalog := NewSyzygyCatalog(filepath.Join(t.TempDir(), "does-not-exist"))

	if got := catalog.MaxPiecesAvailable(); got != 0 {
		t.Errorf("empty catalog MaxPiecesAvailable = %d, want 0", got)
	}
	if files := catalog.GetAvailableFiles(); len(files) != 0 {
		t.Errorf("empty catalog GetAvailableFiles = %v, want none", files)
	}
	if catalog.HasFile("KQvK") {
		t.Error("empty catalog should not report KQvK as present")
	}
}

func TestSyzygyProberUnavailableWhenPathMissing(t *testing.T) {
	sp := NewSyzygyProber(filepath.Join(t.TempDir(), "missing"))

	if sp.Available() {
		t.Error("SyzygyProber should be unavailable when its path doesn't exist")
	}

	pos := board.NewPosition()
	if result := sp.Probe(pos); result.Found {
		t.Error("SyzygyProber.Probe should report not found with no local tables")
	}
	if root := sp.ProbeRoot(pos); root.Found {
		t.Error("SyzygyProber.ProbeRoot should report not found with no local tables")
	}
}

func TestWDLToScore(t *testing.T) {
	tests := []struct {
		wdl      WDL
		ply      int
		positive bool // Should score be positive (winning)?
	}{
		{WDLWin, 0, true},
		{WDLWin, 10, true},
		{WDLCursedWin, 0, true},
		{WDLDraw, 0, false},
		{WDLBlessedLoss, 0, false},
		{WDLLoss, 0, false},
	}

	for _, tc := range tests {
		score := WDLToScore(tc.wdl, tc.ply)
		isPositive := score > 0

		if tc.positive && !isPositive {
			t.Errorf("WDL %d at ply %d should give positive score, got %d", tc.wdl, tc.ply, score)
		}
		if !tc.positive && tc.wdl != WDLDraw && isPositive {
			t.Errorf("WDL %d at ply %d should give non-positive score, got %d", tc.wdl, tc.ply, score)
		}
	}
}
