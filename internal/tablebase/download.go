package tablebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SyzygyCatalog scans a local directory for Syzygy tablebase files.
// No networked play is in scope for this engine: tablebase files must
// already be present on disk (see SyzygyPath in the UCI option registry);
// this catalog never fetches them.
type SyzygyCatalog struct {
	CacheDir string
}

// NewSyzygyCatalog creates a catalog scanner rooted at cacheDir.
func NewSyzygyCatalog(cacheDir string) *SyzygyCatalog {
	return &SyzygyCatalog{CacheDir: cacheDir}
}

// DefaultCacheDir returns the default local directory for Syzygy files.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./syzygy"
	}
	return filepath.Join(home, ".sirostrike", "syzygy")
}

// HasFile checks whether both WDL and DTZ files for a material key are present.
func (c *SyzygyCatalog) HasFile(name string) bool {
	wdlPath := filepath.Join(c.CacheDir, name+".rtbw")
	dtzPath := filepath.Join(c.CacheDir, name+".rtbz")

	_, wdlErr := os.Stat(wdlPath)
	_, dtzErr := os.Stat(dtzPath)

	return wdlErr == nil && dtzErr == nil
}

// GetAvailableFiles returns the material keys with both WDL and DTZ present.
func (c *SyzygyCatalog) GetAvailableFiles() []string {
	var files []string
	entries, err := os.ReadDir(c.CacheDir)
	if err != nil {
		return files
	}

	seen := make(map[string]int)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".rtbw") {
			seen[strings.TrimSuffix(name, ".rtbw")]++
		} else if strings.HasSuffix(name, ".rtbz") {
			seen[strings.TrimSuffix(name, ".rtbz")]++
		}
	}

	for base, count := range seen {
		if count >= 2 {
			files = append(files, base)
		}
	}

	sort.Strings(files)
	return files
}

// MaxPiecesAvailable returns the maximum piece count found in the directory.
func (c *SyzygyCatalog) MaxPiecesAvailable() int {
	files := c.GetAvailableFiles()
	maxPieces := 0
	for _, f := range files {
		if pieces := countPiecesFromName(f); pieces > maxPieces {
			maxPieces = pieces
		}
	}
	return maxPieces
}

// countPiecesFromName counts pieces in a tablebase name like "KQRvKR".
func countPiecesFromName(name string) int {
	count := 0
	for _, c := range strings.ToUpper(name) {
		switch c {
		case 'K', 'Q', 'R', 'B', 'N', 'P':
			count++
		}
	}
	return count
}
