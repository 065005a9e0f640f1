package engine

import (
	"github.com/kestrelchess/sirostrike/internal/board"
)

// Search constants
const (
	Infinity  = 30000
	MateScore = 29000
	MaxPly    = 128
)

// PVTable stores the principal variation discovered at each ply of a
// single search. Every Worker owns one; there is exactly one negamax
// implementation (internal/engine/worker.go) so PV bookkeeping never
// diverges between the root search and Multi-PV analysis passes.
type PVTable struct {
	length [MaxPly]int
	moves  [MaxPly][MaxPly]board.Move
}
