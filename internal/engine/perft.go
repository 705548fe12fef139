package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move      chess.Move
	Promotion chess.Piece
	Nodes     uint64
}

// UCI returns the coordinate form of the root move with any promotion
// suffix, e.g. "e7e8q".
func (d DivideEntry) UCI() string {
	s := d.Move.String()
	if d.Promotion != chess.Empty {
		s += string(chess.Symbol(chess.B(d.Promotion)))
	}
	return s
}

// Perft counts the leaf nodes of the legal move tree of the given depth.
// Each promotion choice counts as a separate move.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range LegalMoves(pos) {
		for _, promo := range promotionChoices(pos, m) {
			if depth == 1 {
				nodes++
				continue
			}
			undo := MakeMove(pos, m, PromoteTo(promo))
			nodes += Perft(pos, depth-1)
			UnmakeMove(pos, m, undo)
		}
	}
	return nodes
}

// Divide reports the perft count below each root move, using workers
// goroutines. Entries are ordered as LegalMoves orders the root moves, with
// promotions in queen, rook, bishop, knight order. pos is not modified.
func Divide(pos *chess.Position, depth, workers int) []DivideEntry {
	if depth < 1 {
		return nil
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Index:     item.Index,
			Move:      item.Move,
			Promotion: item.Promotion,
			Nodes:     Perft(item.Position, item.Depth),
		}
	}, worker.WithWorkers(workers))
	pool.Start()

	root := pos.Copy()
	go func() {
		index := 0
		for _, m := range LegalMoves(root) {
			for _, promo := range promotionChoices(root, m) {
				child := root.Copy()
				MakeMove(child, m, PromoteTo(promo))
				pool.Submit(worker.WorkItem{
					Position:  child,
					Move:      m,
					Promotion: promo,
					Depth:     depth - 1,
					Index:     index,
				})
				index++
			}
		}
		pool.Close()
	}()

	var results []worker.ProcessResult
	for result := range pool.Results() {
		results = append(results, result)
	}
	slices.SortFunc(results, func(a, b worker.ProcessResult) int {
		return a.Index - b.Index
	})

	entries := make([]DivideEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, DivideEntry{Move: r.Move, Promotion: r.Promotion, Nodes: r.Nodes})
	}
	return entries
}

// promotionChoices returns the four promotion pieces for a promoting move
// and a single Empty entry otherwise.
func promotionChoices(pos *chess.Position, m chess.Move) []chess.Piece {
	if IsPromotion(pos, m) {
		return chess.PromotionPieces
	}
	return []chess.Piece{chess.Empty}
}
