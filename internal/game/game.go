// Package game drives a single game: it owns the position, records every
// ply for repetition detection, writes the move history and reports the
// game status after each move.
package game

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayedMove is one applied ply.
type PlayedMove struct {
	Ply       int         // 1-based
	Number    uint        // fullmove number the move was played in
	Side      chess.Colour
	Move      chess.Move
	Promotion chess.Piece // Empty unless the move promoted
	SAN       string
	FEN       string // position after the move
}

// UCI returns the coordinate form of the move with any promotion suffix.
func (p PlayedMove) UCI() string {
	s := p.Move.String()
	if p.Promotion != chess.Empty {
		s += string(chess.Symbol(chess.B(p.Promotion)))
	}
	return s
}

// Game is a game in progress. It is not safe for concurrent use.
type Game struct {
	startFEN string
	pos      *chess.Position
	record   *Record
	moves    []PlayedMove
	notation Notation
	status   chess.Status
	tags     chess.Tags

	promotion engine.PromotionChooser
	log       zerolog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithPromotion sets the chooser consulted when a pawn promotes and the move
// itself names no piece. The default promotes to a queen.
func WithPromotion(promo engine.PromotionChooser) Option {
	return func(g *Game) {
		g.promotion = promo
	}
}

// WithTags merges PGN header tags over the defaults.
func WithTags(tags chess.Tags) Option {
	return func(g *Game) {
		g.tags = g.tags.Merge(tags)
	}
}

// New starts a game from fen. An empty fen means the standard starting
// position.
func New(fen string, opts ...Option) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		startFEN:  engine.FEN(pos),
		pos:       pos,
		record:    NewRecord(),
		tags:      chess.DefaultTags(),
		promotion: engine.PromoteTo(chess.Queen),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.record.Observe(pos)
	g.status = engine.GameStatus(pos, g.record)
	g.log.Debug().Str("fen", g.startFEN).Stringer("status", g.status).Msg("game started")
	return g, nil
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// FEN returns the current position as FEN.
func (g *Game) FEN() string {
	return engine.FEN(g.pos)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// LegalMoves returns the legal moves in the current position, or none once
// the game is over.
func (g *Game) LegalMoves() []chess.Move {
	if g.status.IsTerminal() {
		return nil
	}
	return engine.LegalMoves(g.pos)
}

// Status returns the status of the current position.
func (g *Game) Status() chess.Status {
	return g.status
}

// Result returns the PGN result token.
func (g *Game) Result() string {
	return g.status.Result()
}

// Moves returns the plies played so far. The slice must not be modified.
func (g *Game) Moves() []PlayedMove {
	return g.moves
}

// Record returns the position history.
func (g *Game) Record() *Record {
	return g.record
}

// Notation returns the move history text.
func (g *Game) Notation() string {
	return g.notation.String()
}

// Tags returns a copy of the header tags with Result filled in.
func (g *Game) Tags() chess.Tags {
	tags := g.tags.Merge(nil)
	tags["Result"] = g.Result()
	return tags
}

// Play applies m, promoting through the game's chooser, and returns its
// algebraic token.
func (g *Game) Play(m chess.Move) (string, error) {
	return g.play(m, chess.Empty, m.String())
}

// PlayUCI applies a move in coordinate form such as "e2e4" or "e7e8n".
// A promotion suffix takes precedence over the game's chooser.
func (g *Game) PlayUCI(text string) (string, error) {
	m, promo, ok := chess.ParseCoordinateMove(text)
	if !ok {
		return "", &errors.MoveError{Err: errors.ErrInvalidMove, Ply: g.nextPly(), MoveText: text}
	}
	return g.play(m, promo, text)
}

// PlaySAN applies a move written in algebraic notation, as produced by
// engine.FormatMove. Check and mate markers are optional.
func (g *Game) PlaySAN(text string) (string, error) {
	if err := g.checkOngoing(text); err != nil {
		return "", err
	}
	m, promo, ok := engine.ParseSAN(g.pos, text)
	if !ok {
		return "", &errors.MoveError{Err: errors.ErrIllegalMove, Ply: g.nextPly(), MoveText: text}
	}
	return g.play(m, promo, text)
}

// PlayText accepts either coordinate or algebraic notation.
func (g *Game) PlayText(text string) (string, error) {
	if _, _, ok := chess.ParseCoordinateMove(text); ok {
		return g.PlayUCI(text)
	}
	return g.PlaySAN(text)
}

func (g *Game) nextPly() int {
	return len(g.moves) + 1
}

func (g *Game) checkOngoing(text string) error {
	if g.status.IsTerminal() {
		return &errors.MoveError{Err: errors.ErrGameOver, Ply: g.nextPly(), MoveText: text}
	}
	return nil
}

// play validates m, applies it, records the resulting position and
// re-evaluates the status. promo overrides the chooser when not Empty.
func (g *Game) play(m chess.Move, promo chess.Piece, text string) (string, error) {
	if err := g.checkOngoing(text); err != nil {
		return "", err
	}
	ply := g.nextPly()

	legal, ok := engine.ResolveMove(g.pos, m)
	if !ok {
		return "", &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ply, MoveText: text}
	}

	if engine.IsPromotion(g.pos, legal) {
		if promo == chess.Empty {
			promo = g.choosePromotion(legal)
		}
		if !chess.IsPromotionPiece(promo) {
			return "", &errors.MoveError{
				Err:      errors.Wrapf(errors.ErrInvalidPromotion, "%v", promo),
				Ply:      ply,
				MoveText: text,
			}
		}
	} else {
		promo = chess.Empty
	}

	played := PlayedMove{
		Ply:       ply,
		Number:    g.pos.MoveNumber,
		Side:      g.pos.ToMove,
		Move:      legal,
		Promotion: promo,
		SAN:       engine.FormatMove(g.pos, legal, promo),
	}

	engine.ApplyMove(g.pos, legal, engine.PromoteTo(promo))
	played.FEN = engine.FEN(g.pos)
	g.moves = append(g.moves, played)
	g.notation.Add(played.Number, played.Side, played.SAN)

	reps := g.record.Observe(g.pos)
	g.status = engine.GameStatus(g.pos, g.record)

	g.log.Debug().
		Int("ply", ply).
		Str("move", played.UCI()).
		Str("san", played.SAN).
		Str("fen", played.FEN).
		Int("repetitions", reps).
		Msg("move played")

	if g.status.IsTerminal() {
		g.notation.Finish(g.status)
		g.log.Info().
			Stringer("status", g.status).
			Str("result", g.Result()).
			Int("plies", len(g.moves)).
			Msg("game over")
	}
	return played.SAN, nil
}

func (g *Game) choosePromotion(m chess.Move) chess.Piece {
	if g.promotion == nil {
		return chess.Queen
	}
	return g.promotion.Choose(g.pos, m)
}
