package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	InitialFEN string            `json:"initialFEN,omitempty"`
	Moves      []JSONMove        `json:"moves"`
	PlyCount   int               `json:"plyCount"`
	Status     string            `json:"status"`
	Result     string            `json:"result"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber uint   `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON form.
func GameToJSON(g *game.Game) *JSONGame {
	jg := &JSONGame{
		Tags:     g.Tags(),
		Moves:    make([]JSONMove, 0, len(g.Moves())),
		PlyCount: len(g.Moves()),
		Status:   g.Status().String(),
		Result:   g.Result(),
		FinalFEN: g.FEN(),
	}
	if start := g.StartFEN(); start != engine.InitialFEN {
		jg.InitialFEN = start
	}

	for _, m := range g.Moves() {
		jm := JSONMove{
			MoveNumber: m.Number,
			Color:      strings.ToLower(m.Side.String()),
			SAN:        m.SAN,
			UCI:        m.UCI(),
			From:       m.Move.From.String(),
			To:         m.Move.To.String(),
			FEN:        m.FEN,
		}
		if m.Promotion != chess.Empty {
			jm.Promotion = string(m.Promotion.Letter())
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// WriteJSON writes g as indented JSON.
func WriteJSON(w io.Writer, g *game.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}
