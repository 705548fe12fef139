package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	lightSquareFill = "fill:#f0d9b5"
	darkSquareFill  = "fill:#b58863"
	lastMoveFill    = "fill:#cdd26a;fill-opacity:0.8"
)

// figurines indexed by piece kind, White then Black.
var figurines = [2][chess.NumPieceValues]string{
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
}

// WriteSVG draws pos as an SVG board with squareSize pixel squares, a8 in
// the top left corner. The squares of last, when non-nil, are highlighted.
func WriteSVG(w io.Writer, pos *chess.Position, last *chess.Move, squareSize int) error {
	cw := &errWriter{w: w}
	canvas := svg.New(cw)

	side := squareSize * chess.BoardSize
	canvas.Start(side, side)
	canvas.Title(fmt.Sprintf("%s to move", pos.ToMove))

	fontStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;font-family:serif", squareSize*3/4)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			x, y := file*squareSize, rank*squareSize

			fill := darkSquareFill
			if sq.IsLight() {
				fill = lightSquareFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)
			if last != nil && (sq == last.From || sq == last.To) {
				canvas.Rect(x, y, squareSize, squareSize, lastMoveFill)
			}

			piece := pos.Board.At(sq)
			if piece == chess.Empty {
				continue
			}
			glyph := figurines[chess.ExtractColour(piece)][chess.ExtractPiece(piece)]
			canvas.Text(x+squareSize/2, y+squareSize*4/5, glyph, fontStyle)
		}
	}
	canvas.End()
	return cw.err
}

// errWriter remembers the first error of w; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
