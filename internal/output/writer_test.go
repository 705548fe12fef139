package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewGameWriter(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		check  func(t *testing.T, out string)
	}{
		{config.TextFormat, func(t *testing.T, out string) {
			assert.Contains(t, out, "Last move: d8h4\n")
			assert.Contains(t, out, "Moves: 1. f3 e5 2. g4 Qh4# 0-1\n")
			assert.True(t, strings.HasSuffix(out, "Checkmate, black wins\n"), out)
		}},
		{config.FENFormat, func(t *testing.T, out string) {
			assert.Equal(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3\n", out)
		}},
		{config.PGNFormat, func(t *testing.T, out string) {
			assert.Equal(t, foolsMatePGN, out)
		}},
		{config.JSONFormat, func(t *testing.T, out string) {
			var jg JSONGame
			require.NoError(t, json.Unmarshal([]byte(out), &jg))
			assert.Equal(t, "0-1", jg.Result)
			assert.Len(t, jg.Moves, 4)
		}},
		{config.SVGFormat, func(t *testing.T, out string) {
			assert.Contains(t, out, "<svg")
			assert.Contains(t, out, `width="360"`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.NewConfigBuilder().WithFormat(tt.format).WithOutput(&buf).Build()

			w, err := NewGameWriter(&buf, cfg)
			require.NoError(t, err)
			require.NoError(t, w.WriteGame(foolsMate(t)))
			require.NoError(t, w.Flush())
			require.NoError(t, w.Close())
			tt.check(t, buf.String())
		})
	}
}

func TestNewGameWriter_UnknownFormat(t *testing.T) {
	cfg := config.NewConfigBuilder().WithFormat(config.OutputFormat(99)).Build()
	_, err := NewGameWriter(&bytes.Buffer{}, cfg)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

// TestJSONWriter_Batch verifies games are collected into one array
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.WriteGame(foolsMate(t)))
	require.NoError(t, w.WriteGame(playGame(t, "", "e2e4")))
	assert.Zero(t, buf.Len(), "batch writer must not write before Flush")

	require.NoError(t, w.Close())

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Games, 2)
	assert.Equal(t, "0-1", out.Games[0].Result)
	assert.Equal(t, "*", out.Games[1].Result)

	buf.Reset()
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len(), "Flush empties the buffer")
}
