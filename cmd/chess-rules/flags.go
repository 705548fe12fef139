// flags.go - Command-line flag definitions and configuration
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Position and moves
	fenString = flag.String("fen", "", "Starting position in FEN (default: the initial position)")
	moveList  = flag.String("moves", "", "Space separated moves to play, coordinate (e2e4) or algebraic (Nf3)")
	moveFile  = flag.String("movefile", "", "File of moves to play after -moves, whitespace separated, # starts a comment")
	promote   = flag.String("promote", "q", "Promotion piece when a move names none: q, r, b or n")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: text, fen, pgn, json, svg")
	lineLength   = flag.Int("w", 80, "Maximum line length of PGN move text")
	squareSize   = flag.Int("square", 45, "Square size in pixels for svg output")

	// Header tags
	eventTag = flag.String("event", "", "PGN Event tag")
	siteTag  = flag.String("site", "", "PGN Site tag")
	whiteTag = flag.String("white", "", "PGN White tag")
	blackTag = flag.String("black", "", "PGN Black tag")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth from the final position")
	divide     = flag.Bool("divide", false, "With -perft, report the count below each root move")
	workers    = flag.Int("workers", 1, "Workers used by -divide")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	logLevel  = flag.String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	logPretty = flag.Bool("log-pretty", false, "Human readable log output")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg. Values that need parsing are
// checked here; range checks are left to cfg.Validate.
func applyFlags(cfg *config.Config) error {
	cfg.FEN = *fenString

	if err := applyMoveFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyTagFlags(cfg)
	applyPerftFlags(cfg)
	applyLogFlags(cfg)
	return nil
}

func applyMoveFlags(cfg *config.Config) error {
	cfg.Moves = append(cfg.Moves, strings.Fields(*moveList)...)
	if *moveFile != "" {
		moves, err := loadMoveFile(*moveFile)
		if err != nil {
			return err
		}
		cfg.Moves = append(cfg.Moves, moves...)
	}

	piece, err := config.ParsePromotion(*promote)
	if err != nil {
		return err
	}
	cfg.Promotion = piece
	return nil
}

func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format

	if *lineLength < 0 {
		return fmt.Errorf("line length %d: %w", *lineLength, errors.ErrInvalidConfig)
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.SquareSize = *squareSize
	return nil
}

func applyTagFlags(cfg *config.Config) {
	for name, value := range map[string]string{
		"Event": *eventTag,
		"Site":  *siteTag,
		"White": *whiteTag,
		"Black": *blackTag,
	} {
		if value != "" {
			cfg.Tags[name] = value
		}
	}
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
}

func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	cfg.Log.Pretty = *logPretty
}

// loadMoveFile reads whitespace separated moves, ignoring everything from
// a '#' to the end of its line.
func loadMoveFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "move file: %v", err)
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		moves = append(moves, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "move file: %v", err)
	}
	return moves, nil
}
