// chess-rules plays a sequence of moves from a position and reports the
// resulting position and game status. The exit status is the game status.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(chess.ExitInvalidArguments)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(chess.ExitInvalidArguments)
	}

	closeFiles, err := setupFiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(chess.ExitInvalidArguments)
	}

	code := run(cfg)
	closeFiles()
	os.Exit(code)
}

// setupFiles opens the -o and -l files. The returned function closes them.
func setupFiles(cfg *config.Config) (func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return closeAll, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		files = append(files, file)
		cfg.LogFile = file
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			closeAll()
			return func() {}, fmt.Errorf("creating output file %s: %w", *outputFile, err)
		}
		files = append(files, file)
		cfg.OutputFile = file
	}
	return closeAll, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves from a position and reports the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status:\n")
	fmt.Fprintf(os.Stderr, "  0  game in progress\n")
	fmt.Fprintf(os.Stderr, "  1  white wins by checkmate\n")
	fmt.Fprintf(os.Stderr, "  2  black wins by checkmate\n")
	fmt.Fprintf(os.Stderr, "  3  draw by stalemate\n")
	fmt.Fprintf(os.Stderr, "  4  draw by insufficient material\n")
	fmt.Fprintf(os.Stderr, "  5  draw by the fifty-move rule\n")
	fmt.Fprintf(os.Stderr, "  6  draw by threefold repetition\n")
	fmt.Fprintf(os.Stderr, "  7  invalid FEN\n")
	fmt.Fprintf(os.Stderr, "  8  invalid arguments or move\n")
}
