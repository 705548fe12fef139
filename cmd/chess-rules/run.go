package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// newLogger builds the logger described by cfg.Log, writing to cfg.LogFile.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	level, err := cfg.Log.ParsedLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	var w io.Writer = cfg.LogFile
	if cfg.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: cfg.LogFile, NoColor: true, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// run plays the configured game and writes the requested output. It returns
// the process exit status.
func run(cfg *config.Config) int {
	log, err := newLogger(cfg)
	if err != nil {
		fallback := zerolog.New(cfg.LogFile)
		fallback.Error().Err(err).Msg("invalid configuration")
		return chess.ExitInvalidArguments
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return chess.ExitInvalidArguments
	}

	g, err := game.New(cfg.FEN,
		game.WithLogger(log),
		game.WithPromotion(engine.PromoteTo(cfg.Promotion)),
		game.WithTags(cfg.Tags),
	)
	if err != nil {
		log.Error().Err(err).Str("fen", cfg.FEN).Msg("invalid position")
		return chess.ExitInvalidFEN
	}

	for _, text := range cfg.Moves {
		if _, err := g.PlayText(text); err != nil {
			log.Error().Err(err).Str("fen", g.FEN()).Msg("move rejected")
			return chess.ExitInvalidArguments
		}
	}

	if cfg.Perft.Enabled() {
		if err := writePerft(cfg, g.Position(), log); err != nil {
			log.Error().Err(err).Msg("writing output")
			return chess.ExitInvalidArguments
		}
		return g.Status().ExitCode()
	}

	if err := writeGame(cfg, g); err != nil {
		log.Error().Err(err).Msg("writing output")
		return chess.ExitInvalidArguments
	}
	return g.Status().ExitCode()
}

func writeGame(cfg *config.Config, g *game.Game) error {
	w, err := output.NewGameWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}
	if err := w.WriteGame(g); err != nil {
		return err
	}
	return w.Close()
}

func writePerft(cfg *config.Config, pos *chess.Position, log zerolog.Logger) error {
	start := time.Now()
	defer func() {
		log.Info().
			Int("depth", cfg.Perft.Depth).
			Bool("divide", cfg.Perft.Divide).
			Dur("elapsed", time.Since(start)).
			Msg("perft finished")
	}()

	if cfg.Perft.Divide {
		return output.WriteDivide(cfg.OutputFile, engine.Divide(pos, cfg.Perft.Depth, cfg.Perft.Workers))
	}
	return output.WritePerft(cfg.OutputFile, cfg.Perft.Depth, engine.Perft(pos, cfg.Perft.Depth))
}
