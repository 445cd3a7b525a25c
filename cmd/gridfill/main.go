package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pmarks/gridfill/config"
	"github.com/pmarks/gridfill/crossword"
	"github.com/pmarks/gridfill/render"
	"github.com/pmarks/gridfill/solver"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	if cfg.StructurePath == "" || cfg.WordsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: gridfill -structure <file> -words <file> [-output <file>]")
		os.Exit(2)
	}

	cw, err := crossword.LoadFiles(cfg.StructurePath, cfg.WordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load puzzle")
	}
	log.Debug().
		Int("height", cw.Height).Int("width", cw.Width).
		Int("variables", len(cw.Variables)).Int("words", len(cw.Words)).
		Msg("loaded puzzle")

	start := time.Now()
	asg, err := solver.NewFiller(cw).Solve()
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) {
			fmt.Println("No solution.")
			return
		}
		log.Fatal().Err(err).Msg("solve failed")
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solved")

	fmt.Print(render.Text(cw, asg))
	if cfg.OutputPath != "" {
		if err := render.SaveImage(cw, asg, cfg.OutputPath); err != nil {
			log.Fatal().Err(err).Msg("could not write image")
		}
	}
}
