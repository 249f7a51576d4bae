package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/config"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events/subscribers"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (loads config.<env>.yaml)")
	boardFlag := flag.String("board", "", "Comma separated seed counts, store first (empty to use config)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	preview := flag.Bool("preview", false, "Plan on a copy and leave the board untouched")
	color := flag.Bool("color", true, "Highlight legal houses in the board rendering")
	watch := flag.Bool("watch", false, "Re-plan whenever the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if cfg.Development.VerboseLogging {
		*logLevel = "debug"
	}
	setupLogging(*logLevel, cfg.Logging.Format)
	if *configPath != "" && config.ConfigFilePath() == "" {
		log.Warn().Str("config", *configPath).Msg("Config file not found, using defaults")
	}

	board := cfg.Game.Board
	if *boardFlag != "" {
		parsed, err := parseBoard(*boardFlag)
		if err != nil {
			log.Fatal().Err(err).Str("board", *boardFlag).Msg("Invalid -board flag")
		}
		board = parsed
	}

	bus := events.NewEventBus()
	if cfg.Development.LogEvents {
		logSub := subscribers.NewLoggerSubscriber("event-logger", log.Logger, zerolog.DebugLevel)
		logSub.SetDevMode(cfg.Development.VerboseLogging)
		bus.Subscribe(logSub)
	}

	if err := run(os.Stdout, cfg, board, bus, *preview || cfg.Game.PreviewOnly, *color); err != nil {
		log.Fatal().Err(err).Msg("Planning failed")
	}

	if !*watch {
		return
	}

	reload := make(chan struct{}, 1)
	err := config.WatchConfig(func(err error) {
		if err != nil {
			log.Error().Err(err).Msg("Ignoring invalid config change")
			return
		}
		select {
		case reload <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("-watch needs an existing config file")
	}
	log.Info().
		Str("config", config.ConfigFilePath()).
		Str("overlay", config.OverlayFilePath()).
		Msg("Watching config for changes")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case <-reload:
			cfg = config.Get()
			if err := run(os.Stdout, cfg, cfg.Game.Board, bus, *preview || cfg.Game.PreviewOnly, *color); err != nil {
				log.Error().Err(err).Msg("Planning failed")
			}
		case sig := <-sigCh:
			log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			return
		}
	}
}

// run plans one board and prints the result to out.
func run(out io.Writer, cfg *config.Config, board []int, bus events.Publisher, preview, color bool) error {
	opts := append(game.OptionsFromConfig(cfg), game.WithEventBus(bus))
	e := game.NewEngine(opts...)
	if err := e.SetBoard(board); err != nil {
		return err
	}

	fmt.Fprintf(out, "Game %s\n", e.GameID())
	fmt.Fprintf(out, "Initial board %s\n%s", e.String(), e.Render(color))

	var moves []int
	if preview {
		moves = e.PreviewPlan()
	} else {
		moves = e.PlanMoves()
	}

	fmt.Fprintf(out, "Planned moves %v\n", moves)
	fmt.Fprintf(out, "Final board %s\n%s", e.String(), e.Render(color))
	if e.IsGameWon() {
		fmt.Fprintln(out, "Board cleared")
	} else {
		fmt.Fprintln(out, "No legal move left")
	}
	return nil
}

// parseBoard reads "0,0,1,1,3,5,0" (spaces allowed) into seed counts.
func parseBoard(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	board := make([]int, 0, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("house %d: %w", i, err)
		}
		board = append(board, n)
	}
	return board, nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == config.FormatJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
