package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/config"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events"
)

// Option configures an Engine
type Option func(*Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEventBus publishes plan and move events to bus
func WithEventBus(bus events.Publisher) Option {
	return func(e *Engine) { e.bus = bus }
}

func WithGameID(id string) Option {
	return func(e *Engine) { e.gameID = id }
}

// WithMaxHouse sets the farthest house ChooseMove considers
func WithMaxHouse(maxHouse int) Option {
	return func(e *Engine) { e.maxHouse = maxHouse }
}

// WithStrictBoards makes SetBoard reject negative or empty configurations
func WithStrictBoards(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

// OptionsFromConfig maps the game section of cfg onto engine options
func OptionsFromConfig(cfg *config.Config) []Option {
	return []Option{
		WithMaxHouse(cfg.Game.MaxHouse),
		WithStrictBoards(cfg.Game.StrictBoards),
	}
}
