package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/core"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events"
)

// Engine owns a single Solitaire Mancala board and plays it forward.
// It is not safe for concurrent use.
type Engine struct {
	board    *core.Board
	gameID   string
	maxHouse int
	strict   bool
	steps    int // moves applied since the board was last set
	logger   zerolog.Logger
	bus      events.Publisher
}

// NewEngine creates an engine holding an empty board (a single empty store).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		board:    core.NewBoard(),
		gameID:   uuid.NewString(),
		maxHouse: core.DefaultMaxHouse,
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().
		Str("component", "engine").
		Str("game_id", e.gameID).
		Logger()
	return e
}

func (e *Engine) GameID() string { return e.gameID }
func (e *Engine) MaxHouse() int { return e.maxHouse }

// SetBoard replaces the board with a copy of cfg. Only strict engines validate
// the configuration; on failure the previous board is kept.
func (e *Engine) SetBoard(cfg []int) error {
	if e.strict {
		if err := core.ValidateConfig(cfg); err != nil {
			e.logger.Error().Err(err).Ints("board", cfg).Msg("Rejected board configuration")
			return fmt.Errorf("set board: %w", err)
		}
	}
	e.board.SetBoard(cfg)
	e.steps = 0
	e.logger.Debug().Ints("board", cfg).Msg("Board set")
	return nil
}

// NumSeeds returns the seeds in house. It panics when house is out of range.
func (e *Engine) NumSeeds(house int) int {
	return e.board.NumSeeds(house)
}

func (e *Engine) IsLegalMove(house int) bool {
	return e.board.IsLegalMove(house)
}

// ApplyMove sows house. An illegal move leaves the board unchanged, is logged and
// published as rejected, and returns a *core.MoveError; callers may carry on.
func (e *Engine) ApplyMove(house int) error {
	if err := e.board.ApplyMove(house); err != nil {
		moveErr := err.(*core.MoveError)
		e.logger.Warn().
			Int("house", house).
			Int("seeds", moveErr.Seeds).
			Err(err).
			Msg("Illegal move")
		e.publish(events.NewMoveRejectedEvent(e.gameID, house, moveErr.Seeds, moveErr.Err.Error()))
		return err
	}

	e.steps++
	e.logger.Debug().
		Int("house", house).
		Int("step", e.steps).
		Str("board", e.board.String()).
		Msg("Move applied")
	e.publish(events.NewMoveAppliedEvent(e.gameID, house, e.steps, e.board.Snapshot()))
	return nil
}

// ChooseMove returns the legal house closest to the store, or core.NoMove.
func (e *Engine) ChooseMove() int {
	return e.board.ChooseMove(e.maxHouse)
}

func (e *Engine) IsGameWon() bool {
	return e.board.IsGameWon()
}

// PlanMoves plays the greedy strategy on the live board until the game is won or
// no legal move remains, and returns the houses played in order. The board is
// left in its final state.
func (e *Engine) PlanMoves() []int {
	start := time.Now()
	e.publish(events.NewPlanStartedEvent(e.gameID, e.board.Snapshot(), e.board.TotalSeeds()))

	moves := e.runPlan(e.board, e.ApplyMove)

	outcome := events.OutcomeStuck
	if e.board.IsGameWon() {
		outcome = events.OutcomeWon
	}
	elapsed := time.Since(start)

	e.logger.Info().
		Ints("moves", moves).
		Str("final_board", e.board.String()).
		Str("outcome", outcome).
		Dur("duration", elapsed).
		Msg("Plan completed")
	e.publish(events.NewPlanCompletedEvent(e.gameID, moves, e.board.Snapshot(), outcome, elapsed))
	return moves
}

// PreviewPlan returns the moves PlanMoves would choose without touching the
// engine's board or publishing events.
func (e *Engine) PreviewPlan() []int {
	b := e.board.Clone()
	return e.runPlan(b, b.ApplyMove)
}

// runPlan terminates: every move adds one seed to the store and the total is
// conserved, so a plan is never longer than b.TotalSeeds().
func (e *Engine) runPlan(b *core.Board, apply func(house int) error) []int {
	moves := []int{}
	for !b.IsGameWon() {
		house := b.ChooseMove(e.maxHouse)
		if house == core.NoMove {
			break
		}
		if err := apply(house); err != nil {
			e.logger.Error().Err(err).Int("house", house).Msg("Chosen move was rejected")
			break
		}
		moves = append(moves, house)
	}
	return moves
}

func (e *Engine) publish(event events.Event) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
