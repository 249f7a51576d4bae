package events

import (
	"time"
)

// Event type constants
const (
	TypePlanStarted   = "plan.started"
	TypePlanCompleted = "plan.completed"
	TypeMoveApplied   = "move.applied"
	TypeMoveRejected  = "move.rejected"
)

// Plan outcomes
const (
	OutcomeWon   = "won"
	OutcomeStuck = "stuck"
)

// PlanStartedEvent is published before the planner makes its first move
type PlanStartedEvent struct {
	BaseEvent
	Board      []int `json:"board"`
	TotalSeeds int   `json:"total_seeds"`
}

// NewPlanStartedEvent creates a new PlanStartedEvent
func NewPlanStartedEvent(gameID string, board []int, totalSeeds int) *PlanStartedEvent {
	return &PlanStartedEvent{
		BaseEvent:  newBaseEvent(TypePlanStarted, gameID),
		Board:      board,
		TotalSeeds: totalSeeds,
	}
}

// PlanCompletedEvent is published once the planner runs out of moves
type PlanCompletedEvent struct {
	BaseEvent
	Moves      []int         `json:"moves"`
	FinalBoard []int         `json:"final_board"`
	Outcome    string        `json:"outcome"`
	Duration   time.Duration `json:"duration"`
}

// NewPlanCompletedEvent creates a new PlanCompletedEvent
func NewPlanCompletedEvent(gameID string, moves, finalBoard []int, outcome string, duration time.Duration) *PlanCompletedEvent {
	return &PlanCompletedEvent{
		BaseEvent:  newBaseEvent(TypePlanCompleted, gameID),
		Moves:      moves,
		FinalBoard: finalBoard,
		Outcome:    outcome,
		Duration:   duration,
	}
}

// MoveAppliedEvent is published after a house has been sown
type MoveAppliedEvent struct {
	BaseEvent
	House int   `json:"house"`
	Step  int   `json:"step"`
	Board []int `json:"board"`
}

// NewMoveAppliedEvent creates a new MoveAppliedEvent. step counts applied moves from 1.
func NewMoveAppliedEvent(gameID string, house, step int, board []int) *MoveAppliedEvent {
	return &MoveAppliedEvent{
		BaseEvent: newBaseEvent(TypeMoveApplied, gameID),
		House:     house,
		Step:      step,
		Board:     board,
	}
}

// MoveRejectedEvent is published when an illegal move is attempted
type MoveRejectedEvent struct {
	BaseEvent
	House  int    `json:"house"`
	Seeds  int    `json:"seeds"`
	Reason string `json:"reason"`
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, house, seeds int, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBaseEvent(TypeMoveRejected, gameID),
		House:     house,
		Seeds:     seeds,
		Reason:    reason,
	}
}
