package subscribers

import (
	"sync"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events"
)

// PlanRecorder keeps the houses applied in each game, in order.
type PlanRecorder struct {
	id    string
	mu    sync.Mutex
	moves map[string][]int
}

func NewPlanRecorder(id string) *PlanRecorder {
	return &PlanRecorder{
		id:    id,
		moves: make(map[string][]int),
	}
}

func (r *PlanRecorder) ID() string {
	return r.id
}

func (r *PlanRecorder) InterestedIn(eventType string) bool {
	return eventType == events.TypeMoveApplied
}

func (r *PlanRecorder) HandleEvent(event events.Event) {
	applied, ok := event.(*events.MoveAppliedEvent)
	if !ok {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves[applied.GameID()] = append(r.moves[applied.GameID()], applied.House)
}

// Moves returns a copy of the moves recorded for gameID.
func (r *PlanRecorder) Moves(gameID string) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.moves[gameID]))
	copy(out, r.moves[gameID])
	return out
}

func (r *PlanRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = make(map[string][]int)
}
