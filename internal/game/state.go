package game

// GameState is a point-in-time view of an engine.
type GameState struct {
	GameID     string
	Board      []int
	Steps      int // moves applied since the board was last set
	TotalSeeds int
	NextMove   int // 0 when no legal move remains
	Won        bool
}

func (e *Engine) GameState() GameState {
	return GameState{
		GameID:     e.gameID,
		Board:      e.board.Snapshot(),
		Steps:      e.steps,
		TotalSeeds: e.board.TotalSeeds(),
		NextMove:   e.ChooseMove(),
		Won:        e.board.IsGameWon(),
	}
}
