package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is a row of houses. Index 0 is the store; house i sits i steps from it.
// The length is fixed once the board is configured.
type Board struct {
	Houses []int
}

const (
	StoreIdx        = 0
	DefaultMaxHouse = 6
	NoMove          = 0
)

// NewBoard returns a board holding only an empty store.
func NewBoard() *Board {
	return &Board{Houses: []int{0}}
}

// NewBoardFromConfig returns a board holding a copy of cfg.
func NewBoardFromConfig(cfg []int) *Board {
	b := &Board{}
	b.SetBoard(cfg)
	return b
}

// SetBoard replaces the board with a copy of cfg. The input is trusted; see Validate.
func (b *Board) SetBoard(cfg []int) {
	b.Houses = make([]int, len(cfg))
	copy(b.Houses, cfg)
}

// Validate reports boards that break the seed-count invariants.
func (b *Board) Validate() error {
	return ValidateConfig(b.Houses)
}

// ValidateConfig checks a raw configuration before it is loaded onto a board.
func ValidateConfig(cfg []int) error {
	if len(cfg) == 0 {
		return ErrEmptyBoard
	}
	for i, seeds := range cfg {
		if seeds < 0 {
			return fmt.Errorf("house %d has %d seeds: %w", i, seeds, ErrNegativeSeeds)
		}
	}
	return nil
}

func (b *Board) Len() int { return len(b.Houses) }

// NumSeeds panics when house is out of range.
func (b *Board) NumSeeds(house int) int { return b.Houses[house] }

func (b *Board) TotalSeeds() int {
	total := 0
	for _, seeds := range b.Houses {
		total += seeds
	}
	return total
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return NewBoardFromConfig(b.Houses)
}

// Snapshot returns a copy of the seed counts.
func (b *Board) Snapshot() []int {
	out := make([]int, len(b.Houses))
	copy(out, b.Houses)
	return out
}

// IsLegalMove reports whether house holds exactly as many seeds as its index.
// The store is never legal.
func (b *Board) IsLegalMove(house int) bool {
	return house != StoreIdx && b.Houses[house] == house
}

// ApplyMove sows the seeds of house one each into house, house-1, ..., the store,
// then empties house. Illegal moves leave the board untouched and return a *MoveError.
func (b *Board) ApplyMove(house int) error {
	if house == StoreIdx {
		return NewMoveError(house, b.Houses[house], ErrStoreNotPlayable)
	}
	if !b.IsLegalMove(house) {
		return NewMoveError(house, b.Houses[house], ErrIllegalMove)
	}

	for i := house; i >= StoreIdx; i-- {
		b.Houses[i]++
	}
	b.Houses[house] = 0
	return nil
}

// ChooseMove returns the legal house closest to the store among 1..maxHouse,
// or NoMove when none is legal.
func (b *Board) ChooseMove(maxHouse int) int {
	last := min(maxHouse, len(b.Houses)-1)
	for house := 1; house <= last; house++ {
		if b.IsLegalMove(house) {
			return house
		}
	}
	return NoMove
}

// IsGameWon is true once every entry, store included, is zero.
func (b *Board) IsGameWon() bool {
	for _, seeds := range b.Houses {
		if seeds != 0 {
			return false
		}
	}
	return true
}

// HouseFromDistance converts a position counted from the far end of the board
// (1 = farthest house) into a house index. On the canonical board this is 7 - d.
func (b *Board) HouseFromDistance(d int) int {
	return len(b.Houses) - d
}

// String renders the farthest house first and the store last, e.g. [0, 5, 3, 1, 1, 0, 0].
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := len(b.Houses) - 1; i >= 0; i-- {
		sb.WriteString(strconv.Itoa(b.Houses[i]))
		if i > 0 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
