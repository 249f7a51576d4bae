package core

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrStoreNotPlayable = errors.New("store is not a playable house")
	ErrNegativeSeeds    = errors.New("negative seed count")
	ErrEmptyBoard       = errors.New("board has no store")
)

// MoveError describes a rejected move together with the board state that caused it.
type MoveError struct {
	House int
	Seeds int
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("house %d (%d seeds): %v", e.House, e.Seeds, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// NewMoveError creates a MoveError
func NewMoveError(house, seeds int, err error) *MoveError {
	return &MoveError{House: house, Seeds: seeds, Err: err}
}
