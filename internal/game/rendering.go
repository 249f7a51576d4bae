package game

import (
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/core"
)

// This file contains the board rendering used by the example driver.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"
)

// String renders the board farthest house first and store last, e.g. [0, 5, 3, 1, 1, 0, 0].
func (e *Engine) String() string {
	return e.board.String()
}

// Board returns a copy of the current seed counts, store first.
func (e *Engine) Board() []int {
	return e.board.Snapshot()
}

// Render draws the board as a two-row table, farthest house on the left and the
// store on the right. With color enabled the legal houses are green, the house
// ChooseMove would pick is yellow and empty houses are gray.
func (e *Engine) Render(color bool) string {
	b := e.board
	width := 3
	for _, seeds := range b.Houses {
		if w := len(strconv.Itoa(seeds)) + 1; w > width {
			width = w
		}
	}
	next := e.ChooseMove()

	var header, seeds strings.Builder
	header.WriteString("house ")
	seeds.WriteString("seeds ")
	for house := b.Len() - 1; house >= 1; house-- {
		header.WriteString(core.IntToStringFixedWidth(house, width))

		cell := core.IntToStringFixedWidth(b.NumSeeds(house), width)
		if color {
			cell = colorize(cell, houseColor(b, house, next))
		}
		seeds.WriteString(cell)
	}
	header.WriteString(" | store")
	seeds.WriteString(" | ")
	seeds.WriteString(core.IntToStringFixedWidth(b.NumSeeds(core.StoreIdx), 5))

	return header.String() + "\n" + seeds.String() + "\n"
}

func houseColor(b *core.Board, house, next int) string {
	switch {
	case house == next:
		return ColorYellow
	case b.IsLegalMove(house):
		return ColorGreen
	case b.NumSeeds(house) == 0:
		return ColorGray
	}
	return ""
}

func colorize(s, color string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset
}
