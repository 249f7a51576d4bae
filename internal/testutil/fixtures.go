package testutil

// Board configurations shared across packages. Callers get fresh copies so a test
// that mutates one cannot leak into another.

// ReferenceBoard is the canonical example game.
func ReferenceBoard() []int {
	return []int{0, 0, 1, 1, 3, 5, 0}
}

// ReferencePlan and ReferenceFinal are the greedy plan for ReferenceBoard and the
// board it leaves behind.
func ReferencePlan() []int {
	return []int{5, 1, 2, 1, 4, 1, 3, 1, 2, 1}
}

func ReferenceFinal() []int {
	return []int{10, 0, 0, 0, 0, 0, 0}
}

// EmptyBoard is a canonical-size board with no seeds at all.
func EmptyBoard() []int {
	return []int{0, 0, 0, 0, 0, 0, 0}
}

// StuckBoard has seeds but no house whose count matches its index.
func StuckBoard() []int {
	return []int{0, 2, 3, 4, 5, 6, 1}
}

// FuzzBoards enumerates every canonical board whose houses hold 0..maxSeeds seeds
// and whose store is empty.
func FuzzBoards(maxSeeds int) [][]int {
	boards := [][]int{{0}}
	for house := 1; house <= 6; house++ {
		var next [][]int
		for _, prefix := range boards {
			for seeds := 0; seeds <= maxSeeds; seeds++ {
				b := make([]int, len(prefix), len(prefix)+1)
				copy(b, prefix)
				next = append(next, append(b, seeds))
			}
		}
		boards = next
	}
	return boards
}
