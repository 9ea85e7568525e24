package entity

// PlayerNumber returns the 1-based number shown to users for a piece, or 0 for an empty cell.
func PlayerNumber(mark Cell) int {
	switch mark {
	case PlayerA:
		return 1
	case PlayerB:
		return 2
	default:
		return 0
	}
}

// Opponent returns the other player's piece.
func Opponent(mark Cell) Cell {
	if mark == PlayerA {
		return PlayerB
	}
	return PlayerA
}
