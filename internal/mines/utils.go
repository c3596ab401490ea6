package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

const (
	MinWidth  = 1
	MaxWidth  = 26
	MinHeight = 1
	MaxHeight = 30
	MinMines  = 0
	MaxMines  = MaxWidth * MaxHeight
)

// Columns names the board columns; column x is Columns[x].
const Columns = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// neighbours lists the 8-neighbourhood offsets in a fixed order.
var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	} else {
		return valueIfFalse
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
