package coordinate

type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Cell is a grid position: X is the column, Y the row, both 0-based.
type Cell = Point[int]
