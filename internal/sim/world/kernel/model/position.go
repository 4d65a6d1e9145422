package model

// Position is an integer tile coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) ToArray() [2]int { return [2]int{p.X, p.Y} }
