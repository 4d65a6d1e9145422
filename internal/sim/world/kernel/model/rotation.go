package model

import (
	"fmt"
	"math"
)

// Rotation is the facing of an oriented structure.
type Rotation uint8

const (
	Left Rotation = iota
	Top
	Right
	Bottom
)

var rotationNames = [...]string{"Left", "Top", "Right", "Bottom"}

func (r Rotation) String() string {
	if int(r) < len(rotationNames) {
		return rotationNames[r]
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Delta is the unit tile step in the facing direction.
func (r Rotation) Delta() (dx, dy int) {
	switch r {
	case Left:
		return -1, 0
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	default:
		return 0, 1
	}
}

// Inverse is the unit tile step opposite to the facing direction.
func (r Rotation) Inverse() (dx, dy int) {
	dx, dy = r.Delta()
	return -dx, -dy
}

// Next cycles Left -> Top -> Right -> Bottom -> Left.
func (r Rotation) Next() Rotation {
	return (r + 1) % 4
}

// QuarterTurns is the clockwise quarter-turn count from Right.
func (r Rotation) QuarterTurns() int {
	switch r {
	case Left:
		return 2
	case Top:
		return 3
	case Right:
		return 0
	default:
		return 1
	}
}

func (r Rotation) Degrees() int { return r.QuarterTurns() * 90 }

func (r Rotation) Radians() float64 {
	return float64(r.Degrees()) * math.Pi / 180
}

func (r Rotation) MarshalText() ([]byte, error) {
	if int(r) >= len(rotationNames) {
		return nil, fmt.Errorf("invalid rotation %d", uint8(r))
	}
	return []byte(rotationNames[r]), nil
}

func (r *Rotation) UnmarshalText(b []byte) error {
	v, err := ParseRotation(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func ParseRotation(s string) (Rotation, error) {
	for i, n := range rotationNames {
		if n == s {
			return Rotation(i), nil
		}
	}
	return Left, fmt.Errorf("unknown rotation %q", s)
}
