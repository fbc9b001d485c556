package board

import (
	"fmt"
	"strconv"
)

type CellKind int8

const (
	KindUnclicked CellKind = iota
	KindNumber
	KindFlag
	KindMine
	KindHitMine
	KindWrongFlag
)

// CellContents is what a single cell shows to the player. N carries the
// displayed number for KindNumber and the mine/flag multiplicity for the
// flag and mine kinds (always 1 unless the game allows multiple mines per
// cell).
type CellContents struct {
	Kind CellKind
	N    int
}

func Unclicked() CellContents {
	return CellContents{Kind: KindUnclicked}
}

func Num(n int) CellContents {
	return CellContents{Kind: KindNumber, N: n}
}

func Flag(k int) CellContents {
	return CellContents{Kind: KindFlag, N: k}
}

func Mine(k int) CellContents {
	return CellContents{Kind: KindMine, N: k}
}

func HitMine(k int) CellContents {
	return CellContents{Kind: KindHitMine, N: k}
}

func WrongFlag(k int) CellContents {
	return CellContents{Kind: KindWrongFlag, N: k}
}

func (c CellContents) String() string {
	switch c.Kind {
	case KindUnclicked:
		return "#"
	case KindNumber:
		return strconv.Itoa(c.N)
	case KindFlag:
		return fmt.Sprintf("F%d", c.N)
	case KindMine:
		return fmt.Sprintf("M%d", c.N)
	case KindHitMine:
		return fmt.Sprintf("!%d", c.N)
	case KindWrongFlag:
		return fmt.Sprintf("X%d", c.N)
	default:
		return "?"
	}
}

func parseCell(token string) (CellContents, error) {
	if token == "" {
		return CellContents{}, fmt.Errorf("empty cell token")
	}
	if token == "#" {
		return Unclicked(), nil
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 {
			return CellContents{}, fmt.Errorf("negative cell number %q", token)
		}
		return Num(n), nil
	}
	k, err := strconv.Atoi(token[1:])
	if err != nil || k < 1 {
		return CellContents{}, fmt.Errorf("invalid cell token %q", token)
	}
	switch token[0] {
	case 'F':
		return Flag(k), nil
	case 'M':
		return Mine(k), nil
	case '!':
		return HitMine(k), nil
	case 'X':
		return WrongFlag(k), nil
	default:
		return CellContents{}, fmt.Errorf("invalid cell token %q", token)
	}
}
