package board

import (
	"fmt"
	"strings"
)

type Point struct {
	X int `schema:"x" json:"x"`
	Y int `schema:"y" json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders points row-major (top to bottom, then left to right).
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Board is a player-visible snapshot of a minesweeper grid. The solver
// treats it as read-only; mutation is only for whoever constructs it.
type Board struct {
	width, height int
	cells         []CellContents
}

func New(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid board dimensions %dx%d", width, height)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellContents, width*height),
	}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) InBounds(p Point) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

func (b *Board) At(p Point) CellContents {
	return b.cells[p.Y*b.width+p.X]
}

func (b *Board) Set(p Point, c CellContents) {
	b.cells[p.Y*b.width+p.X] = c
}

// Points lists every coordinate in row-major order.
func (b *Board) Points() []Point {
	ps := make([]Point, 0, len(b.cells))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			ps = append(ps, Point{x, y})
		}
	}
	return ps
}

// Neighbours lists the up-to-8 adjacent coordinates, clipped at edges,
// in row-major order.
func (b *Board) Neighbours(p Point) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Point{p.X + dx, p.Y + dy}
			if b.InBounds(q) {
				ns = append(ns, q)
			}
		}
	}
	return ns
}

func (b *Board) UnclickedCount() (count int) {
	for _, c := range b.cells {
		if c.Kind == KindUnclicked {
			count++
		}
	}
	return
}

// FlaggedMines sums the mine multiplicities of all flag cells.
func (b *Board) FlaggedMines() (count int) {
	for _, c := range b.cells {
		if c.Kind == KindFlag {
			count += c.N
		}
	}
	return
}

// Parse reads a board from its text form: one line per row, cells
// whitespace-separated, using the same tokens String produces
// ("#" unclicked, "3" number, "F1" flag, "M1" mine, "!1" hit mine,
// "X1" wrong flag).
func Parse(s string) (*Board, error) {
	var rows [][]CellContents
	width := -1
	for i, line := range strings.Split(s, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if width == -1 {
			width = len(tokens)
		} else if len(tokens) != width {
			return nil, fmt.Errorf(
				"ragged board: row %d has %d cells, want %d",
				i, len(tokens), width,
			)
		}
		row := make([]CellContents, 0, width)
		for _, token := range tokens {
			c, err := parseCell(token)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	b, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, c := range row {
			b.Set(Point{x, y}, c)
		}
	}
	return b, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(Point{x, y}).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
