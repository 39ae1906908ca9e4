package core

const (
	// Cols is the number of grid columns.
	Cols = 3
	// Rows is the number of grid rows.
	Rows = 3
)

// Mark is the value held by a grid cell.
type Mark byte

const (
	Empty   Mark = ' '
	Player1 Mark = 'X'
	Player2 Mark = 'O'
)

// Other returns the opposing player's mark. Empty maps to Empty.
func (m Mark) Other() Mark {
	switch m {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (m Mark) String() string { return string(rune(m)) }

// Cell addresses one grid position.
type Cell struct {
	Col int
	Row int
}

// Line is three cells that win when they hold the same mark.
type Line [3]Cell

// Lines lists every winning line in scan order: rows, columns, the main
// diagonal, then the anti-diagonal.
var Lines = [8]Line{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Grid stores the board in row-major order.
type Grid [Rows][Cols]Mark

// NewGrid returns a grid with every cell empty.
func NewGrid() Grid {
	var g Grid
	g.Clear()
	return g
}

// At returns the mark at (col, row).
func (g *Grid) At(col, row int) Mark { return g[row][col] }

// Set writes m at (col, row).
func (g *Grid) Set(col, row int, m Mark) { g[row][col] = m }

// IsEmpty reports whether (col, row) holds no mark.
func (g *Grid) IsEmpty(col, row int) bool { return g[row][col] == Empty }

// Clear empties every cell.
func (g *Grid) Clear() {
	for row := range g {
		for col := range g[row] {
			g[row][col] = Empty
		}
	}
}

// Full reports whether no empty cell remains.
func (g *Grid) Full() bool {
	for row := range g {
		for col := range g[row] {
			if g[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Winner returns the mark and line of the first winning line in scan order.
func (g *Grid) Winner() (Mark, Line, bool) {
	for _, line := range Lines {
		a := g.At(line[0].Col, line[0].Row)
		if a == Empty {
			continue
		}
		if a == g.At(line[1].Col, line[1].Row) && a == g.At(line[2].Col, line[2].Row) {
			return a, line, true
		}
	}
	return Empty, Line{}, false
}

// CellAt maps a pointer position in logical pixels to a grid cell. ok is
// false when the position lies outside the grid.
func CellAt(x, y int) (cell Cell, ok bool) {
	if x < 0 || y < 0 {
		return Cell{}, false
	}
	col, row := x/CellWidth, y/CellHeight
	if col >= Cols || row >= Rows {
		return Cell{}, false
	}
	return Cell{Col: col, Row: row}, true
}
