package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			assert.True(t, g.IsEmpty(col, row), "cell (%d,%d)", col, row)
		}
	}
	assert.False(t, g.Full())
	_, _, ok := g.Winner()
	assert.False(t, ok)
}

func TestGridWinnerEveryLine(t *testing.T) {
	for i, line := range Lines {
		for _, mark := range []Mark{Player1, Player2} {
			g := NewGrid()
			for _, c := range line {
				g.Set(c.Col, c.Row, mark)
			}

			got, gotLine, ok := g.Winner()
			require.True(t, ok, "line %d mark %s", i, mark)
			assert.Equal(t, mark, got)
			assert.Equal(t, line, gotLine)
		}
	}
}

func TestGridWinnerRequiresThreeEqual(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, Player1)
	g.Set(1, 0, Player1)
	g.Set(2, 0, Player2)

	_, _, ok := g.Winner()
	assert.False(t, ok)
}

func TestGridWinnerScanOrder(t *testing.T) {
	// Row 0 and column 0 both belong to X; the row comes first in scan order.
	g := NewGrid()
	for i := 0; i < 3; i++ {
		g.Set(i, 0, Player1)
		g.Set(0, i, Player1)
	}

	_, line, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, Lines[0], line)
}

func TestGridFull(t *testing.T) {
	g := NewGrid()
	marks := []Mark{Player1, Player2}
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			g.Set(col, row, marks[(row*Cols+col)%2])
		}
	}
	assert.True(t, g.Full())

	g.Set(1, 1, Empty)
	assert.False(t, g.Full())

	g.Clear()
	assert.Equal(t, NewGrid(), g)
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y int
		want Cell
		ok   bool
	}{
		{0, 0, Cell{0, 0}, true},
		{299, 299, Cell{0, 0}, true},
		{300, 0, Cell{1, 0}, true},
		{450, 650, Cell{1, 2}, true},
		{899, 899, Cell{2, 2}, true},
		{900, 10, Cell{}, false},
		{10, 900, Cell{}, false},
		{-1, 10, Cell{}, false},
		{10, -5, Cell{}, false},
	}
	for _, tc := range cases {
		got, ok := CellAt(tc.x, tc.y)
		assert.Equal(t, tc.ok, ok, "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.want, got, "(%d,%d)", tc.x, tc.y)
	}
}

func TestMarkOther(t *testing.T) {
	assert.Equal(t, Player2, Player1.Other())
	assert.Equal(t, Player1, Player2.Other())
	assert.Equal(t, Empty, Empty.Other())
	assert.Equal(t, "X", Player1.String())
	assert.Equal(t, "O", Player2.String())
}

func TestActionConstructors(t *testing.T) {
	assert.True(t, Action{}.IsNone())
	assert.Equal(t, ActionCreate, Create(nil).Kind)
	assert.Equal(t, ActionDestroy, Destroy().Kind)
	assert.Equal(t, ActionChange, Change(nil).Kind)
	assert.Equal(t, "change", ActionChange.String())
}
