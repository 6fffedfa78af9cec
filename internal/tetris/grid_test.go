package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// withOccupied builds an empty-column mask for a row occupied in exactly
// the given columns.
func withOccupied(columns ...int) uint16 {
	m := fullMask
	for _, c := range columns {
		m &^= 1 << c
	}
	return m
}

// buildGrid stacks rows bottom to top from their empty-column masks.
func buildGrid(masks ...uint16) (*Grid, []rowHandle) {
	g := NewGrid()
	handles := make([]rowHandle, len(masks))
	for i, mask := range masks {
		handles[i] = g.pushRow(mask)
	}
	return g, handles
}

// The fixture board, bottom to top:
//
//	--------oo
//	ooooooooo-
func fixtureGrid() (*Grid, []rowHandle) {
	return buildGrid(withOccupied(8, 9), withOccupied(0, 1, 2, 3, 4, 5, 6, 7, 8))
}

func TestFixtureCursors(t *testing.T) {
	g, rows := fixtureGrid()
	for c := range 9 {
		require.Equal(t, rows[1], g.visible[c], "column %d", c)
	}
	require.Equal(t, rows[0], g.visible[9])
	require.Equal(t, 2, g.Height())
}

func TestNextOrMakeReturnsExistingRow(t *testing.T) {
	g, rows := fixtureGrid()
	next := g.nextOrMake(floorRow)
	require.Equal(t, rows[0], next)
	require.Equal(t, 2, g.Height())
}

func TestNextOrMakeMakesNewRow(t *testing.T) {
	g, rows := fixtureGrid()
	order := g.order
	next := g.nextOrMake(rows[1])
	require.NotEqual(t, ceilingRow, next)
	require.Equal(t, order+1, g.orderOf(next))
	require.Equal(t, 3, g.Height())
}

func TestGetNextRowsExcludeStart(t *testing.T) {
	g, rows := fixtureGrid()

	next := g.getNextRows(floorRow, 2, false)
	require.Equal(t, rows, next)
	require.Equal(t, 2, g.Height())

	next = g.getNextRows(floorRow, 4, false)
	require.Len(t, next, 4)
	require.Equal(t, rows, next[:2])
	require.Equal(t, 4, g.Height())
	require.Equal(t, 3, g.orderOf(next[2]))
	require.Equal(t, 4, g.orderOf(next[3]))
}

func TestGetNextRowsIncludeStart(t *testing.T) {
	g, rows := fixtureGrid()

	next := g.getNextRows(rows[0], 2, true)
	require.Equal(t, rows, next)
	require.Equal(t, 2, g.Height())

	next = g.getNextRows(rows[0], 4, true)
	require.Len(t, next, 4)
	require.Equal(t, rows, next[:2])
	require.Equal(t, 4, g.Height())
}

func TestFillColumnsRaisesCursors(t *testing.T) {
	g := NewGrid()
	rows := g.getNextRows(floorRow, 1, false)
	g.fillColumns(rows[0], []int{0, 1})
	require.Equal(t, rows[0], g.visible[0])
	require.Equal(t, rows[0], g.visible[1])
	require.Equal(t, floorRow, g.visible[2])
}

func TestFillColumnsOccupiedCellPanics(t *testing.T) {
	g := NewGrid()
	rows := g.getNextRows(floorRow, 1, false)
	g.fillColumns(rows[0], []int{0})
	require.Panics(t, func() { g.fillColumns(rows[0], []int{0}) })
}

func TestRemoveRowRepairsCursors(t *testing.T) {
	g, rows := fixtureGrid()

	// complete the top row; cursors that pointed at it must fall back to
	// the bottom row where it is occupied (column 8) or the floor
	// (columns 0-7); column 9 never pointed at the removed row
	g.fillColumns(rows[1], []int{9})

	require.Equal(t, 1, g.Height())
	require.Equal(t, 1, g.LinesCleared())
	for c := range 8 {
		require.Equal(t, floorRow, g.visible[c], "column %d", c)
	}
	require.Equal(t, rows[0], g.visible[8])
	require.Equal(t, rows[0], g.visible[9])
}

func TestRemoveRowRepairWalksToFloor(t *testing.T) {
	g, rows := buildGrid(withOccupied(0, 1, 2, 3, 4, 5, 6, 7, 8))
	g.fillColumns(rows[0], []int{9})
	require.Equal(t, 0, g.Height())
	for c := range NumColumns {
		require.Equal(t, floorRow, g.visible[c], "column %d", c)
	}
}

func TestUnlinkSentinelPanics(t *testing.T) {
	g := NewGrid()
	require.Panics(t, func() { g.unlink(floorRow) })
	require.Panics(t, func() { g.unlink(ceilingRow) })
}

func TestUnlinkUnlinkedRowPanics(t *testing.T) {
	g, rows := fixtureGrid()
	g.unlink(rows[0])
	require.Panics(t, func() { g.unlink(rows[0]) })
}

func TestOrderKeyRebase(t *testing.T) {
	g, rows := fixtureGrid()

	// pretend the board has been running long enough to hit the key ceiling
	g.rows[rows[0]].order = maxOrderKey - 1
	g.rows[rows[1]].order = maxOrderKey
	g.order = maxOrderKey

	issued := g.nextOrderKey()

	require.Equal(t, 1, g.orderOf(rows[0]))
	require.Equal(t, 2, g.orderOf(rows[1]))
	require.Equal(t, 3, issued)

	// rebasing must not disturb anything but the numeric keys
	require.Equal(t, 2, g.Height())
	require.Equal(t, withOccupied(8, 9), g.rows[rows[0]].empty)
	require.True(t, g.above(rows[1], rows[0]))
}

func TestRowReuseAfterClear(t *testing.T) {
	g, rows := buildGrid(withOccupied(0, 1, 2, 3, 4, 5, 6, 7, 8))
	g.fillColumns(rows[0], []int{9})

	// the freed handle backs the next allocation
	next := g.getNextRows(floorRow, 1, false)
	require.Equal(t, rows[0], next[0])
	require.Equal(t, fullMask, g.rows[next[0]].empty)
	require.Equal(t, 1, g.Height())
}

func TestRowsRendersTopToBottom(t *testing.T) {
	g, _ := fixtureGrid()
	require.Equal(t, []string{
		"ooooooooo-",
		"--------oo",
	}, g.Rows())
}

func TestDump(t *testing.T) {
	g, _ := buildGrid(withOccupied(0, 1))
	want := "stack height = 1\n" +
		"1  |oo--------|\n" +
		"   |0123456789|"
	require.Equal(t, want, g.Dump())
}
