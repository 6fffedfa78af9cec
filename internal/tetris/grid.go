package tetris

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

var Log *slog.Logger = slog.Default()

// maxOrderKey bounds row order keys; see nextOrderKey.
const maxOrderKey = 1000

/*
Grid is a 10-column board. Occupied rows live in an arena and are linked
bottom to top between the two sentinels; one cursor per column tracks the
highest row still occupied in that column. These rows are 'visible' from
the top of the stack and are the only rows a falling piece can collide
with.
*/
type Grid struct {
	rows    []rowRecord
	free    []rowHandle
	visible [NumColumns]rowHandle
	height  int
	order   int
	cleared int
}

func NewGrid() *Grid {
	g := &Grid{rows: make([]rowRecord, 2, 16)}
	g.rows[floorRow] = rowRecord{prev: noRow, next: ceilingRow, order: 0, linked: true}
	g.rows[ceilingRow] = rowRecord{prev: floorRow, next: noRow, order: math.MaxInt, linked: true}
	for c := range g.visible {
		g.visible[c] = floorRow
	}
	return g
}

// Height reports the number of occupied rows on the board.
func (g *Grid) Height() int { return g.height }

// LinesCleared reports how many rows have completed and been removed over
// the lifetime of the board.
func (g *Grid) LinesCleared() int { return g.cleared }

func (g *Grid) orderOf(h rowHandle) int { return g.rows[h].order }

// above reports whether row a sits strictly higher in the stack than row b.
func (g *Grid) above(a, b rowHandle) bool {
	return g.rows[a].order > g.rows[b].order
}

func (g *Grid) allocRow(order int) rowHandle {
	if n := len(g.free); n > 0 {
		h := g.free[n-1]
		g.free = g.free[:n-1]
		g.rows[h] = rowRecord{prev: noRow, next: noRow, order: order, empty: fullMask}
		return h
	}
	g.rows = append(g.rows, rowRecord{prev: noRow, next: noRow, order: order, empty: fullMask})
	return rowHandle(len(g.rows) - 1)
}

func (g *Grid) freeRow(h rowHandle) {
	g.rows[h] = rowRecord{prev: noRow, next: noRow}
	g.free = append(g.free, h)
}

// appendAbove links row h directly below the ceiling, making it the new top.
func (g *Grid) appendAbove(h rowHandle) {
	top := g.rows[ceilingRow].prev
	g.rows[h].prev = top
	g.rows[h].next = ceilingRow
	g.rows[top].next = h
	g.rows[ceilingRow].prev = h
	g.rows[h].linked = true
}

// unlink removes row h from the sequence. The removed row keeps its own
// prev/next handles so cursor repair can still walk down from its old spot.
func (g *Grid) unlink(h rowHandle) {
	if h == floorRow || h == ceilingRow {
		panic(AssertionError{"cannot unlink a sentinel row"})
	}
	r := g.rows[h]
	if !r.linked {
		panic(AssertionError{"cannot unlink a row that is not linked"})
	}
	g.rows[r.prev].next = r.next
	g.rows[r.next].prev = r.prev
	g.rows[h].linked = false
}

/*
nextOrderKey issues the next row order key, re-stamping all rows first if
the key would exceed maxOrderKey. Re-stamping works because rows are
created in monotonic order, so a forward walk assigning 1,2,3,...
reproduces the same relative ordering.
*/
func (g *Grid) nextOrderKey() int {
	if g.order+1 > maxOrderKey {
		n := 0
		for h := g.rows[floorRow].next; h != ceilingRow; h = g.rows[h].next {
			n++
			g.rows[h].order = n
		}
		g.order = n
		Log.Debug("rebased row order keys", slog.Int("rows", n))
	}
	g.order++
	return g.order
}

// nextOrMake returns the row directly above h, splicing in a fresh row when
// h is the current top. This is the only path that grows the stack.
func (g *Grid) nextOrMake(h rowHandle) rowHandle {
	if g.rows[h].next == ceilingRow {
		made := g.allocRow(g.nextOrderKey())
		g.appendAbove(made)
		g.height++
	}
	return g.rows[h].next
}

// getNextRows collects the n rows above start (starting at start itself
// when includeStart is set), creating rows past the top as needed.
func (g *Grid) getNextRows(start rowHandle, n int, includeStart bool) []rowHandle {
	rows := make([]rowHandle, 0, n)
	cur := start
	if includeStart {
		rows = append(rows, cur)
		n--
	}
	for range n {
		cur = g.nextOrMake(cur)
		rows = append(rows, cur)
	}
	return rows
}

/*
fillColumns occupies the given columns of row h, then either clears the row
if it completed or raises the cursor of every filled column that this row
now tops. Cursor updates can be skipped on clear because removeRow repairs
any cursor that pointed at the removed row.
*/
func (g *Grid) fillColumns(h rowHandle, columns []int) {
	for _, c := range columns {
		bit := uint16(1) << c
		if g.rows[h].empty&bit == 0 {
			panic(AssertionError{fmt.Sprintf("column %d already occupied", c)})
		}
		g.rows[h].empty &^= bit
	}
	if g.rows[h].complete() {
		g.removeRow(h)
		return
	}
	for _, c := range columns {
		if g.above(h, g.visible[c]) {
			g.visible[c] = h
		}
	}
}

/*
removeRow unlinks a completed row and repairs column cursors. Only cursors
that pointed at the removed row need fixing: each walks down from the
removed row's old position to the first row where its column is occupied,
or the floor. All other cursors reference rows untouched by this removal.
*/
func (g *Grid) removeRow(h rowHandle) {
	g.unlink(h)
	g.height--
	g.cleared++
	for c := range g.visible {
		if g.visible[c] != h {
			continue
		}
		bit := uint16(1) << c
		cur := g.rows[h].prev
		for cur != floorRow && g.rows[cur].empty&bit != 0 {
			cur = g.rows[cur].prev
		}
		g.visible[c] = cur
	}
	g.freeRow(h)
}

// pushRow appends a new top row with the given empty-column mask and points
// every column occupied in it at the new row. Used to rebuild a board from
// its serialized image.
func (g *Grid) pushRow(empty uint16) rowHandle {
	h := g.allocRow(g.nextOrderKey())
	g.appendAbove(h)
	g.height++
	g.rows[h].empty = empty
	for c := range NumColumns {
		if empty&(1<<c) == 0 {
			g.visible[c] = h
		}
	}
	return h
}

// Rows renders the board top to bottom, one string per occupied row, with
// 'o' for occupied cells and '-' for empty ones.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	for h := g.rows[ceilingRow].prev; h != floorRow; h = g.rows[h].prev {
		line := []byte("oooooooooo")
		for c := range NumColumns {
			if g.rows[h].empty&(1<<c) != 0 {
				line[c] = '-'
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}

// Dump is a debugging aid: the board top to bottom with row order keys.
func (g *Grid) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stack height = %d\n", g.height)
	for h := g.rows[ceilingRow].prev; h != floorRow; h = g.rows[h].prev {
		line := []byte("oooooooooo")
		for c := range NumColumns {
			if g.rows[h].empty&(1<<c) != 0 {
				line[c] = '-'
			}
		}
		fmt.Fprintf(&b, "%-3d|%s|\n", g.rows[h].order, line)
	}
	b.WriteString("   |0123456789|")
	return b.String()
}
