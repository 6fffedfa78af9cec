package tetris

// NumColumns is the fixed board width.
const NumColumns = 10

// fullMask has one bit per column, i.e. a row with every column empty.
const fullMask uint16 = 1<<NumColumns - 1

// rowHandle is a stable index into the grid's row arena. Handles survive
// arena growth, unlike pointers into the backing slice.
type rowHandle int32

const (
	floorRow   rowHandle = 0 // bottom sentinel
	ceilingRow rowHandle = 1 // top sentinel
	noRow      rowHandle = -1
)

/*
A rowRecord holds which columns of one row are still empty, stored as a
bitmask (bit set = column empty) under the assumption that a tetris board
is usually dense. Rows also carry a monotonic order key, as new rows are
only ever inserted at the top of the board.
*/
type rowRecord struct {
	prev, next rowHandle
	order      int
	empty      uint16
	linked     bool
}

func (r rowRecord) complete() bool {
	return r.empty == 0
}
