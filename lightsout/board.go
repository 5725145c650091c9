// Package lightsout implements the lights-toggle board puzzle on top of the
// bestfirst engine: a rectangular grid of binary cells where a move flips a
// plus-shaped cluster, solved when every cell is off.
package lightsout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pdrpinto/bestfirst"
)

// MaxWidth is the widest supported board; each row packs into one uint64.
const MaxWidth = 64

var (
	ErrBadDimensions = errors.New("lightsout: invalid board dimensions")
	ErrBadRow        = errors.New("lightsout: row value exceeds board width")
)

// Board is an immutable rectangular grid of binary cells, one bit per cell
// and one uint64 per row. Bit x of row y is the cell at (x, y); a set bit
// means the cell is lit. Every transition returns a new board, so two boards
// never share row storage and value equality stays correct for
// deduplication.
type Board struct {
	width, height int
	rows          []uint64
}

// New returns an all-off board of the given dimensions.
func New(width, height int) (Board, error) {
	if width < 1 || width > MaxWidth || height < 1 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	return Board{width: width, height: height, rows: make([]uint64, height)}, nil
}

// FromRows builds a board from explicit row values. Every row must fit the
// width and exactly height rows must be given.
func FromRows(width, height int, rows []uint64) (Board, error) {
	board, err := New(width, height)
	if err != nil {
		return Board{}, err
	}
	if len(rows) != height {
		return Board{}, fmt.Errorf("%w: got %d rows, want %d", ErrBadDimensions, len(rows), height)
	}
	for y, row := range rows {
		if row&^board.rowMask() != 0 {
			return Board{}, fmt.Errorf("%w: row %d value %#x, width %d", ErrBadRow, y, row, width)
		}
	}
	board.rows = slices.Clone(rows)
	return board, nil
}

func (b Board) rowMask() uint64 {
	if b.width == MaxWidth {
		return ^uint64(0)
	}
	return 1<<b.width - 1
}

func (b Board) Width() int { return b.width }

func (b Board) Height() int { return b.height }

// Get reports whether the cell at (x, y) is lit.
func (b Board) Get(x, y int) bool {
	return b.rows[y]&(1<<x) != 0
}

// Rows returns a copy of the packed row values.
func (b Board) Rows() []uint64 {
	return slices.Clone(b.rows)
}

// Randomize returns a board with every row drawn from a PCG source seeded
// with seed, masked to the board's width. Identical seeds reproduce
// identical boards.
func (b Board) Randomize(seed uint64) Board {
	rng := rand.New(rand.NewPCG(seed, seed))
	rows := make([]uint64, b.height)
	for y := range rows {
		rows[y] = rng.Uint64() & b.rowMask()
	}
	return Board{width: b.width, height: b.height, rows: rows}
}

// Toggle flips the plus-shaped cluster centered at (x, y): the cell itself
// and each orthogonal neighbor that exists. An interior cell flips 5 cells,
// an edge cell 4, a corner cell 3. Toggle is its own inverse.
func (b Board) Toggle(x, y int) Board {
	cross := uint64(1) << x
	if x > 0 {
		cross |= 1 << (x - 1)
	}
	if x < b.width-1 {
		cross |= 1 << (x + 1)
	}

	rows := slices.Clone(b.rows)
	if y > 0 {
		rows[y-1] ^= 1 << x
	}
	rows[y] ^= cross
	if y < b.height-1 {
		rows[y+1] ^= 1 << x
	}
	return Board{width: b.width, height: b.height, rows: rows}
}

// Score counts the cells currently off. The board is solved when every cell
// is off, so higher means closer to solved.
func (b Board) Score() int {
	off := 0
	for _, row := range b.rows {
		off += b.width - bits.OnesCount64(row)
	}
	return off
}

// End reports whether every cell is off.
func (b Board) End() bool {
	return b.Score() == b.width*b.height
}

// MoveID returns the identifier labeling the toggle at (x, y). It is not
// stable across boards of different dimensions.
func (b Board) MoveID(x, y int) int {
	return x*b.width + y
}

// Moves enumerates accepted toggles, columns outermost. Each toggle is
// expected to flip 3 cells, one more when the column has neighbors on both
// sides and one more when the row does; a candidate whose score drops by
// exactly that count flipped every footprint cell from off to on and is
// discarded.
func (b Board) Moves() []bestfirst.Move[Board] {
	initialScore := b.Score()
	moves := make([]bestfirst.Move[Board], 0, b.width*b.height)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			next := b.Toggle(x, y)
			expected := 3
			if x > 0 && x < b.width-1 {
				expected++
			}
			if y > 0 && y < b.height-1 {
				expected++
			}
			if next.Score() == initialScore-expected {
				continue
			}
			moves = append(moves, bestfirst.Move[Board]{Next: next, ID: b.MoveID(x, y)})
		}
	}
	return moves
}

// Key packs the rows into a byte string for visited-set identity. Boards of
// equal dimensions are the same position exactly when their keys match.
func (b Board) Key() string {
	packed := make([]byte, 8*len(b.rows))
	for i, row := range b.rows {
		binary.LittleEndian.PutUint64(packed[i*8:], row)
	}
	return string(packed)
}

// Equal reports whether both boards have the same dimensions and cells.
func (b Board) Equal(other Board) bool {
	return b.width == other.width && b.height == other.height && slices.Equal(b.rows, other.rows)
}

// String renders the board two glyphs per cell, one line per row.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b.rows {
		for x := 0; x < b.width; x++ {
			if row&(1<<x) == 0 {
				sb.WriteString("░░")
			} else {
				sb.WriteString("██")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var _ bestfirst.State[Board] = Board{}
