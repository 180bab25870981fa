package termhost

import (
	"image"
	"strings"
)

// Buffer is a double-buffered grid of cells.
// Paint writes into the back buffer; Flush diffs it against the front and swaps.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// CellChange is a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a buffer of the given dimensions filled with blanks.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{
		front:  make([]Cell, width*height),
		back:   make([]Cell, width*height),
		width:  width,
		height: height,
	}
	for i := range b.front {
		b.front[i] = blank
		b.back[i] = blank
	}
	return b
}

// Size returns the buffer dimensions in cells.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Bounds returns the buffer as a rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Cell returns the back-buffer cell at (x, y), or a blank outside the grid.
func (b *Buffer) Cell(x, y int) Cell {
	if !image.Pt(x, y).In(b.Bounds()) {
		return blank
	}
	return b.back[y*b.width+x]
}

// SetCell writes c at (x, y). Writes outside the grid are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if !image.Pt(x, y).In(b.Bounds()) {
		return
	}
	b.back[y*b.width+x] = c
}

// SetString writes s starting at (x, y), clipped to clip. It returns the
// number of columns consumed.
func (b *Buffer) SetString(x, y int, s string, style Style, clip image.Rectangle) int {
	clip = clip.Intersect(b.Bounds())
	n := 0
	for _, r := range s {
		if pt := image.Pt(x+n, y); pt.In(clip) {
			b.back[pt.Y*b.width+pt.X] = Cell{Rune: r, Style: style}
		}
		n++
	}
	return n
}

// Fill sets every cell of rect to r with style.
func (b *Buffer) Fill(rect image.Rectangle, r rune, style Style) {
	rect = rect.Intersect(b.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			b.back[y*b.width+x] = Cell{Rune: r, Style: style}
		}
	}
}

// Clear blanks the back buffer.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blank
	}
}

// Diff returns the cells that changed since the last Swap, in row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			if !b.back[idx].Equal(b.front[idx]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[idx]})
			}
		}
	}
	return changes
}

// Swap makes the back buffer the displayed state.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate marks every cell as changed so the next Diff repaints the grid.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{}
	}
}

// Resize changes the dimensions, discarding content. The next Diff reports
// every non-blank cell.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	*b = *NewBuffer(width, height)
}

// String returns the back buffer as text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.back[y*b.width+x].Rune)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
