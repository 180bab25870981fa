package layout

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Distribute returns the leading main-axis offset of each item given the
// items' final main sizes, the fixed spacing between neighbours and the
// leftover space to hand out. Negative leftover is treated as zero.
// Callers pass zero leftover when the offered maximum is unbounded.
func Distribute(justify Justify, sizes []float64, spacing, leftover float64) []float64 {
	n := len(sizes)
	offsets := make([]float64, n)
	if n == 0 {
		return offsets
	}
	leftover = max(0, leftover)

	start := justifyOffset(justify, leftover, n)
	gap := spacing + justifySpacing(justify, leftover, n)

	pos := start
	for i, s := range sizes {
		offsets[i] = pos
		pos += s + gap
	}

	// Pin the last item to the end for the spreading modes so accumulated
	// rounding does not leave a residual gap.
	if n > 1 && leftover > 0 && justify == JustifySpaceBetween {
		total := spacing * float64(n-1)
		for _, s := range sizes {
			total += s
		}
		offsets[n-1] = total + leftover - sizes[n-1]
	}
	return offsets
}

// justifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func justifyOffset(justify Justify, leftover float64, n int) float64 {
	switch justify {
	case JustifyEnd:
		return leftover
	case JustifyCenter:
		return leftover / 2
	case JustifySpaceAround:
		return leftover / float64(n*2)
	case JustifySpaceEvenly:
		return leftover / float64(n+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func justifySpacing(justify Justify, leftover float64, n int) float64 {
	switch justify {
	case JustifySpaceBetween:
		if n <= 1 {
			return 0
		}
		return leftover / float64(n-1)
	case JustifySpaceAround:
		return leftover / float64(n)
	case JustifySpaceEvenly:
		return leftover / float64(n+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// AlignOffset returns the offset for positioning an item on the cross axis.
func AlignOffset(align Align, crossSize, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}
