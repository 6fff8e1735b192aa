package layout

// Direction is the axis along which Split divides an area.
type Direction int

const (
	// Vertical stacks chunks top to bottom.
	Vertical Direction = iota
	// Horizontal places chunks left to right.
	Horizontal
)

type constraintKind uint8

const (
	kindLength constraintKind = iota
	kindPercentage
	kindMin
)

// Constraint sizes one chunk of a Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length is a chunk of exactly n cells (or whatever is left, if less).
func Length(n int) Constraint {
	return Constraint{kind: kindLength, value: max(n, 0)}
}

// Percentage is a chunk of p percent of the split axis.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: min(max(p, 0), 100)}
}

// Min is a chunk of at least n cells that also takes a share of any space
// left over after the fixed chunks are placed.
func Min(n int) Constraint {
	return Constraint{kind: kindMin, value: max(n, 0)}
}

// Split divides area, inset by margin on every side, into one chunk per
// constraint. Length and Percentage chunks are sized in order; Min chunks
// reserve their minimum and then share the remainder evenly. A chunk that does
// not fit is cut to the space left, so chunks never exceed the inset area.
func Split(area Rect, dir Direction, margin int, constraints ...Constraint) []Rect {
	inner := area.Inset(EdgeAll(margin))
	total := inner.Height
	if dir == Horizontal {
		total = inner.Width
	}

	sizes := make([]int, len(constraints))
	remaining := total
	flexible := 0
	for i, c := range constraints {
		want := c.value
		switch c.kind {
		case kindPercentage:
			want = total * c.value / 100
		case kindMin:
			flexible++
		}
		want = min(want, remaining)
		sizes[i] = want
		remaining -= want
	}

	if flexible > 0 && remaining > 0 {
		share, extra := remaining/flexible, remaining%flexible
		for i, c := range constraints {
			if c.kind != kindMin {
				continue
			}
			sizes[i] += share
			if extra > 0 {
				sizes[i]++
				extra--
			}
		}
	}

	chunks := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			chunks[i] = Rect{X: inner.X + offset, Y: inner.Y, Width: size, Height: inner.Height}
		} else {
			chunks[i] = Rect{X: inner.X, Y: inner.Y + offset, Width: inner.Width, Height: size}
		}
		offset += size
	}
	return chunks
}
