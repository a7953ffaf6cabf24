// Package shape provides the binary matrices that describe piece shapes.
package shape

// Matrix is a 2-D binary grid. Matrix[r][c] is true when the cell at row r,
// column c is filled. All rows have the same length.
type Matrix [][]bool

// FromInts builds a Matrix from a grid of 0/1 values (non-zero is filled).
func FromInts(rows [][]int) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c, v := range row {
			m[r][c] = v != 0
		}
	}
	return m
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Each calls fn for every filled cell with its column and row offset.
func (m Matrix) Each(fn func(c, r int)) {
	for r, row := range m {
		for c, filled := range row {
			if filled {
				fn(c, r)
			}
		}
	}
}

// Count returns the number of filled cells.
func (m Matrix) Count() int {
	n := 0
	m.Each(func(_, _ int) { n++ })
	return n
}

// Equal reports whether two matrices have the same dimensions and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r := range m {
		out[r] = append([]bool(nil), m[r]...)
	}
	return out
}

// Rotate returns the matrix turned 90 degrees clockwise.
// The receiver is not modified: out[c][h-1-r] = m[r][c].
func (m Matrix) Rotate() Matrix {
	h, w := m.Height(), m.Width()
	out := make(Matrix, w)
	for c := range out {
		out[c] = make([]bool, h)
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			out[c][h-1-r] = m[r][c]
		}
	}
	return out
}

// String renders the matrix using '#' for filled and '.' for empty cells,
// one line per row.
func (m Matrix) String() string {
	buf := make([]byte, 0, m.Height()*(m.Width()+1))
	for r, row := range m {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for _, filled := range row {
			if filled {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
