package chess

// Mask is a rows×columns grid of booleans marking the squares a piece can
// reach. Positions outside the grid read as false and are ignored on Set.
type Mask struct {
	rows    int
	columns int
	cells   []bool
}

// NewMask creates an all-false mask matching the board's dimensions.
func NewMask(b *Board) Mask {
	return Mask{
		rows:    b.rows,
		columns: b.columns,
		cells:   make([]bool, b.rows*b.columns),
	}
}

func (m Mask) index(p Position) (int, bool) {
	if p.Row < 0 || p.Row >= m.rows || p.Column < 0 || p.Column >= m.columns {
		return 0, false
	}
	return p.Row*m.columns + p.Column, true
}

// Get reports whether p is marked.
func (m Mask) Get(p Position) bool {
	i, ok := m.index(p)
	return ok && m.cells[i]
}

// Set marks p.
func (m Mask) Set(p Position) {
	if i, ok := m.index(p); ok {
		m.cells[i] = true
	}
}

// Any reports whether at least one square is marked.
func (m Mask) Any() bool {
	for _, marked := range m.cells {
		if marked {
			return true
		}
	}
	return false
}

// Count returns the number of marked squares.
func (m Mask) Count() int {
	n := 0
	for _, marked := range m.cells {
		if marked {
			n++
		}
	}
	return n
}

// Squares returns the marked positions in row-major order.
func (m Mask) Squares() []Position {
	var squares []Position
	for i, marked := range m.cells {
		if marked {
			squares = append(squares, Position{Row: i / m.columns, Column: i % m.columns})
		}
	}
	return squares
}
