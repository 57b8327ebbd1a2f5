package grid

// Layout descreve a geometria da grade: uma linha por funcionário e uma
// coluna por slot.
type Layout struct {
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
	Employees  []string
	Slots      Slots
}

// HitTable resolve coordenadas em células a partir do mesmo modelo usado
// para desenhar a grade.
type HitTable struct {
	layout Layout
	rows   map[string]int
}

func NewHitTable(layout Layout) HitTable {
	rows := make(map[string]int, len(layout.Employees))
	for i, employeeID := range layout.Employees {
		if _, exists := rows[employeeID]; !exists {
			rows[employeeID] = i
		}
	}
	return HitTable{layout: layout, rows: rows}
}

// Lookup retorna a célula sob o ponto (x, y).
func (h HitTable) Lookup(x, y float64) (Cell, bool) {
	l := h.layout
	if l.CellWidth <= 0 || l.CellHeight <= 0 || x < l.OriginX || y < l.OriginY {
		return Cell{}, false
	}

	col := int((x - l.OriginX) / l.CellWidth)
	row := int((y - l.OriginY) / l.CellHeight)
	if row >= len(l.Employees) || col >= l.Slots.Len() {
		return Cell{}, false
	}

	return Cell{EmployeeID: l.Employees[row], Label: l.Slots.At(col)}, true
}

// Rect retorna o retângulo (x, y, largura, altura) da célula.
func (h HitTable) Rect(cell Cell) (x, y, w, hgt float64, ok bool) {
	row, okRow := h.rows[cell.EmployeeID]
	col, okCol := h.layout.Slots.Index(cell.Label)
	if !okRow || !okCol {
		return 0, 0, 0, 0, false
	}

	l := h.layout
	return l.OriginX + float64(col)*l.CellWidth, l.OriginY + float64(row)*l.CellHeight, l.CellWidth, l.CellHeight, true
}
