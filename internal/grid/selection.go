package grid

import "sort"

// Cell identifica uma célula da grade.
type Cell struct {
	EmployeeID string
	Label      string
}

// ShiftSpan é um turno persistido projetado na grade de um dia.
type ShiftSpan struct {
	EmployeeID string
	Start      string
	End        string
}

// Occupancy marca as células cobertas por turnos persistidos.
// Células ocupadas não podem ser selecionadas.
type Occupancy map[Cell]struct{}

// NewOccupancy projeta os turnos na grade, incluindo turnos que
// atravessam a meia-noite.
func NewOccupancy(slots Slots, shifts []ShiftSpan) Occupancy {
	occ := make(Occupancy)
	for _, shift := range shifts {
		startMinutes, err := ParseClock(shift.Start)
		if err != nil {
			continue
		}
		duration, err := DurationMinutes(shift.Start, shift.End)
		if err != nil {
			continue
		}

		for _, label := range slots.labels {
			labelMinutes, _ := ParseClock(label)
			offset := (labelMinutes - startMinutes%minutesPerDay + minutesPerDay) % minutesPerDay
			if offset < duration {
				occ[Cell{EmployeeID: shift.EmployeeID, Label: label}] = struct{}{}
			}
		}
	}
	return occ
}

func (o Occupancy) Has(employeeID, label string) bool {
	if o == nil {
		return false
	}
	_, ok := o[Cell{EmployeeID: employeeID, Label: label}]
	return ok
}

// Selection é o estado transitório de células marcadas por funcionário.
// É imutável: toda operação retorna uma nova Selection.
type Selection struct {
	cells map[string]map[string]struct{}
}

func NewSelection() Selection {
	return Selection{cells: map[string]map[string]struct{}{}}
}

func (s Selection) Has(employeeID, label string) bool {
	_, ok := s.cells[employeeID][label]
	return ok
}

func (s Selection) Count(employeeID string) int {
	return len(s.cells[employeeID])
}

func (s Selection) IsEmpty() bool {
	return len(s.cells) == 0
}

// Employees retorna os funcionários com seleção, em ordem alfabética.
func (s Selection) Employees() []string {
	out := make([]string, 0, len(s.cells))
	for employeeID := range s.cells {
		out = append(out, employeeID)
	}
	sort.Strings(out)
	return out
}

// Labels retorna os rótulos selecionados do funcionário em ordem de grade.
func (s Selection) Labels(slots Slots, employeeID string) []string {
	set := s.cells[employeeID]
	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	return slots.Sort(labels)
}

// Toggle adiciona ou remove um rótulo. Células ocupadas ou fora da grade
// não são alteradas.
func (s Selection) Toggle(slots Slots, occ Occupancy, employeeID, label string) Selection {
	if !slots.Contains(label) || occ.Has(employeeID, label) {
		return s
	}

	set := s.copySet(employeeID)
	if _, ok := set[label]; ok {
		delete(set, label)
	} else {
		set[label] = struct{}{}
	}
	return s.with(employeeID, set)
}

// SetRange substitui a seleção do funcionário por todos os rótulos livres
// entre from e to. É recalculado a partir da âncora a cada extensão, então
// inverter a direção do arraste não deixa resíduos.
func (s Selection) SetRange(slots Slots, occ Occupancy, employeeID, from, to string) Selection {
	set := map[string]struct{}{}
	for _, label := range slots.Between(from, to) {
		if occ.Has(employeeID, label) {
			continue
		}
		set[label] = struct{}{}
	}
	return s.with(employeeID, set)
}

// AddRange une a seleção atual do funcionário com o intervalo from..to.
func (s Selection) AddRange(slots Slots, occ Occupancy, employeeID, from, to string) Selection {
	set := s.copySet(employeeID)
	for _, label := range slots.Between(from, to) {
		if occ.Has(employeeID, label) {
			continue
		}
		set[label] = struct{}{}
	}
	return s.with(employeeID, set)
}

// Clear remove a seleção de um funcionário.
func (s Selection) Clear(employeeID string) Selection {
	if _, ok := s.cells[employeeID]; !ok {
		return s
	}
	return s.with(employeeID, nil)
}

func (s Selection) ClearAll() Selection {
	return NewSelection()
}

func (s Selection) copySet(employeeID string) map[string]struct{} {
	current := s.cells[employeeID]
	set := make(map[string]struct{}, len(current)+1)
	for label := range current {
		set[label] = struct{}{}
	}
	return set
}

func (s Selection) with(employeeID string, set map[string]struct{}) Selection {
	cells := make(map[string]map[string]struct{}, len(s.cells)+1)
	for k, v := range s.cells {
		cells[k] = v
	}
	if len(set) == 0 {
		delete(cells, employeeID)
	} else {
		cells[employeeID] = set
	}
	return Selection{cells: cells}
}
