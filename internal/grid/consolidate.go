package grid

// Range é um turno consolidado [Start, End). End <= Start indica que o
// turno atravessa a meia-noite.
// DayOffset é o número de dias a somar à data da grade para obter a data
// do turno.
type Range struct {
	Start     string `json:"startTime"`
	End       string `json:"endTime"`
	DayOffset int    `json:"dayOffset,omitempty"`
}

// EmployeeRange associa um intervalo consolidado ao funcionário.
type EmployeeRange struct {
	EmployeeID string `json:"employeeId"`
	Range
}

// Consolidate agrupa rótulos contíguos em intervalos mínimos.
// Rótulos fora da grade são ignorados. A passagem 23:45 -> 00:00 é sempre
// contígua, inclusive quando a grade começa em 00:00 e a seleção contém o
// primeiro e o último slot do dia. Uma seleção do dia inteiro vira dois
// turnos de 12h.
func Consolidate(slots Slots, labels []string) []Range {
	sorted := slots.Sort(labels)
	if len(sorted) == 0 {
		return []Range{}
	}

	runs := [][]string{{sorted[0]}}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		prevIdx, _ := slots.Index(prev)
		curIdx, _ := slots.Index(cur)

		if curIdx-prevIdx == 1 || (prev == DayLastLabel && cur == DayFirstLabel) {
			runs[len(runs)-1] = append(runs[len(runs)-1], cur)
			continue
		}
		runs = append(runs, []string{cur})
	}

	if len(runs) > 1 {
		first, last := runs[0], runs[len(runs)-1]
		if first[0] == DayFirstLabel && last[len(last)-1] == DayLastLabel {
			merged := append(append([]string{}, last...), first...)
			runs = append(runs[1:len(runs)-1], merged)
		}
	}

	ranges := make([]Range, 0, len(runs))
	for _, run := range splitFullDay(runs) {
		ranges = append(ranges, Range{
			Start:     run[0],
			End:       endAfter(slots, run[len(run)-1]),
			DayOffset: slots.DayOffset(run[0]),
		})
	}
	return ranges
}

// splitFullDay divide em dois turnos de 12h a sequência que cobre as 24h,
// que teria início igual ao fim.
func splitFullDay(runs [][]string) [][]string {
	slotsPerDay := minutesPerDay / SlotMinutes
	out := make([][]string, 0, len(runs)+1)
	for _, run := range runs {
		if len(run) < slotsPerDay {
			out = append(out, run)
			continue
		}
		half := slotsPerDay / 2
		out = append(out, run[:half], run[half:])
	}
	return out
}

// ConsolidateAll consolida a seleção de todos os funcionários. A saída segue
// order e, em seguida, os demais funcionários em ordem alfabética.
func ConsolidateAll(slots Slots, selection Selection, order []string) []EmployeeRange {
	out := make([]EmployeeRange, 0)
	visited := make(map[string]struct{}, len(order))

	appendEmployee := func(employeeID string) {
		if _, ok := visited[employeeID]; ok {
			return
		}
		visited[employeeID] = struct{}{}
		for _, r := range Consolidate(slots, selection.Labels(slots, employeeID)) {
			out = append(out, EmployeeRange{EmployeeID: employeeID, Range: r})
		}
	}

	for _, employeeID := range order {
		appendEmployee(employeeID)
	}
	for _, employeeID := range selection.Employees() {
		appendEmployee(employeeID)
	}
	return out
}

// endAfter retorna o rótulo seguinte na grade. No último slot da grade,
// usa o sucessor aritmético para não gerar turno de duração zero.
func endAfter(slots Slots, label string) string {
	if next, ok := slots.Next(label); ok {
		return next
	}
	end, err := AddMinutes(label, SlotMinutes)
	if err != nil {
		return label
	}
	return end
}
