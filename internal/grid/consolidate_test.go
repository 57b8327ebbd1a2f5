package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolidate(t *testing.T) {
	dayGrid := NewSlots(6, 24)
	nightGrid := NewSlots(20, 26)
	fullDay := NewSlots(0, 24)

	tests := []struct {
		name     string
		slots    Slots
		labels   []string
		expected []Range
	}{
		{
			name:     "selecao vazia",
			slots:    dayGrid,
			labels:   nil,
			expected: []Range{},
		},
		{
			name:     "tres rotulos contiguos",
			slots:    dayGrid,
			labels:   []string{"09:00", "09:15", "09:30"},
			expected: []Range{{Start: "09:00", End: "09:45"}},
		},
		{
			name:   "com intervalo gera dois turnos",
			slots:  dayGrid,
			labels: []string{"09:00", "09:15", "10:00"},
			expected: []Range{
				{Start: "09:00", End: "09:30"},
				{Start: "10:00", End: "10:15"},
			},
		},
		{
			name:     "ordem de entrada nao importa",
			slots:    dayGrid,
			labels:   []string{"09:30", "09:00", "09:15"},
			expected: []Range{{Start: "09:00", End: "09:45"}},
		},
		{
			name:     "rotulo unico",
			slots:    dayGrid,
			labels:   []string{"12:00"},
			expected: []Range{{Start: "12:00", End: "12:15"}},
		},
		{
			name:     "grade que atravessa a meia-noite",
			slots:    nightGrid,
			labels:   []string{"23:30", "23:45", "00:00", "00:15"},
			expected: []Range{{Start: "23:30", End: "00:30"}},
		},
		{
			name:     "grade do dia inteiro com 23:45 e 00:00",
			slots:    fullDay,
			labels:   []string{"23:45", "00:00"},
			expected: []Range{{Start: "23:45", End: "00:15"}},
		},
		{
			name:   "virada com outros turnos no meio do dia",
			slots:  fullDay,
			labels: []string{"00:00", "00:15", "12:00", "23:30", "23:45"},
			expected: []Range{
				{Start: "12:00", End: "12:15"},
				{Start: "23:30", End: "00:30"},
			},
		},
		{
			name:     "ultimo rotulo da grade sem sucessor",
			slots:    fullDay,
			labels:   []string{"23:45"},
			expected: []Range{{Start: "23:45", End: "00:00"}},
		},
		{
			name:     "ultimo rotulo da grade diurna",
			slots:    dayGrid,
			labels:   []string{"23:45", "00:00"},
			expected: []Range{{Start: "23:45", End: "00:15"}},
		},
		{
			name:     "apenas rotulos apos a meia-noite da grade",
			slots:    nightGrid,
			labels:   []string{"00:30", "00:45"},
			expected: []Range{{Start: "00:30", End: "01:00", DayOffset: 1}},
		},
		{
			name:   "dia inteiro selecionado",
			slots:  fullDay,
			labels: fullDay.Labels(),
			expected: []Range{
				{Start: "00:00", End: "12:00"},
				{Start: "12:00", End: "00:00"},
			},
		},
		{
			name:   "dia inteiro numa grade que atravessa a meia-noite",
			slots:  NewSlots(6, 30),
			labels: NewSlots(6, 30).Labels(),
			expected: []Range{
				{Start: "06:00", End: "18:00"},
				{Start: "18:00", End: "06:00"},
			},
		},
		{
			name:     "rotulos fora da grade sao ignorados",
			slots:    dayGrid,
			labels:   []string{"03:00", "09:00", "09:07"},
			expected: []Range{{Start: "09:00", End: "09:15"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Consolidate(tt.slots, tt.labels))
		})
	}
}

func TestConsolidate_SemSobreposicao(t *testing.T) {
	slots := NewSlots(0, 24)
	labels := []string{}
	for i, label := range slots.Labels() {
		if i%3 != 0 {
			labels = append(labels, label)
		}
	}

	ranges := Consolidate(slots, labels)
	for i := 1; i < len(ranges); i++ {
		prevFrom, prevTo, err := ShiftBounds("2024-01-15", ranges[i-1].Start, ranges[i-1].End)
		assert.NoError(t, err)
		from, _, err := ShiftBounds("2024-01-15", ranges[i].Start, ranges[i].End)
		assert.NoError(t, err)

		assert.True(t, prevFrom.Before(from))
		assert.False(t, prevTo.After(from), "turnos %v e %v se sobrepõem", ranges[i-1], ranges[i])
	}
}

func TestConsolidateAll_RespeitaOrdemDosFuncionarios(t *testing.T) {
	slots := NewSlots(6, 24)
	sel := NewSelection().
		AddRange(slots, nil, "ana", "09:00", "09:15").
		AddRange(slots, nil, "bruno", "14:00", "14:00").
		Toggle(slots, nil, "ana", "11:00").
		Toggle(slots, nil, "carla", "07:00")

	ranges := ConsolidateAll(slots, sel, []string{"bruno", "ana"})

	assert.Equal(t, []EmployeeRange{
		{EmployeeID: "bruno", Range: Range{Start: "14:00", End: "14:15"}},
		{EmployeeID: "ana", Range: Range{Start: "09:00", End: "09:30"}},
		{EmployeeID: "ana", Range: Range{Start: "11:00", End: "11:15"}},
		{EmployeeID: "carla", Range: Range{Start: "07:00", End: "07:15"}},
	}, ranges)
}

func TestConsolidate_NenhumTurnoDeDuracaoZero(t *testing.T) {
	for _, slots := range []Slots{NewSlots(0, 24), NewSlots(6, 30), NewSlots(20, 26)} {
		for _, r := range Consolidate(slots, slots.Labels()) {
			assert.NotEqual(t, r.Start, r.End, "grade %d-%d", slots.StartHour(), slots.EndHour())
		}
	}
}

func TestShiftDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", ShiftDate("2024-01-15", 0))
	assert.Equal(t, "2024-01-16", ShiftDate("2024-01-15", 1))
	assert.Equal(t, "2024-02-01", ShiftDate("2024-01-31", 1))
	assert.Equal(t, "15/01/2024", ShiftDate("15/01/2024", 1))
}
