package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots_PropriedadesParaTodosOsIntervalos(t *testing.T) {
	for start := 0; start <= 23; start++ {
		for end := start + 1; end <= MaxEndHour; end++ {
			slots := NewSlots(start, end)
			labels := slots.Labels()
			require.NotEmpty(t, labels)

			assert.Equal(t, FormatClock(start*60), labels[0], "start=%d end=%d", start, end)

			seen := map[string]bool{}
			prev := -1
			for i, label := range labels {
				assert.False(t, seen[label], "rótulo duplicado %s (start=%d end=%d)", label, start, end)
				seen[label] = true

				minutes, err := ParseClock(label)
				require.NoError(t, err)
				absolute := start*60 + i*SlotMinutes
				assert.Equal(t, absolute%minutesPerDay, minutes)
				assert.Greater(t, absolute, prev)
				prev = absolute
			}
		}
	}
}

func TestGenerateTimeSlots_AtravessaMeiaNoite(t *testing.T) {
	labels := GenerateTimeSlots(20, 26)

	assert.Len(t, labels, 6*4+1)
	assert.Equal(t, "20:00", labels[0])
	assert.Equal(t, "23:45", labels[15])
	assert.Equal(t, "00:00", labels[16])
	assert.Equal(t, "02:00", labels[len(labels)-1])
}

func TestGenerateTimeSlots_IncluiHoraFinal(t *testing.T) {
	labels := GenerateTimeSlots(9, 10)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45", "10:00"}, labels)
}

func TestGenerateTimeSlots_MaisDe24HorasDescartaRepetidos(t *testing.T) {
	labels := GenerateTimeSlots(8, 34)

	assert.Len(t, labels, 96)
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "07:45", labels[len(labels)-1])
}

func TestNewSlots_HorasForaDoDominioUsamPadrao(t *testing.T) {
	tests := []struct {
		name      string
		startHour int
		endHour   int
	}{
		{name: "inicio negativo", startHour: -1, endHour: 10},
		{name: "inicio maior que 23", startHour: 24, endHour: 30},
		{name: "fim maior que 47", startHour: 8, endHour: 48},
		{name: "fim antes do inicio", startHour: 10, endHour: 9},
		{name: "fim igual ao inicio", startHour: 10, endHour: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := NewSlots(tt.startHour, tt.endHour)
			assert.Equal(t, DefaultStartHour, slots.StartHour())
			assert.Equal(t, DefaultEndHour, slots.EndHour())
			assert.Equal(t, "06:00", slots.First())
		})
	}
}

func TestSlots_NavegacaoEOrdenacao(t *testing.T) {
	slots := NewSlots(22, 26)

	next, ok := slots.Next("23:45")
	assert.True(t, ok)
	assert.Equal(t, "00:00", next)

	_, ok = slots.Next(slots.Last())
	assert.False(t, ok)

	assert.Equal(t, []string{"23:30", "23:45", "00:00"}, slots.Between("00:00", "23:30"))
	assert.Nil(t, slots.Between("10:00", "23:30"))

	sorted := slots.Sort([]string{"00:15", "22:00", "13:00", "00:15", "23:45"})
	assert.Equal(t, []string{"22:00", "23:45", "00:15"}, sorted)
}

func TestSlots_LabelsRetornaCopia(t *testing.T) {
	slots := NewSlots(9, 10)
	labels := slots.Labels()
	labels[0] = "xx"

	assert.Equal(t, "09:00", slots.First())
}

func TestSlots_DayOffset(t *testing.T) {
	night := NewSlots(20, 26)
	assert.Equal(t, 0, night.DayOffset("23:45"))
	assert.Equal(t, 1, night.DayOffset("00:00"))
	assert.Equal(t, 1, night.DayOffset("02:00"))
	assert.Equal(t, 0, night.DayOffset("12:00"))

	day := NewSlots(6, 24)
	assert.Equal(t, 0, day.DayOffset("06:00"))
	assert.Equal(t, 1, day.DayOffset("00:00"))
}
