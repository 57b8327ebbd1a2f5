// Package grid contém o modelo da grade de turnos: slots de 15 minutos,
// seleção de células, consolidação em intervalos e hit-test.
package grid

import (
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	SlotMinutes = 15

	DefaultStartHour = 6
	DefaultEndHour   = 24

	// MaxEndHour permite grades que terminam no dia seguinte (ex: 20 -> 26).
	MaxEndHour = 47

	DayFirstLabel = "00:00"
	DayLastLabel  = "23:45"
)

// Slots é a sequência ordenada de rótulos "HH:MM" de uma grade.
// A ordem reflete a progressão cronológica real, mesmo quando a grade
// atravessa a meia-noite.
type Slots struct {
	startHour int
	endHour   int
	labels    []string
	index     map[string]int
}

// ClampHours valida o intervalo de horas da grade. Quando fora do domínio,
// retorna o intervalo padrão e ok=false.
func ClampHours(startHour, endHour int) (int, int, bool) {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > MaxEndHour || endHour <= startHour {
		return DefaultStartHour, DefaultEndHour, false
	}
	return startHour, endHour, true
}

// NewSlots gera os rótulos de startHour:00 até endHour:00 (inclusive)
// com espaçamento de 15 minutos. Rótulos repetidos (grades maiores que 24h)
// são descartados mantendo a primeira ocorrência.
func NewSlots(startHour, endHour int) Slots {
	start, end, ok := ClampHours(startHour, endHour)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"start_hour": startHour,
			"end_hour":   endHour,
		}).Warnf("Intervalo de horas inválido, usando padrão %d-%d", start, end)
	}

	total := (end-start)*60/SlotMinutes + 1
	s := Slots{
		startHour: start,
		endHour:   end,
		labels:    make([]string, 0, total),
		index:     make(map[string]int, total),
	}

	for minutes := start * 60; minutes <= end*60; minutes += SlotMinutes {
		label := FormatClock(minutes)
		if _, exists := s.index[label]; exists {
			break
		}
		s.index[label] = len(s.labels)
		s.labels = append(s.labels, label)
	}

	return s
}

// GenerateTimeSlots retorna apenas os rótulos da grade.
func GenerateTimeSlots(startHour, endHour int) []string {
	return NewSlots(startHour, endHour).Labels()
}

func (s Slots) StartHour() int { return s.startHour }
func (s Slots) EndHour() int   { return s.endHour }
func (s Slots) Len() int       { return len(s.labels) }

// Labels retorna uma cópia dos rótulos.
func (s Slots) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s Slots) At(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	return s.labels[i]
}

func (s Slots) Index(label string) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

func (s Slots) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

func (s Slots) First() string { return s.At(0) }
func (s Slots) Last() string  { return s.At(len(s.labels) - 1) }

// Next retorna o rótulo seguinte na grade.
func (s Slots) Next(label string) (string, bool) {
	i, ok := s.index[label]
	if !ok || i+1 >= len(s.labels) {
		return "", false
	}
	return s.labels[i+1], true
}

// DayOffset retorna quantos dias após a data da grade o rótulo cai. Numa
// grade 20 -> 26, "00:30" está no dia seguinte.
func (s Slots) DayOffset(label string) int {
	i, ok := s.index[label]
	if !ok {
		return 0
	}
	return (s.startHour*60 + i*SlotMinutes) / minutesPerDay
}

// Between retorna os rótulos entre from e to (inclusive) em ordem de grade,
// independente da direção.
func (s Slots) Between(from, to string) []string {
	i, okFrom := s.index[from]
	j, okTo := s.index[to]
	if !okFrom || !okTo {
		return nil
	}
	if i > j {
		i, j = j, i
	}

	out := make([]string, 0, j-i+1)
	out = append(out, s.labels[i:j+1]...)
	return out
}

// Sort ordena rótulos pela posição na grade, descartando desconhecidos e duplicados.
func (s Slots) Sort(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if _, ok := s.index[label]; !ok {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}

	sort.Slice(out, func(a, b int) bool {
		return s.index[out[a]] < s.index[out[b]]
	})
	return out
}
