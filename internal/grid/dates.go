package grid

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const DateLayout = time.DateOnly

// now é substituído nos testes.
var now = time.Now

var acceptedDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDate interpreta uma data no formato YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// FormatAPIDate normaliza uma data para YYYY-MM-DD. Entradas malformadas
// resultam na data atual.
func FormatAPIDate(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout)
		}
	}

	today := now().Format(DateLayout)
	logrus.WithField("input", value).Warnf("Data inválida, usando data atual %s", today)
	return today
}

// WeekStart retorna a segunda-feira da semana da data informada.
func WeekStart(date time.Time) time.Time {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// WeekDates retorna os sete dias a partir do início da semana.
func WeekDates(weekStart time.Time) []time.Time {
	start := WeekStart(weekStart)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ShiftDate soma offset dias à data. Datas inválidas são devolvidas como
// vieram, para que a validação do turno as rejeite.
func ShiftDate(date string, offset int) string {
	if offset == 0 {
		return date
	}
	day, err := ParseDate(date)
	if err != nil {
		return date
	}
	return day.AddDate(0, 0, offset).Format(DateLayout)
}

// ShiftBounds converte um turno em instantes absolutos (UTC). Turnos com
// end <= start terminam no dia seguinte.
func ShiftBounds(date, start, end string) (time.Time, time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	startMinutes, err := ParseClock(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	duration, err := DurationMinutes(start, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	from := day.Add(time.Duration(startMinutes%minutesPerDay) * time.Minute)
	return from, from.Add(time.Duration(duration) * time.Minute), nil
}
