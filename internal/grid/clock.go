package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidClock   = errors.New("horário inválido, use HH:MM")
	ErrNotQuarterHour = errors.New("horário deve estar em incrementos de 15 minutos")
)

// ParseClock converte "HH:MM" em minutos desde 00:00. Aceita "24:00".
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return hour*60 + minute, nil
}

// FormatClock formata minutos como "HH:MM", com a hora em módulo 24.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeTime valida um horário de turno e o devolve zero-padded.
// "24:00" é normalizado para "00:00".
func NormalizeTime(value string) (string, error) {
	minutes, err := ParseClock(value)
	if err != nil {
		return "", err
	}
	if minutes%SlotMinutes != 0 {
		return "", fmt.Errorf("%w: %q", ErrNotQuarterHour, value)
	}
	return FormatClock(minutes), nil
}

// AddMinutes soma minutos a um rótulo, com rollover na meia-noite.
func AddMinutes(label string, delta int) (string, error) {
	minutes, err := ParseClock(label)
	if err != nil {
		return "", err
	}
	return FormatClock(minutes + delta), nil
}

// DurationMinutes retorna a duração de start até end. end <= start indica
// que o turno atravessa a meia-noite.
func DurationMinutes(start, end string) (int, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return 0, err
	}

	startMinutes %= minutesPerDay
	endMinutes %= minutesPerDay
	if endMinutes <= startMinutes {
		endMinutes += minutesPerDay
	}
	return endMinutes - startMinutes, nil
}

// CalculateHoursBetween retorna as horas entre start e end. Horários
// inválidos resultam em 0.
func CalculateHoursBetween(start, end string) float64 {
	minutes, err := DurationMinutes(start, end)
	if err != nil {
		return 0
	}
	return float64(minutes) / 60
}

// CrossesMidnight indica se o turno termina no dia seguinte.
func CrossesMidnight(start, end string) bool {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return false
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return false
	}
	return endMinutes%minutesPerDay <= startMinutes%minutesPerDay
}
