// Package availability decide se uma empresa está aberta em um dado instante.
package availability

import (
	"errors"
	"time"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

var (
	ErrScheduleSize = errors.New("a tabela de horários deve conter exatamente 7 dias")
	ErrUnknownDay   = errors.New("dia da semana desconhecido")
	ErrDuplicateDay = errors.New("dia da semana repetido")
	ErrInvalidClock = errors.New("horário inválido, use o formato HH:MM")
)

// IsOpen avalia a disponibilidade da empresa em now. A sobrescrita manual
// (OPEN/CLOSED) sempre vence; em AUTO vale a tabela semanal. Qualquer dado
// ausente ou malformado resulta em fechado.
func IsOpen(company domain.CompanyAvailability, now time.Time) bool {
	switch company.AvailabilityStatus {
	case domain.AvailabilityOpen:
		return true
	case domain.AvailabilityClosed:
		return false
	case domain.AvailabilityAuto:
		return isOpenBySchedule(company.HoursOfOperation, now)
	default:
		return false
	}
}

func isOpenBySchedule(hours []domain.DaySchedule, now time.Time) bool {
	if hours == nil {
		return false
	}

	today, found := ScheduleFor(hours, now)
	if !found || !today.IsOpen {
		return false
	}

	openMinutes, ok := ParseClock(today.Open)
	if !ok {
		return false
	}

	closeMinutes, ok := ParseClock(today.Close)
	if !ok {
		return false
	}

	currentMinutes := now.Hour()*60 + now.Minute()

	// Janela que atravessa a meia-noite, ex.: 22:00 às 02:00
	if closeMinutes < openMinutes {
		return currentMinutes >= openMinutes || currentMinutes < closeMinutes
	}

	return currentMinutes >= openMinutes && currentMinutes < closeMinutes
}

// ScheduleFor devolve a entrada da tabela correspondente ao dia da semana de now
func ScheduleFor(hours []domain.DaySchedule, now time.Time) (domain.DaySchedule, bool) {
	todayName := domain.WeekdayName(now.Weekday())
	for _, day := range hours {
		if day.Day == todayName {
			return day, true
		}
	}
	return domain.DaySchedule{}, false
}

// ParseClock converte "HH:MM" em minutos desde a meia-noite
func ParseClock(value string) (int, bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, false
	}

	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}

	return parsed.Hour()*60 + parsed.Minute(), true
}

// ValidateWeeklySchedule garante uma entrada por dia da semana e horários bem formados
func ValidateWeeklySchedule(hours []domain.DaySchedule) error {
	if len(hours) != len(domain.WeekdayNames) {
		return ErrScheduleSize
	}

	known := make(map[string]bool, len(domain.WeekdayNames))
	for _, name := range domain.WeekdayNames {
		known[name] = true
	}

	seen := make(map[string]bool, len(hours))
	for _, day := range hours {
		if !known[day.Day] {
			return ErrUnknownDay
		}
		if seen[day.Day] {
			return ErrDuplicateDay
		}
		seen[day.Day] = true

		if !day.IsOpen {
			continue
		}

		if _, ok := ParseClock(day.Open); !ok {
			return ErrInvalidClock
		}
		if _, ok := ParseClock(day.Close); !ok {
			return ErrInvalidClock
		}
	}

	return nil
}
