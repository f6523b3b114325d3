package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

// 15/01/2024 é uma segunda-feira, 21/01/2024 um domingo
func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func weekWith(day domain.DaySchedule) []domain.DaySchedule {
	hours := make([]domain.DaySchedule, 0, 7)
	for _, name := range domain.WeekdayNames {
		if name == day.Day {
			hours = append(hours, day)
			continue
		}
		hours = append(hours, domain.DaySchedule{Day: name, IsOpen: false, Open: "08:00", Close: "18:00"})
	}
	return hours
}

func autoCompany(hours []domain.DaySchedule) domain.CompanyAvailability {
	return domain.CompanyAvailability{
		AvailabilityStatus: domain.AvailabilityAuto,
		HoursOfOperation:   hours,
	}
}

func TestIsOpen_RegularWindow(t *testing.T) {
	company := autoCompany(weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "09:00", Close: "18:00"}))

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "abertura é inclusiva", now: at(15, 9, 0), expected: true},
		{name: "um minuto antes de abrir", now: at(15, 8, 59), expected: false},
		{name: "um minuto antes de fechar", now: at(15, 17, 59), expected: true},
		{name: "fechamento é exclusivo", now: at(15, 18, 0), expected: false},
		{name: "meio do expediente", now: at(15, 12, 30), expected: true},
		{name: "madrugada", now: at(15, 3, 0), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOpen(company, tt.now))
		})
	}
}

func TestIsOpen_OvernightWindow(t *testing.T) {
	hours := weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "22:00", Close: "02:00"})
	company := autoCompany(hours)

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{name: "23:59 aberto", now: at(15, 23, 59), expected: true},
		{name: "00:01 aberto", now: at(15, 0, 1), expected: true},
		{name: "00:30 aberto", now: at(15, 0, 30), expected: true},
		{name: "02:00 fechado", now: at(15, 2, 0), expected: false},
		{name: "21:59 fechado", now: at(15, 21, 59), expected: false},
		{name: "21:00 fechado", now: at(15, 21, 0), expected: false},
		{name: "22:00 aberto", now: at(15, 22, 0), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOpen(company, tt.now))
		})
	}
}

func TestIsOpen_ClosedDayIgnoresTimeOfDay(t *testing.T) {
	company := autoCompany(domain.DefaultWeeklySchedule())

	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 30, 59} {
			assert.False(t, IsOpen(company, at(21, hour, minute)), "domingo %02d:%02d", hour, minute)
		}
	}
}

func TestIsOpen_ManualOverrideWins(t *testing.T) {
	hours := weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "09:00", Close: "18:00"})

	for hour := 0; hour < 24; hour++ {
		now := at(15, hour, 0)

		open := domain.CompanyAvailability{AvailabilityStatus: domain.AvailabilityOpen, HoursOfOperation: hours}
		closed := domain.CompanyAvailability{AvailabilityStatus: domain.AvailabilityClosed, HoursOfOperation: hours}

		assert.True(t, IsOpen(open, now))
		assert.False(t, IsOpen(closed, now))
	}

	// Sobrescrita também vale sem tabela
	assert.True(t, IsOpen(domain.CompanyAvailability{AvailabilityStatus: domain.AvailabilityOpen}, at(21, 3, 0)))
}

func TestIsOpen_FailsClosed(t *testing.T) {
	monday := at(15, 12, 0)

	tests := []struct {
		name    string
		company domain.CompanyAvailability
	}{
		{
			name:    "tabela ausente",
			company: domain.CompanyAvailability{AvailabilityStatus: domain.AvailabilityAuto},
		},
		{
			name: "dia de hoje ausente",
			company: autoCompany([]domain.DaySchedule{
				{Day: "Terça", IsOpen: true, Open: "00:00", Close: "23:59"},
			}),
		},
		{
			name:    "horário de abertura malformado",
			company: autoCompany(weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "9h", Close: "18:00"})),
		},
		{
			name:    "horário de fechamento fora do intervalo",
			company: autoCompany(weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "09:00", Close: "25:00"})),
		},
		{
			name: "status desconhecido",
			company: domain.CompanyAvailability{
				AvailabilityStatus: "MAYBE",
				HoursOfOperation:   weekWith(domain.DaySchedule{Day: "Segunda", IsOpen: true, Open: "00:00", Close: "23:59"}),
			},
		},
		{
			name:    "nome do dia com caixa diferente",
			company: autoCompany(weekWith(domain.DaySchedule{Day: "segunda", IsOpen: true, Open: "00:00", Close: "23:59"})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsOpen(tt.company, monday))
		})
	}
}

func TestIsOpen_SundayOverrideScenario(t *testing.T) {
	company := autoCompany(domain.DefaultWeeklySchedule())
	sunday := at(21, 15, 0)

	assert.False(t, IsOpen(company, sunday))

	company.AvailabilityStatus = domain.AvailabilityOpen
	assert.True(t, IsOpen(company, sunday))
}

func TestParseClock(t *testing.T) {
	minutes, ok := ParseClock("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, minutes)

	minutes, ok = ParseClock("23:59")
	assert.True(t, ok)
	assert.Equal(t, 23*60+59, minutes)

	for _, invalid := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:300"} {
		_, ok := ParseClock(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestValidateWeeklySchedule(t *testing.T) {
	assert.NoError(t, ValidateWeeklySchedule(domain.DefaultWeeklySchedule()))

	short := domain.DefaultWeeklySchedule()[:6]
	assert.ErrorIs(t, ValidateWeeklySchedule(short), ErrScheduleSize)

	unknown := domain.DefaultWeeklySchedule()
	unknown[0].Day = "Monday"
	assert.ErrorIs(t, ValidateWeeklySchedule(unknown), ErrUnknownDay)

	duplicated := domain.DefaultWeeklySchedule()
	duplicated[1].Day = duplicated[0].Day
	assert.ErrorIs(t, ValidateWeeklySchedule(duplicated), ErrDuplicateDay)

	badClock := domain.DefaultWeeklySchedule()
	badClock[2].Close = "18h"
	assert.ErrorIs(t, ValidateWeeklySchedule(badClock), ErrInvalidClock)

	// Horários de dias fechados não são validados
	closedDay := domain.DefaultWeeklySchedule()
	closedDay[6].Open = ""
	assert.NoError(t, ValidateWeeklySchedule(closedDay))
}
