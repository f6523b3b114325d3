package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityOpen   AvailabilityStatus = "OPEN"
	AvailabilityClosed AvailabilityStatus = "CLOSED"
	AvailabilityAuto   AvailabilityStatus = "AUTO"
)

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityOpen, AvailabilityClosed, AvailabilityAuto:
		return true
	}
	return false
}

// DaySchedule é o horário de funcionamento de um dia da semana.
// Open e Close só têm significado quando IsOpen é verdadeiro; Close menor que
// Open representa uma janela que atravessa a meia-noite.
type DaySchedule struct {
	Day    string `json:"day"`
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open"`
	Close  string `json:"close"`
}

type CompanyAvailability struct {
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	HoursOfOperation   []DaySchedule      `json:"hours_of_operation"`
}

// Nomes dos dias na ordem em que aparecem na tabela semanal (segunda a domingo)
var WeekdayNames = []string{
	"Segunda",
	"Terça",
	"Quarta",
	"Quinta",
	"Sexta",
	"Sábado",
	"Domingo",
}

var weekdayByGo = map[time.Weekday]string{
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

func WeekdayName(day time.Weekday) string {
	return weekdayByGo[day]
}

// DefaultWeeklySchedule devolve a tabela inicial de uma empresa recém-cadastrada:
// segunda a sexta das 08:00 às 18:00, fim de semana fechado.
func DefaultWeeklySchedule() []DaySchedule {
	hours := make([]DaySchedule, 0, len(WeekdayNames))
	for i, day := range WeekdayNames {
		hours = append(hours, DaySchedule{
			Day:    day,
			IsOpen: i < 5,
			Open:   "08:00",
			Close:  "18:00",
		})
	}
	return hours
}

type OpenStatus struct {
	CompanyID          string             `json:"company_id"`
	IsOpen             bool               `json:"is_open"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	Today              string             `json:"today"`
	TodaySchedule      *DaySchedule       `json:"today_schedule,omitempty"`
	EvaluatedAt        time.Time          `json:"evaluated_at"`
}
