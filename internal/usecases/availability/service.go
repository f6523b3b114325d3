package availability

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

var ErrCompanyNotFound = errors.New("empresa não encontrada")

type Resolver interface {
	Status(companyID string) (*domain.OpenStatus, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
	now         func() time.Time
}

func NewService(companyRepo repository.CompanyRepository, now func() time.Time) Resolver {
	return &Service{
		companyRepo: companyRepo,
		now:         now,
	}
}

func (s *Service) Status(companyID string) (*domain.OpenStatus, error) {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("Erro ao buscar empresa para calcular disponibilidade")
		return nil, err
	}

	if company == nil {
		return nil, ErrCompanyNotFound
	}

	now := s.now()
	status := &domain.OpenStatus{
		CompanyID:          company.ID,
		IsOpen:             IsOpen(company.Availability(), now),
		AvailabilityStatus: company.AvailabilityStatus,
		Today:              domain.WeekdayName(now.Weekday()),
		EvaluatedAt:        now,
	}

	if today, found := ScheduleFor(company.HoursOfOperation, now); found {
		status.TodaySchedule = &today
	}

	return status, nil
}
