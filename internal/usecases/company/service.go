// Package company mantém o perfil, os horários e o saldo de tokens das empresas.
package company

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Manager interface {
	Get(companyID string) (*domain.Company, error)
	UpdateProfile(req *domain.UpdateCompanyRequest) (*domain.Company, error)
	SetAvailability(companyID string, status domain.AvailabilityStatus) (*domain.Company, error)
	UpdateHours(companyID string, hours []domain.DaySchedule) (*domain.Company, error)
	CreditTokens(companyID string, amount int) (int, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
}

func NewService(companyRepo repository.CompanyRepository) Manager {
	return &Service{
		companyRepo: companyRepo,
	}
}

func (s *Service) Get(companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("Erro ao buscar empresa")
		return nil, err
	}

	if company == nil {
		return nil, NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, nil)
	}

	return company, nil
}

func (s *Service) UpdateProfile(req *domain.UpdateCompanyRequest) (*domain.Company, error) {
	if req.SearchTerms != nil {
		req.SearchTerms = normalizeTerms(req.SearchTerms)
	}

	if messages := utils.ValidateStruct(req); len(messages) > 0 {
		return nil, NewCompanyError(ErrInvalidProfile, apiErrors.ErrInvalidFormat, messages)
	}

	if err := s.update(s.companyRepo.UpdateProfile(req)); err != nil {
		return nil, err
	}

	return s.Get(req.ID)
}

func (s *Service) SetAvailability(companyID string, status domain.AvailabilityStatus) (*domain.Company, error) {
	if !status.IsValid() {
		return nil, NewCompanyError(ErrInvalidAvailability, apiErrors.ErrInvalidFormat, nil)
	}

	if err := s.update(s.companyRepo.UpdateAvailability(companyID, status)); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": companyID,
		"status":     status,
	}).Info("Disponibilidade da empresa alterada")

	return s.Get(companyID)
}

func (s *Service) UpdateHours(companyID string, hours []domain.DaySchedule) (*domain.Company, error) {
	if err := availability.ValidateWeeklySchedule(hours); err != nil {
		return nil, NewCompanyError(ErrInvalidHours, apiErrors.ErrInvalidSchedule, err.Error())
	}

	if err := s.update(s.companyRepo.UpdateHours(companyID, hours)); err != nil {
		return nil, err
	}

	return s.Get(companyID)
}

// CreditTokens adiciona tokens comprados ao saldo e devolve o novo saldo
func (s *Service) CreditTokens(companyID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, NewCompanyError(ErrInvalidTokenCredit, apiErrors.ErrInvalidFormat, nil)
	}

	balance, err := s.companyRepo.CreditTokens(companyID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, nil)
		}
		logrus.WithError(err).WithField("company_id", companyID).Error("Erro ao creditar tokens")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"company_id": companyID,
		"amount":     amount,
		"balance":    balance,
	}).Info("Tokens creditados")

	return balance, nil
}

func (s *Service) update(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrNotFound) {
		return NewCompanyError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, nil)
	}

	logrus.WithError(err).Error("Erro ao atualizar empresa")
	return err
}

// normalizeTerms deixa os termos em minúsculas, sem espaços extras e sem repetição
func normalizeTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	normalized := make([]string, 0, len(terms))

	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		normalized = append(normalized, term)
	}

	return normalized
}
