// Package directory atende o lado do consumidor: busca de empresas, ofertas,
// eventos e destaques do dia.
package directory

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

var ErrCompanyNotFound = errors.New("empresa não encontrada")

type Directory interface {
	ListCompanies(filters domain.CompanyFilters) ([]*domain.CompanyListing, error)
	GetCompany(companyID string) (*domain.CompanyDetail, error)
	ListOffers(filter domain.ValidityFilter) ([]*domain.Offer, error)
	ListEvents(filter domain.ValidityFilter) ([]*domain.Event, error)
	Featured(placement domain.PlacementType) ([]*domain.Sponsorship, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
	offering    offering.Offering
	sponsor     sponsoring.Sponsor
	now         func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	offeringService offering.Offering,
	sponsor sponsoring.Sponsor,
	now func() time.Time,
) Directory {
	return &Service{
		companyRepo: companyRepo,
		offering:    offeringService,
		sponsor:     sponsor,
		now:         now,
	}
}

// ListCompanies calcula is_open_now de todas as empresas no mesmo instante
func (s *Service) ListCompanies(filters domain.CompanyFilters) ([]*domain.CompanyListing, error) {
	companies, err := s.companyRepo.List(filters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas do guia")
		return nil, err
	}

	now := s.now()
	listings := make([]*domain.CompanyListing, 0, len(companies))
	for _, company := range companies {
		isOpen := availability.IsOpen(company.Availability(), now)
		if filters.OpenNow && !isOpen {
			continue
		}

		listings = append(listings, &domain.CompanyListing{
			ID:          company.ID,
			Name:        company.Name,
			Category:    company.Category,
			Description: company.Description,
			City:        company.City,
			LogoURL:     company.LogoURL,
			SearchTerms: company.SearchTerms,
			IsOpenNow:   isOpen,
		})
	}

	return listings, nil
}

func (s *Service) GetCompany(companyID string) (*domain.CompanyDetail, error) {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}

	if company == nil {
		return nil, ErrCompanyNotFound
	}

	offers, err := s.offering.ListOffers(companyID, domain.ValidityCurrent)
	if err != nil {
		return nil, err
	}

	events, err := s.offering.ListEvents(companyID, domain.ValidityCurrent)
	if err != nil {
		return nil, err
	}

	// Saldo não é exibido ao consumidor
	company.TokenBalance = 0

	return &domain.CompanyDetail{
		Company:        *company,
		IsOpenNow:      availability.IsOpen(company.Availability(), s.now()),
		CurrentOffers:  offers,
		UpcomingEvents: events,
	}, nil
}

func (s *Service) ListOffers(filter domain.ValidityFilter) ([]*domain.Offer, error) {
	return s.offering.ListOffers("", filter)
}

func (s *Service) ListEvents(filter domain.ValidityFilter) ([]*domain.Event, error) {
	return s.offering.ListEvents("", filter)
}

// Featured devolve os patrocínios em exibição hoje no tipo de destaque informado
func (s *Service) Featured(placement domain.PlacementType) ([]*domain.Sponsorship, error) {
	return s.sponsor.ActivePlacements(placement, s.now())
}
