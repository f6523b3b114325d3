// Package offering cuida das ofertas e eventos publicados pelas empresas.
package offering

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Offering interface {
	CreateOffer(req *domain.CreateOfferRequest) (*domain.Offer, error)
	GetOffer(offerID string) (*domain.Offer, error)
	ListOffers(companyID string, filter domain.ValidityFilter) ([]*domain.Offer, error)
	DeleteOffer(offerID string) error
	CreateEvent(req *domain.CreateEventRequest) (*domain.Event, error)
	GetEvent(eventID string) (*domain.Event, error)
	ListEvents(companyID string, filter domain.ValidityFilter) ([]*domain.Event, error)
	DeleteEvent(eventID string) error
}

type Service struct {
	companyRepo repository.CompanyRepository
	offerRepo   repository.OfferRepository
	eventRepo   repository.EventRepository
	now         func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	offerRepo repository.OfferRepository,
	eventRepo repository.EventRepository,
	now func() time.Time,
) Offering {
	return &Service{
		companyRepo: companyRepo,
		offerRepo:   offerRepo,
		eventRepo:   eventRepo,
		now:         now,
	}
}

func (s *Service) CreateOffer(req *domain.CreateOfferRequest) (*domain.Offer, error) {
	messages := utils.ValidateStruct(req)

	if !req.ValidUntil.IsZero() && !req.ValidUntil.After(req.StartDate) {
		messages = append(messages, ErrInvalidValidity.Error())
	}

	var couponCode *string
	if req.CouponCode != nil && strings.TrimSpace(*req.CouponCode) != "" {
		code := strings.ToUpper(strings.TrimSpace(*req.CouponCode))
		couponCode = &code

		terms := domain.CouponTerms{
			Code:      code,
			StartDate: req.StartDate,
			EndDate:   req.ValidUntil,
		}
		if req.LimitPerUser != nil {
			terms.LimitPerUser = *req.LimitPerUser
		}

		for _, err := range sponsoring.ValidateCouponTerms(terms) {
			// Período já validado acima
			if errors.Is(err, sponsoring.ErrInvalidDateRange) {
				continue
			}
			messages = append(messages, err.Error())
		}
	}

	if len(messages) > 0 {
		return nil, NewOfferingError(ErrInvalidOffer, apiErrors.ErrInvalidFormat, messages)
	}

	if err := s.ensureCompany(req.CompanyID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	offer := &domain.Offer{
		ID:           id,
		CompanyID:    req.CompanyID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Discount:     strings.TrimSpace(req.Discount),
		CouponCode:   couponCode,
		LimitPerUser: req.LimitPerUser,
		StartDate:    req.StartDate,
		ValidUntil:   req.ValidUntil,
		ImageURL:     req.ImageURL,
		Active:       true,
	}

	if err := s.offerRepo.Create(offer); err != nil {
		logrus.WithError(err).WithField("company_id", req.CompanyID).Error("Erro ao criar oferta")
		return nil, err
	}

	return offer, nil
}

func (s *Service) GetOffer(offerID string) (*domain.Offer, error) {
	offer, err := s.offerRepo.GetByID(offerID)
	if err != nil {
		return nil, err
	}

	if offer == nil {
		return nil, NewOfferingError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, nil)
	}

	return offer, nil
}

func (s *Service) ListOffers(companyID string, filter domain.ValidityFilter) ([]*domain.Offer, error) {
	offers, err := s.offerRepo.List(repository.OfferQuery{
		CompanyID:  companyID,
		OnlyActive: filter == domain.ValidityCurrent,
	})
	if err != nil {
		return nil, err
	}

	return ApplyValidity(s.now(), offers, filter), nil
}

func (s *Service) DeleteOffer(offerID string) error {
	if err := s.offerRepo.Delete(offerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewOfferingError(ErrOfferNotFound, apiErrors.ErrOfferNotFound, nil)
		}
		return err
	}
	return nil
}

func (s *Service) CreateEvent(req *domain.CreateEventRequest) (*domain.Event, error) {
	if messages := utils.ValidateStruct(req); len(messages) > 0 {
		return nil, NewOfferingError(ErrInvalidEvent, apiErrors.ErrInvalidFormat, messages)
	}

	if err := s.ensureCompany(req.CompanyID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          id,
		CompanyID:   req.CompanyID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Location:    strings.TrimSpace(req.Location),
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	if err := s.eventRepo.Create(event); err != nil {
		logrus.WithError(err).WithField("company_id", req.CompanyID).Error("Erro ao criar evento")
		return nil, err
	}

	return event, nil
}

func (s *Service) GetEvent(eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	if event == nil {
		return nil, NewOfferingError(ErrEventNotFound, apiErrors.ErrEventNotFound, nil)
	}

	return event, nil
}

func (s *Service) ListEvents(companyID string, filter domain.ValidityFilter) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(repository.EventQuery{
		CompanyID:  companyID,
		OnlyActive: filter == domain.ValidityCurrent,
	})
	if err != nil {
		return nil, err
	}

	return ApplyValidity(s.now(), events, filter), nil
}

func (s *Service) DeleteEvent(eventID string) error {
	if err := s.eventRepo.Delete(eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewOfferingError(ErrEventNotFound, apiErrors.ErrEventNotFound, nil)
		}
		return err
	}
	return nil
}

func (s *Service) ensureCompany(companyID string) error {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}

	if company == nil {
		return NewOfferingError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, nil)
	}

	return nil
}
