package sponsoring

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

const defaultScheduleHorizon = 30

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Sponsor interface {
	Quote(ctx context.Context, companyID string, placement domain.PlacementType, rawTokens int) (*domain.SponsorshipQuote, error)
	Submit(ctx context.Context, input *domain.SponsorshipRequestInput) (*domain.Sponsorship, error)
	ListByCompany(companyID string) ([]*domain.Sponsorship, error)
	ListRequests(status domain.SponsorshipStatus) ([]*domain.Sponsorship, error)
	MarkContacted(sponsorshipID string) (*domain.Sponsorship, error)
	AvailableDates(ctx context.Context, placement domain.PlacementType, from time.Time, days int) ([]domain.SlotAvailability, error)
	ActivePlacements(placement domain.PlacementType, date time.Time) ([]*domain.Sponsorship, error)
}

type Service struct {
	companyRepo     repository.CompanyRepository
	sponsorshipRepo repository.SponsorshipRepository
	inventory       SlotInventory
	horizon         int
	now             func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	sponsorshipRepo repository.SponsorshipRepository,
	inventory SlotInventory,
	cfg config.Sponsorship,
	now func() time.Time,
) Sponsor {
	horizon := cfg.ScheduleHorizon
	if horizon <= 0 {
		horizon = defaultScheduleHorizon
	}

	return &Service{
		companyRepo:     companyRepo,
		sponsorshipRepo: sponsorshipRepo,
		inventory:       inventory,
		horizon:         horizon,
		now:             now,
	}
}

func (s *Service) Quote(ctx context.Context, companyID string, placement domain.PlacementType, rawTokens int) (*domain.SponsorshipQuote, error) {
	placementCfg, company, err := s.loadPlacementAndCompany(placement, companyID)
	if err != nil {
		return nil, err
	}

	dailyCost := placementCfg.DailyCostFor(company.Plan)
	tokens := NormalizeForBalance(rawTokens, dailyCost, company.TokenBalance)

	today := utils.StartOfDay(s.now())
	occupied, err := s.inventory.OccupiedSlots(ctx, placement, today)
	if err != nil {
		logrus.WithError(err).WithField("placement", placement).Error("Erro ao consultar ocupação de slots")
		return nil, NewSponsorshipError(ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable, nil)
	}

	// Cotação ainda sem os dados da campanha: considera apenas tokens, saldo e ocupação
	canPublish := tokens > 0 &&
		IsBalanceSufficient(tokens, company.TokenBalance) &&
		occupied < placementCfg.SlotCapacity

	return &domain.SponsorshipQuote{
		CompanyID:           company.ID,
		Placement:           placement,
		Plan:                company.Plan,
		DailyCost:           dailyCost,
		RequestedTokens:     rawTokens,
		TokensToSpend:       tokens,
		SponsorshipDays:     ComputeDuration(tokens, dailyCost),
		TokenBalance:        company.TokenBalance,
		IsBalanceSufficient: IsBalanceSufficient(tokens, company.TokenBalance),
		SlotCapacity:        placementCfg.SlotCapacity,
		OccupiedSlotsToday:  occupied,
		CanPublishToday:     canPublish,
	}, nil
}

// Submit normaliza os tokens, valida o pedido, confere o inventário e grava o
// pedido debitando o saldo da empresa
func (s *Service) Submit(ctx context.Context, input *domain.SponsorshipRequestInput) (*domain.Sponsorship, error) {
	placementCfg, company, err := s.loadPlacementAndCompany(input.Placement, input.CompanyID)
	if err != nil {
		return nil, err
	}

	dailyCost := placementCfg.DailyCostFor(company.Plan)
	tokens := NormalizeForBalance(input.TokensToSpend, dailyCost, company.TokenBalance)

	order := domain.SponsorshipOrder{
		CompanyID:           company.ID,
		Placement:           input.Placement,
		CampaignName:        strings.TrimSpace(input.CampaignName),
		DestinationLink:     strings.TrimSpace(input.DestinationLink),
		AssetURL:            strings.TrimSpace(input.AssetURL),
		TokensToSpend:       tokens,
		DailyCost:           dailyCost,
		CompanyTokenBalance: company.TokenBalance,
		Coupon:              input.Coupon,
	}

	today := utils.StartOfDay(s.now())
	start, err := s.resolveStartDate(input.StartDate, today)
	if err != nil {
		return nil, err
	}

	if errs := ValidateOrder(order); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if utils.SameDay(start, today) {
		occupied, err := s.inventory.OccupiedSlots(ctx, input.Placement, today)
		if err != nil {
			logrus.WithError(err).WithField("placement", input.Placement).Error("Erro ao consultar ocupação de slots")
			return nil, NewSponsorshipError(ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable, nil)
		}

		if err := CheckPublishToday(order, occupied, placementCfg.SlotCapacity); err != nil {
			return nil, s.slotError(ctx, input.Placement, today, err)
		}
	} else {
		var inventoryErr error
		err := CheckScheduleDate(order, start, func(date time.Time) bool {
			available, err := s.inventory.IsDateAvailable(ctx, input.Placement, date)
			if err != nil {
				inventoryErr = err
				return false
			}
			return available
		})

		if inventoryErr != nil {
			logrus.WithError(inventoryErr).WithField("placement", input.Placement).Error("Erro ao consultar disponibilidade da data")
			return nil, NewSponsorshipError(ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable, nil)
		}

		if err != nil {
			return nil, s.slotError(ctx, input.Placement, start, err)
		}
	}

	days := ComputeDuration(tokens, dailyCost)
	if err := s.checkCampaignWindow(ctx, input.Placement, start, days); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	sponsorship := &domain.Sponsorship{
		ID:              id,
		CompanyID:       company.ID,
		CompanyName:     company.Name,
		Placement:       input.Placement,
		CampaignName:    order.CampaignName,
		DestinationLink: order.DestinationLink,
		AssetURL:        order.AssetURL,
		TokensSpent:     tokens,
		DailyCost:       dailyCost,
		Days:            days,
		StartDate:       start,
		EndDate:         start.AddDate(0, 0, days),
		Status:          domain.SponsorshipPending,
		Coupon:          input.Coupon,
	}

	if err := s.sponsorshipRepo.CreateWithDebit(ctx, sponsorship); err != nil {
		if errors.Is(err, repository.ErrBalanceConflict) {
			return nil, NewSponsorshipError(ErrInsufficientBalance, apiErrors.ErrInsufficientTokenBalance, nil)
		}
		if errors.Is(err, repository.ErrSlotConflict) {
			return nil, NewSponsorshipError(ErrDateUnavailable, apiErrors.ErrDateUnavailable, nil)
		}
		logrus.WithError(err).WithField("company_id", company.ID).Error("Erro ao gravar pedido de patrocínio")
		return nil, err
	}

	for day := 0; day < days; day++ {
		s.inventory.Invalidate(input.Placement, start.AddDate(0, 0, day))
	}

	logrus.WithFields(logrus.Fields{
		"company_id":  company.ID,
		"placement":   input.Placement,
		"tokens":      tokens,
		"days":        days,
		"start_date":  start.Format(time.DateOnly),
		"sponsorship": sponsorship.ID,
	}).Info("Pedido de patrocínio registrado")

	return sponsorship, nil
}

// checkCampaignWindow confere os dias seguintes ao início; o primeiro dia já
// foi validado pelas regras de publicação ou agendamento
func (s *Service) checkCampaignWindow(ctx context.Context, placement domain.PlacementType, start time.Time, days int) error {
	for day := 1; day < days; day++ {
		date := start.AddDate(0, 0, day)

		available, err := s.inventory.IsDateAvailable(ctx, placement, date)
		if err != nil {
			logrus.WithError(err).WithField("placement", placement).Error("Erro ao consultar disponibilidade da data")
			return NewSponsorshipError(ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable, nil)
		}

		if !available {
			return s.slotError(ctx, placement, date, ErrDateUnavailable)
		}
	}

	return nil
}

func (s *Service) ListByCompany(companyID string) ([]*domain.Sponsorship, error) {
	return s.sponsorshipRepo.ListByCompany(companyID)
}

func (s *Service) ListRequests(status domain.SponsorshipStatus) ([]*domain.Sponsorship, error) {
	if status != "" && status != domain.SponsorshipPending && status != domain.SponsorshipContacted {
		return nil, NewSponsorshipError(ErrInvalidStatusTransition, apiErrors.ErrInvalidFormat, "status desconhecido")
	}
	return s.sponsorshipRepo.ListByStatus(status)
}

// MarkContacted registra o contato comercial; só pedidos pendentes podem avançar
func (s *Service) MarkContacted(sponsorshipID string) (*domain.Sponsorship, error) {
	sponsorship, err := s.sponsorshipRepo.GetByID(sponsorshipID)
	if err != nil {
		return nil, err
	}

	if sponsorship == nil {
		return nil, NewSponsorshipError(ErrSponsorshipNotFound, apiErrors.ErrSponsorshipNotFound, nil)
	}

	if sponsorship.Status != domain.SponsorshipPending {
		return nil, NewSponsorshipError(ErrInvalidStatusTransition, apiErrors.ErrInvalidStatusTransition, nil)
	}

	updated, err := s.sponsorshipRepo.UpdateStatus(sponsorshipID, domain.SponsorshipPending, domain.SponsorshipContacted)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, NewSponsorshipError(ErrInvalidStatusTransition, apiErrors.ErrInvalidStatusTransition, nil)
	}

	sponsorship.Status = domain.SponsorshipContacted
	return sponsorship, nil
}

// AvailableDates lista as próximas datas e se cada uma aceita agendamento
func (s *Service) AvailableDates(ctx context.Context, placement domain.PlacementType, from time.Time, days int) ([]domain.SlotAvailability, error) {
	if _, ok := domain.LookupPlacement(placement); !ok {
		return nil, NewSponsorshipError(ErrUnknownPlacement, apiErrors.ErrUnknownPlacement, nil)
	}

	if days <= 0 || days > s.horizon {
		days = s.horizon
	}

	today := utils.StartOfDay(s.now())
	start := utils.StartOfDay(from.In(today.Location()))
	if start.Before(today) {
		start = today
	}

	dates := make([]domain.SlotAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		available, err := s.inventory.IsDateAvailable(ctx, placement, date)
		if err != nil {
			logrus.WithError(err).WithField("placement", placement).Error("Erro ao consultar disponibilidade da data")
			return nil, NewSponsorshipError(ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable, nil)
		}

		dates = append(dates, domain.SlotAvailability{
			Date:      date,
			Placement: placement,
			Available: available,
		})
	}

	return dates, nil
}

func (s *Service) ActivePlacements(placement domain.PlacementType, date time.Time) ([]*domain.Sponsorship, error) {
	if _, ok := domain.LookupPlacement(placement); !ok {
		return nil, NewSponsorshipError(ErrUnknownPlacement, apiErrors.ErrUnknownPlacement, nil)
	}
	return s.sponsorshipRepo.ListActiveOn(placement, utils.StartOfDay(date))
}

func (s *Service) loadPlacementAndCompany(placement domain.PlacementType, companyID string) (domain.PlacementConfig, *domain.Company, error) {
	placementCfg, ok := domain.LookupPlacement(placement)
	if !ok {
		return domain.PlacementConfig{}, nil, NewSponsorshipError(ErrUnknownPlacement, apiErrors.ErrUnknownPlacement, nil)
	}

	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		logrus.WithError(err).WithField("company_id", companyID).Error("Erro ao buscar empresa")
		return domain.PlacementConfig{}, nil, err
	}

	if company == nil {
		return domain.PlacementConfig{}, nil, NewSponsorshipError(ErrCompanyNotFound, apiErrors.ErrCompanyNotFound, nil)
	}

	return placementCfg, company, nil
}

// resolveStartDate usa hoje quando a data não é informada e limita o agendamento ao horizonte configurado
func (s *Service) resolveStartDate(requested *time.Time, today time.Time) (time.Time, error) {
	if requested == nil || requested.IsZero() {
		return today, nil
	}

	start := utils.StartOfDay(requested.In(today.Location()))
	if start.Before(today) {
		return time.Time{}, NewSponsorshipError(ErrPastStartDate, apiErrors.ErrInvalidFormat, nil)
	}

	if start.After(today.AddDate(0, 0, s.horizon)) {
		return time.Time{}, NewSponsorshipError(ErrBeyondHorizon, apiErrors.ErrInvalidFormat, nil)
	}

	return start, nil
}

func (s *Service) slotError(ctx context.Context, placement domain.PlacementType, date time.Time, err error) error {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return validationError(errs)
	}

	if errors.Is(err, ErrSlotCapacityExhausted) {
		// Sugere as próximas datas livres para o agendamento
		suggestions, suggestErr := s.AvailableDates(ctx, placement, date.AddDate(0, 0, 1), 7)
		if suggestErr != nil {
			return NewSponsorshipError(ErrSlotCapacityExhausted, apiErrors.ErrSlotCapacityExhausted, nil)
		}
		return NewSponsorshipError(ErrSlotCapacityExhausted, apiErrors.ErrSlotCapacityExhausted, freeDates(suggestions))
	}

	if errors.Is(err, ErrDateUnavailable) {
		return NewSponsorshipError(ErrDateUnavailable, apiErrors.ErrDateUnavailable, map[string]string{
			"date": date.Format(time.DateOnly),
		})
	}

	return err
}

func validationError(errs ValidationErrors) *SponsorshipError {
	code := apiErrors.ErrSponsorshipInvalid
	if len(errs) == 1 && errs.Has(ErrInsufficientBalance) {
		code = apiErrors.ErrInsufficientTokenBalance
	}
	return NewSponsorshipError(errs, code, errs.Messages())
}

func freeDates(dates []domain.SlotAvailability) []string {
	free := make([]string, 0, len(dates))
	for _, date := range dates {
		if date.Available {
			free = append(free, date.Date.Format(time.DateOnly))
		}
	}
	return free
}
