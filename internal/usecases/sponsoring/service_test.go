package sponsoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/infrastructure/repository/mocks"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
	sponsoringmocks "github.com/vfg2006/guia-local-api/internal/usecases/sponsoring/mocks"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	today    = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
)

type serviceFixture struct {
	companyRepo     *mocks.MockCompanyRepository
	sponsorshipRepo *mocks.MockSponsorshipRepository
	inventory       *sponsoringmocks.MockSlotInventory
	service         Sponsor
}

func newFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		companyRepo:     mocks.NewMockCompanyRepository(ctrl),
		sponsorshipRepo: mocks.NewMockSponsorshipRepository(ctrl),
		inventory:       sponsoringmocks.NewMockSlotInventory(ctrl),
	}
	f.service = NewService(
		f.companyRepo,
		f.sponsorshipRepo,
		f.inventory,
		config.Sponsorship{ScheduleHorizon: 30},
		func() time.Time { return fixedNow },
	)
	return f
}

func prataCompany() *domain.Company {
	return &domain.Company{
		ID:           "CMP001",
		Name:         "Padaria Central",
		Plan:         domain.PlanPrata,
		TokenBalance: 25,
	}
}

func bannerInput() *domain.SponsorshipRequestInput {
	return &domain.SponsorshipRequestInput{
		CompanyID:       "CMP001",
		Placement:       domain.PlacementBanner,
		CampaignName:    "Semana do pão",
		DestinationLink: "https://padariacentral.com.br",
		AssetURL:        "https://cdn.guialocal.com/padaria.png",
		TokensToSpend:   22,
	}
}

func assertSponsorshipError(t *testing.T, err error, base error, code string) *SponsorshipError {
	t.Helper()

	var spnErr *SponsorshipError
	require.ErrorAs(t, err, &spnErr)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, code, spnErr.Code)
	return spnErr
}

func TestService_Quote(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(1, nil)

	quote, err := f.service.Quote(context.Background(), "CMP001", domain.PlacementBanner, 22)
	require.NoError(t, err)

	assert.Equal(t, 10, quote.DailyCost)
	assert.Equal(t, 22, quote.RequestedTokens)
	assert.Equal(t, 20, quote.TokensToSpend)
	assert.Equal(t, 2, quote.SponsorshipDays)
	assert.True(t, quote.IsBalanceSufficient)
	assert.Equal(t, 3, quote.SlotCapacity)
	assert.Equal(t, 1, quote.OccupiedSlotsToday)
	assert.True(t, quote.CanPublishToday)
}

func TestService_Quote_StandardTierAndFullDay(t *testing.T) {
	f := newFixture(t)

	company := prataCompany()
	company.Plan = domain.PlanGratuito
	company.TokenBalance = 100

	f.companyRepo.EXPECT().GetByID("CMP001").Return(company, nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementVideo, today).Return(1, nil)

	quote, err := f.service.Quote(context.Background(), "CMP001", domain.PlacementVideo, 45)
	require.NoError(t, err)

	assert.Equal(t, 30, quote.DailyCost)
	assert.Equal(t, 60, quote.TokensToSpend)
	assert.Equal(t, 2, quote.SponsorshipDays)
	assert.False(t, quote.CanPublishToday)
}

func TestService_Quote_Errors(t *testing.T) {
	t.Run("tipo de destaque desconhecido", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Quote(context.Background(), "CMP001", "popup", 10)
		assertSponsorshipError(t, err, ErrUnknownPlacement, apiErrors.ErrUnknownPlacement)
	})

	t.Run("empresa inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID("CMP404").Return(nil, nil)

		_, err := f.service.Quote(context.Background(), "CMP404", domain.PlacementBanner, 10)
		assertSponsorshipError(t, err, ErrCompanyNotFound, apiErrors.ErrCompanyNotFound)
	})

	t.Run("falha no inventário", func(t *testing.T) {
		f := newFixture(t)
		f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
		f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(0, errors.New("timeout"))

		_, err := f.service.Quote(context.Background(), "CMP001", domain.PlacementBanner, 10)
		assertSponsorshipError(t, err, ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable)
	})
}

func TestService_Submit_PublishToday(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(2, nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, today.AddDate(0, 0, 1)).Return(true, nil)
	f.sponsorshipRepo.EXPECT().
		CreateWithDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Sponsorship) error {
			assert.Equal(t, 20, s.TokensSpent)
			assert.Equal(t, 10, s.DailyCost)
			assert.Equal(t, 2, s.Days)
			assert.Equal(t, today, s.StartDate)
			assert.Equal(t, today.AddDate(0, 0, 2), s.EndDate)
			assert.Equal(t, domain.SponsorshipPending, s.Status)
			assert.NotEmpty(t, s.ID)
			return nil
		})
	f.inventory.EXPECT().Invalidate(domain.PlacementBanner, today)
	f.inventory.EXPECT().Invalidate(domain.PlacementBanner, today.AddDate(0, 0, 1))

	sponsorship, err := f.service.Submit(context.Background(), bannerInput())
	require.NoError(t, err)
	assert.Equal(t, "CMP001", sponsorship.CompanyID)
	assert.Equal(t, "Semana do pão", sponsorship.CampaignName)
}

func TestService_Submit_CapacityExhaustedSuggestsDates(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(3, nil)
	f.inventory.EXPECT().
		IsDateAvailable(gomock.Any(), domain.PlacementBanner, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.PlacementType, date time.Time) (bool, error) {
			return date.Day()%2 == 0, nil
		}).
		Times(7)

	_, err := f.service.Submit(context.Background(), bannerInput())
	spnErr := assertSponsorshipError(t, err, ErrSlotCapacityExhausted, apiErrors.ErrSlotCapacityExhausted)
	assert.Equal(t, []string{"2024-01-16", "2024-01-18", "2024-01-20", "2024-01-22"}, spnErr.Details)
}

func TestService_Submit_ScheduleFutureDate(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 1, 20, 15, 0, 0, 0, time.UTC)
	startDay := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	input := bannerInput()
	input.StartDate = &start

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, startDay).Return(true, nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, startDay.AddDate(0, 0, 1)).Return(true, nil)
	f.sponsorshipRepo.EXPECT().
		CreateWithDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Sponsorship) error {
			assert.Equal(t, startDay, s.StartDate)
			return nil
		})
	f.inventory.EXPECT().Invalidate(domain.PlacementBanner, gomock.Any()).Times(2)

	sponsorship, err := f.service.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, startDay.AddDate(0, 0, 2), sponsorship.EndDate)
}

func TestService_Submit_DateUnavailable(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	input := bannerInput()
	input.StartDate = &start

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, start).Return(false, nil)

	_, err := f.service.Submit(context.Background(), input)
	assertSponsorshipError(t, err, ErrDateUnavailable, apiErrors.ErrDateUnavailable)
}

func TestService_Submit_InventoryFailure(t *testing.T) {
	f := newFixture(t)
	start := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	input := bannerInput()
	input.StartDate = &start

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, start).Return(false, errors.New("connection refused"))

	_, err := f.service.Submit(context.Background(), input)
	assertSponsorshipError(t, err, ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable)
}

func TestService_Submit_ValidationFailures(t *testing.T) {
	f := newFixture(t)

	input := bannerInput()
	input.DestinationLink = ""
	input.AssetURL = ""

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)

	_, err := f.service.Submit(context.Background(), input)
	spnErr := assertSponsorshipError(t, err, ErrMissingDestinationLink, apiErrors.ErrSponsorshipInvalid)
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.Equal(t, []string{ErrMissingDestinationLink.Error(), ErrMissingAsset.Error()}, spnErr.Details)
}

func TestService_Submit_InsufficientBalance(t *testing.T) {
	f := newFixture(t)

	company := prataCompany()
	company.TokenBalance = 5

	f.companyRepo.EXPECT().GetByID("CMP001").Return(company, nil)

	_, err := f.service.Submit(context.Background(), bannerInput())
	assertSponsorshipError(t, err, ErrInsufficientBalance, apiErrors.ErrInsufficientTokenBalance)
}

func TestService_Submit_BalanceChangedBeforeDebit(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(0, nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, today.AddDate(0, 0, 1)).Return(true, nil)
	f.sponsorshipRepo.EXPECT().CreateWithDebit(gomock.Any(), gomock.Any()).Return(repository.ErrBalanceConflict)

	_, err := f.service.Submit(context.Background(), bannerInput())
	assertSponsorshipError(t, err, ErrInsufficientBalance, apiErrors.ErrInsufficientTokenBalance)
}

func TestService_Submit_LaterDayOfCampaignFull(t *testing.T) {
	f := newFixture(t)
	tomorrow := today.AddDate(0, 0, 1)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(0, nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, tomorrow).Return(false, nil)

	_, err := f.service.Submit(context.Background(), bannerInput())
	spnErr := assertSponsorshipError(t, err, ErrDateUnavailable, apiErrors.ErrDateUnavailable)
	assert.Equal(t, map[string]string{"date": "2024-01-16"}, spnErr.Details)
}

func TestService_Submit_LaterDayInventoryFailure(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(0, nil)
	f.inventory.EXPECT().
		IsDateAvailable(gomock.Any(), domain.PlacementBanner, today.AddDate(0, 0, 1)).
		Return(false, errors.New("connection refused"))

	_, err := f.service.Submit(context.Background(), bannerInput())
	assertSponsorshipError(t, err, ErrInventoryUnavailable, apiErrors.ErrInventoryUnavailable)
}

func TestService_Submit_SlotTakenBeforeWrite(t *testing.T) {
	f := newFixture(t)

	f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)
	f.inventory.EXPECT().OccupiedSlots(gomock.Any(), domain.PlacementBanner, today).Return(2, nil)
	f.inventory.EXPECT().IsDateAvailable(gomock.Any(), domain.PlacementBanner, today.AddDate(0, 0, 1)).Return(true, nil)
	f.sponsorshipRepo.EXPECT().CreateWithDebit(gomock.Any(), gomock.Any()).Return(repository.ErrSlotConflict)

	_, err := f.service.Submit(context.Background(), bannerInput())
	assertSponsorshipError(t, err, ErrDateUnavailable, apiErrors.ErrDateUnavailable)
}

func TestService_Submit_StartDateOutOfRange(t *testing.T) {
	t.Run("data no passado", func(t *testing.T) {
		f := newFixture(t)
		past := today.AddDate(0, 0, -1)
		input := bannerInput()
		input.StartDate = &past

		f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)

		_, err := f.service.Submit(context.Background(), input)
		assert.ErrorIs(t, err, ErrPastStartDate)
	})

	t.Run("além do horizonte", func(t *testing.T) {
		f := newFixture(t)
		far := today.AddDate(0, 0, 31)
		input := bannerInput()
		input.StartDate = &far

		f.companyRepo.EXPECT().GetByID("CMP001").Return(prataCompany(), nil)

		_, err := f.service.Submit(context.Background(), input)
		assert.ErrorIs(t, err, ErrBeyondHorizon)
	})
}

func TestService_MarkContacted(t *testing.T) {
	t.Run("pendente para contatado", func(t *testing.T) {
		f := newFixture(t)
		f.sponsorshipRepo.EXPECT().GetByID("SPN001").Return(&domain.Sponsorship{ID: "SPN001", Status: domain.SponsorshipPending}, nil)
		f.sponsorshipRepo.EXPECT().UpdateStatus("SPN001", domain.SponsorshipPending, domain.SponsorshipContacted).Return(true, nil)

		sponsorship, err := f.service.MarkContacted("SPN001")
		require.NoError(t, err)
		assert.Equal(t, domain.SponsorshipContacted, sponsorship.Status)
	})

	t.Run("já contatado", func(t *testing.T) {
		f := newFixture(t)
		f.sponsorshipRepo.EXPECT().GetByID("SPN001").Return(&domain.Sponsorship{ID: "SPN001", Status: domain.SponsorshipContacted}, nil)

		_, err := f.service.MarkContacted("SPN001")
		assertSponsorshipError(t, err, ErrInvalidStatusTransition, apiErrors.ErrInvalidStatusTransition)
	})

	t.Run("alterado concorrentemente", func(t *testing.T) {
		f := newFixture(t)
		f.sponsorshipRepo.EXPECT().GetByID("SPN001").Return(&domain.Sponsorship{ID: "SPN001", Status: domain.SponsorshipPending}, nil)
		f.sponsorshipRepo.EXPECT().UpdateStatus("SPN001", domain.SponsorshipPending, domain.SponsorshipContacted).Return(false, nil)

		_, err := f.service.MarkContacted("SPN001")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.sponsorshipRepo.EXPECT().GetByID("SPN404").Return(nil, nil)

		_, err := f.service.MarkContacted("SPN404")
		assertSponsorshipError(t, err, ErrSponsorshipNotFound, apiErrors.ErrSponsorshipNotFound)
	})
}

func TestService_AvailableDates(t *testing.T) {
	f := newFixture(t)
	blackout := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	f.inventory.EXPECT().
		IsDateAvailable(gomock.Any(), domain.PlacementStatic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.PlacementType, date time.Time) (bool, error) {
			return !date.Equal(blackout), nil
		}).
		Times(3)

	// Data inicial no passado é trazida para hoje
	dates, err := f.service.AvailableDates(context.Background(), domain.PlacementStatic, today.AddDate(0, 0, -5), 3)
	require.NoError(t, err)
	require.Len(t, dates, 3)

	assert.Equal(t, today, dates[0].Date)
	assert.True(t, dates[0].Available)
	assert.False(t, dates[1].Available)
	assert.True(t, dates[2].Available)
}

func TestService_ListRequests_UnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListRequests("Cancelado")
	assert.Error(t, err)
}

func TestService_ActivePlacements(t *testing.T) {
	f := newFixture(t)
	expected := []*domain.Sponsorship{{ID: "SPN001", Placement: domain.PlacementCarousel}}

	f.sponsorshipRepo.EXPECT().ListActiveOn(domain.PlacementCarousel, today).Return(expected, nil)

	active, err := f.service.ActivePlacements(domain.PlacementCarousel, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, expected, active)
}
