package sponsoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

func validOrder() domain.SponsorshipOrder {
	return domain.SponsorshipOrder{
		CompanyID:           "CMP001",
		Placement:           domain.PlacementBanner,
		CampaignName:        "Semana do cliente",
		DestinationLink:     "https://wa.me/5511999999999",
		AssetURL:            "https://cdn.guialocal.com/banner.png",
		TokensToSpend:       20,
		DailyCost:           10,
		CompanyTokenBalance: 25,
	}
}

func validCoupon() *domain.CouponTerms {
	return &domain.CouponTerms{
		Code:         "ABCD1234",
		LimitPerUser: 1,
		StartDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		tokens, dailyCost, expected int
	}{
		{tokens: 100, dailyCost: 10, expected: 10},
		{tokens: 0, dailyCost: 10, expected: 0},
		{tokens: 15, dailyCost: 10, expected: 1},
		{tokens: 19, dailyCost: 10, expected: 1},
		{tokens: -10, dailyCost: 10, expected: 0},
		{tokens: 10, dailyCost: 0, expected: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ComputeDuration(tt.tokens, tt.dailyCost), "%d/%d", tt.tokens, tt.dailyCost)
	}
}

func TestNormalizeTokenInput(t *testing.T) {
	tests := []struct {
		raw, dailyCost, expected int
	}{
		{raw: 25, dailyCost: 10, expected: 30},
		{raw: 5, dailyCost: 10, expected: 10},
		{raw: 0, dailyCost: 10, expected: 0},
		{raw: 20, dailyCost: 10, expected: 20},
		{raw: 21, dailyCost: 10, expected: 30},
		{raw: 1, dailyCost: 8, expected: 8},
		{raw: 17, dailyCost: 0, expected: 17},
		{raw: -5, dailyCost: 10, expected: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeTokenInput(tt.raw, tt.dailyCost), "%d/%d", tt.raw, tt.dailyCost)
	}
}

func TestNormalizeTokenInput_AlwaysWholeDays(t *testing.T) {
	for _, dailyCost := range []int{5, 8, 10, 12, 15, 20, 30} {
		for raw := 1; raw <= 200; raw++ {
			normalized := NormalizeTokenInput(raw, dailyCost)
			assert.Zero(t, normalized%dailyCost)
			assert.GreaterOrEqual(t, normalized, raw)
			assert.Less(t, normalized-raw, dailyCost)
		}
	}
}

func TestNormalizeForBalance(t *testing.T) {
	assert.Equal(t, 20, NormalizeForBalance(22, 10, 25))
	assert.Equal(t, 30, NormalizeForBalance(22, 10, 30))
	assert.Equal(t, 0, NormalizeForBalance(0, 10, 25))
	// Saldo menor que um dia mantém o arredondamento para reportar a falta de saldo
	assert.Equal(t, 10, NormalizeForBalance(3, 10, 5))
}

func TestValidateCouponCode(t *testing.T) {
	for _, valid := range []string{"ABCD1234", "ABCDEFGH1234", "12345678"} {
		assert.NoError(t, ValidateCouponCode(valid), valid)
	}

	for _, invalid := range []string{"abc123", "TOOLONGCOUPON1", "SHORT", "abcd1234", "ABCD-1234", "ABCD 1234", ""} {
		assert.ErrorIs(t, ValidateCouponCode(invalid), ErrInvalidCouponCode, invalid)
	}
}

func TestValidateOrder_Valid(t *testing.T) {
	assert.Empty(t, ValidateOrder(validOrder()))
	assert.True(t, IsOrderValid(validOrder()))

	withCoupon := validOrder()
	withCoupon.Coupon = validCoupon()
	assert.True(t, IsOrderValid(withCoupon))
}

func TestValidateOrder_EachRuleIndependently(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(o *domain.SponsorshipOrder)
		expected error
	}{
		{
			name:     "link de destino vazio",
			mutate:   func(o *domain.SponsorshipOrder) { o.DestinationLink = "" },
			expected: ErrMissingDestinationLink,
		},
		{
			name:     "sem imagem",
			mutate:   func(o *domain.SponsorshipOrder) { o.AssetURL = "  " },
			expected: ErrMissingAsset,
		},
		{
			name:     "sem nome de campanha",
			mutate:   func(o *domain.SponsorshipOrder) { o.CampaignName = "" },
			expected: ErrMissingCampaignName,
		},
		{
			name:     "zero tokens",
			mutate:   func(o *domain.SponsorshipOrder) { o.TokensToSpend = 0 },
			expected: ErrInvalidTokenAmount,
		},
		{
			name:     "saldo insuficiente",
			mutate:   func(o *domain.SponsorshipOrder) { o.CompanyTokenBalance = 19 },
			expected: ErrInsufficientBalance,
		},
		{
			name: "limite por usuário zero",
			mutate: func(o *domain.SponsorshipOrder) {
				o.Coupon = validCoupon()
				o.Coupon.LimitPerUser = 0
			},
			expected: ErrInvalidLimitPerUser,
		},
		{
			name: "código de cupom minúsculo",
			mutate: func(o *domain.SponsorshipOrder) {
				o.Coupon = validCoupon()
				o.Coupon.Code = "abcd1234"
			},
			expected: ErrInvalidCouponCode,
		},
		{
			name: "data final igual à inicial",
			mutate: func(o *domain.SponsorshipOrder) {
				o.Coupon = validCoupon()
				o.Coupon.EndDate = o.Coupon.StartDate
			},
			expected: ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			errs := ValidateOrder(order)
			require.Len(t, errs, 1)
			assert.True(t, errs.Has(tt.expected))
			assert.ErrorIs(t, errs[0], tt.expected)
			assert.False(t, IsOrderValid(order))
			assert.Equal(t, []string{tt.expected.Error()}, errs.Messages())
		})
	}
}

func TestValidateOrder_AccumulatesAllFailures(t *testing.T) {
	order := domain.SponsorshipOrder{
		CompanyTokenBalance: 0,
		TokensToSpend:       10,
		Coupon: &domain.CouponTerms{
			Code:      "x",
			StartDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	errs := ValidateOrder(order)

	for _, expected := range []error{
		ErrMissingDestinationLink,
		ErrMissingAsset,
		ErrMissingCampaignName,
		ErrInsufficientBalance,
		ErrInvalidLimitPerUser,
		ErrInvalidCouponCode,
		ErrInvalidDateRange,
	} {
		assert.True(t, errs.Has(expected), expected.Error())
	}
	assert.False(t, errs.Has(ErrInvalidTokenAmount))
	assert.Len(t, errs.Messages(), 7)
	assert.Contains(t, errs.Error(), ErrInsufficientBalance.Error())
}

func TestCheckPublishToday(t *testing.T) {
	order := validOrder()

	assert.NoError(t, CheckPublishToday(order, 2, 3))
	assert.True(t, CanPublishToday(order, 2, 3))

	assert.ErrorIs(t, CheckPublishToday(order, 3, 3), ErrSlotCapacityExhausted)
	assert.False(t, CanPublishToday(order, 3, 3))

	invalid := validOrder()
	invalid.DestinationLink = ""
	err := CheckPublishToday(invalid, 0, 3)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has(ErrMissingDestinationLink))
	assert.NotErrorIs(t, err, ErrSlotCapacityExhausted)
}

func TestCheckScheduleDate(t *testing.T) {
	blackout := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	free := time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)
	isDateAvailable := func(date time.Time) bool {
		return !date.Equal(blackout)
	}

	order := validOrder()
	assert.True(t, CanScheduleDate(order, free, isDateAvailable))
	assert.ErrorIs(t, CheckScheduleDate(order, blackout, isDateAvailable), ErrDateUnavailable)

	called := false
	invalid := validOrder()
	invalid.TokensToSpend = 0
	err := CheckScheduleDate(invalid, free, func(time.Time) bool {
		called = true
		return true
	})

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.True(t, errs.Has(ErrInvalidTokenAmount))
	assert.False(t, called)
}

func TestLedger_PrataBannerScenario(t *testing.T) {
	banner, ok := domain.LookupPlacement(domain.PlacementBanner)
	require.True(t, ok)

	dailyCost := banner.DailyCostFor(domain.PlanPrata)
	require.Equal(t, 10, dailyCost)

	tokens := NormalizeForBalance(22, dailyCost, 25)
	assert.Equal(t, 20, tokens)
	assert.Equal(t, 2, ComputeDuration(tokens, dailyCost))
	assert.True(t, IsBalanceSufficient(tokens, 25))

	order := validOrder()
	order.TokensToSpend = tokens
	order.DailyCost = dailyCost
	order.CompanyTokenBalance = 25

	assert.True(t, CanPublishToday(order, banner.SlotCapacity-1, banner.SlotCapacity))
	assert.False(t, CanPublishToday(order, banner.SlotCapacity, banner.SlotCapacity))
}

func TestPlacementPricing(t *testing.T) {
	for _, placement := range domain.AllPlacements() {
		assert.Less(t, placement.DiscountedDailyCost, placement.StandardDailyCost, placement.Type)
		assert.Equal(t, placement.DiscountedDailyCost, placement.DailyCostFor(domain.PlanOuro))
		assert.Equal(t, placement.StandardDailyCost, placement.DailyCostFor(domain.PlanGratuito))
		assert.Equal(t, placement.StandardDailyCost, placement.DailyCostFor(domain.PlanBronze))
		assert.Positive(t, placement.SlotCapacity)
	}

	_, ok := domain.LookupPlacement("popup")
	assert.False(t, ok)
}
