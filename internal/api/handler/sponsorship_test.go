package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring/mocks"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func sponsorshipRoutes(t *testing.T) (*mocks.MockSponsor, func(claims *domain.Claims, method, target, body string) (int, []byte)) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSponsor(ctrl)
	routes := Sponsorships(service, time.UTC)

	return service, func(claims *domain.Claims, method, target, body string) (int, []byte) {
		rec := serve(t, routes, claims, method, target, body)
		return rec.Code, rec.Body.Bytes()
	}
}

func TestCreateSponsorship(t *testing.T) {
	t.Run("envia o pedido com a data agendada", func(t *testing.T) {
		service, do := sponsorshipRoutes(t)

		service.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *domain.SponsorshipRequestInput) (*domain.Sponsorship, error) {
				assert.Equal(t, "CMP001", input.CompanyID)
				assert.Equal(t, domain.PlacementBanner, input.Placement)
				require.NotNil(t, input.StartDate)
				assert.Equal(t, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC), *input.StartDate)
				require.NotNil(t, input.Coupon)
				assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), input.Coupon.EndDate)
				return &domain.Sponsorship{ID: "SPN001", Status: domain.SponsorshipPending}, nil
			})

		status, body := do(ownerClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships", `{
			"placement": "BANNER",
			"campaign_name": "Promoção de verão",
			"destination_link": "https://padaria.example",
			"asset_url": "https://cdn.example/banner.png",
			"tokens_to_spend": 20,
			"start_date": "2024-01-21",
			"coupon": {"code": "VERAO2024", "limit_per_user": 1, "start_date": "2024-01-21", "end_date": "2024-01-31"}
		}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.Contains(t, string(body), `"SPN001"`)
	})

	t.Run("empresa de outro dono", func(t *testing.T) {
		_, do := sponsorshipRoutes(t)

		status, _ := do(ownerClaims, http.MethodPost, "/v1/companies/CMP999/sponsorships", `{"placement":"banner"}`)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("tipo de destaque desconhecido", func(t *testing.T) {
		_, do := sponsorshipRoutes(t)

		status, _ := do(ownerClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships", `{"placement":"outdoor"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("data em formato inválido", func(t *testing.T) {
		_, do := sponsorshipRoutes(t)

		status, _ := do(ownerClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships", `{"placement":"banner","start_date":"21/01/2024"}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("slots esgotados devolvem datas sugeridas", func(t *testing.T) {
		service, _ := sponsorshipRoutes(t)

		service.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, sponsoring.NewSponsorshipError(sponsoring.ErrSlotCapacityExhausted, apiErrors.ErrSlotCapacityExhausted, []string{"2024-01-16"}))

		rec := serve(t, Sponsorships(service, time.UTC), ownerClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships", `{"placement":"banner","tokens_to_spend":20}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrSlotCapacityExhausted, apiErr.Code)
		assert.Equal(t, []any{"2024-01-16"}, apiErr.Details)
	})

	t.Run("regras reprovadas listam as mensagens", func(t *testing.T) {
		service, _ := sponsorshipRoutes(t)

		service.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, sponsoring.NewSponsorshipError(sponsoring.ErrMissingCampaignName, apiErrors.ErrSponsorshipInvalid, []string{"informe o nome da campanha"}))

		rec := serve(t, Sponsorships(service, time.UTC), ownerClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships", `{"placement":"banner"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, apiErrors.ErrSponsorshipInvalid, decodeError(t, rec).Code)
	})
}

func TestQuoteSponsorship(t *testing.T) {
	service, do := sponsorshipRoutes(t)

	service.EXPECT().
		Quote(gomock.Any(), "CMP001", domain.PlacementVideo, 45).
		Return(&domain.SponsorshipQuote{TokensToSpend: 60, SponsorshipDays: 3}, nil)

	status, body := do(adminClaims, http.MethodPost, "/v1/companies/CMP001/sponsorships/quote", `{"placement":"video","tokens":45}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"sponsorship_days":3`)
}

func TestSponsorshipAvailability(t *testing.T) {
	service, do := sponsorshipRoutes(t)
	from := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	service.EXPECT().
		AvailableDates(gomock.Any(), domain.PlacementCarousel, from, 7).
		Return([]domain.SlotAvailability{{Date: from, Placement: domain.PlacementCarousel, Available: true}}, nil)

	status, body := do(ownerClaims, http.MethodGet, "/v1/sponsorships/availability?placement=carousel&from=2024-01-20&days=7", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"available":true`)
}

func TestMarkSponsorshipContacted(t *testing.T) {
	t.Run("somente administradores", func(t *testing.T) {
		_, do := sponsorshipRoutes(t)

		status, _ := do(ownerClaims, http.MethodPut, "/v1/sponsorships/SPN001/contacted", "")
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("transição inválida", func(t *testing.T) {
		service, do := sponsorshipRoutes(t)
		service.EXPECT().
			MarkContacted("SPN001").
			Return(nil, sponsoring.NewSponsorshipError(sponsoring.ErrInvalidStatusTransition, apiErrors.ErrInvalidStatusTransition, nil))

		status, _ := do(adminClaims, http.MethodPut, "/v1/sponsorships/SPN001/contacted", "")
		assert.Equal(t, http.StatusConflict, status)
	})
}

func TestListSponsorshipRequests(t *testing.T) {
	service, do := sponsorshipRoutes(t)
	service.EXPECT().ListRequests(domain.SponsorshipPending).Return(nil, nil)

	status, body := do(adminClaims, http.MethodGet, "/v1/sponsorships?status=Pendente", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}
