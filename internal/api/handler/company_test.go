package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/internal/usecases/company/mocks"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestCompanyOwnership(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		expectGet  bool
		wantStatus int
	}{
		{name: "dono acessa a própria empresa", claims: ownerClaims, target: "/v1/companies/CMP001", expectGet: true, wantStatus: http.StatusOK},
		{name: "dono não acessa outra empresa", claims: ownerClaims, target: "/v1/companies/CMP002", wantStatus: http.StatusForbidden},
		{name: "administrador acessa qualquer empresa", claims: adminClaims, target: "/v1/companies/CMP002", expectGet: true, wantStatus: http.StatusOK},
		{name: "sem usuário", target: "/v1/companies/CMP001", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mocks.NewMockManager(gomock.NewController(t))
			if tt.expectGet {
				service.EXPECT().Get(gomock.Any()).Return(&domain.Company{ID: "CMP", TokenBalance: 40}, nil)
			}

			rec := serve(t, Companies(service, nil), tt.claims, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateHours(t *testing.T) {
	t.Run("tabela inválida", func(t *testing.T) {
		service := mocks.NewMockManager(gomock.NewController(t))
		service.EXPECT().
			UpdateHours("CMP001", gomock.Any()).
			Return(nil, company.NewCompanyError(company.ErrInvalidHours, apiErrors.ErrInvalidSchedule, "segunda: horário inválido"))

		rec := serve(t, Companies(service, nil), ownerClaims, http.MethodPut, "/v1/companies/CMP001/hours",
			`{"hours_of_operation":[{"day":"Segunda","isOpen":true,"open":"25:00","close":"18:00"}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidSchedule, decodeError(t, rec).Code)
	})

	t.Run("corpo malformado", func(t *testing.T) {
		service := mocks.NewMockManager(gomock.NewController(t))

		rec := serve(t, Companies(service, nil), ownerClaims, http.MethodPut, "/v1/companies/CMP001/hours", `{`)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestSetAvailability(t *testing.T) {
	service := mocks.NewMockManager(gomock.NewController(t))
	service.EXPECT().
		SetAvailability("CMP001", domain.AvailabilityClosed).
		Return(&domain.Company{ID: "CMP001", AvailabilityStatus: domain.AvailabilityClosed}, nil)

	rec := serve(t, Companies(service, nil), ownerClaims, http.MethodPut, "/v1/companies/CMP001/availability", `{"availability_status":"CLOSED"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"availability_status":"CLOSED"`)
}

func TestCreditTokens(t *testing.T) {
	t.Run("dono não credita tokens", func(t *testing.T) {
		service := mocks.NewMockManager(gomock.NewController(t))

		rec := serve(t, Companies(service, nil), ownerClaims, http.MethodPost, "/v1/companies/CMP001/tokens", `{"amount":50}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("administrador credita", func(t *testing.T) {
		service := mocks.NewMockManager(gomock.NewController(t))
		service.EXPECT().CreditTokens("CMP001", 50).Return(75, nil)

		rec := serve(t, Companies(service, nil), adminClaims, http.MethodPost, "/v1/companies/CMP001/tokens", `{"amount":50}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"company_id":"CMP001","token_balance":75}`, rec.Body.String())
	})
}
