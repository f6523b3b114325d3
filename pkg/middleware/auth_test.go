package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
	}{
		{name: "healthcheck é público", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "login é público", method: http.MethodPost, path: "/v1/login", wantStatus: http.StatusOK},
		{name: "leitura do diretório é pública", method: http.MethodGet, path: "/v1/directory/companies", wantStatus: http.StatusOK},
		{name: "escrita no diretório exige token", method: http.MethodPost, path: "/v1/directory/companies", wantStatus: http.StatusUnauthorized},
		{name: "sem cabeçalho", method: http.MethodGet, path: "/v1/me", wantStatus: http.StatusUnauthorized},
		{name: "sem Bearer", method: http.MethodGet, path: "/v1/me", header: "abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "token válido",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "token expirado",
			method: http.MethodGet,
			path:   "/v1/me",
			header: "Bearer velho",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_ClaimsInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	companyID := "CMP001"
	auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserID: 3, UserRole: domain.RoleCompanyOwner, CompanyID: &companyID}, nil)

	var got *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer valido")
	AuthMiddleware(auth)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, 3, got.UserID)
	assert.True(t, got.CanManageCompany("CMP001"))
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "sem usuário", wantStatus: http.StatusUnauthorized},
		{name: "administrador", claims: &domain.Claims{UserRole: domain.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "dono de empresa", claims: &domain.Claims{UserRole: domain.RoleCompanyOwner}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/sponsorships", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
