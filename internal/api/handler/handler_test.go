package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/guia-local-api/internal/api/handler/router"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

var (
	ownerCompanyID = "CMP001"
	ownerClaims    = &domain.Claims{UserID: 3, UserRole: domain.RoleCompanyOwner, CompanyID: &ownerCompanyID}
	adminClaims    = &domain.Claims{UserID: 1, UserRole: domain.RoleAdmin}
)

// serve monta o router com as rotas e injeta o usuário como faria o AuthMiddleware
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}
