package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/internal/usecases/copywriting"
	"github.com/vfg2006/guia-local-api/internal/usecases/directory"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/log"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody lê o JSON da requisição e responde VAL_001 quando inválido
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// companyAccess garante que o usuário logado pode gerenciar a empresa da URL
func companyAccess(w http.ResponseWriter, r *http.Request) (string, bool) {
	companyID := pathParam(r, "id")
	if companyID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
		return "", false
	}

	return companyID, canManage(w, r, companyID)
}

func canManage(w http.ResponseWriter, r *http.Request, companyID string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return false
	}

	if !claims.CanManageCompany(companyID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":    claims.UserID,
			"company_id": companyID,
		}).Warn("Acesso negado à empresa")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não pode gerenciar esta empresa", nil)
		return false
	}

	return true
}

func parsePlacement(w http.ResponseWriter, raw string) (domain.PlacementType, bool) {
	placement := domain.PlacementType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := domain.LookupPlacement(placement); !ok {
		apiErrors.WriteError(w, apiErrors.ErrUnknownPlacement, "Tipo de destaque desconhecido", raw)
		return "", false
	}
	return placement, true
}

// writeServiceError traduz os erros tipados dos usecases para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr        *authenticating.AuthError
		companyErr     *company.CompanyError
		offeringErr    *offering.OfferingError
		sponsorshipErr *sponsoring.SponsorshipError
	)

	switch {
	case errors.As(err, &sponsorshipErr):
		apiErrors.WriteError(w, sponsorshipErr.Code, sponsorshipErr.Err.Error(), sponsorshipErr.Details)
	case errors.As(err, &offeringErr):
		apiErrors.WriteError(w, offeringErr.Code, offeringErr.Err.Error(), offeringErr.Details)
	case errors.As(err, &companyErr):
		apiErrors.WriteError(w, companyErr.Code, companyErr.Err.Error(), companyErr.Details)
	case errors.As(err, &authErr):
		var details any
		if authErr.Details != "" {
			details = authErr.Details
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), details)
	case errors.Is(err, directory.ErrCompanyNotFound), errors.Is(err, availability.ErrCompanyNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCompanyNotFound, err.Error(), nil)
	case errors.Is(err, copywriting.ErrMissingInput):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, copywriting.ErrGenerationFailed), errors.Is(err, copywriting.ErrInvalidGeneratedCode):
		apiErrors.WriteError(w, apiErrors.ErrGenerationFailed, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
