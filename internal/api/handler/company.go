package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
)

type availabilityRequest struct {
	Status domain.AvailabilityStatus `json:"availability_status"`
}

type hoursRequest struct {
	HoursOfOperation []domain.DaySchedule `json:"hours_of_operation"`
}

type creditTokensRequest struct {
	Amount int `json:"amount"`
}

// GetCompany devolve o cadastro completo, incluindo o saldo de tokens
func GetCompany(service company.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		c, err := service.Get(companyID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar empresa")
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

func UpdateCompany(service company.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCompany")

		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req domain.UpdateCompanyRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = companyID

		c, err := service.UpdateProfile(&req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar empresa")
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

// GetCompanyStatus informa se a empresa está aberta agora
func GetCompanyStatus(resolver availability.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		status, err := resolver.Status(companyID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular disponibilidade")
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func SetAvailability(service company.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req availabilityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		c, err := service.SetAvailability(companyID, req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar disponibilidade")
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

func UpdateHours(service company.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req hoursRequest
		if !decodeBody(w, r, &req) {
			return
		}

		c, err := service.UpdateHours(companyID, req.HoursOfOperation)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar horários")
			return
		}

		writeJSON(w, http.StatusOK, c)
	}
}

// CreditTokens adiciona tokens ao saldo da empresa; apenas administradores
func CreditTokens(service company.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreditTokens")

		companyID := pathParam(r, "id")
		if companyID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
			return
		}

		var req creditTokensRequest
		if !decodeBody(w, r, &req) {
			return
		}

		balance, err := service.CreditTokens(companyID, req.Amount)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao creditar tokens")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"company_id":    companyID,
			"token_balance": balance,
		})
	}
}
