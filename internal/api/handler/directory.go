package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/directory"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
)

// ListDirectoryCompanies lista as empresas do guia com o status de funcionamento atual
func ListDirectoryCompanies(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filters := domain.CompanyFilters{
			Category: query.Get("category"),
			City:     query.Get("city"),
			Search:   query.Get("search"),
		}

		if raw := query.Get("open_now"); raw != "" {
			openNow, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro open_now inválido", raw)
				return
			}
			filters.OpenNow = openNow
		}

		companies, err := service.ListCompanies(filters)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar empresas")
			return
		}

		if companies == nil {
			companies = []*domain.CompanyListing{}
		}
		writeJSON(w, http.StatusOK, companies)
	}
}

func GetDirectoryCompany(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		detail, err := service.GetCompany(pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar empresa")
			return
		}

		writeJSON(w, http.StatusOK, detail)
	}
}

func ListDirectoryOffers(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := validityFilter(w, r)
		if !ok {
			return
		}

		offers, err := service.ListOffers(filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar ofertas")
			return
		}

		if offers == nil {
			offers = []*domain.Offer{}
		}
		writeJSON(w, http.StatusOK, offers)
	}
}

func ListDirectoryEvents(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := validityFilter(w, r)
		if !ok {
			return
		}

		events, err := service.ListEvents(filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar eventos")
			return
		}

		if events == nil {
			events = []*domain.Event{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

// Featured lista os destaques ativos hoje para o tipo informado
func Featured(service directory.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placement, ok := parsePlacement(w, pathParam(r, "placement"))
		if !ok {
			return
		}

		featured, err := service.Featured(placement)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar destaques")
			return
		}

		if featured == nil {
			featured = []*domain.Sponsorship{}
		}
		writeJSON(w, http.StatusOK, featured)
	}
}

func validityFilter(w http.ResponseWriter, r *http.Request) (domain.ValidityFilter, bool) {
	raw := r.URL.Query().Get("validity")
	filter, ok := domain.ParseValidityFilter(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtro de validade inválido, use current, expired ou all", raw)
		return "", false
	}
	return filter, true
}
