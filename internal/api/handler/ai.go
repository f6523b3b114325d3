package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/guia-local-api/internal/usecases/copywriting"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

type bioRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type offerDescriptionRequest struct {
	Title     string `json:"title"`
	Discount  string `json:"discount"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type searchTermsRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type couponCodeRequest struct {
	Title    string `json:"title"`
	Discount string `json:"discount"`
}

func GenerateBio(service copywriting.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bioRequest
		if !decodeBody(w, r, &req) {
			return
		}

		text, err := service.GenerateBio(r.Context(), req.Name, req.Category)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar bio")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"text": text})
	}
}

func GenerateOfferDescription(service copywriting.Writer, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req offerDescriptionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		start, startErr := utils.ParseDate(req.StartDate, loc)
		end, endErr := utils.ParseDate(req.EndDate, loc)
		if startErr != nil || endErr != nil || start == nil || end == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato AAAA-MM-DD", nil)
			return
		}

		text, err := service.GenerateOfferDescription(r.Context(), req.Title, req.Discount, *start, *end)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar descrição")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"text": text})
	}
}

func GenerateSearchTerms(service copywriting.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchTermsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		terms, err := service.GenerateSearchTerms(r.Context(), req.Name, req.Category, req.Description)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar termos de busca")
			return
		}

		writeJSON(w, http.StatusOK, map[string][]string{"terms": terms})
	}
}

func GenerateCouponCode(service copywriting.Writer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req couponCodeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		code, err := service.GenerateCouponCode(r.Context(), req.Title, req.Discount)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar código de cupom")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"code": code})
	}
}
