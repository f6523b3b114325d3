package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/pkg/apiErrors"
	"github.com/vfg2006/guia-local-api/pkg/utils"
)

type quoteRequest struct {
	Placement string `json:"placement"`
	Tokens    int    `json:"tokens"`
}

type couponRequest struct {
	Code         string `json:"code"`
	LimitPerUser int    `json:"limit_per_user"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// sponsorshipRequest recebe as datas como YYYY-MM-DD no fuso da aplicação
type sponsorshipRequest struct {
	Placement       string         `json:"placement"`
	CampaignName    string         `json:"campaign_name"`
	DestinationLink string         `json:"destination_link"`
	AssetURL        string         `json:"asset_url"`
	TokensToSpend   int            `json:"tokens_to_spend"`
	StartDate       string         `json:"start_date"`
	Coupon          *couponRequest `json:"coupon"`
}

func (req sponsorshipRequest) toInput(companyID string, placement domain.PlacementType, loc *time.Location) (*domain.SponsorshipRequestInput, []string) {
	input := &domain.SponsorshipRequestInput{
		CompanyID:       companyID,
		Placement:       placement,
		CampaignName:    req.CampaignName,
		DestinationLink: req.DestinationLink,
		AssetURL:        req.AssetURL,
		TokensToSpend:   req.TokensToSpend,
	}

	var invalid []string

	start, err := utils.ParseDate(req.StartDate, loc)
	if err != nil {
		invalid = append(invalid, "start_date")
	}
	input.StartDate = start

	if req.Coupon != nil {
		coupon := &domain.CouponTerms{
			Code:         req.Coupon.Code,
			LimitPerUser: req.Coupon.LimitPerUser,
		}
		if date, err := utils.ParseDate(req.Coupon.StartDate, loc); err != nil {
			invalid = append(invalid, "coupon.start_date")
		} else if date != nil {
			coupon.StartDate = *date
		}
		if date, err := utils.ParseDate(req.Coupon.EndDate, loc); err != nil {
			invalid = append(invalid, "coupon.end_date")
		} else if date != nil {
			coupon.EndDate = *date
		}
		input.Coupon = coupon
	}

	return input, invalid
}

// QuoteSponsorship simula custo, duração e disponibilidade antes do envio
func QuoteSponsorship(service sponsoring.Sponsor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req quoteRequest
		if !decodeBody(w, r, &req) {
			return
		}

		placement, ok := parsePlacement(w, req.Placement)
		if !ok {
			return
		}

		quote, err := service.Quote(r.Context(), companyID, placement, req.Tokens)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao simular patrocínio")
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

func CreateSponsorship(service sponsoring.Sponsor, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSponsorship")

		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req sponsorshipRequest
		if !decodeBody(w, r, &req) {
			return
		}

		placement, ok := parsePlacement(w, req.Placement)
		if !ok {
			return
		}

		input, invalid := req.toInput(companyID, placement, loc)
		if len(invalid) > 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato AAAA-MM-DD", invalid)
			return
		}

		sponsorship, err := service.Submit(r.Context(), input)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar pedido de patrocínio")
			return
		}

		writeJSON(w, http.StatusCreated, sponsorship)
	}
}

func ListCompanySponsorships(service sponsoring.Sponsor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		sponsorships, err := service.ListByCompany(companyID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar patrocínios")
			return
		}

		if sponsorships == nil {
			sponsorships = []*domain.Sponsorship{}
		}
		writeJSON(w, http.StatusOK, sponsorships)
	}
}

// SponsorshipAvailability lista os dias livres de um tipo de destaque a partir de uma data
func SponsorshipAvailability(service sponsoring.Sponsor, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		placement, ok := parsePlacement(w, query.Get("placement"))
		if !ok {
			return
		}

		// Sem data o serviço começa em hoje
		var from time.Time
		if parsed, err := utils.ParseDate(query.Get("from"), loc); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from deve estar no formato AAAA-MM-DD", nil)
			return
		} else if parsed != nil {
			from = *parsed
		}

		days := 0
		if raw := query.Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", raw)
				return
			}
			days = parsed
		}

		dates, err := service.AvailableDates(r.Context(), placement, from, days)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar disponibilidade")
			return
		}

		writeJSON(w, http.StatusOK, dates)
	}
}

func ListPlacements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.AllPlacements())
	}
}

// ListSponsorshipRequests é a fila de pedidos para o time comercial
func ListSponsorshipRequests(service sponsoring.Sponsor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.SponsorshipStatus(r.URL.Query().Get("status"))

		sponsorships, err := service.ListRequests(status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar pedidos de patrocínio")
			return
		}

		if sponsorships == nil {
			sponsorships = []*domain.Sponsorship{}
		}
		writeJSON(w, http.StatusOK, sponsorships)
	}
}

func MarkSponsorshipContacted(service sponsoring.Sponsor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MarkSponsorshipContacted")

		sponsorship, err := service.MarkContacted(pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar pedido de patrocínio")
			return
		}

		writeJSON(w, http.StatusOK, sponsorship)
	}
}
