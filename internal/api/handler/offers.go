package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/internal/domain"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
)

func ListCompanyOffers(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		filter, ok := validityFilter(w, r)
		if !ok {
			return
		}

		offers, err := service.ListOffers(companyID, filter)
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

func CreateOffer(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateOffer")

		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req domain.CreateOfferRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.CompanyID = companyID

		offer, err := service.CreateOffer(&req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar oferta")
			return
		}

		writeJSON(w, http.StatusCreated, offer)
	}
}

// DeleteOffer remove a oferta após conferir que ela pertence a uma empresa do usuário
func DeleteOffer(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offer, err := service.GetOffer(pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar oferta")
			return
		}

		if !canManage(w, r, offer.CompanyID) {
			return
		}

		if err := service.DeleteOffer(offer.ID); err != nil {
			writeServiceError(w, r, err, "Erro ao remover oferta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListCompanyEvents(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		filter, ok := validityFilter(w, r)
		if !ok {
			return
		}

		events, err := service.ListEvents(companyID, filter)
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

func CreateEvent(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEvent")

		companyID, ok := companyAccess(w, r)
		if !ok {
			return
		}

		var req domain.CreateEventRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.CompanyID = companyID

		event, err := service.CreateEvent(&req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar evento")
			return
		}

		writeJSON(w, http.StatusCreated, event)
	}
}

func DeleteEvent(service offering.Offering) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := service.GetEvent(pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar evento")
			return
		}

		if !canManage(w, r, event.CompanyID) {
			return
		}

		if err := service.DeleteEvent(event.ID); err != nil {
			writeServiceError(w, r, err, "Erro ao remover evento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
