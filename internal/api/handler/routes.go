package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/guia-local-api/internal/api/handler/router"
	"github.com/vfg2006/guia-local-api/internal/usecases/authenticating"
	"github.com/vfg2006/guia-local-api/internal/usecases/availability"
	"github.com/vfg2006/guia-local-api/internal/usecases/company"
	"github.com/vfg2006/guia-local-api/internal/usecases/copywriting"
	"github.com/vfg2006/guia-local-api/internal/usecases/directory"
	"github.com/vfg2006/guia-local-api/internal/usecases/offering"
	"github.com/vfg2006/guia-local-api/internal/usecases/sponsoring"
	"github.com/vfg2006/guia-local-api/pkg/middleware"
)

type mw = func(http.Handler) http.Handler

func Healthcheck(db pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Directory são as rotas públicas do guia; cache é opcional
func Directory(service directory.Directory, cache mw) []router.Route {
	var middlewares []mw
	if cache != nil {
		middlewares = append(middlewares, cache)
	}

	return []router.Route{
		{
			Path:        "/v1/directory/companies",
			Method:      http.MethodGet,
			Handler:     ListDirectoryCompanies(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/directory/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetDirectoryCompany(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/directory/offers",
			Method:      http.MethodGet,
			Handler:     ListDirectoryOffers(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/directory/events",
			Method:      http.MethodGet,
			Handler:     ListDirectoryEvents(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/directory/featured/:placement",
			Method:      http.MethodGet,
			Handler:     Featured(service),
			Middlewares: middlewares,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
	}
}

func Companies(service company.Manager, resolver availability.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetCompany(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCompany(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/status",
			Method:      http.MethodGet,
			Handler:     GetCompanyStatus(resolver),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/availability",
			Method:      http.MethodPut,
			Handler:     SetAvailability(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/hours",
			Method:      http.MethodPut,
			Handler:     UpdateHours(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/tokens",
			Method:      http.MethodPost,
			Handler:     CreditTokens(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
	}
}

func Offers(service offering.Offering) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/offers",
			Method:      http.MethodGet,
			Handler:     ListCompanyOffers(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/offers",
			Method:      http.MethodPost,
			Handler:     CreateOffer(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/offers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOffer(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/events",
			Method:      http.MethodGet,
			Handler:     ListCompanyEvents(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/events",
			Method:      http.MethodPost,
			Handler:     CreateEvent(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteEvent(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
	}
}

func Sponsorships(service sponsoring.Sponsor, loc *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies/:id/sponsorships/quote",
			Method:      http.MethodPost,
			Handler:     QuoteSponsorship(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/sponsorships",
			Method:      http.MethodGet,
			Handler:     ListCompanySponsorships(service),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id/sponsorships",
			Method:      http.MethodPost,
			Handler:     CreateSponsorship(service, loc),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsorships/availability",
			Method:      http.MethodGet,
			Handler:     SponsorshipAvailability(service, loc),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsorships/placements",
			Method:      http.MethodGet,
			Handler:     ListPlacements(),
			Middlewares: []mw{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sponsorships",
			Method:      http.MethodGet,
			Handler:     ListSponsorshipRequests(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sponsorships/:id/contacted",
			Method:      http.MethodPut,
			Handler:     MarkSponsorshipContacted(service),
			Middlewares: []mw{middleware.AdminOnly()},
		},
	}
}

// Copywriting são as rotas de geração de texto, limitadas por IP
func Copywriting(service copywriting.Writer, limiter mw, loc *time.Location) []router.Route {
	middlewares := []mw{middleware.AllRoles()}
	if limiter != nil {
		middlewares = append(middlewares, limiter)
	}

	return []router.Route{
		{
			Path:        "/v1/ai/bio",
			Method:      http.MethodPost,
			Handler:     GenerateBio(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/ai/offer-description",
			Method:      http.MethodPost,
			Handler:     GenerateOfferDescription(service, loc),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/ai/search-terms",
			Method:      http.MethodPost,
			Handler:     GenerateSearchTerms(service),
			Middlewares: middlewares,
		},
		{
			Path:        "/v1/ai/coupon-code",
			Method:      http.MethodPost,
			Handler:     GenerateCouponCode(service),
			Middlewares: middlewares,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []mw{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []mw{middleware.AdminOnly()},
		},
	}
}
