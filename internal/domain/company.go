package domain

import "time"

type Plan string

const (
	PlanGratuito Plan = "Gratuito"
	PlanBronze   Plan = "Bronze"
	PlanPrata    Plan = "Prata"
	PlanOuro     Plan = "Ouro"
)

// HasDiscountedPricing indica se o plano paga a tabela promocional de patrocínios
func (p Plan) HasDiscountedPricing() bool {
	return p == PlanPrata || p == PlanOuro
}

type Company struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Category           string             `json:"category"`
	Description        string             `json:"description"`
	Phone              *string            `json:"phone"`
	Email              *string            `json:"email"`
	Website            *string            `json:"website"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	LogoURL            *string            `json:"logo_url"`
	Plan               Plan               `json:"plan"`
	TokenBalance       int                `json:"token_balance"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	HoursOfOperation   []DaySchedule      `json:"hours_of_operation"`
	SearchTerms        []string           `json:"search_terms"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (c *Company) Availability() CompanyAvailability {
	return CompanyAvailability{
		AvailabilityStatus: c.AvailabilityStatus,
		HoursOfOperation:   c.HoursOfOperation,
	}
}

type UpdateCompanyRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Category    *string  `json:"category" validate:"omitempty,min=2,max=60"`
	Description *string  `json:"description" validate:"omitempty,max=360"`
	Phone       *string  `json:"phone" validate:"omitempty,min=8,max=20"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Website     *string  `json:"website" validate:"omitempty,url"`
	Address     *string  `json:"address" validate:"omitempty,max=200"`
	City        *string  `json:"city" validate:"omitempty,max=80"`
	LogoURL     *string  `json:"logo_url" validate:"omitempty,url"`
	SearchTerms []string `json:"search_terms" validate:"omitempty,max=10,dive,min=2,max=40"`
}

type CompanyFilters struct {
	Category string
	City     string
	Search   string
	OpenNow  bool
}

type CompanyListing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	LogoURL     *string  `json:"logo_url"`
	SearchTerms []string `json:"search_terms"`
	IsOpenNow   bool     `json:"is_open_now"`
}

type CompanyDetail struct {
	Company
	IsOpenNow      bool     `json:"is_open_now"`
	CurrentOffers  []*Offer `json:"current_offers"`
	UpcomingEvents []*Event `json:"upcoming_events"`
}
