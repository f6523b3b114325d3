package domain

import "time"

type SponsorshipStatus string

const (
	SponsorshipPending   SponsorshipStatus = "Pendente"
	SponsorshipContacted SponsorshipStatus = "Contatado"
)

// CouponTerms são as regras extras de pedidos que distribuem cupons
type CouponTerms struct {
	Code         string    `json:"code"`
	LimitPerUser int       `json:"limit_per_user"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// SponsorshipOrder é a intenção de compra de um destaque, montada a partir do
// formulário e do saldo atual da empresa
type SponsorshipOrder struct {
	CompanyID           string        `json:"company_id"`
	Placement           PlacementType `json:"placement"`
	CampaignName        string        `json:"campaign_name"`
	DestinationLink     string        `json:"destination_link"`
	AssetURL            string        `json:"asset_url"`
	TokensToSpend       int           `json:"tokens_to_spend"`
	DailyCost           int           `json:"daily_cost"`
	CompanyTokenBalance int           `json:"company_token_balance"`
	Coupon              *CouponTerms  `json:"coupon,omitempty"`
}

type Sponsorship struct {
	ID              string            `json:"id"`
	CompanyID       string            `json:"company_id"`
	CompanyName     string            `json:"company_name,omitempty"`
	Placement       PlacementType     `json:"placement"`
	CampaignName    string            `json:"campaign_name"`
	DestinationLink string            `json:"destination_link"`
	AssetURL        string            `json:"asset_url"`
	TokensSpent     int               `json:"tokens_spent"`
	DailyCost       int               `json:"daily_cost"`
	Days            int               `json:"days"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	Status          SponsorshipStatus `json:"status"`
	Coupon          *CouponTerms      `json:"coupon,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type SponsorshipRequestInput struct {
	CompanyID       string        `json:"company_id"`
	Placement       PlacementType `json:"placement"`
	CampaignName    string        `json:"campaign_name"`
	DestinationLink string        `json:"destination_link"`
	AssetURL        string        `json:"asset_url"`
	TokensToSpend   int           `json:"tokens_to_spend"`
	// StartDate vazio significa publicar hoje
	StartDate *time.Time   `json:"start_date,omitempty"`
	Coupon    *CouponTerms `json:"coupon,omitempty"`
}

type SponsorshipQuote struct {
	CompanyID           string        `json:"company_id"`
	Placement           PlacementType `json:"placement"`
	Plan                Plan          `json:"plan"`
	DailyCost           int           `json:"daily_cost"`
	RequestedTokens     int           `json:"requested_tokens"`
	TokensToSpend       int           `json:"tokens_to_spend"`
	SponsorshipDays     int           `json:"sponsorship_days"`
	TokenBalance        int           `json:"token_balance"`
	IsBalanceSufficient bool          `json:"is_balance_sufficient"`
	SlotCapacity        int           `json:"slot_capacity"`
	OccupiedSlotsToday  int           `json:"occupied_slots_today"`
	CanPublishToday     bool          `json:"can_publish_today"`
}

type SlotAvailability struct {
	Date      time.Time     `json:"date"`
	Placement PlacementType `json:"placement"`
	Available bool          `json:"available"`
}
