package domain

type PlacementType string

const (
	PlacementBanner   PlacementType = "banner"
	PlacementCarousel PlacementType = "carousel"
	PlacementStatic   PlacementType = "static"
	PlacementVideo    PlacementType = "video"
)

// PlacementConfig reúne preço diário (em tokens) e capacidade de slots de um
// tipo de destaque
type PlacementConfig struct {
	Type                PlacementType `json:"type"`
	Label               string        `json:"label"`
	DiscountedDailyCost int           `json:"discounted_daily_cost"`
	StandardDailyCost   int           `json:"standard_daily_cost"`
	SlotCapacity        int           `json:"slot_capacity"`
}

func (p PlacementConfig) DailyCostFor(plan Plan) int {
	if plan.HasDiscountedPricing() {
		return p.DiscountedDailyCost
	}
	return p.StandardDailyCost
}

var placements = map[PlacementType]PlacementConfig{
	PlacementBanner: {
		Type:                PlacementBanner,
		Label:               "Banner rotativo",
		DiscountedDailyCost: 10,
		StandardDailyCost:   15,
		SlotCapacity:        3,
	},
	PlacementCarousel: {
		Type:                PlacementCarousel,
		Label:               "Vitrine carrossel",
		DiscountedDailyCost: 8,
		StandardDailyCost:   12,
		SlotCapacity:        8,
	},
	PlacementStatic: {
		Type:                PlacementStatic,
		Label:               "Vitrine estática",
		DiscountedDailyCost: 5,
		StandardDailyCost:   8,
		SlotCapacity:        9,
	},
	PlacementVideo: {
		Type:                PlacementVideo,
		Label:               "Vídeo promocional",
		DiscountedDailyCost: 20,
		StandardDailyCost:   30,
		SlotCapacity:        1,
	},
}

func LookupPlacement(placement PlacementType) (PlacementConfig, bool) {
	cfg, ok := placements[placement]
	return cfg, ok
}

func AllPlacements() []PlacementConfig {
	return []PlacementConfig{
		placements[PlacementBanner],
		placements[PlacementCarousel],
		placements[PlacementStatic],
		placements[PlacementVideo],
	}
}
