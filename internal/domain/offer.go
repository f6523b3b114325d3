package domain

import "time"

type ValidityFilter string

const (
	ValidityCurrent ValidityFilter = "current"
	ValidityExpired ValidityFilter = "expired"
	ValidityAll     ValidityFilter = "all"
)

func ParseValidityFilter(raw string) (ValidityFilter, bool) {
	switch ValidityFilter(raw) {
	case "", ValidityCurrent:
		return ValidityCurrent, true
	case ValidityExpired:
		return ValidityExpired, true
	case ValidityAll:
		return ValidityAll, true
	}
	return "", false
}

type Offer struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Discount     string    `json:"discount"`
	CouponCode   *string   `json:"coupon_code"`
	LimitPerUser *int      `json:"limit_per_user"`
	StartDate    time.Time `json:"start_date"`
	ValidUntil   time.Time `json:"valid_until"`
	ImageURL     *string   `json:"image_url"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (o *Offer) IsExpired(now time.Time) bool {
	return now.After(o.ValidUntil)
}

type Event struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"image_url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *Event) IsExpired(now time.Time) bool {
	return now.After(e.Date)
}

type CreateOfferRequest struct {
	CompanyID    string    `json:"company_id" validate:"required"`
	Title        string    `json:"title" validate:"required,min=3,max=120"`
	Description  string    `json:"description" validate:"max=360"`
	Discount     string    `json:"discount" validate:"required,max=40"`
	CouponCode   *string   `json:"coupon_code"`
	LimitPerUser *int      `json:"limit_per_user"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	ValidUntil   time.Time `json:"valid_until" validate:"required"`
	ImageURL     *string   `json:"image_url" validate:"omitempty,url"`
}

type CreateEventRequest struct {
	CompanyID   string    `json:"company_id" validate:"required"`
	Title       string    `json:"title" validate:"required,min=3,max=120"`
	Description string    `json:"description" validate:"max=360"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"max=200"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,url"`
}
