package offering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

func TestPartition_Offers(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	offers := []*domain.Offer{
		{ID: "vigente", ValidUntil: now.Add(time.Hour)},
		{ID: "expirada", ValidUntil: now.Add(-time.Second)},
		{ID: "limite", ValidUntil: now},
	}

	current, expired := Partition(now, offers)

	assert.Equal(t, []string{"vigente", "limite"}, offerIDs(current))
	assert.Equal(t, []string{"expirada"}, offerIDs(expired))
}

func TestPartition_Events(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	events := []*domain.Event{
		{ID: "ontem", Date: now.AddDate(0, 0, -1)},
		{ID: "amanha", Date: now.AddDate(0, 0, 1)},
	}

	current, expired := Partition(now, events)
	assert.Len(t, current, 1)
	assert.Equal(t, "amanha", current[0].ID)
	assert.Len(t, expired, 1)
	assert.Equal(t, "ontem", expired[0].ID)
}

func TestApplyValidity(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	offers := []*domain.Offer{
		{ID: "a", ValidUntil: now.Add(time.Hour)},
		{ID: "b", ValidUntil: now.Add(-time.Hour)},
	}

	assert.Equal(t, []string{"a"}, offerIDs(ApplyValidity(now, offers, domain.ValidityCurrent)))
	assert.Equal(t, []string{"b"}, offerIDs(ApplyValidity(now, offers, domain.ValidityExpired)))
	assert.Equal(t, []string{"a", "b"}, offerIDs(ApplyValidity(now, offers, domain.ValidityAll)))
}

func TestParseValidityFilter(t *testing.T) {
	filter, ok := domain.ParseValidityFilter("")
	assert.True(t, ok)
	assert.Equal(t, domain.ValidityCurrent, filter)

	filter, ok = domain.ParseValidityFilter("expired")
	assert.True(t, ok)
	assert.Equal(t, domain.ValidityExpired, filter)

	_, ok = domain.ParseValidityFilter("futuras")
	assert.False(t, ok)
}

func offerIDs(offers []*domain.Offer) []string {
	ids := make([]string, 0, len(offers))
	for _, offer := range offers {
		ids = append(ids, offer.ID)
	}
	return ids
}
