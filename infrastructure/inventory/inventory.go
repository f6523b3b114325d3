// Package inventory controla a ocupação dos slots de destaque por dia.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/guia-local-api/infrastructure/repository"
	"github.com/vfg2006/guia-local-api/internal/config"
	"github.com/vfg2006/guia-local-api/internal/domain"
)

const (
	defaultCacheTTL        = time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

var ErrUnknownPlacement = errors.New("tipo de destaque desconhecido")

// SlotInventory conta os patrocínios que cobrem cada data. Datas bloqueadas
// na configuração são tratadas como lotadas.
type SlotInventory struct {
	sponsorshipRepo repository.SponsorshipRepository
	cache           *cache.Cache
	ttl             time.Duration
	blackouts       map[string]struct{}
}

func NewSlotInventory(sponsorshipRepo repository.SponsorshipRepository, cfg config.Sponsorship, loc *time.Location) *SlotInventory {
	ttl := cfg.InventoryCacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	if loc == nil {
		loc = time.Local
	}

	blackouts := make(map[string]struct{})
	for _, day := range cfg.BlackoutDays(loc) {
		blackouts[day.Format(time.DateOnly)] = struct{}{}
	}

	return &SlotInventory{
		sponsorshipRepo: sponsorshipRepo,
		cache:           cache.New(ttl, defaultCleanupInterval),
		ttl:             ttl,
		blackouts:       blackouts,
	}
}

func (i *SlotInventory) OccupiedSlots(ctx context.Context, placement domain.PlacementType, date time.Time) (int, error) {
	placementCfg, ok := domain.LookupPlacement(placement)
	if !ok {
		return 0, ErrUnknownPlacement
	}

	if i.isBlackout(date) {
		return placementCfg.SlotCapacity, nil
	}

	key := cacheKey(placement, date)
	if cached, found := i.cache.Get(key); found {
		return cached.(int), nil
	}

	occupied, err := i.sponsorshipRepo.CountOccupied(ctx, placement, date)
	if err != nil {
		return 0, errors.Wrapf(err, "erro ao consultar ocupação de %s em %s", placement, date.Format(time.DateOnly))
	}

	i.cache.Set(key, occupied, i.ttl)

	logrus.WithFields(logrus.Fields{
		"placement": placement,
		"date":      date.Format(time.DateOnly),
		"occupied":  occupied,
	}).Debug("Ocupação de slots consultada")

	return occupied, nil
}

func (i *SlotInventory) IsDateAvailable(ctx context.Context, placement domain.PlacementType, date time.Time) (bool, error) {
	placementCfg, ok := domain.LookupPlacement(placement)
	if !ok {
		return false, ErrUnknownPlacement
	}

	if i.isBlackout(date) {
		return false, nil
	}

	occupied, err := i.OccupiedSlots(ctx, placement, date)
	if err != nil {
		return false, err
	}

	return occupied < placementCfg.SlotCapacity, nil
}

// Invalidate descarta a contagem em cache de um dia, após um novo pedido
func (i *SlotInventory) Invalidate(placement domain.PlacementType, date time.Time) {
	i.cache.Delete(cacheKey(placement, date))
}

func (i *SlotInventory) isBlackout(date time.Time) bool {
	_, blocked := i.blackouts[date.Format(time.DateOnly)]
	return blocked
}

func cacheKey(placement domain.PlacementType, date time.Time) string {
	return fmt.Sprintf("%s:%s", placement, date.Format(time.DateOnly))
}
