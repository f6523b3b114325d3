package sponsoring

import (
	"context"
	"time"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

//go:generate mockgen -source=inventory.go -destination=mocks/inventory_mock.go -package=mocks

// SlotInventory informa a ocupação dos slots de destaque por data
type SlotInventory interface {
	OccupiedSlots(ctx context.Context, placement domain.PlacementType, date time.Time) (int, error)
	IsDateAvailable(ctx context.Context, placement domain.PlacementType, date time.Time) (bool, error)
	Invalidate(placement domain.PlacementType, date time.Time)
}
