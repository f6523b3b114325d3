package offering

import (
	"time"

	"github.com/vfg2006/guia-local-api/internal/domain"
)

type expirable interface {
	IsExpired(now time.Time) bool
}

// Partition separa os itens vigentes dos expirados em now, preservando a ordem
func Partition[T expirable](now time.Time, items []T) (current, expired []T) {
	current = make([]T, 0, len(items))
	expired = make([]T, 0)

	for _, item := range items {
		if item.IsExpired(now) {
			expired = append(expired, item)
			continue
		}
		current = append(current, item)
	}

	return current, expired
}

// ApplyValidity devolve a parte da lista pedida pelo filtro
func ApplyValidity[T expirable](now time.Time, items []T, filter domain.ValidityFilter) []T {
	switch filter {
	case domain.ValidityAll:
		return items
	case domain.ValidityExpired:
		_, expired := Partition(now, items)
		return expired
	default:
		current, _ := Partition(now, items)
		return current
	}
}
