package usecase

import (
	"context"
	"math/rand"
	"sync"

	"poolworks/internal/domain/entities"
)

const (
	inventoryInStockLeadTime = "In stock"
	inventoryBackorderLead   = "3-5 business days"
)

// IInventoryUseCase checks material availability for an inventory list.
type IInventoryUseCase interface {
	CheckAvailability(ctx context.Context, items []entities.InventoryItem) ([]entities.InventoryAvailability, error)
}

// InventoryUseCase simulates an availability check: roughly 70% of items are
// in stock, quantities and lead times are randomized. The random source is
// injected so tests are deterministic.
type InventoryUseCase struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(rng *rand.Rand) *InventoryUseCase {
	return &InventoryUseCase{rng: rng}
}

func (u *InventoryUseCase) CheckAvailability(_ context.Context, items []entities.InventoryItem) ([]entities.InventoryAvailability, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.InventoryAvailability, 0, len(items))
	for _, item := range items {
		leadTime := inventoryInStockLeadTime
		if u.rng.Float64() <= 0.5 {
			leadTime = inventoryBackorderLead
		}
		out = append(out, entities.InventoryAvailability{
			InventoryItem:     item,
			InStock:           u.rng.Float64() > 0.3,
			AvailableQuantity: u.rng.Intn(1000),
			LeadTime:          leadTime,
		})
	}
	return out, nil
}
