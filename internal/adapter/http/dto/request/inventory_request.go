package request

import "poolworks/internal/domain/entities"

type InventoryItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// InventoryCheckRequest carries the material list of an estimate to the
// availability check.
type InventoryCheckRequest struct {
	Items []InventoryItemRequest `json:"items" binding:"required"`
}

func (r InventoryCheckRequest) ResolveItems() []entities.InventoryItem {
	items := make([]entities.InventoryItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.InventoryItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Unit:     it.Unit,
		})
	}
	return items
}
