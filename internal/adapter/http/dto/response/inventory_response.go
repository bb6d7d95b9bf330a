package response

import "poolworks/internal/domain/entities"

type InventoryAvailabilityResponse struct {
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	Unit              string `json:"unit"`
	InStock           bool   `json:"in_stock"`
	AvailableQuantity int    `json:"available_quantity"`
	LeadTime          string `json:"lead_time"`
}

type InventoryCheckResponse struct {
	Items []InventoryAvailabilityResponse `json:"items"`
}

func FromInventoryAvailability(items []entities.InventoryAvailability) InventoryCheckResponse {
	out := make([]InventoryAvailabilityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, InventoryAvailabilityResponse{
			Name:              a.Name,
			Quantity:          a.Quantity,
			Unit:              a.Unit,
			InStock:           a.InStock,
			AvailableQuantity: a.AvailableQuantity,
			LeadTime:          a.LeadTime,
		})
	}
	return InventoryCheckResponse{Items: out}
}
