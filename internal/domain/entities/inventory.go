package entities

// InventoryAvailability is an inventory line item augmented with mock
// supplier availability. The availability data is simulated; a real
// supply-chain integration would replace this.
type InventoryAvailability struct {
	InventoryItem
	InStock           bool   `json:"in_stock"`
	AvailableQuantity int    `json:"available_quantity"`
	LeadTime          string `json:"lead_time"`
}
