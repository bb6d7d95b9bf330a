package entities

// EstimateBreakdown is the structured output of the pricing engine: labor,
// materials, equipment and permit line items with their subtotals, the phase
// timeline, the inventory projection, the labor overhead and the grand total.
//
// Line items are ordered slices rather than maps so that two runs over the
// same input serialize to identical bytes.
type EstimateBreakdown struct {
	Labor          []LaborLine     `json:"labor"`
	LaborTotal     float64         `json:"labor_total"`
	Materials      []MaterialLine  `json:"materials"`
	MaterialsTotal float64         `json:"materials_total"`
	Equipment      []EquipmentLine `json:"equipment"`
	EquipmentTotal float64         `json:"equipment_total"`
	Permits        []PermitLine    `json:"permits"`
	PermitsTotal   float64         `json:"permits_total"`
	Timeline       Timeline        `json:"timeline"`
	Inventory      []InventoryItem `json:"inventory"`
	Overhead       float64         `json:"overhead"`
	Total          float64         `json:"total"`
}

type LaborLine struct {
	Task  string  `json:"task"`
	Hours int     `json:"hours"`
	Rate  float64 `json:"rate"`
	Cost  float64 `json:"cost"`
}

type MaterialLine struct {
	Item      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Supplier  string  `json:"supplier"`
	Cost      float64 `json:"cost"`
}

type EquipmentLine struct {
	Item      string  `json:"item"`
	Days      int     `json:"days"`
	DailyRate float64 `json:"daily_rate"`
	Supplier  string  `json:"supplier"`
	Cost      float64 `json:"cost"`
}

type PermitLine struct {
	Permit   string  `json:"permit"`
	Cost     float64 `json:"cost"`
	Timeline string  `json:"timeline"`
}

// Timeline is the phase plan derived from the labor hours.
type Timeline struct {
	Total  string          `json:"total"`
	Phases []TimelinePhase `json:"phases"`
}

type TimelinePhase struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// InventoryItem is a display projection of a material line: what needs to be
// on hand, in what quantity and unit. Fed to the availability check as-is.
type InventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}
