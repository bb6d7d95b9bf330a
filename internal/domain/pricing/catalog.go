// Package pricing holds the static construction cost catalog and the pure
// estimate calculation engine that turns a project description into a full
// cost breakdown.
package pricing

import "fmt"

// Task identifies a labor task priced by the catalog.
type Task string

const (
	TaskExcavation   Task = "excavation"
	TaskConcreteWork Task = "concrete_work"
	TaskPlumbing     Task = "plumbing"
	TaskElectrical   Task = "electrical"
	TaskFinishing    Task = "finishing"
	TaskGeneralLabor Task = "general_labor"
)

// Material identifies a material priced by the catalog.
type Material string

const (
	MaterialConcrete         Material = "concrete"
	MaterialRebar            Material = "rebar"
	MaterialPoolLiner        Material = "pool_liner"
	MaterialPoolPump         Material = "pool_pump"
	MaterialFilterSystem     Material = "filter_system"
	MaterialPlumbingFixtures Material = "plumbing_fixtures"
	MaterialPoolTile         Material = "pool_tile"
	MaterialCoping           Material = "coping"
	MaterialDeckMaterial     Material = "deck_material"
)

// Equipment identifies a rentable piece of equipment priced by the catalog.
type Equipment string

const (
	EquipmentExcavator     Equipment = "excavator"
	EquipmentConcreteMixer Equipment = "concrete_mixer"
	EquipmentCompactor     Equipment = "compactor"
	EquipmentConcretePump  Equipment = "concrete_pump"
)

// Permit identifies a permit type priced by the catalog.
type Permit string

const (
	PermitBuilding   Permit = "building_permit"
	PermitElectrical Permit = "electrical_permit"
	PermitPlumbing   Permit = "plumbing_permit"
	PermitPool       Permit = "pool_permit"
)

type LaborRate struct {
	HourlyRate float64
}

type MaterialPrice struct {
	UnitPrice float64
	Unit      string
	Supplier  string
}

type EquipmentRate struct {
	DailyRate float64
	Supplier  string
}

type PermitFee struct {
	FlatFee  float64
	Timeline string
}

// Catalog is the static table of unit rates, prices and supplier names that
// every cost formula looks up. It is initialized once at startup, validated,
// and never mutated afterwards.
type Catalog struct {
	Labor     map[Task]LaborRate
	Materials map[Material]MaterialPrice
	Equipment map[Equipment]EquipmentRate
	Permits   map[Permit]PermitFee
}

// DefaultCatalog returns the built-in construction cost data.
func DefaultCatalog() Catalog {
	return Catalog{
		Labor: map[Task]LaborRate{
			TaskExcavation:   {HourlyRate: 45},
			TaskConcreteWork: {HourlyRate: 55},
			TaskPlumbing:     {HourlyRate: 65},
			TaskElectrical:   {HourlyRate: 70},
			TaskFinishing:    {HourlyRate: 50},
			TaskGeneralLabor: {HourlyRate: 35},
		},
		Materials: map[Material]MaterialPrice{
			MaterialConcrete:         {UnitPrice: 150, Unit: "cubic yards", Supplier: "Local Ready-Mix"},
			MaterialRebar:            {UnitPrice: 0.85, Unit: "lbs", Supplier: "Steel Supply Co"},
			MaterialPoolLiner:        {UnitPrice: 4.50, Unit: "sqft", Supplier: "Pool Supplies Inc"},
			MaterialPoolPump:         {UnitPrice: 1200, Unit: "unit", Supplier: "Aqua Equipment"},
			MaterialFilterSystem:     {UnitPrice: 800, Unit: "unit", Supplier: "Aqua Equipment"},
			MaterialPlumbingFixtures: {UnitPrice: 25, Unit: "unit", Supplier: "Plumbing Depot"},
			MaterialPoolTile:         {UnitPrice: 12, Unit: "sqft", Supplier: "Tile World"},
			MaterialCoping:           {UnitPrice: 18, Unit: "linear foot", Supplier: "Stone & Tile"},
			MaterialDeckMaterial:     {UnitPrice: 8, Unit: "sqft", Supplier: "Deck Supply"},
		},
		Equipment: map[Equipment]EquipmentRate{
			EquipmentExcavator:     {DailyRate: 350, Supplier: "Equipment Rental Co"},
			EquipmentConcreteMixer: {DailyRate: 150, Supplier: "Equipment Rental Co"},
			EquipmentCompactor:     {DailyRate: 80, Supplier: "Equipment Rental Co"},
			EquipmentConcretePump:  {DailyRate: 400, Supplier: "Specialty Pumps"},
		},
		Permits: map[Permit]PermitFee{
			PermitBuilding:   {FlatFee: 500, Timeline: "2-4 weeks"},
			PermitElectrical: {FlatFee: 150, Timeline: "1 week"},
			PermitPlumbing:   {FlatFee: 125, Timeline: "1 week"},
			PermitPool:       {FlatFee: 300, Timeline: "2-3 weeks"},
		},
	}
}

// Validate checks that every identifier the engine formulas reference is
// present. A missing entry is a configuration error and must abort startup;
// it is never a per-request failure.
func (c Catalog) Validate() error {
	for _, t := range engineTasks {
		if _, ok := c.Labor[t]; !ok {
			return fmt.Errorf("pricing catalog: missing labor rate for %q", t)
		}
	}
	for _, m := range engineMaterials {
		if _, ok := c.Materials[m]; !ok {
			return fmt.Errorf("pricing catalog: missing material price for %q", m)
		}
	}
	for _, e := range engineEquipment {
		if _, ok := c.Equipment[e]; !ok {
			return fmt.Errorf("pricing catalog: missing equipment rate for %q", e)
		}
	}
	for _, p := range enginePermits {
		if _, ok := c.Permits[p]; !ok {
			return fmt.Errorf("pricing catalog: missing permit fee for %q", p)
		}
	}
	return nil
}
