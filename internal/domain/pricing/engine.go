package pricing

import (
	"fmt"
	"math"
	"strings"

	"poolworks/internal/domain/entities"
)

const (
	overheadRate = 0.15
	workdayHours = 8
	workweekDays = 5
)

// Identifier sets the engine formulas reference, in computation order.
// Catalog.Validate checks these at startup.
var (
	engineTasks     = []Task{TaskExcavation, TaskConcreteWork, TaskPlumbing, TaskElectrical, TaskFinishing}
	engineMaterials = []Material{MaterialConcrete, MaterialRebar, MaterialPoolLiner, MaterialPoolPump, MaterialFilterSystem, MaterialPoolTile}
	engineEquipment = []Equipment{EquipmentExcavator, EquipmentConcretePump, EquipmentCompactor}
	enginePermits   = []Permit{PermitBuilding, PermitPool, PermitPlumbing, PermitElectrical}
)

// ComputeEstimate derives the full cost breakdown for a project from the
// catalog. It is a pure function: deterministic, side-effect free, total for
// any project with sqft >= 1. Pool type, location and features do not enter
// any formula; they only parameterize the descriptive fields of the output.
func ComputeEstimate(project entities.ProjectDescription, catalog Catalog) entities.EstimateBreakdown {
	sqft := project.Size.Sqft

	hours := map[Task]int{
		TaskExcavation:   ceilDiv(sqft, 50),
		TaskConcreteWork: ceilDiv(sqft, 30),
		TaskPlumbing:     ceilDiv(sqft, 100) + 16,
		TaskElectrical:   12,
		TaskFinishing:    ceilDiv(sqft, 40),
	}

	var b entities.EstimateBreakdown
	totalHours := 0
	for _, task := range engineTasks {
		rate := catalog.Labor[task].HourlyRate
		line := entities.LaborLine{
			Task:  string(task),
			Hours: hours[task],
			Rate:  rate,
			Cost:  float64(hours[task]) * rate,
		}
		b.Labor = append(b.Labor, line)
		b.LaborTotal += line.Cost
		totalHours += line.Hours
	}

	quantities := map[Material]int{
		MaterialConcrete:     ceilDiv(sqft, 80),
		MaterialRebar:        sqft * 2,
		MaterialPoolLiner:    sqft,
		MaterialPoolPump:     1,
		MaterialFilterSystem: 1,
		MaterialPoolTile:     int(math.Ceil(float64(sqft) * 0.3)),
	}

	for _, item := range engineMaterials {
		price := catalog.Materials[item]
		line := entities.MaterialLine{
			Item:      string(item),
			Quantity:  quantities[item],
			Unit:      price.Unit,
			UnitPrice: price.UnitPrice,
			Supplier:  price.Supplier,
			Cost:      float64(quantities[item]) * price.UnitPrice,
		}
		b.Materials = append(b.Materials, line)
		b.MaterialsTotal += line.Cost
	}

	days := map[Equipment]int{
		EquipmentExcavator:    ceilDiv(hours[TaskExcavation], workdayHours),
		EquipmentConcretePump: ceilDiv(hours[TaskConcreteWork], workdayHours),
		EquipmentCompactor:    3,
	}

	for _, item := range engineEquipment {
		rate := catalog.Equipment[item]
		line := entities.EquipmentLine{
			Item:      string(item),
			Days:      days[item],
			DailyRate: rate.DailyRate,
			Supplier:  rate.Supplier,
			Cost:      float64(days[item]) * rate.DailyRate,
		}
		b.Equipment = append(b.Equipment, line)
		b.EquipmentTotal += line.Cost
	}

	for _, permit := range enginePermits {
		fee := catalog.Permits[permit]
		b.Permits = append(b.Permits, entities.PermitLine{
			Permit:   string(permit),
			Cost:     fee.FlatFee,
			Timeline: fee.Timeline,
		})
		b.PermitsTotal += fee.FlatFee
	}

	totalWorkDays := ceilDiv(totalHours, workdayHours)
	b.Timeline = entities.Timeline{
		Total: fmt.Sprintf("%d weeks", ceilDiv(totalWorkDays, workweekDays)),
		Phases: []entities.TimelinePhase{
			{Name: "Permits & Planning", Duration: "2-4 weeks"},
			{Name: "Excavation", Duration: fmt.Sprintf("%d days", ceilDiv(hours[TaskExcavation], workdayHours))},
			{Name: "Structural Work", Duration: fmt.Sprintf("%d days", ceilDiv(hours[TaskConcreteWork], workdayHours))},
			{Name: "Plumbing & Electrical", Duration: fmt.Sprintf("%d days", ceilDiv(hours[TaskPlumbing]+hours[TaskElectrical], workdayHours))},
			{Name: "Finishing & Inspection", Duration: fmt.Sprintf("%d days", ceilDiv(hours[TaskFinishing], workdayHours))},
		},
	}

	for _, m := range b.Materials {
		b.Inventory = append(b.Inventory, entities.InventoryItem{
			Name:     displayName(m.Item),
			Quantity: m.Quantity,
			Unit:     m.Unit,
		})
	}

	b.Overhead = b.LaborTotal * overheadRate
	b.Total = math.Round(b.LaborTotal + b.MaterialsTotal + b.EquipmentTotal + b.PermitsTotal + b.Overhead)
	return b
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func displayName(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "_", " "))
}
