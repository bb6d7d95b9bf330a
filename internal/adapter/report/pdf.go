// Package report renders printable estimate documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"poolworks/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

const footerNotice = "This estimate is valid for 30 days and subject to change based on material costs and site conditions."

// RenderEstimatePDF renders the full estimate report: project details, cost
// summary, the four breakdown sections, the phase timeline and the inventory
// requirements. The layout follows the customer-facing estimate sheet.
func RenderEstimatePDF(e entities.Estimate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-25)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(102, 102, 102)
		pdf.MultiCell(0, 4, footerNotice, "", "C", false)
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "Construction Estimate Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Generated: "+time.Now().Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	writeProjectDetails(pdf, e.Project)
	writeCostSummary(pdf, e.Breakdown)
	writeLabor(pdf, e.Breakdown)
	writeMaterials(pdf, e.Breakdown)
	writeEquipment(pdf, e.Breakdown)
	writePermits(pdf, e.Breakdown)

	pdf.AddPage()
	writeTimeline(pdf, e.Breakdown.Timeline)
	writeInventory(pdf, e.Breakdown.Inventory)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, size float64, title string) {
	pdf.SetFont("Helvetica", "BU", size)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeProjectDetails(pdf *gofpdf.Fpdf, p entities.ProjectDescription) {
	sectionTitle(pdf, 16, "Project Details")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "Project Type: "+p.ProjectType, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Size: %d sq ft", p.Size.Sqft), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Type: "+string(p.PoolType), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Location: "+p.Location, "", 1, "L", false, 0, "")
	pdf.Ln(8)
}

func writeCostSummary(pdf *gofpdf.Fpdf, b entities.EstimateBreakdown) {
	sectionTitle(pdf, 16, "Cost Summary")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Estimate: $%s", formatMoney(b.Total)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeLabor(pdf *gofpdf.Fpdf, b entities.EstimateBreakdown) {
	sectionTitle(pdf, 14, "Labor Breakdown")
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range b.Labor {
		line := fmt.Sprintf("%s: %d hrs @ $%s/hr = $%s", l.Task, l.Hours, formatMoney(l.Rate), formatMoney(l.Cost))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	writeSubtotal(pdf, b.LaborTotal)
}

func writeMaterials(pdf *gofpdf.Fpdf, b entities.EstimateBreakdown) {
	sectionTitle(pdf, 14, "Materials Breakdown")
	pdf.SetFont("Helvetica", "", 11)
	for _, m := range b.Materials {
		line := fmt.Sprintf("%s: %d %s @ $%s = $%s", m.Item, m.Quantity, m.Unit, formatMoney(m.UnitPrice), formatMoney(m.Cost))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		writeSupplier(pdf, m.Supplier)
	}
	writeSubtotal(pdf, b.MaterialsTotal)
}

func writeEquipment(pdf *gofpdf.Fpdf, b entities.EstimateBreakdown) {
	if len(b.Equipment) == 0 {
		return
	}
	sectionTitle(pdf, 14, "Equipment Rental")
	pdf.SetFont("Helvetica", "", 11)
	for _, eq := range b.Equipment {
		line := fmt.Sprintf("%s: %d days @ $%s = $%s", eq.Item, eq.Days, formatMoney(eq.DailyRate), formatMoney(eq.Cost))
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		writeSupplier(pdf, eq.Supplier)
	}
	writeSubtotal(pdf, b.EquipmentTotal)
}

func writePermits(pdf *gofpdf.Fpdf, b entities.EstimateBreakdown) {
	sectionTitle(pdf, 14, "Permits & Compliance")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range b.Permits {
		line := fmt.Sprintf("%s: $%s (Timeline: %s)", p.Permit, formatMoney(p.Cost), p.Timeline)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	writeSubtotal(pdf, b.PermitsTotal)
}

func writeTimeline(pdf *gofpdf.Fpdf, t entities.Timeline) {
	sectionTitle(pdf, 16, "Project Timeline")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "Estimated Duration: "+t.Total, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	for _, phase := range t.Phases {
		pdf.CellFormat(0, 6, fmt.Sprintf("- %s: %s", phase.Name, phase.Duration), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
}

func writeInventory(pdf *gofpdf.Fpdf, items []entities.InventoryItem) {
	sectionTitle(pdf, 16, "Inventory Requirements")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range items {
		pdf.CellFormat(0, 6, fmt.Sprintf("- %s: %d %s", item.Name, item.Quantity, item.Unit), "", 1, "L", false, 0, "")
	}
}

func writeSupplier(pdf *gofpdf.Fpdf, supplier string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "    Supplier: "+supplier, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
}

func writeSubtotal(pdf *gofpdf.Fpdf, total float64) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Subtotal: $"+formatMoney(total), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

// formatMoney renders a dollar amount with thousands separators, dropping the
// cents when the value is whole.
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	s := fmt.Sprintf("%d", whole)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	result := string(out)
	if cents > 0 {
		result = fmt.Sprintf("%s.%02d", result, cents)
	}
	if neg {
		result = "-" + result
	}
	return result
}
