package report

import (
	"bytes"
	"testing"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/domain/pricing"
)

func sampleEstimate() entities.Estimate {
	project := entities.DefaultProject()
	breakdown := pricing.ComputeEstimate(project, pricing.DefaultCatalog())
	return entities.Estimate{
		ID:        "est-1",
		SessionID: "session-1",
		Project:   project,
		Breakdown: breakdown,
		Status:    entities.EstimateStatusPending,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestRenderEstimatePDF(t *testing.T) {
	got, err := RenderEstimatePDF(sampleEstimate())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Fatalf("not a PDF document, starts with %q", got[:4])
	}
}

func TestRenderEstimatePDF_EmptyBreakdownSections(t *testing.T) {
	e := sampleEstimate()
	e.Breakdown.Equipment = nil
	e.Breakdown.Inventory = nil

	got, err := RenderEstimatePDF(e)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Fatal("not a PDF document")
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1075, "1,075"},
		{17654, "17,654"},
		{1765.4, "1,765.40"},
		{1234567.89, "1,234,567.89"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Errorf("formatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
