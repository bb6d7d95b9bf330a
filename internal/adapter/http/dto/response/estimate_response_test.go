package response

import (
	"testing"
	"time"

	"poolworks/internal/domain/entities"
	"poolworks/internal/domain/pricing"
)

func TestFromEstimate(t *testing.T) {
	project := entities.DefaultProject()
	breakdown := pricing.ComputeEstimate(project, pricing.DefaultCatalog())
	now := time.Now().UTC()

	e := entities.Estimate{
		ID:        "est-1",
		SessionID: "s-1",
		Project:   project,
		Breakdown: breakdown,
		Status:    entities.EstimateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	got := FromEstimate(e)
	if got.EstimateID != "est-1" || got.ID != "est-1" {
		t.Fatalf("ids not mirrored: %+v", got)
	}
	if got.SessionID != "s-1" {
		t.Fatalf("session id = %q", got.SessionID)
	}
	if got.Status != "pending" {
		t.Fatalf("status = %q", got.Status)
	}
	if got.Breakdown.Total != breakdown.Total {
		t.Fatalf("breakdown total = %v, want %v", got.Breakdown.Total, breakdown.Total)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not carried: %+v", got)
	}
}

func TestFromDeposit(t *testing.T) {
	now := time.Now().UTC()
	d := entities.Deposit{
		ID:                 "dep-1",
		EstimateID:         "est-1",
		Amount:             1765.4,
		Date:               now,
		Status:             entities.DepositStatusApproved,
		ProviderPayloadRaw: []byte(`{"status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"status": "approved"},
	}

	got := FromDeposit(d)
	if got.DepositID != "dep-1" || got.ID != "dep-1" {
		t.Fatalf("ids not mirrored: %+v", got)
	}
	if got.Amount != 1765.4 {
		t.Fatalf("amount = %v", got.Amount)
	}
	if got.Status != "approved" {
		t.Fatalf("status = %q", got.Status)
	}
	if got.ProviderPayloadRaw != `{"status":"approved"}` {
		t.Fatalf("raw payload = %q", got.ProviderPayloadRaw)
	}
}

func TestFromInventoryAvailability(t *testing.T) {
	got := FromInventoryAvailability([]entities.InventoryAvailability{
		{
			InventoryItem:     entities.InventoryItem{Name: "REBAR", Quantity: 1200, Unit: "lbs"},
			InStock:           false,
			AvailableQuantity: 300,
			LeadTime:          "3-5 business days",
		},
	})

	if len(got.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(got.Items))
	}
	item := got.Items[0]
	if item.Name != "REBAR" || item.Quantity != 1200 || item.InStock || item.LeadTime != "3-5 business days" {
		t.Fatalf("unexpected item: %+v", item)
	}
}
