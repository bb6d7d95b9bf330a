package extract

import (
	"errors"
	"testing"

	"poolworks/internal/domain/entities"
)

func TestParseProject(t *testing.T) {
	t.Run("size and type and city", func(t *testing.T) {
		p, err := ParseProject("We want a 800 sqft fiberglass pool in Austin with heating")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Size.Sqft != 800 {
			t.Fatalf("sqft = %d, want 800", p.Size.Sqft)
		}
		if p.PoolType != entities.PoolTypeFiberglass {
			t.Fatalf("pool type = %s, want fiberglass", p.PoolType)
		}
		if p.Location != "Austin" {
			t.Fatalf("location = %q, want Austin", p.Location)
		}
		if len(p.Features) != 1 || p.Features[0] != "heating" {
			t.Fatalf("features = %v, want [heating]", p.Features)
		}
	})

	t.Run("sqft spelled out", func(t *testing.T) {
		p, err := ParseProject("about 450 square feet")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Size.Sqft != 450 {
			t.Fatalf("sqft = %d, want 450", p.Size.Sqft)
		}
	})

	t.Run("partial match is defaulted", func(t *testing.T) {
		p, err := ParseProject("thinking about a vinyl liner")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.PoolType != entities.PoolTypeVinyl {
			t.Fatalf("pool type = %s, want vinyl", p.PoolType)
		}
		if p.Size.Sqft != entities.DefaultSqft {
			t.Fatalf("sqft = %d, want default %d", p.Size.Sqft, entities.DefaultSqft)
		}
		if p.Location != entities.DefaultLocation {
			t.Fatalf("location = %q, want default %q", p.Location, entities.DefaultLocation)
		}
	})

	t.Run("multiple features ordered", func(t *testing.T) {
		p, err := ParseProject("concrete pool with spa, lighting and a heater")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"heating", "lighting", "spa"}
		if len(p.Features) != len(want) {
			t.Fatalf("features = %v, want %v", p.Features, want)
		}
		for i := range want {
			if p.Features[i] != want[i] {
				t.Fatalf("features = %v, want %v", p.Features, want)
			}
		}
	})

	t.Run("no signal", func(t *testing.T) {
		_, err := ParseProject("hello, can you help me?")
		if !errors.Is(err, ErrUnparseableInput) {
			t.Fatalf("expected ErrUnparseableInput, got %v", err)
		}
	})

	t.Run("two word city", func(t *testing.T) {
		p, err := ParseProject("we live in los angeles")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Location != "Los Angeles" {
			t.Fatalf("location = %q, want %q", p.Location, "Los Angeles")
		}
	})
}
