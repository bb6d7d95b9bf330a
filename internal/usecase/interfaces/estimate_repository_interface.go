package interfaces

import (
	"context"
	"poolworks/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - store a freshly computed estimate
//   - fetch an estimate to render it (panel or PDF) or to collect a deposit
//   - move an estimate through its status lifecycle
//
// A zero-value Estimate with empty ID signals "not found"; repositories do
// not return their own not-found errors.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}
