package interfaces

import (
	"context"
	"poolworks/internal/domain/entities"
)

// IDepositRepository abstracts DynamoDB persistence for Deposit.
type IDepositRepository interface {
	Create(ctx context.Context, d entities.Deposit) (entities.Deposit, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Deposit, error)
}
