package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the deposit payment processing outcome.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is a down payment collected on an approved estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type Deposit struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     DepositStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
