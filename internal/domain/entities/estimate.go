package entities

import "time"

// EstimateStatus represents the lifecycle of a generated estimate.
//
// Domain notes:
//   - An estimate is created in pending state when the breakdown is computed.
//   - The customer (or contractor on their behalf) approves, rejects or
//     cancels it; a deposit can only be collected on an approved estimate.
type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusCanceled EstimateStatus = "canceled"
)

// Estimate is the persisted estimate record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - session_id carried as a plain attribute for traceability
//
// The breakdown and project description are stored as JSON documents; the
// engine output is immutable once computed, so there is nothing to update in
// place besides the status.
type Estimate struct {
	ID        string             `json:"id"`
	SessionID string             `json:"session_id"`
	Project   ProjectDescription `json:"project"`
	Breakdown EstimateBreakdown  `json:"breakdown"`
	Status    EstimateStatus     `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
