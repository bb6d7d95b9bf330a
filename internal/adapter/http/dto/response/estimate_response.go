package response

import (
	"time"

	"poolworks/internal/domain/entities"
)

// EstimateResponse is the full estimate returned to the panel: the normalized
// project, the complete cost breakdown and the lifecycle status.
type EstimateResponse struct {
	EstimateID string                      `json:"estimate_id"`
	ID         string                      `json:"id"`
	SessionID  string                      `json:"session_id"`
	Project    entities.ProjectDescription `json:"project"`
	Breakdown  entities.EstimateBreakdown  `json:"breakdown"`
	Status     string                      `json:"status"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		EstimateID: e.ID,
		ID:         e.ID,
		SessionID:  e.SessionID,
		Project:    e.Project,
		Breakdown:  e.Breakdown,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
