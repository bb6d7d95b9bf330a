package request

import (
	"strings"

	"poolworks/internal/domain/entities"
)

// PoolSizeRequest mirrors the pool footprint fields of the project payload.
type PoolSizeRequest struct {
	Sqft   int     `json:"sqft"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// ProjectRequest is the optional explicit project override. Any field left at
// its zero value is filled in by the defaulting policy.
type ProjectRequest struct {
	ProjectType         string          `json:"project_type"`
	Size                PoolSizeRequest `json:"size"`
	PoolType            string          `json:"pool_type"`
	Location            string          `json:"location"`
	Features            []string        `json:"features"`
	Timeline            string          `json:"timeline"`
	SpecialRequirements []string        `json:"special_requirements"`
}

// EstimateRequest asks for an estimate to be generated for a session. When
// Project is present it takes precedence over whatever the conversation says.
type EstimateRequest struct {
	SessionID string          `json:"session_id" binding:"required"`
	Project   *ProjectRequest `json:"project"`
}

func (r EstimateRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

// ResolveProject maps the optional override to the domain type; nil when the
// caller did not provide one.
func (r EstimateRequest) ResolveProject() *entities.ProjectDescription {
	if r.Project == nil {
		return nil
	}
	p := entities.ProjectDescription{
		ProjectType: strings.TrimSpace(r.Project.ProjectType),
		Size: entities.PoolSize{
			Sqft:   r.Project.Size.Sqft,
			Length: r.Project.Size.Length,
			Width:  r.Project.Size.Width,
			Depth:  r.Project.Size.Depth,
		},
		PoolType:            entities.PoolType(strings.ToLower(strings.TrimSpace(r.Project.PoolType))),
		Location:            strings.TrimSpace(r.Project.Location),
		Features:            r.Project.Features,
		Timeline:            strings.TrimSpace(r.Project.Timeline),
		SpecialRequirements: r.Project.SpecialRequirements,
	}
	return &p
}
