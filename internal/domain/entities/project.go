package entities

import "math"

// PoolType is the construction style of the pool. It is collected during the
// conversation and carried on the estimate for display; it does not drive any
// cost formula in the current pricing model.
type PoolType string

const (
	PoolTypeConcrete   PoolType = "concrete"
	PoolTypeFiberglass PoolType = "fiberglass"
	PoolTypeVinyl      PoolType = "vinyl"
)

// Defaults applied when the conversation (or an explicit payload) does not
// pin a field down. These match the demo-mode assumptions of the original
// estimator.
const (
	DefaultSqft     = 600
	DefaultLocation = "Dallas"
	DefaultTimeline = "8-12 weeks"
	DefaultDepthFt  = 6
)

// PoolSize describes the pool footprint. Sqft is the only cost driver;
// length/width are derived for display when not given explicitly.
type PoolSize struct {
	Sqft   int     `json:"sqft"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// ProjectDescription is the normalized set of parameters the pricing engine
// is invoked with. Produced by the assistant extraction or the keyword
// fallback, then passed through Normalize before any computation.
type ProjectDescription struct {
	ProjectType         string   `json:"project_type"`
	Size                PoolSize `json:"size"`
	PoolType            PoolType `json:"pool_type"`
	Location            string   `json:"location"`
	Features            []string `json:"features"`
	Timeline            string   `json:"timeline"`
	SpecialRequirements []string `json:"special_requirements"`
}

// DefaultProject is the project used when nothing could be extracted at all.
func DefaultProject() ProjectDescription {
	p := ProjectDescription{}
	p.Normalize()
	return p
}

// Normalize fills missing or unusable fields with the default policy:
// sqft 600, pool type concrete (unrecognized values included), location
// Dallas, timeline "8-12 weeks". Derived dimensions are recomputed whenever
// they are absent, using a 2:1 rectangle at 6 ft depth.
func (p *ProjectDescription) Normalize() {
	if p.ProjectType == "" {
		p.ProjectType = "Pool Construction"
	}
	if p.Size.Sqft <= 0 {
		p.Size.Sqft = DefaultSqft
	}
	switch p.PoolType {
	case PoolTypeConcrete, PoolTypeFiberglass, PoolTypeVinyl:
	default:
		p.PoolType = PoolTypeConcrete
	}
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	if p.Timeline == "" {
		p.Timeline = DefaultTimeline
	}
	if p.Size.Length <= 0 || p.Size.Width <= 0 {
		sqft := float64(p.Size.Sqft)
		p.Size.Length = math.Sqrt(sqft * 2)
		p.Size.Width = math.Sqrt(sqft / 2)
	}
	if p.Size.Depth <= 0 {
		p.Size.Depth = DefaultDepthFt
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.SpecialRequirements == nil {
		p.SpecialRequirements = []string{}
	}
}
