// Package extract derives a project description from free conversation text
// when no AI extraction is available. It is a deliberately simple keyword
// scanner; callers fall back to the default project policy when it finds no
// usable signal.
package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"poolworks/internal/domain/entities"
)

// ErrUnparseableInput reports that the text contained no recognizable project
// parameter at all. The caller decides the defaulting policy.
var ErrUnparseableInput = errors.New("extract: no project parameters found in input")

var sqftPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:sq\s*ft|sqft|square\s*feet)`)

var knownCities = []string{"dallas", "houston", "austin", "miami", "phoenix", "los angeles", "atlanta"}

// featureKeywords maps a substring trigger to the canonical feature name.
// Ordered so output is stable.
var featureKeywords = []struct {
	trigger string
	feature string
}{
	{"heat", "heating"},
	{"light", "lighting"},
	{"spa", "spa"},
}

// ParseProject scans conversation text for project parameters. Recognized
// fields are set on the result; everything else is left for Normalize to
// default. Returns ErrUnparseableInput when not a single field matched.
func ParseProject(text string) (entities.ProjectDescription, error) {
	lower := strings.ToLower(text)
	var p entities.ProjectDescription
	matched := false

	if m := sqftPattern.FindStringSubmatch(text); m != nil {
		if sqft, err := strconv.Atoi(m[1]); err == nil && sqft > 0 {
			p.Size.Sqft = sqft
			matched = true
		}
	}

	if strings.Contains(lower, "fiberglass") {
		p.PoolType = entities.PoolTypeFiberglass
		matched = true
	} else if strings.Contains(lower, "vinyl") {
		p.PoolType = entities.PoolTypeVinyl
		matched = true
	} else if strings.Contains(lower, "concrete") {
		p.PoolType = entities.PoolTypeConcrete
		matched = true
	}

	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			p.Location = titleCase(city)
			matched = true
			break
		}
	}

	for _, kw := range featureKeywords {
		if strings.Contains(lower, kw.trigger) {
			p.Features = append(p.Features, kw.feature)
			matched = true
		}
	}

	if !matched {
		return entities.ProjectDescription{}, ErrUnparseableInput
	}

	p.Normalize()
	return p, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
