package scoring

import _ "embed"

// scoringPolicy is the long-form rubric sent as the system instruction on
// every analysis request. It is configuration data, kept as an asset so
// prompt edits never touch pipeline code.
//
//go:embed policy.txt
var scoringPolicy string

// ScoringPolicy exposes the embedded rubric for inspection (CLI --show-policy).
func ScoringPolicy() string {
	return scoringPolicy
}
