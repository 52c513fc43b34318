package feature

import "github.com/matzehuels/featurelinks/pkg/appliesto"

// FindVersion returns the minimum version of the first filter that carries
// one. It scans in order and does not compare versions.
func FindVersion(filters []appliesto.Filter) (string, bool) {
	for _, f := range filters {
		if f.MinVersion != nil && f.MinVersion.Value != "" {
			return f.MinVersion.Value, true
		}
	}
	return "", false
}
