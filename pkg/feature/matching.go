package feature

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
)

// MatchingKey identifies a logical feature across repository snapshots.
// Two records describe the same feature when their keys are Equal.
type MatchingKey struct {
	Type           ResourceType `json:"type"`
	AppliesTo      []string     `json:"appliesTo"`
	Version        string       `json:"version"`
	ProvideFeature *string      `json:"provideFeature"`
}

// MatchingKey builds the comparison key for f.
//
// The applies-to fragment is regenerated from the AppliesTo header rather
// than copied from AppliesToFilters, because records written by different
// tool levels may store differently shaped filters for the same header.
// Regeneration never validates editions; if it fails anyway the fragment is
// left empty. Records without a header fall back to their stored filters.
func (f *Feature) MatchingKey() MatchingKey {
	key := MatchingKey{Type: f.Type, Version: f.Version}

	if f.AppliesTo != "" {
		if filters, err := appliesto.Parse(f.AppliesTo, false); err == nil {
			key.AppliesTo = appliesto.Canonicalize(filters)
		}
	} else {
		key.AppliesTo = appliesto.Canonicalize(f.AppliesToFilters)
	}

	if name, ok := f.ProvideFeature(); ok {
		key.ProvideFeature = &name
	}
	return key
}

// Equal reports whether k and o identify the same feature.
func (k MatchingKey) Equal(o MatchingKey) bool {
	if k.Type != o.Type || k.Version != o.Version {
		return false
	}
	if (k.ProvideFeature == nil) != (o.ProvideFeature == nil) {
		return false
	}
	if k.ProvideFeature != nil && *k.ProvideFeature != *o.ProvideFeature {
		return false
	}
	return slices.Equal(k.AppliesTo, o.AppliesTo)
}

// Digest returns a SHA-256 hex digest of k. Equal keys have equal digests.
func (k MatchingKey) Digest() string {
	data, _ := json.Marshal(k)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
