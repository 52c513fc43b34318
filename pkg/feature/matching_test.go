package feature

import (
	"testing"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
)

func matchingFeature(appliesTo string) *Feature {
	f := New()
	f.Version = "18.0.0.3"
	f.SetProvideFeature("com.ibm.websphere.appserver.servlet-3.1")
	f.AppliesTo = appliesTo
	return f
}

func TestMatchingKeyEqual(t *testing.T) {
	a := matchingFeature(`com.ibm.websphere.appserver; productVersion=18.0.0.3+; productEdition="BASE,ND", com.ibm.other; productVersion=1.0`)
	b := matchingFeature(`com.ibm.other; productVersion=1.0, com.ibm.websphere.appserver; productEdition="ND,BASE"; productVersion=18.0.0.3+`)

	// Stored filters differ but are ignored when a header is present.
	a.AppliesToFilters = []appliesto.Filter{{ProductID: "stale"}}

	ka, kb := a.MatchingKey(), b.MatchingKey()
	if !ka.Equal(kb) {
		t.Errorf("keys should be equal:\n%+v\n%+v", ka, kb)
	}
	if ka.Digest() != kb.Digest() {
		t.Error("equal keys should have equal digests")
	}
}

func TestMatchingKeyStoredFilters(t *testing.T) {
	a := matchingFeature("")
	a.AppliesToFilters = []appliesto.Filter{
		{ProductID: "x", MinVersion: &appliesto.FilterVersion{Value: "1.0", Inclusive: true}, Editions: []string{"Base", "Network Deployment"}},
		{ProductID: "y"},
	}
	b := matchingFeature("")
	b.AppliesToFilters = []appliesto.Filter{
		{ProductID: "y"},
		{ProductID: "x", MinVersion: &appliesto.FilterVersion{Value: "1.0", Inclusive: true, Label: "1.0"}, RawEditions: []string{"ND", "BASE"}},
	}

	if !a.MatchingKey().Equal(b.MatchingKey()) {
		t.Errorf("keys should be equal:\n%+v\n%+v", a.MatchingKey(), b.MatchingKey())
	}
}

func TestMatchingKeyDiffers(t *testing.T) {
	base := func() *Feature { return matchingFeature("com.ibm.websphere.appserver; productVersion=18.0.0.3+") }

	tests := []struct {
		name   string
		mutate func(f *Feature)
	}{
		{"type", func(f *Feature) { f.Type = "com.ibm.websphere.Addon" }},
		{"version", func(f *Feature) { f.Version = "19.0.0.1" }},
		{"provide feature", func(f *Feature) { f.SetProvideFeature("other") }},
		{"no provide feature", func(f *Feature) { f.ClearProvideFeature() }},
		{"applies to", func(f *Feature) { f.AppliesTo = "com.ibm.websphere.appserver; productVersion=19.0.0.1+" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)
			if a.MatchingKey().Equal(b.MatchingKey()) {
				t.Error("keys should differ")
			}
			if a.MatchingKey().Digest() == b.MatchingKey().Digest() {
				t.Error("digests should differ")
			}
		})
	}
}

func TestMatchingKeyIgnoresEditionValidation(t *testing.T) {
	f := matchingFeature(`com.ibm.websphere.appserver; productVersion=18.0.0.3+; productEdition="GOLD"`)
	key := f.MatchingKey()
	if len(key.AppliesTo) != 1 {
		t.Errorf("AppliesTo = %v, want one lenient fragment", key.AppliesTo)
	}
}

func TestMatchingKeySwallowsParseFailure(t *testing.T) {
	f := matchingFeature("; productVersion=1.0")
	key := f.MatchingKey()
	if key.AppliesTo != nil {
		t.Errorf("AppliesTo = %v, want nil", key.AppliesTo)
	}
	if key.ProvideFeature == nil || *key.ProvideFeature != "com.ibm.websphere.appserver.servlet-3.1" {
		t.Errorf("ProvideFeature = %v", key.ProvideFeature)
	}
	if key.Version != "18.0.0.3" || key.Type != TypeFeature {
		t.Errorf("key = %+v", key)
	}
}

func TestMatchingKeyProvideFeature(t *testing.T) {
	a := MatchingKey{ProvideFeature: strp("x")}
	b := MatchingKey{ProvideFeature: strp("x")}
	if !a.Equal(b) {
		t.Error("keys with equal provide feature values should be equal")
	}
	if a.Equal(MatchingKey{}) {
		t.Error("absent provide feature should not equal a present one")
	}
}
