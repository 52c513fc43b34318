package feature

import (
	"strings"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
)

const vanityPrefix = "features-"

// UpdateGeneratedFields recomputes every generated field of f: the applies-to
// filters (when an AppliesTo header is set), the link groups, the Java
// display string and the vanity URL. Previous values are replaced.
//
// With validateEditions set, an unknown edition in the header is returned as
// an error and f is left unchanged. An unvalidated Java minimum panics; see
// [JavaDisplayString].
func (f *Feature) UpdateGeneratedFields(validateEditions bool) error {
	filters := f.AppliesToFilters
	if f.AppliesTo != "" {
		parsed, err := appliesto.Parse(f.AppliesTo, validateEditions)
		if err != nil {
			return err
		}
		filters = parsed
	}

	// Links read the filters from the record, so stage them on a copy.
	staged := *f
	staged.AppliesToFilters = filters
	links := CreateLinks(&staged)

	var java *JavaRequirements
	if f.Java != nil {
		staged := *f.Java
		staged.ResolveDisplayString()
		java = &staged
	}

	f.AppliesToFilters = filters
	f.Links = links
	if java != nil {
		f.Java.VersionDisplayString = java.VersionDisplayString
	}
	if name, ok := f.ProvideFeature(); ok {
		f.VanityURL = vanityPrefix + vanitySafe(name)
	}
	return nil
}

// vanitySafe replaces characters that are not URL path safe.
func vanitySafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
