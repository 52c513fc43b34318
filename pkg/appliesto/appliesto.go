package appliesto

import (
	"slices"
	"strings"

	"github.com/matzehuels/featurelinks/pkg/errors"
)

// Attribute names recognized in a product clause.
const (
	attrVersion     = "productVersion"
	attrEdition     = "productEdition"
	attrInstallType = "productInstallType"
)

// editionNames maps raw edition codes to their display names.
var editionNames = map[string]string{
	"BASE":         "Base",
	"BASE_ILAN":    "Base (ILAN)",
	"CORE":         "Liberty Core",
	"DEVELOPERS":   "Developers",
	"EXPRESS":      "Express",
	"ND":           "Network Deployment",
	"zOS":          "z/OS",
	"OPEN":         "Open",
	"EARLY_ACCESS": "Early Access",
}

// FilterVersion is one bound of a product version range.
type FilterVersion struct {
	Value     string `json:"value"`
	Inclusive bool   `json:"inclusive"`
	Label     string `json:"label,omitempty"`
}

// Filter describes which product, version range and editions a feature
// applies to.
type Filter struct {
	ProductID     string         `json:"productId"`
	MinVersion    *FilterVersion `json:"minVersion,omitempty"`
	MaxVersion    *FilterVersion `json:"maxVersion,omitempty"`
	HasMaxVersion bool           `json:"hasMaxVersion,omitempty"`
	Editions      []string       `json:"editions,omitempty"`
	RawEditions   []string       `json:"rawEditions,omitempty"`
	InstallType   string         `json:"installType,omitempty"`
}

// Parse converts an applies-to header into filters, one per product clause,
// in header order. An empty header yields no filters.
//
// With validateEditions set, an edition code outside the known set is an
// [errors.ErrCodeInvalidEdition] error; otherwise the raw code is kept as its
// own display name.
func Parse(header string, validateEditions bool) ([]Filter, error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	var filters []Filter
	for _, clause := range split(header, ',') {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		f, err := parseClause(clause, validateEditions)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func parseClause(clause string, validateEditions bool) (Filter, error) {
	parts := split(clause, ';')
	f := Filter{ProductID: strings.TrimSpace(parts[0])}
	if f.ProductID == "" {
		return Filter{}, errors.New(errors.ErrCodeInvalidAppliesTo, "missing product id in clause %q", strings.TrimSpace(clause))
	}

	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)

		switch key {
		case attrVersion:
			setVersion(&f, value)
		case attrEdition:
			if err := setEditions(&f, value, validateEditions); err != nil {
				return Filter{}, err
			}
		case attrInstallType:
			f.InstallType = value
		}
	}
	return f, nil
}

// setVersion applies "V+" (V or later) or "V" (exactly V).
func setVersion(f *Filter, value string) {
	if value == "" {
		return
	}
	if v, open := strings.CutSuffix(value, "+"); open {
		f.MinVersion = &FilterVersion{Value: v, Inclusive: true, Label: v}
		return
	}
	f.MinVersion = &FilterVersion{Value: value, Inclusive: true, Label: value}
	f.MaxVersion = &FilterVersion{Value: value, Inclusive: true, Label: value}
	f.HasMaxVersion = true
}

func setEditions(f *Filter, value string, validate bool) error {
	for _, raw := range strings.Split(value, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, known := editionNames[raw]
		if !known {
			if validate {
				return errors.New(errors.ErrCodeInvalidEdition, "unknown product edition %q for %s", raw, f.ProductID)
			}
			name = raw
		}
		f.RawEditions = append(f.RawEditions, raw)
		f.Editions = append(f.Editions, name)
	}
	return nil
}

// split cuts s on sep, ignoring separators inside double quotes.
func split(s string, sep rune) []string {
	var (
		parts   []string
		b       strings.Builder
		inQuote bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == sep && !inQuote:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(parts, b.String())
}

// Canonical returns a comparison string for f that ignores edition order and
// whether editions were recorded as codes or display names.
func (f Filter) Canonical() string {
	editions := f.RawEditions
	if len(editions) == 0 {
		editions = f.Editions
	}
	editions = editionCodes(editions)
	slices.Sort(editions)

	var b strings.Builder
	b.WriteString(f.ProductID)
	b.WriteString("|min=")
	writeVersion(&b, f.MinVersion)
	b.WriteString("|max=")
	if f.HasMaxVersion {
		writeVersion(&b, f.MaxVersion)
	}
	b.WriteString("|editions=")
	b.WriteString(strings.Join(editions, ","))
	b.WriteString("|install=")
	b.WriteString(f.InstallType)
	return b.String()
}

func writeVersion(b *strings.Builder, v *FilterVersion) {
	if v == nil {
		return
	}
	b.WriteString(v.Value)
	if !v.Inclusive {
		b.WriteString("(exclusive)")
	}
}

// Edition resolves an edition written either as a raw code or as a display
// name. Unknown editions are returned unchanged in both results.
func Edition(s string) (code, name string) {
	if name, ok := editionNames[s]; ok {
		return s, name
	}
	for c, name := range editionNames {
		if name == s {
			return c, name
		}
	}
	return s, s
}

// editionCodes maps each edition to its raw code where known.
func editionCodes(editions []string) []string {
	codes := make([]string, 0, len(editions))
	for _, e := range editions {
		code, _ := Edition(e)
		codes = append(codes, code)
	}
	return codes
}

// Canonicalize returns the sorted canonical strings of filters. The result is
// nil for no filters.
func Canonicalize(filters []Filter) []string {
	if len(filters) == 0 {
		return nil
	}
	out := make([]string, len(filters))
	for i, f := range filters {
		out[i] = f.Canonical()
	}
	slices.Sort(out)
	return out
}
