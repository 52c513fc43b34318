package feature

// Link labels shown by the catalog front-end.
const (
	LabelEnables      = "Features that this feature enables"
	LabelEnabledBy    = "Features that enable this feature"
	LabelSupersedes   = "Features that this feature supersedes"
	LabelSupersededBy = "Features that supersede this feature"

	// SuffixOptional marks optional supersession entries. They share
	// LabelSupersededBy so both lists render in one section.
	SuffixOptional = " (optional)"

	// LinkLabelName is the result field each link entry is labelled with.
	LinkLabelName = "name"
)

// Link is a labelled group of queries for related features.
// A nil Query means the relationship is not expressed for the feature.
type Link struct {
	Label             string      `json:"label"`
	LinkLabelProperty string      `json:"linkLabelProperty"`
	Query             []QuerySpec `json:"query"`
	LinkLabelPrefix   string      `json:"linkLabelPrefix,omitempty"`
	LinkLabelSuffix   string      `json:"linkLabelSuffix,omitempty"`
}

func makeLink(label string, query []QuerySpec) Link {
	return Link{Label: label, LinkLabelProperty: LinkLabelName, Query: query}
}

// CreateLinks builds the five link groups for f in display order: enables,
// enabled by, supersedes, superseded by, optionally superseded by.
func CreateLinks(f *Feature) []Link {
	optional := makeLink(LabelSupersededBy, f.SupersededByOptionalQuery())
	optional.LinkLabelSuffix = SuffixOptional

	return []Link{
		makeLink(LabelEnables, f.EnablesQuery()),
		makeLink(LabelEnabledBy, f.EnabledByQuery()),
		makeLink(LabelSupersedes, f.SupersedesQuery()),
		makeLink(LabelSupersededBy, f.SupersededByQuery()),
		optional,
	}
}
