package feature

import (
	"slices"
	"strings"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
)

// ResourceType categorizes a catalog entry.
type ResourceType string

// TypeFeature is the resource type of installable features.
const TypeFeature ResourceType = "com.ibm.websphere.Feature"

// Policy literals carried on a feature record.
const (
	DownloadInstaller = "INSTALLER"
	DownloadAll       = "ALL"

	InstallManual        = "MANUAL"
	InstallWhenSatisfied = "WHEN_SATISFIED"

	DisplayVisible = "VISIBLE"
	DisplayHidden  = "HIDDEN"

	VisibilityPublic    = "PUBLIC"
	VisibilityPrivate   = "PRIVATE"
	VisibilityProtected = "PROTECTED"
	VisibilityInstall   = "INSTALL"
)

// Feature is a catalog entry for an installable feature together with its
// generated presentation fields.
//
// Relationship slices distinguish nil (relationship not declared) from empty
// (declared with no members); the generated query groups carry that
// distinction through.
type Feature struct {
	Name    string
	Version string
	Type    ResourceType

	ShortName          string
	LowerCaseShortName string

	RequireFeature       []string
	SupersededBy         []string
	SupersededByOptional []string
	RequireFix           []string

	AppliesTo        string
	AppliesToFilters []appliesto.Filter
	Java             *JavaRequirements

	DownloadPolicy      string
	InstallPolicy       string
	DisplayPolicy       string
	Visibility          string
	ProvisionCapability string

	// Generated by UpdateGeneratedFields.
	Links     []Link
	VanityURL string

	provideFeature *string
}

// New returns a feature record with the defaults of a newly created entry.
func New() *Feature {
	return &Feature{
		Type:           TypeFeature,
		DownloadPolicy: DownloadInstaller,
		InstallPolicy:  InstallManual,
	}
}

// SetProvideFeature records the symbolic name this feature provides,
// replacing any previous value.
func (f *Feature) SetProvideFeature(name string) {
	f.provideFeature = &name
}

// ClearProvideFeature removes the provided symbolic name.
func (f *Feature) ClearProvideFeature() {
	f.provideFeature = nil
}

// ProvideFeature returns the provided symbolic name, if any.
func (f *Feature) ProvideFeature() (string, bool) {
	if f.provideFeature == nil {
		return "", false
	}
	return *f.provideFeature, true
}

// SetShortName sets the short name and its lower-case search form.
func (f *Feature) SetShortName(name string) {
	f.ShortName = name
	f.LowerCaseShortName = strings.ToLower(name)
}

// AddRequireFeature appends a required symbolic name.
func (f *Feature) AddRequireFeature(name string) {
	f.RequireFeature = append(f.RequireFeature, name)
}

// AddSupersededBy appends a mandatory superseding feature short name.
func (f *Feature) AddSupersededBy(name string) {
	f.SupersededBy = append(f.SupersededBy, name)
}

// AddSupersededByOptional appends an optional superseding feature short name.
func (f *Feature) AddSupersededByOptional(name string) {
	f.SupersededByOptional = append(f.SupersededByOptional, name)
}

// SetJavaRequirements replaces the Java runtime requirements. Any previously
// generated display string is discarded.
func (f *Feature) SetJavaRequirements(minimum, maximum string, raw []string) {
	f.Java = &JavaRequirements{
		MinVersion:      minimum,
		MaxVersion:      maximum,
		RawRequirements: slices.Clone(raw),
	}
}

// CopyFieldsFrom copies the feature-specific fields of from onto f. Slices,
// including the link queries, are copied rather than shared.
func (f *Feature) CopyFieldsFrom(from *Feature) {
	f.AppliesTo = from.AppliesTo
	f.DisplayPolicy = from.DisplayPolicy
	f.InstallPolicy = from.InstallPolicy
	f.Links = cloneLinks(from.Links)
	if name, ok := from.ProvideFeature(); ok {
		f.SetProvideFeature(name)
	} else {
		f.ClearProvideFeature()
	}
	f.ProvisionCapability = from.ProvisionCapability
	f.RequireFeature = slices.Clone(from.RequireFeature)
	f.Visibility = from.Visibility
	f.SetShortName(from.ShortName)
	f.VanityURL = from.VanityURL
}

func cloneLinks(links []Link) []Link {
	if links == nil {
		return nil
	}
	out := make([]Link, len(links))
	for i, l := range links {
		out[i] = l
		if l.Query == nil {
			continue
		}
		out[i].Query = make([]QuerySpec, len(l.Query))
		for j, q := range l.Query {
			out[i].Query[j] = slices.Clone(q)
		}
	}
	return out
}
