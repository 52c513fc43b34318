package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
	"github.com/matzehuels/featurelinks/pkg/feature"
)

type output struct {
	Name                 string             `json:"name,omitempty"`
	Version              string             `json:"version,omitempty"`
	Type                 string             `json:"type"`
	ProvideFeature       *string            `json:"provideFeature"`
	ShortName            string             `json:"shortName,omitempty"`
	LowerCaseShortName   string             `json:"lowerCaseShortName,omitempty"`
	AppliesTo            string             `json:"appliesTo,omitempty"`
	AppliesToFilterInfo  []appliesto.Filter `json:"appliesToFilterInfo,omitempty"`
	RequireFeature       []string           `json:"requireFeature"`
	SupersededBy         []string           `json:"supersededBy"`
	SupersededByOptional []string           `json:"supersededByOptional"`
	RequireFix           []string           `json:"requireFix,omitempty"`
	DownloadPolicy       string             `json:"downloadPolicy,omitempty"`
	InstallPolicy        string             `json:"installPolicy,omitempty"`
	WebDisplayPolicy     string             `json:"webDisplayPolicy,omitempty"`
	Visibility           string             `json:"visibility,omitempty"`
	ProvisionCapability  string             `json:"provisionCapability,omitempty"`
	Java                 *javaOutput        `json:"javaSEVersionRequirements,omitempty"`
	Links                []feature.Link     `json:"links"`
	VanityURL            string             `json:"vanityRelativeURL,omitempty"`
	MatchingKey          string             `json:"matchingKey"`
}

type javaOutput struct {
	MinVersion           string   `json:"minVersion,omitempty"`
	MaxVersion           string   `json:"maxVersion,omitempty"`
	RawRequirements      []string `json:"rawRequirements,omitempty"`
	VersionDisplayString string   `json:"versionDisplayString,omitempty"`
}

// WriteJSON encodes f, including its generated fields and matching key
// digest, as indented JSON.
//
// Absent relationship and query lists encode as null, empty ones as [].
func WriteJSON(f *feature.Feature, w io.Writer) error {
	out := output{
		Name:                 f.Name,
		Version:              f.Version,
		Type:                 string(f.Type),
		ShortName:            f.ShortName,
		LowerCaseShortName:   f.LowerCaseShortName,
		AppliesTo:            f.AppliesTo,
		AppliesToFilterInfo:  f.AppliesToFilters,
		RequireFeature:       f.RequireFeature,
		SupersededBy:         f.SupersededBy,
		SupersededByOptional: f.SupersededByOptional,
		RequireFix:           f.RequireFix,
		DownloadPolicy:       f.DownloadPolicy,
		InstallPolicy:        f.InstallPolicy,
		WebDisplayPolicy:     f.DisplayPolicy,
		Visibility:           f.Visibility,
		ProvisionCapability:  f.ProvisionCapability,
		Links:                f.Links,
		VanityURL:            f.VanityURL,
		MatchingKey:          f.MatchingKey().Digest(),
	}
	if name, ok := f.ProvideFeature(); ok {
		out.ProvideFeature = &name
	}
	if f.Java != nil {
		out.Java = &javaOutput{
			MinVersion:           f.Java.MinVersion,
			MaxVersion:           f.Java.MaxVersion,
			RawRequirements:      f.Java.RawRequirements,
			VersionDisplayString: f.Java.VersionDisplayString,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes f to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(f *feature.Feature, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()
	return WriteJSON(f, file)
}
