package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/featurelinks/pkg/appliesto"
	"github.com/matzehuels/featurelinks/pkg/errors"
	"github.com/matzehuels/featurelinks/pkg/feature"
)

// RecordExt is the file extension of feature record files.
const RecordExt = ".toml"

type record struct {
	Name                 string         `toml:"name"`
	Version              string         `toml:"version"`
	Type                 string         `toml:"type"`
	ProvideFeature       string         `toml:"provide_feature"`
	ShortName            string         `toml:"short_name"`
	AppliesTo            string         `toml:"applies_to"`
	RequireFeature       []string       `toml:"require_feature"`
	SupersededBy         []string       `toml:"superseded_by"`
	SupersededByOptional []string       `toml:"superseded_by_optional"`
	RequireFix           []string       `toml:"require_fix"`
	DownloadPolicy       string         `toml:"download_policy"`
	InstallPolicy        string         `toml:"install_policy"`
	DisplayPolicy        string         `toml:"display_policy"`
	Visibility           string         `toml:"visibility"`
	ProvisionCapability  string         `toml:"provision_capability"`
	Java                 *javaRecord    `toml:"java"`
	Filters              []filterRecord `toml:"filters"`
}

type javaRecord struct {
	MinVersion      string   `toml:"min_version"`
	MaxVersion      string   `toml:"max_version"`
	RawRequirements []string `toml:"raw_requirements"`
}

type filterRecord struct {
	ProductID   string   `toml:"product_id"`
	MinVersion  string   `toml:"min_version"`
	MaxVersion  string   `toml:"max_version"`
	Editions    []string `toml:"editions"`
	InstallType string   `toml:"install_type"`
}

// ReadRecord decodes a TOML feature record from r.
//
// A minimal record looks like:
//
//	provide_feature = "com.ibm.websphere.appserver.servlet-3.1"
//	short_name = "servlet-3.1"
//	applies_to = "com.ibm.websphere.appserver; productVersion=18.0.0.3+"
//	require_feature = ["com.ibm.websphere.appserver.javaeePlatform-7.0"]
//
//	[java]
//	min_version = "1.7.0"
//
// Omitted relationship lists stay absent (nil); an explicit empty array is
// kept as an empty list. Omitted type and policies take the defaults of
// [feature.New].
//
// ReadRecord returns an [errors.ErrCodeInvalidRecord] error if the TOML is
// malformed, contains unknown keys, or holds invalid names or policies, and
// an [errors.ErrCodeInvalidJavaVersion] error for an unsupported Java
// minimum. Records it returns are safe to pass to
// [feature.Feature.UpdateGeneratedFields].
func ReadRecord(r io.Reader) (*feature.Feature, error) {
	var rec record
	md, err := toml.NewDecoder(r).Decode(&rec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidRecord, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return rec.feature(), nil
}

func (rec *record) validate() error {
	if rec.ProvideFeature != "" {
		if err := errors.ValidateFeatureName(rec.ProvideFeature); err != nil {
			return err
		}
	}
	if rec.ShortName != "" {
		if err := errors.ValidateFeatureName(rec.ShortName); err != nil {
			return err
		}
	}
	for _, list := range [][]string{rec.RequireFeature, rec.SupersededBy, rec.SupersededByOptional} {
		for _, name := range list {
			if err := errors.ValidateFeatureName(name); err != nil {
				return err
			}
		}
	}

	policies := []struct {
		field, value string
		allowed      []string
	}{
		{"download policy", rec.DownloadPolicy, []string{feature.DownloadInstaller, feature.DownloadAll}},
		{"install policy", rec.InstallPolicy, []string{feature.InstallManual, feature.InstallWhenSatisfied}},
		{"display policy", rec.DisplayPolicy, []string{feature.DisplayVisible, feature.DisplayHidden}},
		{"visibility", rec.Visibility, []string{
			feature.VisibilityPublic, feature.VisibilityPrivate, feature.VisibilityProtected, feature.VisibilityInstall,
		}},
	}
	for _, p := range policies {
		if err := errors.ValidatePolicy(p.field, p.value, p.allowed...); err != nil {
			return err
		}
	}

	for i, fr := range rec.Filters {
		if fr.ProductID == "" {
			return errors.New(errors.ErrCodeInvalidRecord, "filter %d: missing product_id", i)
		}
	}

	if rec.Java != nil {
		return errors.ValidateJavaVersion(rec.Java.MinVersion)
	}
	return nil
}

func (rec *record) feature() *feature.Feature {
	f := feature.New()
	f.Name = rec.Name
	f.Version = rec.Version
	if rec.Type != "" {
		f.Type = feature.ResourceType(rec.Type)
	}
	if rec.ProvideFeature != "" {
		f.SetProvideFeature(rec.ProvideFeature)
	}
	f.SetShortName(rec.ShortName)
	f.AppliesTo = rec.AppliesTo
	f.RequireFeature = rec.RequireFeature
	f.SupersededBy = rec.SupersededBy
	f.SupersededByOptional = rec.SupersededByOptional
	f.RequireFix = rec.RequireFix
	if rec.DownloadPolicy != "" {
		f.DownloadPolicy = rec.DownloadPolicy
	}
	if rec.InstallPolicy != "" {
		f.InstallPolicy = rec.InstallPolicy
	}
	f.DisplayPolicy = rec.DisplayPolicy
	f.Visibility = rec.Visibility
	f.ProvisionCapability = rec.ProvisionCapability
	if rec.Java != nil {
		f.SetJavaRequirements(rec.Java.MinVersion, rec.Java.MaxVersion, rec.Java.RawRequirements)
	}
	for _, fr := range rec.Filters {
		f.AppliesToFilters = append(f.AppliesToFilters, fr.filter())
	}
	return f
}

func (fr filterRecord) filter() appliesto.Filter {
	out := appliesto.Filter{
		ProductID:   fr.ProductID,
		InstallType: fr.InstallType,
	}
	for _, e := range fr.Editions {
		code, name := appliesto.Edition(e)
		out.RawEditions = append(out.RawEditions, code)
		out.Editions = append(out.Editions, name)
	}
	if fr.MinVersion != "" {
		out.MinVersion = &appliesto.FilterVersion{Value: fr.MinVersion, Inclusive: true, Label: fr.MinVersion}
	}
	if fr.MaxVersion != "" {
		out.MaxVersion = &appliesto.FilterVersion{Value: fr.MaxVersion, Inclusive: true, Label: fr.MaxVersion}
		out.HasMaxVersion = true
	}
	return out
}

// ImportRecord reads the TOML record file at path.
//
// The error wraps the underlying cause with the file path for context; a
// missing file is reported as [errors.ErrCodeFileNotFound].
func ImportRecord(path string) (*feature.Feature, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := ReadRecord(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// ImportDir reads every record file directly inside dir, in file name order.
// Subdirectories and files without [RecordExt] are skipped.
func ImportDir(dir string) ([]*feature.Feature, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == RecordExt {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	features := make([]*feature.Feature, 0, len(names))
	for _, name := range names {
		f, err := ImportRecord(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}
