// Package snapshot pairs feature records across two repository snapshots.
//
// Records are paired by [feature.MatchingKey]: two records describe the same
// logical feature when their keys are equal, even if they were written by
// different tool levels and store their applies-to filters differently.
//
//	before, _ := io.ImportDir("snapshots/2018-03")
//	after, _ := io.ImportDir("snapshots/2018-06")
//	res := snapshot.Diff(ctx, before, after, snapshot.Options{})
//	fmt.Println(len(res.Added), len(res.Removed), len(res.Changed()))
package snapshot

import (
	"context"
	"slices"

	"github.com/matzehuels/featurelinks/pkg/feature"
	"github.com/matzehuels/featurelinks/pkg/observability"
)

// Options configures a diff.
type Options struct {
	Logger func(string, ...any) // Progress callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Pair is one feature present in both snapshots.
type Pair struct {
	Before *feature.Feature
	After  *feature.Feature
	Digest string // Matching key digest shared by both records
}

// Changed reports whether the declared relationships or Java requirement of
// the feature differ between the two snapshots.
func (p Pair) Changed() bool {
	b, a := p.Before, p.After
	return b.ShortName != a.ShortName ||
		!slices.Equal(b.RequireFeature, a.RequireFeature) ||
		!slices.Equal(b.SupersededBy, a.SupersededBy) ||
		!slices.Equal(b.SupersededByOptional, a.SupersededByOptional) ||
		javaMin(b) != javaMin(a)
}

func javaMin(f *feature.Feature) string {
	if f.Java == nil {
		return ""
	}
	return f.Java.MinVersion
}

// Result holds the outcome of a diff. Each slice keeps input order.
type Result struct {
	Matched []Pair
	Added   []*feature.Feature // Only in the later snapshot
	Removed []*feature.Feature // Only in the earlier snapshot
}

// Changed returns the matched pairs whose declarations differ.
func (r *Result) Changed() []Pair {
	var out []Pair
	for _, p := range r.Matched {
		if p.Changed() {
			out = append(out, p)
		}
	}
	return out
}

// Diff pairs the records of before and after by matching key. Records sharing
// a key within one snapshot are paired first to first.
func Diff(ctx context.Context, before, after []*feature.Feature, opts Options) *Result {
	opts = opts.WithDefaults()
	hooks := observability.Match()

	pending := make(map[string][]int, len(before))
	for i, f := range before {
		d := f.MatchingKey().Digest()
		pending[d] = append(pending[d], i)
	}

	res := &Result{}
	paired := make([]bool, len(before))
	for _, f := range after {
		d := f.MatchingKey().Digest()
		queue := pending[d]
		if len(queue) == 0 {
			hooks.OnMatch(ctx, d, false)
			res.Added = append(res.Added, f)
			continue
		}
		i := queue[0]
		pending[d] = queue[1:]
		paired[i] = true
		hooks.OnMatch(ctx, d, true)
		res.Matched = append(res.Matched, Pair{Before: before[i], After: f, Digest: d})
	}

	for i, f := range before {
		if !paired[i] {
			res.Removed = append(res.Removed, f)
		}
	}

	opts.Logger("matched %d, added %d, removed %d", len(res.Matched), len(res.Added), len(res.Removed))
	return res
}
