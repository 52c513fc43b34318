package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/matzehuels/featurelinks/pkg/feature"
)

const (
	textNotDeclared = "not declared"
	textNone        = "none"
)

// encodeQuery renders spec as a URL query string in criterion order.
// A null criterion is rendered as its bare key.
func encodeQuery(spec feature.QuerySpec) string {
	parts := make([]string, 0, len(spec))
	for _, c := range spec {
		key := url.QueryEscape(c.Key)
		if c.Value == nil {
			parts = append(parts, key)
			continue
		}
		parts = append(parts, key+"="+url.QueryEscape(*c.Value))
	}
	return strings.Join(parts, "&")
}

// writeText renders f and its generated fields for a terminal.
func writeText(w io.Writer, f *feature.Feature) {
	fmt.Fprintln(w, StyleTitle.Render(displayName(f)))

	if name, ok := f.ProvideFeature(); ok {
		printKeyValue(w, "Provides", name)
	}
	if f.Version != "" {
		printKeyValue(w, "Version", f.Version)
	}
	if f.Java != nil && f.Java.VersionDisplayString != "" {
		printKeyValue(w, "Java", f.Java.VersionDisplayString)
	}
	if f.VanityURL != "" {
		printKeyValue(w, "Vanity URL", f.VanityURL)
	}
	printKeyValue(w, "Matching key", f.MatchingKey().Digest())

	for _, link := range f.Links {
		fmt.Fprintln(w)
		fmt.Fprintln(w, StyleTitle.Render(link.Label+link.LinkLabelSuffix))
		switch {
		case link.Query == nil:
			printDetail(w, textNotDeclared)
		case len(link.Query) == 0:
			printDetail(w, textNone)
		default:
			for _, q := range link.Query {
				fmt.Fprintln(w, "  "+StyleDim.Render(iconInfo)+" "+StyleQuery.Render(encodeQuery(q)))
			}
		}
	}
}
