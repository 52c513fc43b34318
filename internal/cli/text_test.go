package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/featurelinks/pkg/feature"
)

func TestEncodeQuery(t *testing.T) {
	value := func(s string) *string { return &s }

	tests := []struct {
		name string
		spec feature.QuerySpec
		want string
	}{
		{"empty", feature.QuerySpec{}, ""},
		{
			"ordered",
			feature.QuerySpec{
				{Key: feature.KeyProvideFeature, Value: value("com.example.a-1.0")},
				{Key: feature.KeyType, Value: value(string(feature.TypeFeature))},
			},
			"wlpInformation.provideFeature=com.example.a-1.0&type=com.ibm.websphere.Feature",
		},
		{
			"escaped",
			feature.QuerySpec{{Key: feature.KeyShortName, Value: value("a b&c")}},
			"wlpInformation.shortName=a+b%26c",
		},
		{
			"null value",
			feature.QuerySpec{{Key: feature.KeyRequireFeature}, {Key: feature.KeyType, Value: value("x")}},
			"wlpInformation.requireFeature&type=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeQuery(tt.spec); got != tt.want {
				t.Errorf("encodeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	f := feature.New()
	f.SetShortName("jsp-2.3")
	f.SetProvideFeature("com.ibm.websphere.appserver.jsp-2.3")
	f.RequireFeature = []string{"com.ibm.websphere.appserver.servlet-3.1"}
	f.SupersededByOptional = []string{}
	if err := f.UpdateGeneratedFields(false); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writeText(&buf, f)
	out := buf.String()

	for _, want := range []string{
		"jsp-2.3",
		"features-com.ibm.websphere.appserver.jsp-2.3",
		feature.LabelEnables,
		"wlpInformation.provideFeature=com.ibm.websphere.appserver.servlet-3.1&type=com.ibm.websphere.Feature",
		"wlpInformation.supersededBy=jsp-2.3",
		feature.LabelSupersededBy + feature.SuffixOptional,
		textNotDeclared,
		textNone,
		f.MatchingKey().Digest(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayName(t *testing.T) {
	f := feature.New()
	if got := displayName(f); got != "(unnamed)" {
		t.Errorf("displayName() = %q", got)
	}
	f.Name = "Java Servlet"
	if got := displayName(f); got != "Java Servlet" {
		t.Errorf("displayName() = %q", got)
	}
	f.SetProvideFeature("com.example.servlet")
	if got := displayName(f); got != "com.example.servlet" {
		t.Errorf("displayName() = %q", got)
	}
	f.SetShortName("servlet")
	if got := displayName(f); got != "servlet" {
		t.Errorf("displayName() = %q", got)
	}
}
