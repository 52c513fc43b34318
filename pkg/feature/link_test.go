package feature

import "testing"

func TestCreateLinks(t *testing.T) {
	f := versionedFeature("18.0.0.3")
	f.SetProvideFeature("com.ibm.websphere.appserver.servlet-3.1")
	f.RequireFeature = []string{"a"}
	f.SupersededByOptional = []string{"servlet-4.0"}

	links := CreateLinks(f)
	if len(links) != 5 {
		t.Fatalf("got %d links, want 5", len(links))
	}

	want := []struct {
		label   string
		suffix  string
		nilList bool
	}{
		{LabelEnables, "", false},
		{LabelEnabledBy, "", false},
		{LabelSupersedes, "", true},
		{LabelSupersededBy, "", true},
		{LabelSupersededBy, SuffixOptional, false},
	}
	for i, w := range want {
		l := links[i]
		if l.Label != w.label {
			t.Errorf("links[%d].Label = %q, want %q", i, l.Label, w.label)
		}
		if l.LinkLabelSuffix != w.suffix {
			t.Errorf("links[%d].LinkLabelSuffix = %q, want %q", i, l.LinkLabelSuffix, w.suffix)
		}
		if l.LinkLabelPrefix != "" {
			t.Errorf("links[%d].LinkLabelPrefix = %q, want empty", i, l.LinkLabelPrefix)
		}
		if l.LinkLabelProperty != LinkLabelName {
			t.Errorf("links[%d].LinkLabelProperty = %q", i, l.LinkLabelProperty)
		}
		if (l.Query == nil) != w.nilList {
			t.Errorf("links[%d].Query nil = %v, want %v", i, l.Query == nil, w.nilList)
		}
	}
}

func TestCreateLinksEnablesScenario(t *testing.T) {
	f := versionedFeature("18.0.0.3")
	f.Type = "feature"
	f.RequireFeature = []string{"servlet-3.1"}

	enables := CreateLinks(f)[0]
	checkQueries(t, enables.Query, []QuerySpec{{
		match(KeyProvideFeature, "servlet-3.1"),
		match(KeyMinVersion, "18.0.0.3"),
		match(KeyType, "feature"),
	}})
}

func TestCreateLinksNoShortName(t *testing.T) {
	supersedes := CreateLinks(New())[2]
	if supersedes.Label != LabelSupersedes {
		t.Fatalf("links[2].Label = %q", supersedes.Label)
	}
	if supersedes.Query != nil {
		t.Errorf("supersedes query = %v, want nil", supersedes.Query)
	}
}
