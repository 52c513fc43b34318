package feature

import (
	"slices"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	f := New()
	if f.Type != TypeFeature {
		t.Errorf("Type = %q, want %q", f.Type, TypeFeature)
	}
	if f.DownloadPolicy != DownloadInstaller {
		t.Errorf("DownloadPolicy = %q, want %q", f.DownloadPolicy, DownloadInstaller)
	}
	if f.InstallPolicy != InstallManual {
		t.Errorf("InstallPolicy = %q, want %q", f.InstallPolicy, InstallManual)
	}
	if _, ok := f.ProvideFeature(); ok {
		t.Error("new feature should not provide anything")
	}
	if f.RequireFeature != nil || f.Links != nil {
		t.Error("new feature should have no relationships or links")
	}
}

func TestSetProvideFeatureReplaces(t *testing.T) {
	f := New()
	f.SetProvideFeature("a")
	f.SetProvideFeature("b")

	got, ok := f.ProvideFeature()
	if !ok || got != "b" {
		t.Errorf("ProvideFeature() = %q, %v, want b, true", got, ok)
	}

	f.ClearProvideFeature()
	if _, ok := f.ProvideFeature(); ok {
		t.Error("ProvideFeature() should be absent after clear")
	}
}

func TestSetShortName(t *testing.T) {
	f := New()
	f.SetShortName("Servlet-3.1")
	if f.LowerCaseShortName != "servlet-3.1" {
		t.Errorf("LowerCaseShortName = %q", f.LowerCaseShortName)
	}
}

func TestSetJavaRequirements(t *testing.T) {
	raw := []string{"osgi.ee; filter:=\"(&(osgi.ee=JavaSE)(version=1.7))\""}
	f := New()
	f.SetJavaRequirements("1.7.0", "", raw)
	raw[0] = "changed"

	if f.Java.MinVersion != "1.7.0" || f.Java.MaxVersion != "" {
		t.Errorf("Java = %+v", f.Java)
	}
	if f.Java.RawRequirements[0] == "changed" {
		t.Error("raw requirements should be copied")
	}
}

func TestCopyFieldsFrom(t *testing.T) {
	src := New()
	src.AppliesTo = "com.ibm.websphere.appserver; productVersion=18.0.0.3+"
	src.DisplayPolicy = DisplayHidden
	src.InstallPolicy = InstallWhenSatisfied
	src.SetProvideFeature("com.ibm.websphere.appserver.servlet-3.1")
	src.ProvisionCapability = "osgi.identity=x"
	src.RequireFeature = []string{"a", "b"}
	src.Visibility = VisibilityPublic
	src.SetShortName("Servlet-3.1")
	src.VanityURL = "features-servlet"
	src.Links = CreateLinks(src)

	dst := New()
	dst.SetProvideFeature("old")
	dst.CopyFieldsFrom(src)

	if name, _ := dst.ProvideFeature(); name != "com.ibm.websphere.appserver.servlet-3.1" {
		t.Errorf("ProvideFeature = %q", name)
	}
	if !slices.Equal(dst.RequireFeature, src.RequireFeature) {
		t.Errorf("RequireFeature = %v", dst.RequireFeature)
	}
	if dst.ShortName != "Servlet-3.1" || dst.LowerCaseShortName != "servlet-3.1" {
		t.Errorf("ShortName = %q / %q", dst.ShortName, dst.LowerCaseShortName)
	}
	if dst.AppliesTo != src.AppliesTo || dst.DisplayPolicy != DisplayHidden ||
		dst.InstallPolicy != InstallWhenSatisfied || dst.Visibility != VisibilityPublic ||
		dst.ProvisionCapability != src.ProvisionCapability || dst.VanityURL != src.VanityURL {
		t.Errorf("scalar fields not copied: %+v", dst)
	}
	if len(dst.Links) != 5 {
		t.Errorf("Links = %d, want 5", len(dst.Links))
	}

	src.RequireFeature[0] = "changed"
	if dst.RequireFeature[0] != "a" {
		t.Error("RequireFeature should be copied, not shared")
	}

	enables := *dst.Links[0].Query[0][0].Value
	src.Links[0].Query[0][0] = Criterion{Key: KeyShortName}
	src.Links[1].Query[0] = nil
	if got := dst.Links[0].Query[0][0].Value; got == nil || *got != enables {
		t.Error("link criteria should be copied, not shared")
	}
	if dst.Links[1].Query[0] == nil {
		t.Error("link queries should be copied, not shared")
	}
	if dst.Links[3].Query != nil {
		t.Error("undeclared link query should stay nil")
	}

	empty := New()
	dst.CopyFieldsFrom(empty)
	if _, ok := dst.ProvideFeature(); ok {
		t.Error("copying from a record without provide feature should clear it")
	}
}
