package feature

import "github.com/matzehuels/featurelinks/pkg/errors"

// JavaRequirements is the aggregate Java runtime requirement of the bundles
// in a feature. All fields may be empty when no bundle declares one.
type JavaRequirements struct {
	MinVersion      string
	MaxVersion      string
	RawRequirements []string

	// VersionDisplayString is generated from MinVersion.
	VersionDisplayString string
}

// Display strings listing every supported runtime at or above a minimum.
const (
	displayJava6 = "Java SE 6, Java SE 7, Java SE 8"
	displayJava7 = "Java SE 7, Java SE 8"
	displayJava8 = "Java SE 8"
)

// JavaDisplayString maps a minimum Java runtime to the runtimes a feature
// works on. It reports false when minVersion is empty.
//
// minVersion must already have passed [errors.ValidateJavaVersion]. Any other value
// panics with an [errors.ErrCodeInternal] defect.
func JavaDisplayString(minVersion string) (string, bool) {
	switch minVersion {
	case "":
		return "", false
	case "1.6.0":
		return displayJava6, true
	case "1.7.0":
		return displayJava7, true
	case "1.8.0":
		return displayJava8, true
	}
	panic(errors.Defect("minimum Java version %q was not validated upstream", minVersion))
}

// ResolveDisplayString sets VersionDisplayString from MinVersion. It leaves
// the record untouched when r is nil or no minimum is declared.
func (r *JavaRequirements) ResolveDisplayString() {
	if r == nil {
		return
	}
	if s, ok := JavaDisplayString(r.MinVersion); ok {
		r.VersionDisplayString = s
	}
}
