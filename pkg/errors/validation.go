package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// JavaVersions lists the Java runtime minimums a feature may declare, oldest first.
var JavaVersions = []string{"1.6.0", "1.7.0", "1.8.0"}

// ValidateFeatureName validates a feature symbolic name or short name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path traversal sequences (..)
//   - Maximum length of 256 characters
func ValidateFeatureName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRecord, "feature name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidRecord, "feature name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRecord, "feature name %q contains whitespace or control characters", name)
		}
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidRecord, "feature name %q contains invalid characters: %q", name, "..")
	}

	return nil
}

// ValidateJavaVersion checks a minimum Java runtime requirement.
// An empty value means no requirement and is accepted.
func ValidateJavaVersion(v string) error {
	if v == "" || slices.Contains(JavaVersions, v) {
		return nil
	}
	return New(ErrCodeInvalidJavaVersion, "unsupported minimum Java version %q (supported: %s)",
		v, strings.Join(JavaVersions, ", "))
}

// ValidatePath validates a record file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// policyRegex matches the upper-case enum literals used for record policies.
var policyRegex = regexp.MustCompile(`^[A-Z][A-Z_]*$`)

// ValidatePolicy checks that an optional policy value is one of allowed.
func ValidatePolicy(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	if !policyRegex.MatchString(value) || !slices.Contains(allowed, value) {
		return New(ErrCodeInvalidRecord, "invalid %s %q (allowed: %s)", field, value, strings.Join(allowed, ", "))
	}
	return nil
}
