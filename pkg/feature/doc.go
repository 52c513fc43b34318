// Package feature derives the generated, display-ready fields of a feature
// entry in a component repository catalog.
//
// # Overview
//
// A [Feature] declares what it provides, what it requires, and which features
// supersede it. From those declarations this package builds:
//
//   - Query specifications a catalog front-end runs to list related features
//   - A Java runtime compatibility string
//   - A [MatchingKey] telling whether two records are the same feature
//
// Nothing here performs I/O. Queries are returned as ordered criteria
// ([QuerySpec]) and are encoded for transport by the presentation layer.
//
// # Generated Fields
//
// [Feature.UpdateGeneratedFields] recomputes everything at once:
//
//	f := feature.New()
//	f.SetProvideFeature("com.ibm.websphere.appserver.servlet-3.1")
//	f.SetShortName("servlet-3.1")
//	f.AppliesTo = "com.ibm.websphere.appserver; productVersion=18.0.0.3+"
//	if err := f.UpdateGeneratedFields(false); err != nil {
//	    return err
//	}
//
// Links are always the same five groups in the same order (see [CreateLinks]).
// A group whose relationship is not expressed carries a nil query list; an
// expressed but empty relationship carries an empty, non-nil list.
//
// # Effective Version
//
// Queries are narrowed to the minimum version of the first applies-to filter
// that has one ([FindVersion]). The superseded-by groups only add the version
// and feature type criteria together, and only when such a version exists.
//
// # Java Requirements
//
// [JavaDisplayString] trusts its input: record loaders validate the Java
// minimum with errors.ValidateJavaVersion, and an unvalidated value reaching
// this package panics instead of returning an error.
package feature
