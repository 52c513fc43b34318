// Package appliesto parses applies-to headers into version filter records.
//
// A feature declares the products it installs into with a header such as:
//
//	com.ibm.websphere.appserver; productVersion=18.0.0.3+; productEdition="BASE,ND"
//
// Several product clauses may be listed, separated by commas. Commas inside
// double quotes belong to the edition list and do not start a new clause.
//
// # Versions
//
// A version ending in "+" sets an inclusive minimum with no maximum. A bare
// version pins the range: minimum and maximum are both that version.
//
// # Editions
//
// Edition codes (BASE, ND, ...) are mapped to display names. [Parse] can be
// asked to reject unknown codes; resource matching always parses leniently so
// that records produced by different tool levels still compare.
//
// # Comparison
//
// [Filter.Canonical] and [Canonicalize] reduce filters to strings that do not
// depend on clause order, edition order, or whether editions were stored as
// codes or names.
package appliesto
