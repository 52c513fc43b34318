// Package pkg provides the libraries behind featurelinks, which computes the
// derived metadata of installable-feature catalog records.
//
// # Overview
//
// A catalog record describes one feature: its symbolic name, the features it
// requires, the features superseding it, the products it applies to and the
// Java runtime it needs. From those declarations the catalog derives the
// fields its front-end displays:
//
//  1. [appliesto] - Applies-to header parsing and canonical filter strings
//  2. [feature] - Records, relationship queries, link groups, Java display
//     strings and matching keys
//  3. [io] - TOML record files in, JSON records out
//  4. [snapshot] - Pairing records across two repository snapshots
//  5. [errors] - Structured error codes and input validation
//  6. [observability] - Optional hooks around generation and matching
//
// # Data Flow
//
//	record.toml
//	     ↓
//	[io] package (decode + validate)
//	     ↓
//	[feature] package (UpdateGeneratedFields, MatchingKey)
//	     ↓
//	JSON output / [snapshot] diff
//
// # Quick Start
//
//	f, err := io.ImportRecord("servlet-3.1.toml")
//	if err != nil {
//	    return err
//	}
//	if err := f.UpdateGeneratedFields(true); err != nil {
//	    return err
//	}
//	for _, link := range f.Links {
//	    fmt.Println(link.Label, len(link.Query))
//	}
//
// [appliesto]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/appliesto
// [feature]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/feature
// [io]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/io
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/snapshot
// [errors]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/featurelinks/pkg/observability
package pkg
