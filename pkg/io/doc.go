// Package io reads feature records from TOML files and writes generated
// records as JSON.
//
// # Record Files
//
// A record file describes one catalog feature:
//
//	name = "Java Servlet 3.1"
//	version = "18.0.0.3"
//	provide_feature = "com.ibm.websphere.appserver.servlet-3.1"
//	short_name = "servlet-3.1"
//	applies_to = "com.ibm.websphere.appserver; productVersion=18.0.0.3+; productEdition=\"BASE,ND\""
//	require_feature = ["com.ibm.websphere.appserver.javaeePlatform-7.0"]
//	superseded_by = ["servlet-4.0"]
//	install_policy = "MANUAL"
//	visibility = "PUBLIC"
//
//	[java]
//	min_version = "1.7.0"
//
//	[[filters]]
//	product_id = "com.ibm.websphere.appserver"
//	min_version = "18.0.0.3"
//	editions = ["BASE", "ND"]
//
// The [[filters]] tables are stored applies-to filters. They are only used
// when applies_to is empty; otherwise filters are regenerated from the header.
//
// Loading validates everything the generated fields depend on, in particular
// the Java minimum, so that generation never sees unvalidated input.
//
// # Import
//
// Use [ImportRecord] to read a file, [ReadRecord] to read from any io.Reader,
// and [ImportDir] to read a directory of records (a repository snapshot).
//
// # Export
//
// Use [ExportJSON] to write a record to a file, or [WriteJSON] to write to any
// io.Writer. The output includes the link groups, the Java display string, the
// vanity URL and the matching key digest.
package io
