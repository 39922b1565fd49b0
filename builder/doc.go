// Package builder provides the record builder used when a record cannot be
// written in place and must be materialized once every argument is known.
//
// A Builder moves from unbuilt to built on the first successful Build. Under
// the default single-build policy, further Build and Modify calls fail with
// ErrAlreadyBuilt. WithMultipleBuilds allows repeated builds, each one
// re-validating completeness and returning the same record.
package builder
