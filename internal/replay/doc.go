// Package replay drives attribute mappers from YAML fixtures.
//
// A fixture declares the parameters of one attribute and a list of
// applications whose arguments are written as Go expressions. Replay
// type-checks every expression, optionally against a loaded package, feeds
// the results through an adaptive mapper and reports what each application
// recorded. It is the harness behind the attribute-mapper command and the
// end-to-end tests of the framework.
package replay
