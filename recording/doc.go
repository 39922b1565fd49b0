// Package recording binds a mapper to one record for the duration of one
// attribute parse.
//
// A recorder is created per attribute application. The parser feeds it
// every argument through the TypeArgument, ConstructorArgument and
// NamedArgument surfaces, each call reporting whether the argument was
// recorded, and finally calls GetRecord.
//
// When the mapper writes into a builder rather than into the record
// itself, create the recorder with one of the WithBuilder constructors:
// GetRecord then returns the result of the builder's Build.
//
// Recorders are confined to a single parse and are not safe for concurrent
// use. The mapper they are created from is.
package recording
