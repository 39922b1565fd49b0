// Package repository stores parameter mappings of one record type.
//
// A repository is built in two phases. While open, mappings are appended
// under their key; Build then freezes the collection into a read-only lookup
// table, failing if two keys collide. Frozen repositories never change and
// may be shared between goroutines.
//
// Two key shapes exist:
//   - Types: type parameters keyed by ordinal
//   - Names: constructor and named parameters keyed by name, compared
//     through a pluggable Comparer (OrdinalIgnoreCase by default)
package repository
