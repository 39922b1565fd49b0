// Package match compares fixture declarations with what they are matched
// against: parameter names with the names an application uses, and
// pattern expressions with the declared Go types of their parameters.
//
// Key functions:
//   - Distance and Similarity: edit distance between names
//   - Suggest: ranks declared names close to an unknown one
//   - Check: tells whether a pattern can accept values of a declared type
package match
