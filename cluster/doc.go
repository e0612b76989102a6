// Package cluster provides stateless scanning primitives over UTF-16
// code-unit sequences.
//
// Two cluster shapes are recognized beyond the single code unit:
//   - Surrogate pair: a high unit (0xD800-0xDBFF) followed by a low
//     unit (0xDC00-0xDFFF), two units encoding one codepoint above
//     0xFFFF.
//   - Regional-indicator pair: two consecutive regional-indicator
//     symbols (each the surrogate pair 0xD83C, 0xDDE6-0xDDFF), four
//     units displayed as one flag.
//
// Scanning comes in two modes. Width and Count treat both shapes as
// one position each; CodePointWidth and CodePointCount combine
// surrogate pairs only, so a regional-indicator pair occupies two
// positions there. Callers pick the mode per operation rather than
// configuring a scanner.
//
// Every function is a pure function of its arguments. No state is kept
// between calls, so concurrent use needs no synchronization.
//
// This is deliberately not grapheme segmentation: combining marks, ZWJ
// emoji sequences, and longer regional-indicator runs are not grouped.
package cluster
