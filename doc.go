// Package utf16text provides logical-character-safe indexing over text
// stored as UTF-16 code units.
//
// A Text wraps an immutable code-unit sequence and translates between
// two coordinate systems: the character index, which counts logical
// characters, and the byte index, which is the code-unit offset into
// the underlying storage. Surrogate pairs and regional-indicator pairs
// (flag sequences) each count as one logical character, so character
// indices never land inside them.
//
// Key properties:
//   - Immutable values: operations return new Texts; originals never
//     change, and concurrent reads need no synchronization
//   - Sentinel results instead of errors: out-of-range access returns
//     NotFound, NoCodePoint, or the empty string; slice bounds clamp
//   - Identity fast path: texts without surrogate pairs translate
//     indices without scanning
//
// Basic usage:
//
//	t := utf16text.FromString("a\U0001F600b")
//	t.Len()       // 3
//	t.CharAt(1)   // "\U0001F600", both units
//	t.IndexOf("b") // 2, a character index, not the unit offset 3
//
// CharCodeAt and CodePoints combine surrogate pairs only: a
// regional-indicator pair is one position for CharAt and slicing but
// two codepoints, so the two index spaces differ when flags are
// present. The model is deliberately narrower than Unicode grapheme
// segmentation; see package cluster for the exact shapes recognized.
package utf16text
