// Package tokenizer holds the normalization shared by matching and text analysis.
//
// Whitespace is the ASCII class (space, tab, newline, vertical tab, form feed,
// carriage return). Case folding only touches ASCII letters; there is no
// locale-aware casing.
package tokenizer
