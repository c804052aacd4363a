// Package term breaks a text buffer into classified spans for the counting
// pipeline.
//
// A Scanner walks the buffer once and emits Terms, each either a Word (a
// maximal run of word runes) or a Symbol (a maximal run of everything else).
// The emitted spans are subslices of the caller's buffer, cover the trimmed
// input with no gaps or overlaps, and strictly alternate in kind. Callers
// must keep the buffer alive, unmodified, while they consume the sequence.
//
// Two tokenizer policies are available. PolicyClassic treats Unicode letters
// and numbers plus underscore and apostrophe as word runes, so `can't` and
// `_foo` each scan as one Word. PolicyUnicode segments per UAX #29 word
// boundaries instead, which splits punctuation-adjacent words differently;
// deployments pick one policy and live with its boundary rules.
package term
