// Package emit implements the emitter visitor protocol and the two
// drivers (plain and common-subexpression-eliminating) that walk a term
// graph in post-order and stream it into any consumer's handle type.
package emit
