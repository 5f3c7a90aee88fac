// Package rewrite implements the priority-ordered, guarded rewrite rule
// engine: rule application at a node, RHS instantiation with
// sharing-preserving clone memoization, and the fixed-point driver that
// interleaves rule application with normalization.
package rewrite
