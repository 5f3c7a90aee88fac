// Package pattern implements the tree pattern language — node patterns,
// placeholder and spread leaves — and the structural/AC matcher used by
// the rewriter.
package pattern
