package vfs

import "iter"

// WalkAll is the maxDepth value for an unbounded Walk.
const WalkAll = -1

// Walk returns a lazy depth-first pre-order traversal of the subtree
// rooted at start, yielding each node with its depth relative to start
// (start itself at depth 0). Children are visited in case-insensitive
// lexicographic order. When maxDepth is non-negative, a directory's
// children are descended into only while its own depth is strictly below
// maxDepth; the directory itself is always yielded. Each call is a fresh
// traversal.
func Walk(start *Node, maxDepth int) iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		walk(start, 0, maxDepth, yield)
	}
}

func walk(n *Node, depth, maxDepth int, yield func(*Node, int) bool) bool {
	if !yield(n, depth) {
		return false
	}
	if n.kind != KindDir {
		return true
	}
	if maxDepth >= 0 && depth >= maxDepth {
		return true
	}
	for _, name := range n.childNames() {
		if !walk(n.children[name], depth+1, maxDepth, yield) {
			return false
		}
	}
	return true
}
