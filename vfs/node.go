package vfs

import (
	"slices"
	"strings"
)

// Kind discriminates the two node variants.
type Kind uint8

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// Node is a single element of the tree, either a directory or a file.
// The variant is fixed at creation and switched on explicitly. Directories
// own their children through the name map; the parent link is a non-owning
// back-reference used only for ascent and path derivation. Nodes are
// attached exactly once, at creation, and never move.
type Node struct {
	name   string
	parent *Node
	kind   Kind

	children map[string]*Node // KindDir only
	content  []byte           // KindFile only
}

func newDir(name string, parent *Node) *Node {
	return &Node{
		name:     name,
		parent:   parent,
		kind:     KindDir,
		children: make(map[string]*Node),
	}
}

func newFile(name string, content []byte, parent *Node) *Node {
	return &Node{
		name:    name,
		parent:  parent,
		kind:    KindFile,
		content: content,
	}
}

// Name returns the node's name, unique among its siblings.
func (n *Node) Name() string {
	return n.name
}

// Kind returns the node variant.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.kind == KindDir
}

// IsRoot reports whether the node is a tree root.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Parent returns the parent directory, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Content returns the file's byte buffer. Nil for directories.
func (n *Node) Content() []byte {
	return n.content
}

// Child returns a child node by name. Always misses on non-directories.
func (n *Node) Child(name string) (*Node, bool) {
	if n.kind != KindDir {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok
}

// NumChildren returns the child count; 0 for files.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// AbsPath derives the node's absolute path by walking the parent chain
// to the root and joining names with "/". The root renders as "/". The
// path is recomputed on every call; nodes never move, so there is
// nothing to invalidate.
func (n *Node) AbsPath() string {
	if n.parent == nil {
		return "/"
	}
	var parts []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// ListNames returns the directory's child names in case-insensitive
// lexicographic order, directories suffixed with "/".
func (n *Node) ListNames() ([]string, error) {
	if n.kind != KindDir {
		return nil, opError(OpList, n.AbsPath(), ErrNotDirectory)
	}
	names := make([]string, 0, len(n.children))
	for name, child := range n.children {
		if child.kind == KindDir {
			names = append(names, name+"/")
		} else {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, compareFold)
	return names, nil
}

// childNames returns the directory's child names in case-insensitive
// lexicographic order, without suffixes.
func (n *Node) childNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	slices.SortFunc(names, compareFold)
	return names
}

// compareFold orders strings case-insensitively, falling back to the
// exact form so that equal-fold siblings sort deterministically.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
