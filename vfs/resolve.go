package vfs

import "strings"

// splitPath breaks a path into its components, dropping the empty ones
// produced by leading, doubled, or trailing slashes.
func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Resolve translates a path string into a node. An empty path or "."
// resolves to start unchanged; a path beginning with "/" resolves from
// root, anything else from start. "." components are no-ops and ".."
// ascends, clamped at the root. Descending requires the current node to
// be a directory holding the named child.
func Resolve(start, root *Node, path string) (*Node, error) {
	if path == "" || path == "." {
		return start, nil
	}

	cur := start
	if strings.HasPrefix(path, "/") {
		cur = root
	}

	for _, part := range splitPath(path) {
		switch part {
		case ".":
			continue
		case "..":
			if cur.parent == nil {
				cur = root
			} else {
				cur = cur.parent
			}
			continue
		}
		if cur.kind != KindDir {
			return nil, opError(OpResolve, cur.AbsPath(), ErrNotDirectory)
		}
		next, ok := cur.children[part]
		if !ok {
			return nil, opError(OpResolve, part, ErrNotFound)
		}
		cur = next
	}
	return cur, nil
}

// ResolveParent splits a path into a creation target: the existing parent
// directory and the final component as the new name. The name is returned
// without checking whether it is free. Intermediate components must
// already exist and be directories; they are never auto-created. The
// empty path, the bare root, and a terminal "." or ".." are invalid
// creation targets.
func ResolveParent(start, root *Node, path string) (*Node, string, error) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" || path == "/" {
		return nil, "", opError(OpResolve, path, ErrInvalidPath)
	}

	cur := start
	if strings.HasPrefix(path, "/") {
		cur = root
	}

	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, "", opError(OpResolve, path, ErrInvalidPath)
	}
	name := parts[len(parts)-1]
	if name == "." || name == ".." {
		return nil, "", opError(OpResolve, path, ErrInvalidPath)
	}

	for _, part := range parts[:len(parts)-1] {
		switch part {
		case ".":
			continue
		case "..":
			if cur.parent == nil {
				cur = root
			} else {
				cur = cur.parent
			}
			continue
		}
		if cur.kind != KindDir {
			return nil, "", opError(OpResolve, cur.AbsPath(), ErrNotDirectory)
		}
		next, ok := cur.children[part]
		if !ok {
			return nil, "", opError(OpResolve, part, ErrNotFound)
		}
		if next.kind != KindDir {
			return nil, "", opError(OpResolve, part, ErrNotDirectory)
		}
		cur = next
	}

	if cur.kind != KindDir {
		return nil, "", opError(OpResolve, cur.AbsPath(), ErrNotDirectory)
	}
	return cur, name, nil
}
