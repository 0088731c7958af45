package vfs

import (
	"vfsh/internal/util"
)

// AddDir creates a child directory, or returns the existing one: calling
// it twice with the same name is idempotent. A file already holding the
// name is a type conflict.
func (n *Node) AddDir(name string) (*Node, error) {
	if n.kind != KindDir {
		return nil, opError(OpMkdir, n.AbsPath(), ErrNotDirectory)
	}
	if existing, ok := n.children[name]; ok {
		if existing.kind == KindDir {
			return existing, nil
		}
		return nil, opError(OpMkdir, name, ErrTypeConflict)
	}
	child := newDir(name, n)
	n.children[name] = child
	logger := util.GetLogger("vfs")
	logger.Debug().Str("path", child.AbsPath()).Msg("Created directory")
	return child, nil
}

// AddFile creates a child file, or overwrites the content of an existing
// file with that name (the node identity is kept). A directory already
// holding the name is a type conflict.
func (n *Node) AddFile(name string, content []byte) (*Node, error) {
	if n.kind != KindDir {
		return nil, opError(OpCreate, n.AbsPath(), ErrNotDirectory)
	}
	if existing, ok := n.children[name]; ok {
		if existing.kind != KindFile {
			return nil, opError(OpCreate, name, ErrTypeConflict)
		}
		existing.content = content
		return existing, nil
	}
	child := newFile(name, content, n)
	n.children[name] = child
	logger := util.GetLogger("vfs")
	logger.Debug().Str("path", child.AbsPath()).Int("size", len(content)).Msg("Created file")
	return child, nil
}

// Copy recursively copies src into dstParent under name.
//
// A file source always copies: an existing file target has its content
// overwritten, an existing directory target is a type conflict. A
// directory source refuses any existing target outright rather than
// merging into it; otherwise a fresh directory is created and every child
// is copied into it with the same rules. A destination under the source
// itself is rejected. These checks precede any attach, so a failed copy
// leaves the destination untouched.
func Copy(src, dstParent *Node, name string) error {
	if dstParent.kind != KindDir {
		return opError(OpCopy, dstParent.AbsPath(), ErrNotDirectory)
	}

	switch src.kind {
	case KindFile:
		_, err := dstParent.AddFile(name, src.content)
		return err

	case KindDir:
		// A destination inside the source would make the copy feed on
		// its own output and never terminate
		for p := dstParent; p != nil; p = p.parent {
			if p == src {
				return opError(OpCopy, src.AbsPath(), ErrRecursiveCopy)
			}
		}
		if _, ok := dstParent.children[name]; ok {
			return opError(OpCopy, joinPath(dstParent, name), ErrExists)
		}
		dst, err := dstParent.AddDir(name)
		if err != nil {
			return err
		}
		for _, childName := range src.childNames() {
			if err := Copy(src.children[childName], dst, childName); err != nil {
				return err
			}
		}
		logger := util.GetLogger("vfs")
		logger.Debug().
			Str("src", src.AbsPath()).
			Str("dst", dst.AbsPath()).
			Msg("Copied directory")
		return nil
	}
	return opError(OpCopy, src.AbsPath(), ErrInvalidPath)
}

func joinPath(parent *Node, name string) string {
	if parent.parent == nil {
		return "/" + name
	}
	return parent.AbsPath() + "/" + name
}
