// Package loader contains the tree-builder adapters that seed a virtual
// filesystem from an external source. Loaders populate trees exclusively
// through the vfs package's public mutators; the core never parses
// documents or touches host I/O itself.
package loader

import (
	"fmt"
	"sync"

	"vfsh/internal/util"
	"vfsh/vfs"
)

// Loader turns one kind of seed source into a fully-populated tree, or
// fails with an error wrapping [vfs.ErrLoadFailure]. The caller reacts to
// a failure by falling back to [vfs.DefaultTree].
type Loader interface {
	// CanLoad reports whether this loader recognizes the source path
	CanLoad(path string) bool
	// Load builds a tree from the source
	Load(path string) (*vfs.Tree, error)
}

var (
	mu      sync.RWMutex
	loaders = map[string]Loader{}
	order   []string
)

// Register ties a loader to a kind key and should be called for each
// loader kind during app init. Loaders are consulted in registration
// order by [Open].
func Register(kind string, l Loader) {
	mu.Lock()
	if _, ok := loaders[kind]; !ok {
		order = append(order, kind)
	}
	loaders[kind] = l
	mu.Unlock()
}

// Get returns a registered loader by kind.
func Get(kind string) (Loader, bool) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := loaders[kind]
	return l, ok
}

// Open builds a tree from the first registered loader that recognizes
// the source path. All expected loader kinds should be registered with
// [Register] before calling this function.
func Open(path string) (*vfs.Tree, error) {
	logger := util.GetLogger("loader")

	mu.RLock()
	kinds := make([]string, len(order))
	copy(kinds, order)
	mu.RUnlock()

	for _, kind := range kinds {
		l, _ := Get(kind)
		if !l.CanLoad(path) {
			continue
		}
		tree, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("kind", kind).Str("source", path).Msg("VFS loaded")
		return tree, nil
	}
	return nil, failf("'%s' not found as .xml file or directory", path)
}

// Built-in loader kinds
const (
	XMLLoaderType     = "xml"
	HostDirLoaderType = "hostdir"
)

// RegisterBuiltins registers all built-in loaders by default, or only the
// specific ones if kinds are provided
func RegisterBuiltins(kinds ...string) {
	if len(kinds) == 0 {
		kinds = append(kinds, XMLLoaderType, HostDirLoaderType)
	}

	for _, kind := range kinds {
		switch kind {
		case XMLLoaderType:
			Register(XMLLoaderType, &XMLLoader{})
		case HostDirLoaderType:
			Register(HostDirLoaderType, &HostDirLoader{})
		}
	}
}

// failf builds a load error that matches errors.Is(err, vfs.ErrLoadFailure)
func failf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", vfs.ErrLoadFailure, fmt.Sprintf(format, args...))
}
