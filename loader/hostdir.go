package loader

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"vfsh/internal/util"
	"vfsh/vfs"
)

// HostDirLoader imports a real directory into memory, one time, at load.
// Nothing on disk is ever modified and no reference to the host tree is
// kept afterwards. Files that cannot be read import as empty.
type HostDirLoader struct{}

// CanLoad recognizes existing directories.
func (l *HostDirLoader) CanLoad(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (l *HostDirLoader) Load(path string) (*vfs.Tree, error) {
	tree := vfs.NewTree()
	if err := importDir(path, tree.Root()); err != nil {
		return nil, err
	}
	return tree, nil
}

func importDir(hostDir string, dir *vfs.Node) error {
	entries, err := os.ReadDir(hostDir)
	if err != nil {
		return failf("cannot read directory '%s': %v", hostDir, err)
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	for _, entry := range entries {
		hostPath := filepath.Join(hostDir, entry.Name())
		if entry.IsDir() {
			child, err := dir.AddDir(entry.Name())
			if err != nil {
				return failf("dir '%s': %v", hostPath, err)
			}
			if err := importDir(hostPath, child); err != nil {
				return err
			}
			continue
		}

		data, err := os.ReadFile(hostPath)
		if err != nil {
			// unreadable files import as empty
			logger := util.GetLogger("loader")
			logger.Warn().Str("path", hostPath).Err(err).Msg("Importing unreadable file as empty")
			data = nil
		}
		if _, err := dir.AddFile(entry.Name(), data); err != nil {
			return failf("file '%s': %v", hostPath, err)
		}
	}
	return nil
}
