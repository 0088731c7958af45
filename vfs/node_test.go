package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree_EmptyRoot(t *testing.T) {
	tree := NewTree()

	root := tree.Root()
	require.NotNil(t, root)
	assert.True(t, root.IsRoot())
	assert.True(t, root.IsDir())
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.NumChildren())
}

func TestNode_AbsPath_Root(t *testing.T) {
	tree := NewTree()
	assert.Equal(t, "/", tree.Root().AbsPath())
}

func TestNode_AbsPath_Nested(t *testing.T) {
	tree := NewTree()
	dir, err := tree.Root().AddDir("dir")
	require.NoError(t, err)
	sub, err := dir.AddDir("sub")
	require.NoError(t, err)
	file, err := sub.AddFile("file.txt", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "/dir", dir.AbsPath())
	assert.Equal(t, "/dir/sub", sub.AbsPath())
	assert.Equal(t, "/dir/sub/file.txt", file.AbsPath())
}

func TestNode_AbsPath_RoundTrip(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	dir, err := root.AddDir("a")
	require.NoError(t, err)
	sub, err := dir.AddDir("b")
	require.NoError(t, err)
	file, err := sub.AddFile("c.txt", nil)
	require.NoError(t, err)

	for _, node := range []*Node{root, dir, sub, file} {
		resolved, err := Resolve(root, root, node.AbsPath())
		require.NoError(t, err)
		assert.Same(t, node, resolved)
	}
}

func TestNode_Child(t *testing.T) {
	tree := NewTree()
	dir, err := tree.Root().AddDir("dir")
	require.NoError(t, err)
	file, err := tree.Root().AddFile("file.txt", nil)
	require.NoError(t, err)

	child, ok := tree.Root().Child("dir")
	require.True(t, ok)
	assert.Same(t, dir, child)

	_, ok = tree.Root().Child("missing")
	assert.False(t, ok)

	// Files never have children
	_, ok = file.Child("anything")
	assert.False(t, ok)
}

func TestNode_ListNames(t *testing.T) {
	tree := NewTree()
	root := tree.Root()
	_, err := root.AddDir("Beta")
	require.NoError(t, err)
	_, err = root.AddFile("alpha.txt", nil)
	require.NoError(t, err)
	_, err = root.AddDir("gamma")
	require.NoError(t, err)
	_, err = root.AddFile("Delta", nil)
	require.NoError(t, err)

	names, err := root.ListNames()
	require.NoError(t, err)
	// Case-insensitive lexicographic order, directories suffixed with "/"
	assert.Equal(t, []string{"alpha.txt", "Beta/", "Delta", "gamma/"}, names)
}

func TestNode_ListNames_File(t *testing.T) {
	tree := NewTree()
	file, err := tree.Root().AddFile("file.txt", nil)
	require.NoError(t, err)

	_, err = file.ListNames()
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestNode_Kind(t *testing.T) {
	tree := NewTree()
	dir, err := tree.Root().AddDir("dir")
	require.NoError(t, err)
	file, err := tree.Root().AddFile("file.txt", nil)
	require.NoError(t, err)

	assert.Equal(t, KindDir, dir.Kind())
	assert.Equal(t, KindFile, file.Kind())
	assert.Equal(t, "dir", dir.Kind().String())
	assert.Equal(t, "file", file.Kind().String())
	assert.False(t, file.IsDir())
}

func TestDefaultTree(t *testing.T) {
	tree := DefaultTree("alice")
	root := tree.Root()

	readme, err := Resolve(root, root, "/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("This is VFS"), readme.Content())

	motd, err := Resolve(root, root, "/etc/motd")
	require.NoError(t, err)
	assert.False(t, motd.IsDir())

	notes, err := Resolve(root, root, "/home/alice/notes.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, notes.Content())
}

func TestDefaultTree_NoUsername(t *testing.T) {
	tree := DefaultTree("")
	root := tree.Root()

	_, err := Resolve(root, root, "/home/user/notes.txt")
	assert.NoError(t, err)
}
