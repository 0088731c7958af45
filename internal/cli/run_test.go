package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vfsh/config"
	"vfsh/loader"
	"vfsh/vfs"
)

func TestResolveIdentity_ConfigWins(t *testing.T) {
	cfg := &config.Config{Username: "alice", Hostname: "box"}

	username, hostname := resolveIdentity(cfg)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "box", hostname)
}

func TestResolveIdentity_EnvFallback(t *testing.T) {
	t.Setenv(envUser, "envy")
	t.Setenv(envHost, "envhost")

	username, hostname := resolveIdentity(&config.Config{})
	assert.Equal(t, "envy", username)
	assert.Equal(t, "envhost", hostname)
}

func TestResolveIdentity_OSFallback(t *testing.T) {
	t.Setenv(envUser, "")
	t.Setenv(envHost, "")

	username, hostname := resolveIdentity(&config.Config{})
	assert.NotEmpty(t, username)
	assert.NotEmpty(t, hostname)
}

func TestBuildTree_NoSource(t *testing.T) {
	tree, note := buildTree("", "tester")
	require.NotNil(t, tree)
	assert.Empty(t, note)

	// The default tree carries the preset home directory
	_, err := vfs.Resolve(tree.Root(), tree.Root(), "/home/tester/notes.txt")
	assert.NoError(t, err)
}

func TestBuildTree_XMLSource(t *testing.T) {
	loader.RegisterBuiltins()

	path := filepath.Join(t.TempDir(), "seed.xml")
	doc := `<vfs><dir name="/"><file name="hello.txt">hi</file></dir></vfs>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	tree, note := buildTree(path, "tester")
	require.NotNil(t, tree)
	assert.Empty(t, note)

	hello, err := vfs.Resolve(tree.Root(), tree.Root(), "/hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), hello.Content())
}

func TestBuildTree_FallbackOnLoadFailure(t *testing.T) {
	loader.RegisterBuiltins()

	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<vfs><dir"), 0o644))

	tree, note := buildTree(path, "tester")
	require.NotNil(t, tree)
	assert.Contains(t, note, "VFS load error")

	// Fallback is the built-in default tree
	_, err := vfs.Resolve(tree.Root(), tree.Root(), "/readme.txt")
	assert.NoError(t, err)
}

func TestOrUnset(t *testing.T) {
	assert.Equal(t, "<unset>", orUnset(""))
	assert.Equal(t, "x", orUnset("x"))
}
