package vfs

// Tree holds the root of one virtual filesystem. A tree is owned by a
// single session and operated on sequentially; see the package
// documentation for the concurrency contract.
type Tree struct {
	root *Node
}

// NewTree creates a tree with an empty root directory. The root has no
// parent and its name never appears in constructed paths.
func NewTree() *Tree {
	return &Tree{root: newDir("/", nil)}
}

// Root returns the tree's root directory.
func (t *Tree) Root() *Node {
	return t.root
}

// DefaultTree builds the built-in fallback tree used when no seed source
// is given or the seed fails to load: a root with a couple of preset
// directories and files. Callers may ignore it and build their own.
func DefaultTree(username string) *Tree {
	if username == "" {
		username = "user"
	}
	// Errors are impossible here: the tree is fresh and every name is
	// distinct
	t := NewTree()
	etc, _ := t.root.AddDir("etc")
	home, _ := t.root.AddDir("home")
	user, _ := home.AddDir(username)
	_, _ = t.root.AddFile("readme.txt", []byte("This is VFS"))
	_, _ = etc.AddFile("motd", []byte("Welcome to the shell emulator!\n"))
	_, _ = user.AddFile("notes.txt", []byte("Hello from the VFS!\n"))
	return t
}
