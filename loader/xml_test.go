package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vfsh/vfs"
)

const seedDoc = `<vfs>
  <dir name="/">
    <dir name="etc">
      <file name="motd" encoding="utf-8">Welcome</file>
    </dir>
    <dir name="home">
      <dir name="user"/>
    </dir>
    <file name="blob" base64="true">AAECAw==</file>
    <file name="readme.txt">plain text</file>
  </dir>
</vfs>`

func TestParseXML_FullTree(t *testing.T) {
	tree, err := ParseXML([]byte(seedDoc))
	require.NoError(t, err)
	root := tree.Root()

	motd, err := vfs.Resolve(root, root, "/etc/motd")
	require.NoError(t, err)
	assert.Equal(t, []byte("Welcome"), motd.Content())

	blob, err := vfs.Resolve(root, root, "/blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3}, blob.Content())

	readme, err := vfs.Resolve(root, root, "/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain text"), readme.Content())

	user, err := vfs.Resolve(root, root, "/home/user")
	require.NoError(t, err)
	assert.True(t, user.IsDir())
}

func TestParseXML_WrongRootTag(t *testing.T) {
	_, err := ParseXML([]byte(`<filesystem><dir name="/"/></filesystem>`))
	assert.ErrorIs(t, err, vfs.ErrLoadFailure)
}

func TestParseXML_MissingRootDir(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="etc"/></vfs>`))
	require.ErrorIs(t, err, vfs.ErrLoadFailure)
	assert.Contains(t, err.Error(), `<dir name="/">`)
}

func TestParseXML_MalformedDocument(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="/">`))
	assert.ErrorIs(t, err, vfs.ErrLoadFailure)
}

func TestParseXML_NamelessDir(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="/"><dir/></dir></vfs>`))
	require.ErrorIs(t, err, vfs.ErrLoadFailure)
	assert.Contains(t, err.Error(), "name")
}

func TestParseXML_NamelessFile(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="/"><file>x</file></dir></vfs>`))
	assert.ErrorIs(t, err, vfs.ErrLoadFailure)
}

func TestParseXML_BadBase64(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="/"><file name="b" base64="true">!!!</file></dir></vfs>`))
	require.ErrorIs(t, err, vfs.ErrLoadFailure)
	assert.Contains(t, err.Error(), "b")
}

func TestParseXML_Base64Flag(t *testing.T) {
	for _, truthy := range []string{"1", "true", "yes", "TRUE"} {
		doc := `<vfs><dir name="/"><file name="b" base64="` + truthy + `">aGk=</file></dir></vfs>`
		tree, err := ParseXML([]byte(doc))
		require.NoError(t, err, "base64=%q", truthy)
		blob, err := vfs.Resolve(tree.Root(), tree.Root(), "/b")
		require.NoError(t, err)
		assert.Equal(t, []byte("hi"), blob.Content())
	}

	// "false" keeps the text verbatim
	tree, err := ParseXML([]byte(`<vfs><dir name="/"><file name="b" base64="false">aGk=</file></dir></vfs>`))
	require.NoError(t, err)
	blob, err := vfs.Resolve(tree.Root(), tree.Root(), "/b")
	require.NoError(t, err)
	assert.Equal(t, []byte("aGk="), blob.Content())
}

func TestParseXML_AsciiEncoding(t *testing.T) {
	tree, err := ParseXML([]byte(`<vfs><dir name="/"><file name="a" encoding="ascii">plain</file></dir></vfs>`))
	require.NoError(t, err)
	a, err := vfs.Resolve(tree.Root(), tree.Root(), "/a")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), a.Content())

	_, err = ParseXML([]byte(`<vfs><dir name="/"><file name="a" encoding="ascii">héllo</file></dir></vfs>`))
	assert.ErrorIs(t, err, vfs.ErrLoadFailure)
}

func TestParseXML_UnsupportedEncoding(t *testing.T) {
	_, err := ParseXML([]byte(`<vfs><dir name="/"><file name="a" encoding="koi8-r">x</file></dir></vfs>`))
	assert.ErrorIs(t, err, vfs.ErrLoadFailure)
}

func TestParseXML_UnknownTagsIgnored(t *testing.T) {
	tree, err := ParseXML([]byte(`<vfs><dir name="/"><comment>skip me</comment><file name="f">ok</file></dir></vfs>`))
	require.NoError(t, err)

	f, err := vfs.Resolve(tree.Root(), tree.Root(), "/f")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), f.Content())
	assert.Equal(t, 1, tree.Root().NumChildren())
}
