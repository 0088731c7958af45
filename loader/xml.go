package loader

import (
	"encoding/base64"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"vfsh/vfs"
)

// XMLLoader builds a tree from a declarative XML document:
//
//	<vfs>
//	  <dir name="/">
//	    <dir name="etc">
//	      <file name="motd" encoding="utf-8">Welcome</file>
//	    </dir>
//	    <file name="blob" base64="true">AAECAw==</file>
//	  </dir>
//	</vfs>
//
// File text may be base64-encoded; unknown child tags are ignored. A
// document whose <vfs> lacks a <dir name="/"> is rejected.
type XMLLoader struct{}

type xmlElement struct {
	XMLName  xml.Name
	Name     string       `xml:"name,attr"`
	Base64   string       `xml:"base64,attr"`
	Encoding string       `xml:"encoding,attr"`
	Text     string       `xml:",chardata"`
	Children []xmlElement `xml:",any"`
}

type xmlDocument struct {
	XMLName xml.Name     `xml:"vfs"`
	Dirs    []xmlElement `xml:"dir"`
}

// CanLoad recognizes existing .xml files.
func (l *XMLLoader) CanLoad(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func (l *XMLLoader) Load(path string) (*vfs.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failf("cannot read '%s': %v", path, err)
	}
	return ParseXML(data)
}

// ParseXML builds a tree from raw XML document bytes.
func ParseXML(data []byte) (*vfs.Tree, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, failf("malformed XML: %v", err)
	}

	var top *xmlElement
	for i := range doc.Dirs {
		if doc.Dirs[i].Name == "/" {
			top = &doc.Dirs[i]
			break
		}
	}
	if top == nil {
		return nil, failf(`<vfs> has no <dir name="/">`)
	}

	tree := vfs.NewTree()
	if err := buildDir(top, tree.Root()); err != nil {
		return nil, err
	}
	return tree, nil
}

func buildDir(el *xmlElement, dir *vfs.Node) error {
	for i := range el.Children {
		child := &el.Children[i]
		switch child.XMLName.Local {
		case "dir":
			if child.Name == "" {
				return failf("<dir> is missing the 'name' attribute")
			}
			sub, err := dir.AddDir(child.Name)
			if err != nil {
				return failf("dir '%s': %v", child.Name, err)
			}
			if err := buildDir(child, sub); err != nil {
				return err
			}
		case "file":
			if child.Name == "" {
				return failf("<file> is missing the 'name' attribute")
			}
			content, err := decodeContent(child)
			if err != nil {
				return failf("content of file '%s': %v", child.Name, err)
			}
			if _, err := dir.AddFile(child.Name, content); err != nil {
				return failf("file '%s': %v", child.Name, err)
			}
		default:
			// unknown tags are skipped rather than rejected
		}
	}
	return nil
}

func decodeContent(el *xmlElement) ([]byte, error) {
	if isTruthy(el.Base64) {
		return base64.StdEncoding.DecodeString(strings.TrimSpace(el.Text))
	}
	return encodeText(el.Text, el.Encoding)
}

// encodeText converts element text to bytes under the declared encoding.
// UTF-8 is the default; ASCII is validated strictly. Anything else is a
// load failure since no charset tables ship with the binary.
func encodeText(text, encoding string) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return []byte(text), nil
	case "ascii", "us-ascii":
		for i := 0; i < len(text); i++ {
			if text[i] > 0x7f {
				return nil, failf("text is not pure ASCII")
			}
		}
		return []byte(text), nil
	default:
		return nil, failf("unsupported encoding '%s'", encoding)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	}
	return false
}
