// Package xmltree parses XML parts into a small element tree that is queried
// by local name only. OOXML producers bind namespace prefixes differently, so
// namespace URIs and prefixes never take part in matching.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMalformed indicates the input is not well-formed XML.
var ErrMalformed = errors.New("xml malformed")

// Node is an element in a parsed tree.
type Node struct {
	// Local is the element name with its namespace prefix stripped.
	Local string
	// Space is the resolved namespace URI. It is informational only.
	Space string
	// Attrs holds the element's attributes in source order.
	Attrs []xml.Attr
	// Parent is nil for the root element.
	Parent *Node

	children []*Node
	text     strings.Builder
}

// Parse builds a tree from XML bytes and returns the root element.
// Input may carry a UTF-8 or UTF-16 byte order mark.
func Parse(data []byte) (*Node, error) {
	if hasBOM(data) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode: %v", ErrMalformed, err)
		}
		data = decoded
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charsetReader

	var root, cur *Node
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Local:  t.Name.Local,
				Space:  t.Name.Space,
				Attrs:  t.Attr,
				Parent: cur,
			}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrMalformed)
				}
				root = n
			} else {
				cur.children = append(cur.children, n)
			}
			cur = n
		case xml.EndElement:
			cur = cur.Parent
		case xml.CharData:
			if cur != nil {
				cur.text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return root, nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(data, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF})
}

// charsetReader handles encoding declarations. The input has already been
// transcoded to UTF-8 when it carried a UTF-16 byte order mark.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(label) {
	case "utf-8", "utf8", "utf-16", "utf16", "utf-16le", "utf-16be":
		return input, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Children returns the direct child elements in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the first direct child with the given local name, or nil.
func (n *Node) Child(local string) *Node {
	for _, c := range n.children {
		if c.Local == local {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the direct children with the given local name.
func (n *Node) ChildrenNamed(local string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// FindAll returns every descendant (excluding n itself) with the given local
// name, in document order.
func (n *Node) FindAll(local string) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if d.Local == local {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// Find returns the first descendant with the given local name, or nil.
func (n *Node) Find(local string) *Node {
	var found *Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if found != nil {
				return false
			}
			if d.Local == local {
				found = d
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the visited node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Attr returns the value of the attribute with the given local name,
// regardless of the attribute's own prefix.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or def when it is absent.
func (n *Node) AttrOr(local, def string) string {
	if v, ok := n.Attr(local); ok {
		return v
	}
	return def
}

// Text returns the character data directly inside n, excluding descendants.
func (n *Node) Text() string {
	return n.text.String()
}

// HasText reports whether n has any direct character data.
func (n *Node) HasText() bool {
	return n.text.Len() > 0
}
