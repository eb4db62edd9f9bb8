package parser

import (
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// DocumentOptions configures paragraph reconstruction.
type DocumentOptions struct {
	// KeepLineBreaks emits "\n" for <br> and <cr> inside a paragraph.
	KeepLineBreaks bool
}

// ParseDocument reconstructs paragraph text from a parsed word-processing
// document. Every paragraph marker starts a new paragraph, tab markers emit
// "\t" and text runs append their text, all in document order. Paragraphs
// without text are kept as empty strings.
func ParseDocument(root *xmltree.Node, opts DocumentOptions) []string {
	var paras []*strings.Builder
	current := func() *strings.Builder {
		if len(paras) == 0 {
			paras = append(paras, &strings.Builder{})
		}
		return paras[len(paras)-1]
	}

	root.Walk(func(n *xmltree.Node) bool {
		switch n.Local {
		case "Fallback":
			// Alternate rendering of content already seen in mc:Choice.
			return false
		case "p":
			paras = append(paras, &strings.Builder{})
		case "tab":
			if n.Parent != nil && n.Parent.Local == "tabs" {
				// Tab stop definition in paragraph properties.
				return true
			}
			current().WriteByte('\t')
		case "t":
			if n.HasText() {
				current().WriteString(n.Text())
			}
		case "br", "cr":
			if opts.KeepLineBreaks {
				current().WriteByte('\n')
			}
		}
		return true
	})

	out := make([]string, len(paras))
	for i, b := range paras {
		out[i] = b.String()
	}
	return out
}
