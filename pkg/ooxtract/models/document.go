package models

// Document is the extraction result for a word-processing package.
type Document struct {
	// BookName is the document file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Paragraphs holds paragraph text in document order. Paragraphs without
	// text are kept as empty strings so indices stay stable.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

// NonEmpty returns the paragraphs that contain text, with their indices.
func (d *Document) NonEmpty() ([]int, []string) {
	var idx []int
	var out []string
	for i, p := range d.Paragraphs {
		if p == "" {
			continue
		}
		idx = append(idx, i)
		out = append(out, p)
	}
	return idx, out
}
