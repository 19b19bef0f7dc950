// Package document models the report as an abstract, renderer-agnostic tree.
// The builder assembles the tree once; renderers traverse it without the core
// ever touching a concrete output format.
package document

// Node is one element of the document tree.
type Node interface {
	node()
}

// Section groups a heading with child nodes. The report root is a Section.
type Section struct {
	Heading  string
	Children []Node
}

// Run is a span of styled text inside a paragraph.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Paragraph is a sequence of styled runs.
type Paragraph struct {
	Runs []Run
}

// Table holds a header row and data rows of plain cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// List is an ordered or bulleted sequence of items.
type List struct {
	Ordered bool
	Items   []Paragraph
}

// Image references a pre-rendered chart by path. The core never reads the
// bytes; the renderer resolves the reference.
type Image struct {
	Path    string
	Caption string
}

func (*Section) node()   {}
func (*Paragraph) node() {}
func (*Table) node()     {}
func (*List) node()      {}
func (*Image) node()     {}

// Text builds a paragraph from one plain run.
func Text(s string) *Paragraph {
	return &Paragraph{Runs: []Run{{Text: s}}}
}

// Item builds a list item whose lead-in is bold.
func Item(lead, rest string) Paragraph {
	return Paragraph{Runs: []Run{{Text: lead, Bold: true}, {Text: rest}}}
}
