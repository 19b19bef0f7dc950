// Package render serializes the abstract document tree to a concrete format.
// The core pipeline ends at the tree; everything format-specific lives here.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/clutchreport/internal/domain/document"
)

// Renderer serializes a report tree to w.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, root *document.Section) error
}

// Option applies a configuration option to the Markdown renderer.
type Option func(*Markdown)

// WithImageCheck controls whether referenced images must exist on disk at
// render time. Enabled by default.
func WithImageCheck(check bool) Option {
	return func(m *Markdown) {
		m.checkImages = check
	}
}

// Markdown renders the document tree as GitHub-flavored Markdown.
type Markdown struct {
	checkImages bool
}

// NewMarkdown creates a Markdown renderer with configuration options.
func NewMarkdown(opts ...Option) *Markdown {
	m := &Markdown{checkImages: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Render walks the tree depth-first and writes Markdown to w. Any write or
// image-resolution failure wraps ErrRender.
func (m *Markdown) Render(ctx context.Context, w io.Writer, root *document.Section) error {
	var sb strings.Builder
	if err := m.section(ctx, &sb, root, 1); err != nil {
		return err
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing output: %w: %w", ErrRender, err)
	}
	return nil
}

func (m *Markdown) section(ctx context.Context, sb *strings.Builder, s *document.Section, depth int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	sb.WriteString(strings.Repeat("#", depth))
	sb.WriteString(" ")
	sb.WriteString(s.Heading)
	sb.WriteString("\n\n")

	for _, child := range s.Children {
		if err := m.node(ctx, sb, child, depth); err != nil {
			return err
		}
	}
	return nil
}

func (m *Markdown) node(ctx context.Context, sb *strings.Builder, n document.Node, depth int) error {
	switch v := n.(type) {
	case *document.Section:
		return m.section(ctx, sb, v, depth+1)
	case *document.Paragraph:
		sb.WriteString(renderRuns(v.Runs))
		sb.WriteString("\n\n")
	case *document.Table:
		renderTable(sb, v)
	case *document.List:
		renderList(sb, v)
	case *document.Image:
		if m.checkImages {
			if _, err := os.Stat(v.Path); err != nil {
				return fmt.Errorf("%w: %w: %s", ErrRender, ErrMissingImage, v.Path)
			}
		}
		fmt.Fprintf(sb, "![%s](%s)\n\n", v.Caption, v.Path)
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrRender, n)
	}
	return nil
}

func renderRuns(runs []document.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		text := r.Text
		if r.Bold {
			text = "**" + text + "**"
		}
		if r.Italic {
			text = "*" + text + "*"
		}
		sb.WriteString(text)
	}
	return sb.String()
}

func renderTable(sb *strings.Builder, t *document.Table) {
	sb.WriteString("| " + strings.Join(t.Header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(t.Header)) + "\n")
	for _, row := range t.Rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	sb.WriteString("\n")
}

func renderList(sb *strings.Builder, l *document.List) {
	for i, item := range l.Items {
		if l.Ordered {
			fmt.Fprintf(sb, "%d. %s\n", i+1, renderRuns(item.Runs))
		} else {
			fmt.Fprintf(sb, "- %s\n", renderRuns(item.Runs))
		}
	}
	sb.WriteString("\n")
}
