// Package render writes comparison results as a text table or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/bytewin/pkg/window"
)

const separatorWidth = 30

// Options selects optional table features. The zero value writes the plain
// four-column table.
type Options struct {
	// Chars appends Chr1/Chr2 columns decoded through Charset.
	Chars bool
	// Charset is the codepage for Chars. Nil means DefaultCharset.
	Charset *charmap.Charmap
	// Color highlights differing rows when the writer supports it.
	Color bool
	// Summary appends a count of differing rows.
	Summary bool
}

// Text renders results as a tab-separated table.
type Text struct {
	w        io.Writer
	opts     Options
	renderer *lipgloss.Renderer
	diff     lipgloss.Style
}

// NewText returns a table renderer writing to w.
func NewText(w io.Writer, opts Options) *Text {
	if opts.Charset == nil {
		opts.Charset = charmap.Windows1252
	}
	r := lipgloss.NewRenderer(w)
	return &Text{
		w:        w,
		opts:     opts,
		renderer: r,
		diff:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).TabWidth(lipgloss.NoTabConversion),
	}
}

// SetColorProfile overrides the profile detected from the writer.
func (t *Text) SetColorProfile(p termenv.Profile) {
	t.renderer.SetColorProfile(p)
}

// Render writes the header, separator and one row per compared index.
func (t *Text) Render(res *window.Result) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nBytes from %d to %d:\n", res.Start, res.End)
	sb.WriteString("Pos\tFile1\tFile2\tDiff?")
	if t.opts.Chars {
		sb.WriteString("\tChr1\tChr2")
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteByte('\n')

	highlight := t.opts.Color && t.renderer.ColorProfile() != termenv.Ascii
	for _, row := range res.Rows {
		line := t.row(row)
		if row.Differs && highlight {
			line = t.diff.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if t.opts.Summary {
		fmt.Fprintf(&sb, "%d difference(s) in window\n", res.Differences())
	}

	_, err := io.WriteString(t.w, sb.String())
	return err
}

func (t *Text) row(row window.Row) string {
	line := fmt.Sprintf("%d\t%s\t%s\t%s",
		row.Index, window.HexByte(row.A), window.HexByte(row.B), row.Marker())
	if t.opts.Chars {
		line += fmt.Sprintf("\t%c\t%c", glyph(t.opts.Charset, row.A), glyph(t.opts.Charset, row.B))
	}
	return line
}
