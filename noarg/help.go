package noarg

import (
	"fmt"
	"io"
	"strings"

	"github.com/dzonerzy/go-noarg/schema"
)

// Renderer draws the help and usage screens of a program.
type Renderer interface {
	RenderHelp(w io.Writer, p *Program) error
	RenderUsages(w io.Writer, p *Program) error
}

// TextRenderer is the default Renderer: aligned columns, colored through the
// program IO manager.
type TextRenderer struct{}

// usageLine returns "path <arg> [opt] [...list] [flags]".
func usageLine(p *Program) string {
	parts := []string{p.Path()}
	for _, a := range p.arguments {
		parts = append(parts, "<"+a.Name+">")
	}
	for _, a := range p.optionalArguments {
		parts = append(parts, "["+a.Name+"]")
	}
	if p.listArgument != nil {
		parts = append(parts, "[..."+p.listArgument.Name+"]")
	}
	if len(p.flagTable().specs) > 0 {
		parts = append(parts, "[flags]")
	}
	return strings.Join(parts, " ")
}

// RenderUsages writes the usage line of p and of every sub-program below it.
func (TextRenderer) RenderUsages(w io.Writer, p *Program) error {
	m := p.IO()
	var b strings.Builder
	b.WriteString(m.Bold("Usage:") + "\n")
	var walk func(q *Program)
	walk = func(q *Program) {
		b.WriteString("  " + usageLine(q) + "\n")
		for _, child := range q.programs {
			walk(child)
		}
	}
	walk(p)
	_, err := io.WriteString(w, b.String())
	return err
}

type helpRow struct {
	left  string
	right string
}

// RenderHelp writes the full help screen of p.
func (TextRenderer) RenderHelp(w io.Writer, p *Program) error {
	m := p.IO()
	var b strings.Builder

	if p.description != "" {
		b.WriteString(p.description + "\n\n")
	}
	b.WriteString(m.Bold("Usage:") + "\n  " + usageLine(p) + "\n")

	var rows []helpRow
	for _, a := range p.arguments {
		rows = append(rows, helpRow{"<" + a.Name + ">", joinNonEmpty(typeName(a.Type), a.Description)})
	}
	writeSection(&b, p, "Arguments:", rows)

	rows = rows[:0]
	for _, a := range p.optionalArguments {
		rows = append(rows, helpRow{"[" + a.Name + "]", joinNonEmpty(typeName(a.Type), a.Description)})
	}
	if l := p.listArgument; l != nil {
		rows = append(rows, helpRow{"[..." + l.Name + "]", joinNonEmpty(typeName(l.Type)+"[]", l.Description, bounds(l.MinLength, l.MaxLength))})
	}
	writeSection(&b, p, "Optional arguments:", rows)

	rows = rows[:0]
	for _, spec := range p.flagTable().specs {
		rows = append(rows, flagRow(spec))
	}
	if !p.config.DisableHelp {
		rows = append(rows,
			helpRow{"--help, -h", "Show this help"},
			helpRow{"--usage, -u", "Show usage lines"})
	}
	writeSection(&b, p, "Flags:", rows)

	rows = rows[:0]
	for _, child := range p.programs {
		rows = append(rows, helpRow{child.name, child.description})
	}
	writeSection(&b, p, "Programs:", rows)

	if len(p.programs) > 0 {
		fmt.Fprintf(&b, "\nUse \"%s PROGRAM --help\" for more information about a program.\n", p.Path())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, p *Program, title string, rows []helpRow) {
	if len(rows) == 0 {
		return
	}
	m := p.IO()
	width := 0
	for _, r := range rows {
		width = max(width, len(r.left))
	}
	b.WriteString("\n" + m.Bold(title) + "\n")
	for _, r := range rows {
		left := r.left + strings.Repeat(" ", width-len(r.left))
		line := "  " + m.Cyan(left)
		if r.right != "" {
			line += "  " + r.right
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
}

func flagRow(spec FlagSpec) helpRow {
	cfg := spec.Schema.Config()
	left := "--" + spec.Name
	for _, alias := range cfg.Aliases {
		left += ", -" + alias
	}
	if spec.Schema.Kind() != schema.KindBoolean {
		left += " <" + schemaSignature(spec.Schema) + ">"
	}

	var notes []string
	if cfg.Required {
		notes = append(notes, "(required)")
	}
	if cfg.HasDefault {
		notes = append(notes, fmt.Sprintf("(default: %v)", cfg.Default))
	}
	if cfg.Ask != "" {
		notes = append(notes, "(asked when missing)")
	}
	if s, ok := spec.Schema.(schema.String); ok && len(s.EnumValues()) > 0 {
		notes = append(notes, "("+strings.Join(s.EnumValues(), "|")+")")
	}
	return helpRow{left, joinNonEmpty(cfg.Description, strings.Join(notes, " "))}
}

func schemaSignature(s schema.Schema) string {
	switch s := s.(type) {
	case schema.Array:
		return s.Elem().Name() + "..."
	case schema.Tuple:
		names := make([]string, 0, len(s.Elems()))
		for _, e := range s.Elems() {
			names = append(names, e.Name())
		}
		return strings.Join(names, " ")
	default:
		return s.Name()
	}
}

func typeName(t schema.Primitive) string {
	if t == nil {
		return "string"
	}
	return t.Name()
}

func bounds(minLength, maxLength int) string {
	switch {
	case minLength > 0 && maxLength > 0:
		return fmt.Sprintf("(%d to %d items)", minLength, maxLength)
	case minLength > 0:
		return fmt.Sprintf("(at least %d items)", minLength)
	case maxLength > 0:
		return fmt.Sprintf("(at most %d items)", maxLength)
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "  ")
}
