package rdf

import (
	"fmt"
	"io"
	"strings"
)

// SerializeQuadsCanonical serializes quads to canonical N-Quads (C14N).
// Canonical form fixes the representation, not the order: input order is kept.
func SerializeQuadsCanonical(quads []*Quad) string {
	var builder strings.Builder
	for _, quad := range quads {
		writeQuadCanonical(&builder, quad)
	}
	return builder.String()
}

// WriteQuadsCanonical writes quads in canonical N-Quads to w.
func WriteQuadsCanonical(w io.Writer, quads []*Quad) error {
	if _, err := io.WriteString(w, SerializeQuadsCanonical(quads)); err != nil {
		return fmt.Errorf("failed to write quads: %w", err)
	}
	return nil
}

func writeQuadCanonical(builder *strings.Builder, quad *Quad) {
	builder.WriteString(FormatTerm(quad.Subject))
	builder.WriteByte(' ')
	builder.WriteString(FormatTerm(quad.Predicate))
	builder.WriteByte(' ')
	builder.WriteString(FormatTerm(quad.Object))

	// The default graph is written as a triple
	if quad.Graph != nil {
		if _, isDefault := quad.Graph.(*DefaultGraph); !isDefault {
			builder.WriteByte(' ')
			builder.WriteString(FormatTerm(quad.Graph))
		}
	}

	builder.WriteString(" .\n")
}

// FormatTerm serializes a single RDF term in canonical N-Quads syntax.
func FormatTerm(term Term) string {
	switch t := term.(type) {
	case *NamedNode:
		return "<" + escapeIRICanonical(t.IRI) + ">"
	case *BlankNode:
		return "_:" + t.ID
	case *Literal:
		return formatLiteralCanonical(t)
	default:
		return ""
	}
}

func formatLiteralCanonical(lit *Literal) string {
	escaped := `"` + escapeStringCanonical(lit.Value) + `"`

	// Language tags are lower-cased in canonical form
	if lit.Language != "" {
		return escaped + "@" + strings.ToLower(lit.Language)
	}

	// xsd:string is implicit and omitted
	if lit.Datatype != nil && lit.Datatype.IRI != XSDString.IRI {
		return escaped + "^^<" + escapeIRICanonical(lit.Datatype.IRI) + ">"
	}
	return escaped
}

// escapeStringCanonical applies the canonical N-Quads escapes:
// \t \b \n \r \f \" \\ by name, \uXXXX for other control characters,
// DEL and the noncharacters U+FFFE and U+FFFF.
func escapeStringCanonical(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\t':
			builder.WriteString(`\t`)
		case '\b':
			builder.WriteString(`\b`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\f':
			builder.WriteString(`\f`)
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7F || r == 0xFFFE || r == 0xFFFF {
				fmt.Fprintf(&builder, `\u%04X`, r)
			} else {
				builder.WriteRune(r)
			}
		}
	}

	return builder.String()
}

// escapeIRICanonical escapes the characters a tolerant reader may have let
// into an IRI (spaces, controls, and the ones it only warns about).
func escapeIRICanonical(iri string) string {
	if !strings.ContainsFunc(iri, needsIRIEscape) {
		return iri
	}
	var builder strings.Builder
	builder.Grow(len(iri) + 8)
	for _, r := range iri {
		if needsIRIEscape(r) {
			fmt.Fprintf(&builder, `\u%04X`, r)
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func needsIRIEscape(r rune) bool {
	return r <= 0x20 || strings.ContainsRune("<>\"{}|^`\\", r)
}
