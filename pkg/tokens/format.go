package tokens

import (
	"fmt"
	"io"
	"strings"
)

// Format renders a token as source text that tokenizes back to an equal
// token (same kind, images and string type).
func Format(tok Token) string {
	switch tok.Kind {
	case KindIRI:
		return "<" + escapeIRI(tok.Image) + ">"
	case KindPrefixedName:
		return tok.Image + ":" + escapeLocal(tok.Image2)
	case KindBNode:
		return "_:" + tok.Image
	case KindString:
		return formatString(tok.Image, tok.StringType)
	case KindLiteralLang:
		return formatString(tok.LexicalForm(), lexicalType(tok)) + "@" + tok.Image2
	case KindLiteralDT:
		s := formatString(tok.LexicalForm(), lexicalType(tok)) + "^^"
		if tok.Datatype != nil {
			s += Format(*tok.Datatype)
		}
		return s
	case KindInteger, KindDecimal, KindDouble, KindHex, KindKeyword:
		return tok.Image
	case KindDirective:
		return "@" + tok.Image
	case KindVar:
		return "?" + tok.Image
	case KindNL:
		return "\n"
	default:
		return symbolText[tok.Kind]
	}
}

// WriteTokens writes tokens as source text separated by single spaces.
// NL tokens end the line.
func WriteTokens(w io.Writer, toks []Token) error {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 && tok.Kind != KindNL && toks[i-1].Kind != KindNL {
			sb.WriteByte(' ')
		}
		sb.WriteString(Format(tok))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func lexicalType(tok Token) StringType {
	if tok.Lexical != nil {
		return tok.Lexical.StringType
	}
	return tok.StringType
}

func formatString(s string, st StringType) string {
	q := st.Quote()
	return q + escapeString(s, rune(q[0])) + q
}

// escapeString escapes a lexical form for the given quote character.
func escapeString(s string, quote rune) string {
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
		case '\\':
			builder.WriteString(`\\`)
		case '"', '\'':
			if r == quote {
				builder.WriteByte('\\')
			}
			builder.WriteRune(r)
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

// escapeIRI escapes the characters that cannot appear raw between < and >.
func escapeIRI(iri string) string {
	var builder strings.Builder
	builder.Grow(len(iri))

	for _, r := range iri {
		switch {
		case r <= 0x20, strings.ContainsRune("<>\"{}|^`\\", r):
			fmt.Fprintf(&builder, `\u%04X`, r)
		default:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// escapeLocal re-escapes a decoded local name. "%hh" is written raw since
// percent escapes are kept undecoded.
func escapeLocal(local string) string {
	rs := []rune(local)
	last := len(rs) - 1

	var builder strings.Builder
	for i, r := range rs {
		raw := false
		switch {
		case r == '%':
			raw = i+2 <= last && isHexDigit(rs[i+1]) && isHexDigit(rs[i+2])
		case i == 0:
			raw = r == ':' || isPNCharsUOrDigit(r)
		case i == last:
			raw = r == ':' || isPNChars(r)
		default:
			raw = r == ':' || r == '.' || isPNChars(r)
		}
		if !raw && isLocalEscape(r) {
			builder.WriteByte('\\')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
