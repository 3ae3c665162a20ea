package tokens

import (
	"fmt"
	"strings"
)

// Token is one lexical unit. Tokens are values: the tokenizer builds each
// one completely and never touches it again.
//
// LITERAL_LANG and LITERAL_DT tokens own the STRING token they were built
// from (Lexical); LITERAL_DT also owns its datatype token (Datatype). The
// sub-tokens are allocated per literal and never shared.
type Token struct {
	Kind Kind

	// Image is the decoded primary text: the IRI, the string lexical form,
	// the prefix of a prefixed name, the number as written, ...
	Image string
	// Image2 is the local part of a prefixed name or the language tag.
	Image2 string

	// StringType is set for STRING tokens and for the lexical part of literals.
	StringType StringType

	Lexical  *Token
	Datatype *Token

	Line   int64
	Column int64
}

// IsIRI reports whether the token names an IRI, written in full or as a
// prefixed name.
func (t Token) IsIRI() bool {
	return t.Kind == KindIRI || t.Kind == KindPrefixedName
}

// IsNumber reports whether the token is a numeric literal.
func (t Token) IsNumber() bool {
	switch t.Kind {
	case KindInteger, KindDecimal, KindDouble, KindHex:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a string or composite literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case KindString, KindLiteralLang, KindLiteralDT:
		return true
	default:
		return false
	}
}

// LexicalForm returns the string part of a literal token.
func (t Token) LexicalForm() string {
	if t.Lexical != nil {
		return t.Lexical.Image
	}
	return t.Image
}

// Language returns the language tag of a LITERAL_LANG token.
func (t Token) Language() string {
	if t.Kind == KindLiteralLang {
		return t.Image2
	}
	return ""
}

// String renders a debugging form, e.g. [PREFIXED_NAME:ex:Foo].
func (t Token) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(t.Kind.String())
	switch t.Kind {
	case KindPrefixedName:
		fmt.Fprintf(&sb, ":%s:%s", t.Image, t.Image2)
	case KindLiteralLang:
		fmt.Fprintf(&sb, ":%q@%s", t.Image, t.Image2)
	case KindLiteralDT:
		fmt.Fprintf(&sb, ":%q^^", t.Image)
		if t.Datatype != nil {
			sb.WriteString(t.Datatype.String())
		}
	case KindString:
		fmt.Fprintf(&sb, ":%q", t.Image)
	case KindNL:
	default:
		if t.Image != "" {
			sb.WriteByte(':')
			sb.WriteString(t.Image)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func newToken(line, col int64) Token {
	return Token{Line: line, Column: col}
}
