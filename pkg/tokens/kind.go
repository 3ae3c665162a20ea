package tokens

// Kind identifies the lexical class of a Token
type Kind byte

const (
	KindInvalid Kind = iota

	// Terms
	KindIRI
	KindPrefixedName
	KindBNode
	KindString
	KindLiteralLang
	KindLiteralDT
	KindInteger
	KindDecimal
	KindDouble
	KindHex

	// Words
	KindDirective
	KindVar
	KindKeyword

	// Layout
	KindNL
	KindDot

	// Single-character symbols
	KindSemicolon
	KindComma
	KindLBrace
	KindRBrace
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindEquals
	KindSlash
	KindRSlash
	KindVBar
	KindAmpersand
	KindLT
	KindGT
	KindStar
	KindPlus
	KindMinus
	KindUnderscore
)

var kindNames = [...]string{
	KindInvalid:      "INVALID",
	KindIRI:          "IRI",
	KindPrefixedName: "PREFIXED_NAME",
	KindBNode:        "BNODE",
	KindString:       "STRING",
	KindLiteralLang:  "LITERAL_LANG",
	KindLiteralDT:    "LITERAL_DT",
	KindInteger:      "INTEGER",
	KindDecimal:      "DECIMAL",
	KindDouble:       "DOUBLE",
	KindHex:          "HEX",
	KindDirective:    "DIRECTIVE",
	KindVar:          "VAR",
	KindKeyword:      "KEYWORD",
	KindNL:           "NL",
	KindDot:          "DOT",
	KindSemicolon:    "SEMICOLON",
	KindComma:        "COMMA",
	KindLBrace:       "LBRACE",
	KindRBrace:       "RBRACE",
	KindLParen:       "LPAREN",
	KindRParen:       "RPAREN",
	KindLBracket:     "LBRACKET",
	KindRBracket:     "RBRACKET",
	KindEquals:       "EQUALS",
	KindSlash:        "SLASH",
	KindRSlash:       "RSLASH",
	KindVBar:         "VBAR",
	KindAmpersand:    "AMPERSAND",
	KindLT:           "LT",
	KindGT:           "GT",
	KindStar:         "STAR",
	KindPlus:         "PLUS",
	KindMinus:        "MINUS",
	KindUnderscore:   "UNDERSCORE",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// symbolKinds maps the fixed single-character symbols to their kind.
// '<' is absent: it always opens an IRI.
var symbolKinds = map[rune]Kind{
	';':  KindSemicolon,
	',':  KindComma,
	'{':  KindLBrace,
	'}':  KindRBrace,
	'(':  KindLParen,
	')':  KindRParen,
	'[':  KindLBracket,
	']':  KindRBracket,
	'=':  KindEquals,
	'/':  KindSlash,
	'\\': KindRSlash,
	'|':  KindVBar,
	'&':  KindAmpersand,
	'>':  KindGT,
	'*':  KindStar,
}

// symbolText is the source text of a symbol kind, used for re-emission.
var symbolText = map[Kind]string{
	KindDot:        ".",
	KindSemicolon:  ";",
	KindComma:      ",",
	KindLBrace:     "{",
	KindRBrace:     "}",
	KindLParen:     "(",
	KindRParen:     ")",
	KindLBracket:   "[",
	KindRBracket:   "]",
	KindEquals:     "=",
	KindSlash:      "/",
	KindRSlash:     "\\",
	KindVBar:       "|",
	KindAmpersand:  "&",
	KindLT:         "<",
	KindGT:         ">",
	KindStar:       "*",
	KindPlus:       "+",
	KindMinus:      "-",
	KindUnderscore: "_",
}

// StringType records which quoting style produced a string literal
type StringType byte

const (
	StringNone  StringType = iota
	String1                // '...'
	String2                // "..."
	LongString1            // '''...'''
	LongString2            // """..."""
)

func (s StringType) String() string {
	switch s {
	case String1:
		return "STRING1"
	case String2:
		return "STRING2"
	case LongString1:
		return "LONG_STRING1"
	case LongString2:
		return "LONG_STRING2"
	default:
		return "NONE"
	}
}

// Quote returns the delimiter of the quoting style.
func (s StringType) Quote() string {
	switch s {
	case String1:
		return "'"
	case LongString1:
		return "'''"
	case LongString2:
		return `"""`
	default:
		return `"`
	}
}

// IsLong reports whether the style is triple-quoted.
func (s StringType) IsLong() bool {
	return s == LongString1 || s == LongString2
}
