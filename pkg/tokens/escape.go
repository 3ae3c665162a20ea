package tokens

import (
	"unicode"
	"unicode/utf16"

	"fortio.org/safecast"
)

// readLiteralEscape decodes the escape after a '\' inside a string literal.
// Errors are reported at 'at', the start of the literal.
func (t *Tokenizer) readLiteralEscape(at mark) (rune, error) {
	c := t.src.Read()
	switch c {
	case eof:
		return 0, t.errorAt(at.line, at.col, nil, "escape sequence not completed")
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'f':
		return '\f', nil
	case 'b':
		return '\b', nil
	case '"', '\'', '\\':
		return c, nil
	case 'u':
		return t.readUnicode4(at)
	case 'U':
		return t.readUnicode8(at)
	default:
		return 0, t.errorAt(at.line, at.col, nil, "illegal escape sequence value: %c (0x%02X)", c, c)
	}
}

// readUnicodeEscape decodes the escape after a '\' inside an IRI, where
// only \u and \U are allowed.
func (t *Tokenizer) readUnicodeEscape(at mark) (rune, error) {
	c := t.src.Read()
	switch c {
	case eof:
		return 0, t.errorAt(at.line, at.col, nil, "broken escape sequence")
	case 'u':
		return t.readUnicode4(at)
	case 'U':
		return t.readUnicode8(at)
	default:
		return 0, t.errorAt(at.line, at.col, nil, "illegal unicode escape sequence value: \\%c (0x%02X)", c, c)
	}
}

// readCharEscape decodes a local-name character escape such as \- or \%.
func (t *Tokenizer) readCharEscape() (rune, error) {
	c := t.src.Read()
	if c == eof {
		return 0, t.errorf("escape sequence not completed")
	}
	if !isLocalEscape(c) {
		return 0, t.errorf("illegal character escape value: \\%c", c)
	}
	return c, nil
}

// readUnicode4 reads the four hex digits of \u. A high surrogate must be
// followed by a \u low surrogate; the pair decodes to one code point.
func (t *Tokenizer) readUnicode4(at mark) (rune, error) {
	v, err := t.readHexSequence(4, at)
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if r >= 0xDC00 {
		return 0, t.errorAt(at.line, at.col, nil, "illegal code point: unpaired low surrogate \\u%04X", r)
	}
	if t.src.Peek() != '\\' {
		return 0, t.errorAt(at.line, at.col, nil, "illegal code point: unpaired high surrogate \\u%04X", r)
	}
	t.src.Read()
	if t.src.Read() != 'u' {
		return 0, t.errorAt(at.line, at.col, nil, "illegal code point: unpaired high surrogate \\u%04X", r)
	}
	lo, err := t.readHexSequence(4, at)
	if err != nil {
		return 0, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, t.errorAt(at.line, at.col, nil, "illegal code point: \\u%04X is not a low surrogate", lo)
	}
	return utf16.DecodeRune(r, rune(lo)), nil
}

func (t *Tokenizer) readUnicode8(at mark) (rune, error) {
	v, err := t.readHexSequence(8, at)
	if err != nil {
		return 0, err
	}
	r, err := safecast.Conv[rune](v)
	if err != nil || r > unicode.MaxRune || utf16.IsSurrogate(r) {
		return 0, t.errorAt(at.line, at.col, err, "illegal code point in \\U sequence value: 0x%08X", v)
	}
	return r, nil
}

func (t *Tokenizer) readHexSequence(n int, at mark) (uint64, error) {
	var v uint64
	for range n {
		ch := t.src.Read()
		if ch == eof {
			return 0, t.errorAt(at.line, at.col, nil, "not a hexadecimal character (end of file)")
		}
		d := hexValue(ch)
		if d < 0 {
			return 0, t.errorAt(at.line, at.col, nil, "not a hexadecimal character: '%c'", ch)
		}
		v = v<<4 | uint64(d)
	}
	return v, nil
}
