package tokens

import "unicode/utf8"

// readIRI reads an IRI after its opening '<'. Errors are reported at the
// '<' position.
func (t *Tokenizer) readIRI(at mark) (string, error) {
	t.buf = t.buf[:0]
	for {
		ch := t.src.Read()
		switch ch {
		case eof:
			return "", t.errorAt(at.line, at.col, nil, "broken IRI (end of file): <%s", t.buf)
		case '\n':
			return "", t.errorAt(at.line, at.col, nil, "broken IRI (newline): <%s", t.buf)
		case '\r':
			return "", t.errorAt(at.line, at.col, nil, "broken IRI (CR): <%s", t.buf)
		case '>':
			return string(t.buf), nil
		case '\\':
			r, err := t.readUnicodeEscape(at)
			if err != nil {
				return "", err
			}
			ch = r
		case '<':
			return "", t.errorAt(at.line, at.col, nil, "bad character in IRI (bad character: '<'): <%s[<]...>", t.buf)
		case '\t':
			return "", t.errorAt(at.line, at.col, nil, "bad character in IRI (tab character): <%s[tab]...>", t.buf)
		case '{', '}', '"', '|', '^', '`':
			if err := t.warningf("illegal character in IRI (codepoint 0x%02X, '%c'): <%s[%c]...>", ch, ch, t.buf, ch); err != nil {
				return "", err
			}
		case ' ':
			if err := t.warningf("bad character in IRI (space): <%s[space]...>", t.buf); err != nil {
				return "", err
			}
		default:
			if ch <= 0x19 {
				if err := t.warningf("illegal character in IRI (control char 0x%02X): <%s[0x%02X]...>", ch, t.buf, ch); err != nil {
					return "", err
				}
			}
		}
		t.buf = utf8.AppendRune(t.buf, ch)
	}
}
