package tokens

import (
	"strings"
	"unicode/utf8"
)

// readPrefixedNameOrKeyword reads PN_PREFIX? (':' PN_LOCAL?)? and decides
// between PREFIXED_NAME and KEYWORD on the presence of the colon.
func (t *Tokenizer) readPrefixedNameOrKeyword(tok Token) (Token, error) {
	start := t.src.Offset()

	prefix, err := t.readSegment(false)
	if err != nil {
		return Token{}, err
	}
	tok.Kind = KindKeyword
	tok.Image = prefix

	if t.src.Peek() == ':' {
		t.src.Read()
		local, err := t.readSegment(true)
		if err != nil {
			return Token{}, err
		}
		tok.Kind = KindPrefixedName
		tok.Image2 = local
	}

	if t.src.Offset() == start {
		ch := t.src.Peek()
		return Token{}, t.errorf("failed to find a prefix name or keyword: %c(%d;0x%04X)", ch, ch, ch)
	}
	return tok, t.check(tok)
}

// readSegment reads the prefix part (local false) or the local part of a
// prefixed name. A trailing '.' is not part of the name and is left in the
// input.
func (t *Tokenizer) readSegment(local bool) (string, error) {
	t.buf = t.buf[:0]

	ch := t.src.Peek()
	switch {
	case ch == eof:
		return "", nil
	case local && (ch == '%' || ch == '\\'):
		t.src.Read()
		if err := t.processPLX(ch); err != nil {
			return "", err
		}
	case local && (ch == ':' || isPNCharsUOrDigit(ch)):
		t.appendRead()
	case !local && isPNCharsBase(ch):
		t.appendRead()
	default:
		return "", nil
	}

	// A dot is held back until the next name character proves it interior.
	pendingDot := false
	for {
		ch = t.src.Peek()
		if local && (ch == '%' || ch == '\\') {
			t.src.Read()
			if pendingDot {
				t.buf = append(t.buf, '.')
				pendingDot = false
			}
			if err := t.processPLX(ch); err != nil {
				return "", err
			}
			continue
		}
		if !(local && ch == ':') && !isPNChars(ch) && ch != '.' {
			break
		}
		t.src.Read()
		if pendingDot {
			t.buf = append(t.buf, '.')
			pendingDot = false
		}
		if ch == '.' {
			pendingDot = true
		} else {
			t.buf = utf8.AppendRune(t.buf, ch)
		}
	}
	if pendingDot {
		t.src.Pushback('.')
	}
	return string(t.buf), nil
}

// processPLX handles %hh and \c in a local name. Percent escapes are kept
// as written; character escapes are decoded.
func (t *Tokenizer) processPLX(ch rune) error {
	if ch == '%' {
		t.buf = append(t.buf, '%')
		for range 2 {
			h := t.src.Peek()
			if !isHexDigit(h) {
				return t.errorf("not a hex character: '%c'", h)
			}
			t.readInto()
		}
		return nil
	}
	r, err := t.readCharEscape()
	if err != nil {
		return err
	}
	t.buf = utf8.AppendRune(t.buf, r)
	return nil
}

// readBlankNodeLabel reads the label after "_:".
func (t *Tokenizer) readBlankNodeLabel() (string, error) {
	t.buf = t.buf[:0]

	ch := t.src.Peek()
	switch {
	case ch == eof:
		return "", t.errorf("blank node label missing (end of file)")
	case isWhitespace(ch):
		return "", t.errorf("blank node label missing")
	case !isPNCharsUOrDigit(ch):
		return "", t.errorf("blank node label does not start with alphabetic or _ : '%c'", ch)
	}
	t.appendRead()

	pendingDot := false
	for {
		ch = t.src.Peek()
		if !isPNChars(ch) && ch != '.' {
			break
		}
		t.src.Read()
		if pendingDot {
			t.buf = append(t.buf, '.')
			pendingDot = false
		}
		if ch == '.' {
			pendingDot = true
		} else {
			t.buf = utf8.AppendRune(t.buf, ch)
		}
	}
	if pendingDot {
		t.src.Pushback('.')
	}
	return string(t.buf), nil
}

// readVarName reads a variable name after '?'. Names may start with a digit
// or sign and may end with a dot.
func (t *Tokenizer) readVarName() string {
	return t.readWordChars("_.-?@+/~", true, true)
}

// readWord reads a directive name after '@'.
func (t *Tokenizer) readWord() string {
	return t.readWordChars("_.-", false, false)
}

func (t *Tokenizer) readWordChars(extra string, leadingSignOrDigit, finalDot bool) string {
	t.buf = t.buf[:0]

	ch := t.src.Peek()
	if !leadingSignOrDigit && (isDigit(ch) || ch == '+' || ch == '-') {
		return ""
	}

	pendingDot := false
	for {
		ch = t.src.Peek()
		if !isAlphaNumeric(ch) && !strings.ContainsRune(extra, ch) {
			break
		}
		t.src.Read()
		if pendingDot {
			t.buf = append(t.buf, '.')
			pendingDot = false
		}
		if ch == '.' && !finalDot {
			pendingDot = true
		} else {
			t.buf = utf8.AppendRune(t.buf, ch)
		}
	}
	if pendingDot {
		t.src.Pushback('.')
	}
	return string(t.buf)
}

// appendRead consumes one character into the scratch buffer.
func (t *Tokenizer) appendRead() {
	t.buf = utf8.AppendRune(t.buf, t.src.Read())
}
