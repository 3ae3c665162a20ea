package tokens

import "unicode/utf8"

// readLiteral reads a quoted string and, if present, its language tag or
// datatype. The result is STRING, LITERAL_LANG or LITERAL_DT.
func (t *Tokenizer) readLiteral(tok Token) (Token, error) {
	at := mark{tok.Line, tok.Column}
	q := t.src.Read()
	tok.Kind = KindString

	var err error
	if t.src.Peek() == q {
		t.src.Read()
		if t.src.Peek() == q {
			t.src.Read()
			tok.StringType = longStringType(q)
			tok.Image, err = t.readLongString(q, at)
		} else {
			// '' or "" followed by something else
			tok.StringType = shortStringType(q)
		}
	} else {
		tok.StringType = shortStringType(q)
		tok.Image, err = t.readString(q, at)
	}
	if err != nil {
		return Token{}, err
	}

	t.skip()
	switch t.src.Peek() {
	case '@':
		t.src.Read()
		lang, err := t.readLangTag()
		if err != nil {
			return Token{}, err
		}
		lex := tok
		tok.Kind = KindLiteralLang
		tok.Image2 = lang
		tok.Lexical = &lex
		return tok, t.check(tok)

	case '^':
		if err := t.expect("^^"); err != nil {
			return Token{}, err
		}
		t.skip()
		if t.src.AtEnd() {
			return Token{}, t.errorf("end of input after ^^: datatype IRI expected")
		}
		dt, err := t.parseToken()
		if err != nil {
			return Token{}, err
		}
		if !dt.IsIRI() {
			return Token{}, t.errorAt(dt.Line, dt.Column, nil, "datatype IRI required after ^^ (found %s)", dt.Kind)
		}
		lex := tok
		tok.Kind = KindLiteralDT
		tok.Lexical = &lex
		tok.Datatype = &dt
		return tok, t.check(tok)
	}
	return tok, t.check(tok)
}

func shortStringType(q rune) StringType {
	if q == '\'' {
		return String1
	}
	return String2
}

func longStringType(q rune) StringType {
	if q == '\'' {
		return LongString1
	}
	return LongString2
}

func (t *Tokenizer) readString(q rune, at mark) (string, error) {
	t.buf = t.buf[:0]
	for {
		ch := t.src.Read()
		switch {
		case ch == eof:
			return "", t.errorAt(at.line, at.col, nil, "broken token: %s", t.buf)
		case isNewline(ch):
			return "", t.errorAt(at.line, at.col, nil, "broken token (newline): %s", t.buf)
		case ch == q:
			return string(t.buf), nil
		case ch == '\\':
			r, err := t.readLiteralEscape(at)
			if err != nil {
				return "", err
			}
			ch = r
		}
		t.buf = utf8.AppendRune(t.buf, ch)
	}
}

func (t *Tokenizer) readLongString(q rune, at mark) (string, error) {
	t.buf = t.buf[:0]
	for {
		ch := t.src.Read()
		switch {
		case ch == eof:
			return "", t.errorAt(at.line, at.col, nil, "broken long string")
		case ch == q:
			if t.threeQuotes(q) {
				return string(t.buf), nil
			}
		case ch == '\\':
			r, err := t.readLiteralEscape(at)
			if err != nil {
				return "", err
			}
			ch = r
		}
		t.buf = utf8.AppendRune(t.buf, ch)
	}
}

// threeQuotes reports whether the quote just read is followed by two more,
// consuming them only if so.
func (t *Tokenizer) threeQuotes(q rune) bool {
	if t.src.Peek() != q {
		return false
	}
	t.src.Read()
	if t.src.Peek() != q {
		t.src.Pushback(q)
		return false
	}
	t.src.Read()
	return true
}

// readLangTag reads [a-zA-Z]+ ('-' [a-zA-Z0-9]+)* after '@'.
func (t *Tokenizer) readLangTag() (string, error) {
	t.buf = t.buf[:0]
	if !t.readLangSubtag(false) {
		return "", t.errorf("bad language tag")
	}
	for t.src.Peek() == '-' {
		t.src.Read()
		t.buf = append(t.buf, '-')
		if !t.readLangSubtag(true) {
			return "", t.errorf("bad language tag: %s", t.buf)
		}
	}
	return t.langTags.intern(t.buf), nil
}

func (t *Tokenizer) readLangSubtag(digits bool) bool {
	n := len(t.buf)
	for {
		ch := t.src.Peek()
		if !isASCIILetter(ch) && !(digits && isDigit(ch)) {
			break
		}
		t.src.Read()
		t.buf = append(t.buf, byte(ch))
	}
	return len(t.buf) > n
}
