package tokens

// readNumber reads INTEGER, DECIMAL, DOUBLE or HEX. The image keeps the
// number as written, sign included.
//
//	[+-]?[0-9]+                        INTEGER
//	[+-]?[0-9]*\.[0-9]+                DECIMAL
//	[+-]?([0-9]+\.[0-9]*|\.?[0-9]+)exp DOUBLE
//	0[xX][0-9a-fA-F]+                  HEX
func (t *Tokenizer) readNumber(tok Token) (Token, error) {
	t.buf = t.buf[:0]
	isDecimal := false
	x := 0 // integer-part digits

	ch := t.src.Peek()
	switch ch {
	case '0':
		x++
		t.readInto()
		if ch = t.src.Peek(); ch == 'x' || ch == 'X' {
			t.readInto()
			if err := t.readHex(); err != nil {
				return Token{}, err
			}
			tok.Kind = KindHex
			tok.Image = string(t.buf)
			return tok, t.check(tok)
		}
	case '-', '+':
		t.readInto()
	}

	x += t.readDigits()
	if t.src.Peek() == '.' {
		t.readInto()
		isDecimal = true
		t.readDigits()
	}

	if x == 0 && !isDecimal {
		return Token{}, t.errorf("unrecognized as number")
	}

	isDouble, err := t.exponent()
	if err != nil {
		return Token{}, err
	}
	if isDouble {
		isDecimal = false
	}

	// "1." is the integer 1 followed by a DOT.
	if isDecimal && t.buf[len(t.buf)-1] == '.' {
		t.buf = t.buf[:len(t.buf)-1]
		t.src.Pushback('.')
		isDecimal = false
	}

	switch {
	case isDouble:
		tok.Kind = KindDouble
	case isDecimal:
		tok.Kind = KindDecimal
	default:
		tok.Kind = KindInteger
	}
	tok.Image = string(t.buf)
	return tok, t.check(tok)
}

// readInto consumes one ASCII character into the scratch buffer.
func (t *Tokenizer) readInto() {
	t.buf = append(t.buf, byte(t.src.Read()))
}

func (t *Tokenizer) readDigits() int {
	n := 0
	for isDigit(t.src.Peek()) {
		t.readInto()
		n++
	}
	return n
}

func (t *Tokenizer) readHex() error {
	n := 0
	for isHexDigit(t.src.Peek()) {
		t.readInto()
		n++
	}
	if n == 0 {
		return t.errorf("no hex characters after %s", t.buf)
	}
	return nil
}

func (t *Tokenizer) exponent() (bool, error) {
	ch := t.src.Peek()
	if ch != 'e' && ch != 'E' {
		return false, nil
	}
	t.readInto()
	if ch = t.src.Peek(); ch == '-' || ch == '+' {
		t.readInto()
	}
	if t.readDigits() == 0 {
		return false, t.errorf("malformed double: %s", t.buf)
	}
	return true, nil
}
