package tokens

import (
	"fmt"
	"io"
	"iter"

	"github.com/aleksaelezovic/rdftok/internal/charsource"
)

const eof = charsource.EOF

// Options configures a Tokenizer. They are fixed at construction.
type Options struct {
	// LineMode makes newlines significant: they are emitted as NL tokens
	// instead of being skipped as whitespace (N-Triples, N-Quads).
	LineMode bool

	// ErrorHandler receives warnings and errors. Nil selects DefaultErrorHandler.
	ErrorHandler ErrorHandler

	// Checker is consulted for every completed token when Checking is set.
	Checker  Checker
	Checking bool
}

// Tokenizer turns a character stream into Turtle-family tokens with one
// token of lookahead. It is not safe for concurrent use.
//
// After an error the tokenizer is unusable: every later call returns the
// same error.
type Tokenizer struct {
	src      *charsource.Reader
	opts     Options
	handler  ErrorHandler
	langTags *langTagInterner

	buf []byte // scratch for the token being read

	look     *Token
	finished bool
	err      error
}

// mark is a source position used for error reports.
type mark struct {
	line, col int64
}

// NewTokenizer creates a tokenizer over r. If r is an io.Closer it is
// closed by Close.
func NewTokenizer(r io.Reader, opts Options) *Tokenizer {
	return newTokenizer(charsource.New(r), opts)
}

// NewTokenizerString creates a tokenizer over s.
func NewTokenizerString(s string, opts Options) *Tokenizer {
	return newTokenizer(charsource.NewString(s), opts)
}

func newTokenizer(src *charsource.Reader, opts Options) *Tokenizer {
	handler := opts.ErrorHandler
	if handler == nil {
		handler = DefaultErrorHandler()
	}
	return &Tokenizer{
		src:      src,
		opts:     opts,
		handler:  handler,
		langTags: newLangTagInterner(),
		buf:      make([]byte, 0, 200),
	}
}

// HasNext reports whether another token is available, scanning it into the
// lookahead slot if needed. Repeated calls do not scan again.
func (t *Tokenizer) HasNext() (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	if t.look != nil {
		return true, nil
	}
	if t.finished {
		return false, nil
	}

	t.skip()
	if t.src.AtEnd() {
		if err := t.src.Err(); err != nil {
			t.err = t.fatal(err)
			return false, t.err
		}
		t.finished = true
		return false, nil
	}

	tok, err := t.parseToken()
	if err != nil {
		t.err = err
		return false, err
	}
	t.look = &tok
	return true, nil
}

// Peek returns the next token without consuming it. At the end of input it
// returns io.EOF.
func (t *Tokenizer) Peek() (Token, error) {
	ok, err := t.HasNext()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, io.EOF
	}
	return *t.look, nil
}

// Next consumes and returns the next token. At the end of input it returns
// io.EOF.
func (t *Tokenizer) Next() (Token, error) {
	tok, err := t.Peek()
	if err != nil {
		return Token{}, err
	}
	t.look = nil
	return tok, nil
}

// All yields the remaining tokens. Iteration stops after the first error.
func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

// ReadAll consumes the remaining tokens.
func (t *Tokenizer) ReadAll() ([]Token, error) {
	var toks []Token
	for tok, err := range t.All() {
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// Line returns the current line of the character source.
func (t *Tokenizer) Line() int64 { return t.src.Line() }

// Column returns the current column of the character source.
func (t *Tokenizer) Column() int64 { return t.src.Column() }

// Close releases the character source.
func (t *Tokenizer) Close() error {
	return t.src.Close()
}

// skip consumes comments and whitespace. In line mode newlines are kept.
func (t *Tokenizer) skip() {
	for {
		ch := t.src.Peek()
		if ch == '#' {
			// Comment runs to end of line; the newline itself stays.
			for ch != eof && !isNewline(ch) {
				t.src.Read()
				ch = t.src.Peek()
			}
		}
		if ch == eof {
			return
		}
		if t.opts.LineMode {
			if !isHorizontalWhitespace(ch) {
				return
			}
		} else if !isWhitespace(ch) {
			return
		}
		t.src.Read()
	}
}

func (t *Tokenizer) parseToken() (Token, error) {
	tok := newToken(t.src.Line(), t.src.Column())
	ch := t.src.Peek()

	switch {
	case ch == '<':
		t.src.Read()
		iri, err := t.readIRI(mark{tok.Line, tok.Column})
		if err != nil {
			return Token{}, err
		}
		tok.Kind = KindIRI
		tok.Image = iri
		return tok, t.check(tok)

	case ch == '"' || ch == '\'':
		return t.readLiteral(tok)

	case ch == '_':
		t.src.Read()
		if t.src.Peek() != ':' {
			tok.Kind = KindUnderscore
			tok.Image = "_"
			return tok, nil
		}
		t.src.Read()
		label, err := t.readBlankNodeLabel()
		if err != nil {
			return Token{}, err
		}
		tok.Kind = KindBNode
		tok.Image = label
		return tok, t.check(tok)

	case ch == '@':
		// Not a language tag: those are consumed with their literal.
		t.src.Read()
		tok.Kind = KindDirective
		tok.Image = t.readWord()
		return tok, t.check(tok)

	case ch == '?':
		t.src.Read()
		tok.Kind = KindVar
		tok.Image = t.readVarName()
		return tok, t.check(tok)

	case ch == '.':
		t.src.Read()
		if isDigit(t.src.Peek()) {
			t.src.Pushback('.')
			return t.readNumber(tok)
		}
		tok.Kind = KindDot
		tok.Image = "."
		return tok, nil

	case ch == '+' || ch == '-':
		t.src.Read()
		if !isDigit(t.src.Peek()) {
			tok.Kind = KindPlus
			if ch == '-' {
				tok.Kind = KindMinus
			}
			tok.Image = string(ch)
			return tok, nil
		}
		t.src.Pushback(ch)
		return t.readNumber(tok)

	case isDigit(ch):
		return t.readNumber(tok)

	case isNewline(ch):
		// Any run of CR and LF is one NL token.
		for isNewline(t.src.Peek()) {
			t.src.Read()
		}
		tok.Kind = KindNL
		return tok, nil
	}

	if kind, ok := symbolKinds[ch]; ok {
		t.src.Read()
		tok.Kind = kind
		tok.Image = string(ch)
		return tok, nil
	}

	return t.readPrefixedNameOrKeyword(tok)
}

// here is the reader's current position.
func (t *Tokenizer) here() mark {
	return mark{t.src.Line(), t.src.Column()}
}

// errorf reports an error at the current position and returns it.
func (t *Tokenizer) errorf(format string, args ...any) error {
	m := t.here()
	return t.errorAt(m.line, m.col, nil, format, args...)
}

// errorAt reports an error through the handler and returns the error that
// ends tokenization, whatever the handler did. A failed character source
// takes precedence: the real problem is the broken stream.
func (t *Tokenizer) errorAt(line, col int64, cause error, format string, args ...any) error {
	if err := t.src.Err(); err != nil {
		return t.fatal(err)
	}
	msg := fmt.Sprintf(format, args...)
	t.handler.Error(msg, line, col)
	return &ParseError{Severity: SeverityError, Message: msg, Line: line, Column: col, Err: cause}
}

func (t *Tokenizer) fatal(cause error) error {
	m := t.here()
	msg := cause.Error()
	t.handler.Fatal(msg, m.line, m.col)
	return &ParseError{Severity: SeverityFatal, Message: msg, Line: m.line, Column: m.col, Err: cause}
}

// warningf reports a tolerated problem. A non-nil result means the handler
// escalated it.
func (t *Tokenizer) warningf(format string, args ...any) error {
	m := t.here()
	return t.handler.Warning(fmt.Sprintf(format, args...), m.line, m.col)
}

func (t *Tokenizer) expect(s string) error {
	for _, want := range s {
		if t.src.AtEnd() {
			return t.errorf("end of input during expected string: %s", s)
		}
		if t.src.Peek() != want {
			return t.errorf("expected %q", s)
		}
		t.src.Read()
	}
	return nil
}
