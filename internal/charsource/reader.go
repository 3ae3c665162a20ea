package charsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EOF is returned by Peek and Read once the input is exhausted (or has failed).
const EOF rune = -1

// MaxPushback is the number of codepoints that can be pushed back at once.
// Triple-quote probing, dot-before-digit and sign-before-digit each need one.
const MaxPushback = 3

// ErrBadEncoding reports a malformed byte sequence in the underlying stream.
var ErrBadEncoding = errors.New("bad character encoding")

// position is a line/column/offset snapshot.
type position struct {
	line   int64
	col    int64
	offset int64
	cr     bool // last consumed codepoint was CR
}

// Reader is a peekable, position-tracking reader over a codepoint stream.
// It is not safe for concurrent use.
type Reader struct {
	in     *bufio.Reader
	closer io.Closer

	peeked  rune
	hasPeek bool

	back  [MaxPushback]rune
	nback int

	// hist holds the positions before the most recent reads so that
	// pushback restores line and column exactly.
	hist  [MaxPushback]position
	hhead int
	nhist int

	pos position
	err error
}

// New creates a Reader over r. A leading byte order mark selects UTF-8 or
// UTF-16 decoding; without one the input is read as UTF-8.
func New(r io.Reader) *Reader {
	dec := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	rd := &Reader{
		in:  bufio.NewReader(dec),
		pos: position{line: 1, col: 1},
	}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}
	return rd
}

// NewString creates a Reader over an in-memory string.
func NewString(s string) *Reader {
	return New(strings.NewReader(s))
}

// Peek returns the next codepoint without consuming it.
func (r *Reader) Peek() rune {
	if r.nback > 0 {
		return r.back[r.nback-1]
	}
	if !r.hasPeek {
		r.peeked = r.fill()
		r.hasPeek = true
	}
	return r.peeked
}

// Read consumes and returns the next codepoint.
func (r *Reader) Read() rune {
	var ch rune
	if r.nback > 0 {
		r.nback--
		ch = r.back[r.nback]
	} else {
		ch = r.Peek()
		r.hasPeek = false
	}
	if ch == EOF {
		// Keep returning EOF without moving.
		r.hasPeek = true
		r.peeked = EOF
		return EOF
	}
	r.hist[r.hhead] = r.pos
	r.hhead = (r.hhead + 1) % MaxPushback
	if r.nhist < MaxPushback {
		r.nhist++
	}
	r.advance(ch)
	return ch
}

// Pushback un-consumes ch, which must be the codepoint most recently read.
func (r *Reader) Pushback(ch rune) {
	if r.nback >= MaxPushback {
		panic(fmt.Sprintf("charsource: pushback buffer full (%d)", MaxPushback))
	}
	if ch == EOF {
		return
	}
	if r.nhist == 0 {
		panic("charsource: pushback without a preceding read")
	}
	r.hhead = (r.hhead + MaxPushback - 1) % MaxPushback
	r.nhist--
	r.pos = r.hist[r.hhead]
	r.back[r.nback] = ch
	r.nback++
}

// AtEnd reports whether the input is exhausted.
func (r *Reader) AtEnd() bool {
	return r.Peek() == EOF
}

// Line returns the 1-based line of the next codepoint.
func (r *Reader) Line() int64 { return r.pos.line }

// Column returns the 1-based column of the next codepoint.
func (r *Reader) Column() int64 { return r.pos.col }

// Offset returns the number of codepoints consumed so far.
func (r *Reader) Offset() int64 { return r.pos.offset }

// Err returns the decoding or I/O error that ended the stream, if any.
// A clean end of input is not an error.
func (r *Reader) Err() error { return r.err }

// Close releases the underlying reader when it is closable.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *Reader) advance(ch rune) {
	r.pos.offset++
	switch ch {
	case '\r':
		r.pos.line++
		r.pos.col = 1
		r.pos.cr = true
		return
	case '\n':
		if !r.pos.cr {
			r.pos.line++
		}
		r.pos.col = 1
	default:
		r.pos.col++
	}
	r.pos.cr = false
}

func (r *Reader) fill() rune {
	if r.err != nil {
		return EOF
	}
	ch, size, err := r.in.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = fmt.Errorf("bad input stream: %w", err)
		}
		return EOF
	}
	if ch == utf8.RuneError && size == 1 {
		r.err = ErrBadEncoding
		return EOF
	}
	return ch
}
