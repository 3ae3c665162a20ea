package rdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// QuadReader reads N-Quads (and N-Triples) statements from a token stream.
// Each statement is subject predicate object [graph] '.' on its own line.
// Triples are returned as quads in the default graph.
type QuadReader struct {
	tok   *tokens.Tokenizer
	count int
}

// NewQuadReader creates a reader over r. Line mode is always on.
func NewQuadReader(r io.Reader, opts tokens.Options) *QuadReader {
	opts.LineMode = true
	return &QuadReader{tok: tokens.NewTokenizer(r, opts)}
}

// Read returns the next quad, or io.EOF after the last one.
func (p *QuadReader) Read() (*Quad, error) {
	// Blank and comment-only lines produce bare NL tokens.
	for {
		tok, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != tokens.KindNL {
			break
		}
		if _, err := p.tok.Next(); err != nil {
			return nil, err
		}
	}

	quad, err := p.parseQuad()
	if err != nil {
		return nil, err
	}
	p.count++
	return quad, nil
}

// ReadAll reads quads until end of input.
func (p *QuadReader) ReadAll() ([]*Quad, error) {
	var quads []*Quad
	for {
		quad, err := p.Read()
		if err == io.EOF {
			return quads, nil
		}
		if err != nil {
			return quads, err
		}
		quads = append(quads, quad)
	}
}

// Count returns the number of quads read so far.
func (p *QuadReader) Count() int {
	return p.count
}

// Close releases the underlying reader.
func (p *QuadReader) Close() error {
	return p.tok.Close()
}

func (p *QuadReader) parseQuad() (*Quad, error) {
	// Parse subject
	tok, err := p.next("subject")
	if err != nil {
		return nil, err
	}
	if tok.Kind != tokens.KindIRI && tok.Kind != tokens.KindBNode {
		return nil, unexpected(tok, "subject", "IRI or blank node")
	}
	subject, err := TermFromToken(tok)
	if err != nil {
		return nil, fmt.Errorf("error parsing subject: %w", err)
	}

	// Parse predicate
	tok, err = p.next("predicate")
	if err != nil {
		return nil, err
	}
	if tok.Kind != tokens.KindIRI {
		return nil, unexpected(tok, "predicate", "IRI")
	}
	predicate := NewNamedNode(tok.Image)

	// Parse object
	tok, err = p.next("object")
	if err != nil {
		return nil, err
	}
	object, err := p.objectTerm(tok)
	if err != nil {
		return nil, err
	}

	// Parse optional graph (4th position)
	tok, err = p.next("graph or '.'")
	if err != nil {
		return nil, err
	}
	var graph Term = NewDefaultGraph()
	if tok.Kind == tokens.KindIRI || tok.Kind == tokens.KindBNode {
		if graph, err = TermFromToken(tok); err != nil {
			return nil, fmt.Errorf("error parsing graph: %w", err)
		}
		if tok, err = p.next("'.'"); err != nil {
			return nil, err
		}
	}

	// Expect '.' at end, then end of line or input
	if tok.Kind != tokens.KindDot {
		return nil, unexpected(tok, "statement", "'.'")
	}
	tok, err = p.tok.Next()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == nil && tok.Kind != tokens.KindNL {
		return nil, unexpected(tok, "statement", "end of line")
	}

	return NewQuad(subject, predicate, object, graph), nil
}

func (p *QuadReader) objectTerm(tok tokens.Token) (Term, error) {
	switch tok.Kind {
	case tokens.KindIRI, tokens.KindBNode:
	case tokens.KindString, tokens.KindLiteralLang, tokens.KindLiteralDT:
		// N-Quads only has short double-quoted strings and full datatype IRIs.
		if st := lexicalStringType(tok); st != tokens.String2 {
			return nil, statementError(tok, "object", fmt.Sprintf("%s strings are not allowed in N-Quads", st))
		}
		if tok.Kind == tokens.KindLiteralDT && tok.Datatype.Kind != tokens.KindIRI {
			return nil, statementError(*tok.Datatype, "object", "datatype must be an IRI in N-Quads")
		}
	default:
		return nil, unexpected(tok, "object", "IRI, blank node or literal")
	}
	term, err := TermFromToken(tok)
	if err != nil {
		return nil, fmt.Errorf("error parsing object: %w", err)
	}
	return term, nil
}

// next consumes a token, turning end of input into an error naming what
// was expected.
func (p *QuadReader) next(role string) (tokens.Token, error) {
	tok, err := p.tok.Next()
	if errors.Is(err, io.EOF) {
		return tok, &StatementError{
			Line:    p.tok.Line(),
			Column:  p.tok.Column(),
			Role:    "statement",
			Message: "unexpected end of input, expected " + role,
			Err:     io.ErrUnexpectedEOF,
		}
	}
	return tok, err
}

func lexicalStringType(tok tokens.Token) tokens.StringType {
	if tok.Lexical != nil {
		return tok.Lexical.StringType
	}
	return tok.StringType
}

// StatementError is a well-formed token in the wrong place.
type StatementError struct {
	Line, Column int64
	Role         string
	Message      string
	Err          error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("[line: %d, col: %d] error parsing %s: %s", e.Line, e.Column, e.Role, e.Message)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func statementError(tok tokens.Token, role, message string) error {
	return &StatementError{Line: tok.Line, Column: tok.Column, Role: role, Message: message}
}

func unexpected(tok tokens.Token, role, want string) error {
	return statementError(tok, role, fmt.Sprintf("expected %s, got %s", want, tok.Kind))
}

// TermFromToken converts a term token. Prefixed names cannot be converted
// without a prefix map and are rejected.
func TermFromToken(tok tokens.Token) (Term, error) {
	switch tok.Kind {
	case tokens.KindIRI:
		return NewNamedNode(tok.Image), nil
	case tokens.KindBNode:
		return NewBlankNode(tok.Image), nil
	case tokens.KindString:
		return NewLiteral(tok.Image), nil
	case tokens.KindLiteralLang:
		return NewLiteralWithLanguage(tok.LexicalForm(), tok.Language()), nil
	case tokens.KindLiteralDT:
		if tok.Datatype == nil || tok.Datatype.Kind != tokens.KindIRI {
			return nil, fmt.Errorf("datatype %s is not an absolute IRI token", tok.Datatype)
		}
		return NewLiteralWithDatatype(tok.LexicalForm(), NewNamedNode(tok.Datatype.Image)), nil
	case tokens.KindInteger, tokens.KindDecimal, tokens.KindDouble:
		return NewLiteralWithDatatype(tok.Image, NumberDatatype(tok.Kind)), nil
	case tokens.KindKeyword:
		if tok.Image == "true" || tok.Image == "false" {
			return NewLiteralWithDatatype(tok.Image, XSDBoolean), nil
		}
	}
	return nil, fmt.Errorf("token %s is not an RDF term", tok)
}
