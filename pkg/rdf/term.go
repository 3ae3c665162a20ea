package rdf

import (
	"fmt"
	"strings"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// TermType represents the type of an RDF term
type TermType byte

const (
	TermTypeNamedNode TermType = iota + 1
	TermTypeBlankNode
	TermTypeLiteral
	TermTypeDefaultGraph
)

func (t TermType) String() string {
	switch t {
	case TermTypeNamedNode:
		return "named node"
	case TermTypeBlankNode:
		return "blank node"
	case TermTypeLiteral:
		return "literal"
	case TermTypeDefaultGraph:
		return "default graph"
	default:
		return "unknown"
	}
}

// Term represents an RDF term (IRI, blank node, or literal)
type Term interface {
	Type() TermType
	String() string
	Equals(other Term) bool
}

// NamedNode represents an IRI
type NamedNode struct {
	IRI string
}

func NewNamedNode(iri string) *NamedNode {
	return &NamedNode{IRI: iri}
}

func (n *NamedNode) Type() TermType {
	return TermTypeNamedNode
}

func (n *NamedNode) String() string {
	return "<" + n.IRI + ">"
}

func (n *NamedNode) Equals(other Term) bool {
	if on, ok := other.(*NamedNode); ok {
		return n.IRI == on.IRI
	}
	return false
}

// BlankNode represents a blank node, identified by its document-scoped label
type BlankNode struct {
	ID string
}

func NewBlankNode(id string) *BlankNode {
	return &BlankNode{ID: id}
}

func (b *BlankNode) Type() TermType {
	return TermTypeBlankNode
}

func (b *BlankNode) String() string {
	return "_:" + b.ID
}

func (b *BlankNode) Equals(other Term) bool {
	if ob, ok := other.(*BlankNode); ok {
		return b.ID == ob.ID
	}
	return false
}

// Literal represents an RDF literal.
// At most one of Language and Datatype is set; neither means xsd:string.
type Literal struct {
	Value    string
	Language string
	Datatype *NamedNode
}

func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

func NewLiteralWithLanguage(value, language string) *Literal {
	return &Literal{Value: value, Language: language}
}

func NewLiteralWithDatatype(value string, datatype *NamedNode) *Literal {
	return &Literal{Value: value, Datatype: datatype}
}

func (l *Literal) Type() TermType {
	return TermTypeLiteral
}

func (l *Literal) String() string {
	result := fmt.Sprintf("%q", l.Value)
	if l.Language != "" {
		result += "@" + l.Language
	} else if l.Datatype != nil {
		result += "^^" + l.Datatype.String()
	}
	return result
}

// Equals compares value, datatype and language. Language tags compare
// case-insensitively; xsd:string and no datatype are the same.
func (l *Literal) Equals(other Term) bool {
	ol, ok := other.(*Literal)
	if !ok {
		return false
	}
	if l.Value != ol.Value {
		return false
	}
	if !strings.EqualFold(l.Language, ol.Language) {
		return false
	}
	return l.datatypeIRI() == ol.datatypeIRI()
}

func (l *Literal) datatypeIRI() string {
	switch {
	case l.Datatype != nil:
		return l.Datatype.IRI
	case l.Language != "":
		return RDFLangString.IRI
	default:
		return XSDString.IRI
	}
}

// DefaultGraph represents the default graph
type DefaultGraph struct{}

func NewDefaultGraph() *DefaultGraph {
	return &DefaultGraph{}
}

func (d *DefaultGraph) Type() TermType {
	return TermTypeDefaultGraph
}

func (d *DefaultGraph) String() string {
	return "DEFAULT"
}

func (d *DefaultGraph) Equals(other Term) bool {
	_, ok := other.(*DefaultGraph)
	return ok
}

// Triple represents an RDF triple (subject, predicate, object)
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func NewTriple(subject, predicate, object Term) *Triple {
	return &Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

func (t *Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Quad represents an RDF quad (subject, predicate, object, graph)
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

func NewQuad(subject, predicate, object, graph Term) *Quad {
	return &Quad{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		Graph:     graph,
	}
}

func (q *Quad) String() string {
	return fmt.Sprintf("%s %s %s %s .", q.Subject, q.Predicate, q.Object, q.Graph)
}

// Triple drops the graph name.
func (q *Quad) Triple() *Triple {
	return NewTriple(q.Subject, q.Predicate, q.Object)
}

// Common datatypes
var (
	XSDString     = NewNamedNode("http://www.w3.org/2001/XMLSchema#string")
	XSDInteger    = NewNamedNode("http://www.w3.org/2001/XMLSchema#integer")
	XSDDecimal    = NewNamedNode("http://www.w3.org/2001/XMLSchema#decimal")
	XSDDouble     = NewNamedNode("http://www.w3.org/2001/XMLSchema#double")
	XSDBoolean    = NewNamedNode("http://www.w3.org/2001/XMLSchema#boolean")
	RDFLangString = NewNamedNode("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")
)

// NumberDatatype returns the datatype of a numeric token kind, or nil.
// HEX has no RDF datatype.
func NumberDatatype(kind tokens.Kind) *NamedNode {
	switch kind {
	case tokens.KindInteger:
		return XSDInteger
	case tokens.KindDecimal:
		return XSDDecimal
	case tokens.KindDouble:
		return XSDDouble
	default:
		return nil
	}
}
