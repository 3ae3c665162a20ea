package rdf

import (
	"testing"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func TestTerm_Types(t *testing.T) {
	tests := []struct {
		term Term
		want TermType
	}{
		{NewNamedNode("http://example.org/resource"), TermTypeNamedNode},
		{NewBlankNode("b0"), TermTypeBlankNode},
		{NewLiteral("test"), TermTypeLiteral},
		{NewDefaultGraph(), TermTypeDefaultGraph},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if tt.term.Type() != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, tt.term.Type())
			}
		})
	}
}

func TestTerm_String(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{"named node", NewNamedNode("http://example.org/resource"), "<http://example.org/resource>"},
		{"empty IRI", NewNamedNode(""), "<>"},
		{"blank node", NewBlankNode("b1"), "_:b1"},
		{"plain literal", NewLiteral("hello"), `"hello"`},
		{"empty literal", NewLiteral(""), `""`},
		{"literal with language", NewLiteralWithLanguage("hello", "en"), `"hello"@en`},
		{"literal with datatype", NewLiteralWithDatatype("42", XSDInteger), `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{"default graph", NewDefaultGraph(), "DEFAULT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.term.String(); result != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestTerm_Equals(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Term
		equal bool
	}{
		{"same IRI", NewNamedNode("http://ex/a"), NewNamedNode("http://ex/a"), true},
		{"different IRI", NewNamedNode("http://ex/a"), NewNamedNode("http://ex/b"), false},
		{"IRI and literal", NewNamedNode("http://ex/a"), NewLiteral("http://ex/a"), false},
		{"same blank node", NewBlankNode("x"), NewBlankNode("x"), true},
		{"different blank node", NewBlankNode("x"), NewBlankNode("y"), false},
		{"plain literals", NewLiteral("hello"), NewLiteral("hello"), true},
		{"different values", NewLiteral("hello"), NewLiteral("world"), false},
		{"plain and xsd:string", NewLiteral("hello"), NewLiteralWithDatatype("hello", XSDString), true},
		{"language case", NewLiteralWithLanguage("hello", "en-GB"), NewLiteralWithLanguage("hello", "en-gb"), true},
		{"different languages", NewLiteralWithLanguage("hello", "en"), NewLiteralWithLanguage("hello", "fr"), false},
		{"language and plain", NewLiteralWithLanguage("hello", "en"), NewLiteral("hello"), false},
		{"same datatype", NewLiteralWithDatatype("42", XSDInteger), NewLiteralWithDatatype("42", XSDInteger), true},
		{"different datatype", NewLiteralWithDatatype("42", XSDInteger), NewLiteralWithDatatype("42", XSDDecimal), false},
		{"default graphs", NewDefaultGraph(), NewDefaultGraph(), true},
		{"default graph and IRI", NewDefaultGraph(), NewNamedNode("http://ex/g"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.equal {
				t.Errorf("Expected Equals=%v for %s and %s", tt.equal, tt.a, tt.b)
			}
		})
	}
}

func TestQuad_String(t *testing.T) {
	subject := NewNamedNode("http://example.org/subject")
	predicate := NewNamedNode("http://example.org/predicate")
	object := NewLiteral("value")

	quad := NewQuad(subject, predicate, object, NewNamedNode("http://example.org/graph"))
	expected := `<http://example.org/subject> <http://example.org/predicate> "value" <http://example.org/graph> .`
	if quad.String() != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, quad.String())
	}

	triple := quad.Triple()
	expected = `<http://example.org/subject> <http://example.org/predicate> "value" .`
	if triple.String() != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, triple.String())
	}
}

func TestTermFromToken(t *testing.T) {
	const input = `<http://ex/a> _:b "s" "l"@en "5"^^<http://ex/dt> 1 2.5 3e0 true`
	want := []Term{
		NewNamedNode("http://ex/a"),
		NewBlankNode("b"),
		NewLiteral("s"),
		NewLiteralWithLanguage("l", "en"),
		NewLiteralWithDatatype("5", NewNamedNode("http://ex/dt")),
		NewLiteralWithDatatype("1", XSDInteger),
		NewLiteralWithDatatype("2.5", XSDDecimal),
		NewLiteralWithDatatype("3e0", XSDDouble),
		NewLiteralWithDatatype("true", XSDBoolean),
	}

	toks, err := tokens.NewTokenizerString(input, tokens.Options{}).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(toks))
	}
	for i, tok := range toks {
		term, err := TermFromToken(tok)
		if err != nil {
			t.Errorf("token %s: %v", tok, err)
			continue
		}
		if !term.Equals(want[i]) {
			t.Errorf("token %s: expected %s, got %s", tok, want[i], term)
		}
	}
}

func TestTermFromToken_Rejects(t *testing.T) {
	for _, input := range []string{"ex:a", `"x"^^xsd:int`, "0x1F", "SELECT", "."} {
		t.Run(input, func(t *testing.T) {
			toks, err := tokens.NewTokenizerString(input, tokens.Options{}).ReadAll()
			if err != nil {
				t.Fatal(err)
			}
			if _, err := TermFromToken(toks[0]); err == nil {
				t.Errorf("Expected %s to be rejected", toks[0])
			}
		})
	}
}
