package rdf

import (
	"strings"
	"testing"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func TestFormatTerm(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{"IRI", NewNamedNode("http://ex/a"), "<http://ex/a>"},
		{"IRI with space", NewNamedNode("http://ex/a b"), `<http://ex/a\u0020b>`},
		{"blank node", NewBlankNode("b0"), "_:b0"},
		{"escaped string", NewLiteral("a\"b\\c\nd\te\u0001"), `"a\"b\\c\nd\te\u0001"`},
		{"language lower-cased", NewLiteralWithLanguage("x", "en-GB"), `"x"@en-gb`},
		{"xsd:string omitted", NewLiteralWithDatatype("x", XSDString), `"x"`},
		{"datatype", NewLiteralWithDatatype("1", XSDInteger), `"1"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{"default graph", NewDefaultGraph(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTerm(tt.term); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSerializeQuadsCanonical(t *testing.T) {
	quads := []*Quad{
		NewQuad(NewNamedNode("http://ex/s"), NewNamedNode("http://ex/p"), NewLiteral("v"), NewDefaultGraph()),
		NewQuad(NewBlankNode("b"), NewNamedNode("http://ex/p"), NewLiteralWithLanguage("v", "EN"), NewNamedNode("http://ex/g")),
	}
	expected := "<http://ex/s> <http://ex/p> \"v\" .\n" +
		"_:b <http://ex/p> \"v\"@en <http://ex/g> .\n"

	if got := SerializeQuadsCanonical(quads); got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
	if got := SerializeQuadsCanonical(nil); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

// Reading canonical output back yields the same quads.
func TestCanonical_RoundTrip(t *testing.T) {
	input := "<http://ex/s> <http://ex/p> \"multi\\nline \\\"q\\\" \\u00E9\" <http://ex/g> .\n" +
		"_:x <http://ex/p> \"1\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n" +
		"<http://ex/a b> <http://ex/p> \"hi\"@en .\n"

	first := readQuads(t, input)

	var sb strings.Builder
	if err := WriteQuadsCanonical(&sb, first); err != nil {
		t.Fatal(err)
	}
	second, err := NewQuadReader(strings.NewReader(sb.String()), tokens.Options{ErrorHandler: tokens.StrictErrorHandler{}}).ReadAll()
	if err != nil {
		t.Fatalf("Canonical output did not read back strictly: %v\n%s", err, sb.String())
	}

	if len(first) != len(second) {
		t.Fatalf("Expected %d quads, got %d", len(first), len(second))
	}
	for i := range first {
		assertQuadEqual(t, first[i], second[i])
	}
}
