package tokens

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`<http://ex/a b>`, `<http://ex/a\u0020b>`},
		{`"a\"b"`, `"a\"b"`},
		{`'it\'s'`, `'it\'s'`},
		{`'say "x"'`, `'say "x"'`},
		{`"""line1` + "\n" + `line2"""`, `"""line1\nline2"""`},
		{`"x"@en-GB`, `"x"@en-GB`},
		{`"1" ^^ xsd:int`, `"1"^^xsd:int`},
		{`ex:a\.b`, `ex:a.b`},
		{`ex:a\.`, `ex:a\.`},
		{`ex:\-x`, `ex:\-x`},
		{`ex:a%20`, `ex:a%20`},
		{`ex:a\%b`, `ex:a\%b`},
		{`?v`, `?v`},
		{`@prefix`, `@prefix`},
		{`-1.5e3`, `-1.5e3`},
		{`_:b1`, `_:b1`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := tokenize(t, tt.input, Options{})
			if len(toks) != 1 {
				t.Fatalf("expected 1 token, got %v", toks)
			}
			if got := Format(toks[0]); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWriteTokens_RoundTrip(t *testing.T) {
	documents := []struct {
		name     string
		input    string
		lineMode bool
	}{
		{
			name: "turtle",
			input: `@prefix ex: <http://example.org/> .
@base <http://example.org/base/> .
# comment
ex:s ex:p "plain", 'single', """long "quoted" text
spanning lines""", '''x''' ;
    ex:q "chat"@fr, "5"^^<http://www.w3.org/2001/XMLSchema#integer> ;
    ex:r ( 1 2.5 -3e2 0x1F ) , [ ex:t _:b0 ] .
ex:a\.b ex:\-c ex:d%41 .
ex:n 1. ex:m true .`,
		},
		{
			name: "trig",
			input: `GRAPH ex:g { ex:s ex:p ex:o }
ex:g2 { <s> <p> "oé\U0001F600"@en-US . }`,
		},
		{
			name: "sparql",
			input: `PREFIX : <http://ex/>
SELECT ?x ?y WHERE { ?x :p ?y FILTER(?y > 3 && ?y = 4) } LIMIT 10`,
		},
		{
			name:     "nquads",
			input:    "<s> <p> \"o\\tx\" <g> .\r\n_:b <p> \"\" .\n<s> <p> \"1\"^^<dt> .\n",
			lineMode: true,
		},
	}

	for _, tt := range documents {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{LineMode: tt.lineMode}
			first := tokenize(t, tt.input, opts)

			var sb strings.Builder
			if err := WriteTokens(&sb, first); err != nil {
				t.Fatal(err)
			}
			second := tokenize(t, sb.String(), opts)

			if diff := cmp.Diff(first, second, ignorePos); diff != "" {
				t.Errorf("re-emitted text tokenizes differently (-first +second):\n%s\n%s", diff, sb.String())
			}
		})
	}
}
