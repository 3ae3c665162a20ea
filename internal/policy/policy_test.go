package policy

import (
	"errors"
	"testing"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func TestChecker_Rules(t *testing.T) {
	strict := Options{
		RequireAbsoluteIRIs: true,
		ValidateLangTags:    true,
		MaxBlankNodeLabel:   4,
		KnownDirectivesOnly: true,
	}

	tests := []struct {
		name    string
		opts    Options
		input   string
		wantErr error
	}{
		{"absolute IRI", strict, "<http://ex/a>", nil},
		{"urn IRI", strict, "<urn:isbn:123>", nil},
		{"relative IRI", strict, "<a/b>", ErrRelativeIRI},
		{"relative IRI allowed", Options{}, "<a/b>", nil},
		{"colon later in path", strict, "<./a:b>", ErrRelativeIRI},
		{"relative datatype", strict, `"1"^^<int>`, ErrRelativeIRI},
		{"language tag", strict, `"x"@en-GB`, nil},
		{"long primary subtag", strict, `"x"@abcdefghi`, ErrBadLangTag},
		{"ill-formed subtag", strict, `"x"@en-abcdefghij`, ErrBadLangTag},
		{"language tags unchecked", Options{}, `"x"@abcdefghi`, nil},
		{"double in range", strict, "1.5e300", nil},
		{"double overflow", strict, "1e400", ErrNumberRange},
		{"double overflow always checked", Options{}, "1e400", ErrNumberRange},
		{"short label", strict, "_:abcd", nil},
		{"long label", strict, "_:abcde", ErrLabelTooLong},
		{"known directive", strict, "@prefix", nil},
		{"version directive", strict, "@version", nil},
		{"unknown directive", strict, "@import", ErrUnknownDirective},
		{"any directive", Options{}, "@import", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tokens.Options{Checker: New(tt.opts), Checking: true}
			_, err := tokens.NewTokenizerString(tt.input, opts).ReadAll()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var pe *tokens.ParseError
			if !errors.As(err, &pe) || pe.Line != 1 {
				t.Errorf("expected a *tokens.ParseError on line 1, got %v", err)
			}
		})
	}
}

func TestHasScheme(t *testing.T) {
	tests := []struct {
		iri  string
		want bool
	}{
		{"http://ex", true},
		{"urn:x", true},
		{"a+b-c.d:x", true},
		{"", false},
		{":x", false},
		{"1a:x", false},
		{"a b:x", false},
		{"noscheme", false},
	}

	for _, tt := range tests {
		if got := hasScheme(tt.iri); got != tt.want {
			t.Errorf("hasScheme(%q) = %v, want %v", tt.iri, got, tt.want)
		}
	}
}
