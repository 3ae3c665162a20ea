package rdfio

import (
	"testing"
)

func TestByContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"application/n-triples", "N-Triples"},
		{"text/plain", "N-Triples"},
		{"application/n-quads", "N-Quads"},
		{"text/turtle; charset=utf-8", "Turtle"},
		{" Application/TriG ", "TriG"},
		{"application/sparql-query", "SPARQL"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			got, err := ByContentType(tt.contentType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got.Name)
			}
		})
	}

	if _, err := ByContentType("application/ld+json"); err == nil {
		t.Error("expected error for unsupported content type")
	}
}

func TestByPath(t *testing.T) {
	tests := []struct {
		path      string
		want      string
		lineBased bool
		ok        bool
	}{
		{"data/a.nt", "N-Triples", true, true},
		{"A.NQ", "N-Quads", true, true},
		{"x.ttl", "Turtle", false, true},
		{"x.trig", "TriG", false, true},
		{"q.rq", "SPARQL", false, true},
		{"notes.txt", "", false, false},
		{"noext", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ByPath(tt.path)
			if ok != tt.ok || got.Name != tt.want || got.LineBased != tt.lineBased {
				t.Errorf("Expected (%s, line=%v, %v), got (%s, line=%v, %v)", tt.want, tt.lineBased, tt.ok, got.Name, got.LineBased, ok)
			}
		})
	}
}

func TestGetSupportedContentTypes(t *testing.T) {
	types := GetSupportedContentTypes()
	if len(types) != 9 {
		t.Errorf("Expected 9 content types, got %d: %v", len(types), types)
	}
	if NQuads.ContentType() != "application/n-quads" {
		t.Errorf("Expected application/n-quads, got %s", NQuads.ContentType())
	}
}
