// Package rdfio maps media types and file names to the RDF syntaxes the
// tokenizer reads.
package rdfio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Syntax describes one textual RDF syntax.
type Syntax struct {
	Name       string
	MediaTypes []string
	Extensions []string
	// LineBased syntaxes have exactly one statement per line and are
	// tokenized in line mode.
	LineBased bool
}

// ContentType returns the primary media type of the syntax
func (s Syntax) ContentType() string {
	return s.MediaTypes[0]
}

var (
	NTriples = Syntax{
		Name:       "N-Triples",
		MediaTypes: []string{"application/n-triples", "text/plain"},
		Extensions: []string{".nt"},
		LineBased:  true,
	}
	NQuads = Syntax{
		Name:       "N-Quads",
		MediaTypes: []string{"application/n-quads"},
		Extensions: []string{".nq"},
		LineBased:  true,
	}
	Turtle = Syntax{
		Name:       "Turtle",
		MediaTypes: []string{"text/turtle", "application/x-turtle"},
		Extensions: []string{".ttl"},
	}
	TriG = Syntax{
		Name:       "TriG",
		MediaTypes: []string{"application/trig", "application/x-trig"},
		Extensions: []string{".trig"},
	}
	SPARQL = Syntax{
		Name:       "SPARQL",
		MediaTypes: []string{"application/sparql-query", "application/sparql-update"},
		Extensions: []string{".rq", ".ru", ".sparql"},
	}
)

var syntaxes = []Syntax{NTriples, NQuads, Turtle, TriG, SPARQL}

// ByContentType returns the syntax for a media type. Parameters such as
// charset are ignored.
func ByContentType(contentType string) (Syntax, error) {
	// Normalize content type (remove parameters like charset)
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	for _, s := range syntaxes {
		for _, mt := range s.MediaTypes {
			if mt == ct {
				return s, nil
			}
		}
	}
	return Syntax{}, fmt.Errorf("unsupported content type: %s", contentType)
}

// ByPath returns the syntax for a file name by its extension.
func ByPath(path string) (Syntax, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range syntaxes {
		for _, e := range s.Extensions {
			if e == ext {
				return s, true
			}
		}
	}
	return Syntax{}, false
}

// GetSupportedContentTypes returns a list of all supported content types
func GetSupportedContentTypes() []string {
	var types []string
	for _, s := range syntaxes {
		types = append(types, s.MediaTypes...)
	}
	return types
}
