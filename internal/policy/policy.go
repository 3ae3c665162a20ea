// Package policy provides a configurable semantic checker for tokens. It
// enforces rules that the grammar alone does not: absolute IRIs,
// well-formed language tags, representable doubles and the like.
package policy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

var (
	ErrRelativeIRI      = errors.New("relative IRI")
	ErrBadLangTag       = errors.New("invalid language tag")
	ErrNumberRange      = errors.New("number out of range")
	ErrLabelTooLong     = errors.New("blank node label too long")
	ErrUnknownDirective = errors.New("unknown directive")
)

// maxPrimarySubtag is the longest primary language subtag BCP 47 allows.
const maxPrimarySubtag = 8

// KnownDirectives are the directive names accepted when
// Options.KnownDirectivesOnly is set.
var KnownDirectives = []string{"prefix", "base", "version"}

// Options selects which rules the checker enforces. The zero value
// enforces nothing.
type Options struct {
	RequireAbsoluteIRIs bool
	ValidateLangTags    bool
	// MaxBlankNodeLabel limits label length in bytes; 0 means no limit.
	MaxBlankNodeLabel   int
	KnownDirectivesOnly bool
}

// Checker implements tokens.Checker.
type Checker struct {
	tokens.BaseChecker
	opts Options
}

var _ tokens.Checker = (*Checker)(nil)

func New(opts Options) *Checker {
	return &Checker{opts: opts}
}

func (c *Checker) CheckIRI(iri string) error {
	if c.opts.RequireAbsoluteIRIs && !hasScheme(iri) {
		return fmt.Errorf("%w: <%s>", ErrRelativeIRI, iri)
	}
	return nil
}

func (c *Checker) CheckLiteralLang(_, lang string) error {
	if !c.opts.ValidateLangTags {
		return nil
	}
	return ValidateLangTag(lang)
}

// CheckLiteralDT checks the datatype when it is written as a full IRI.
func (c *Checker) CheckLiteralDT(_ string, datatype tokens.Token) error {
	if datatype.Kind == tokens.KindIRI {
		return c.CheckIRI(datatype.Image)
	}
	return nil
}

// CheckNumber rejects doubles that do not fit a float64.
func (c *Checker) CheckNumber(kind tokens.Kind, image string) error {
	if kind != tokens.KindDouble {
		return nil
	}
	f, err := strconv.ParseFloat(image, 64)
	if err != nil || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s", ErrNumberRange, image)
	}
	return nil
}

func (c *Checker) CheckBlankNode(label string) error {
	if limit := c.opts.MaxBlankNodeLabel; limit > 0 && len(label) > limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrLabelTooLong, len(label), limit)
	}
	return nil
}

func (c *Checker) CheckDirective(name string) error {
	if !c.opts.KnownDirectivesOnly {
		return nil
	}
	for _, known := range KnownDirectives {
		if name == known {
			return nil
		}
	}
	return fmt.Errorf("%w: @%s", ErrUnknownDirective, name)
}

// ValidateLangTag reports whether lang is a well-formed BCP 47 tag.
func ValidateLangTag(lang string) error {
	primary, _, _ := strings.Cut(lang, "-")
	if len(primary) > maxPrimarySubtag {
		return fmt.Errorf("%w: primary subtag %q longer than %d", ErrBadLangTag, primary, maxPrimarySubtag)
	}
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadLangTag, lang, err)
	}
	return nil
}

// hasScheme reports whether iri starts with scheme ":" where
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func hasScheme(iri string) bool {
	for i := 0; i < len(iri); i++ {
		c := iri[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return true
		default:
			return false
		}
	}
	return false
}
