package tokens

// Checker applies caller policy to completed tokens. It runs only when
// Options.Checking is set. A non-nil return stops tokenization with a
// *ParseError at the position of the checked token.
type Checker interface {
	CheckBlankNode(label string) error
	CheckString(lexical string) error
	CheckLiteralLang(lexical, lang string) error
	CheckLiteralDT(lexical string, datatype Token) error
	CheckIRI(iri string) error
	CheckNumber(kind Kind, image string) error
	CheckVariable(name string) error
	CheckDirective(name string) error
	CheckKeyword(word string) error
	CheckPrefixedName(prefix, local string) error
}

// BaseChecker accepts everything. Embed it to implement only some checks.
type BaseChecker struct{}

func (BaseChecker) CheckBlankNode(string) error { return nil }
func (BaseChecker) CheckString(string) error { return nil }
func (BaseChecker) CheckLiteralLang(string, string) error { return nil }
func (BaseChecker) CheckLiteralDT(string, Token) error { return nil }
func (BaseChecker) CheckIRI(string) error { return nil }
func (BaseChecker) CheckNumber(Kind, string) error { return nil }
func (BaseChecker) CheckVariable(string) error { return nil }
func (BaseChecker) CheckDirective(string) error { return nil }
func (BaseChecker) CheckKeyword(string) error { return nil }
func (BaseChecker) CheckPrefixedName(string, string) error { return nil }

// check dispatches a completed token to the checker.
func (t *Tokenizer) check(tok Token) error {
	if !t.opts.Checking || t.opts.Checker == nil {
		return nil
	}
	c := t.opts.Checker
	var err error
	switch tok.Kind {
	case KindBNode:
		err = c.CheckBlankNode(tok.Image)
	case KindString:
		err = c.CheckString(tok.Image)
	case KindLiteralLang:
		err = c.CheckLiteralLang(tok.Image, tok.Image2)
	case KindLiteralDT:
		err = c.CheckLiteralDT(tok.Image, *tok.Datatype)
	case KindIRI:
		err = c.CheckIRI(tok.Image)
	case KindInteger, KindDecimal, KindDouble, KindHex:
		err = c.CheckNumber(tok.Kind, tok.Image)
	case KindVar:
		err = c.CheckVariable(tok.Image)
	case KindDirective:
		err = c.CheckDirective(tok.Image)
	case KindKeyword:
		err = c.CheckKeyword(tok.Image)
	case KindPrefixedName:
		err = c.CheckPrefixedName(tok.Image, tok.Image2)
	}
	if err != nil {
		return t.errorAt(tok.Line, tok.Column, err, "%s", err.Error())
	}
	return nil
}
