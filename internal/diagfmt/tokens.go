package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// TokenOutput is the serialized form of a token.
type TokenOutput struct {
	Kind       string       `json:"kind" msgpack:"kind"`
	Image      string       `json:"image,omitempty" msgpack:"image,omitempty"`
	Image2     string       `json:"image2,omitempty" msgpack:"image2,omitempty"`
	StringType string       `json:"string_type,omitempty" msgpack:"string_type,omitempty"`
	Datatype   *TokenOutput `json:"datatype,omitempty" msgpack:"datatype,omitempty"`
	Line       int64        `json:"line" msgpack:"line"`
	Column     int64        `json:"column" msgpack:"column"`
}

func NewTokenOutput(tok tokens.Token) TokenOutput {
	out := TokenOutput{
		Kind:   tok.Kind.String(),
		Image:  tok.Image,
		Image2: tok.Image2,
		Line:   tok.Line,
		Column: tok.Column,
	}
	st := tok.StringType
	if tok.Lexical != nil {
		st = tok.Lexical.StringType
	}
	if st != tokens.StringNone {
		out.StringType = st.String()
	}
	if tok.Datatype != nil {
		dt := NewTokenOutput(*tok.Datatype)
		out.Datatype = &dt
	}
	return out
}

func tokenOutputs(toks []tokens.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(toks))
	for _, tok := range toks {
		output = append(output, NewTokenOutput(tok))
	}
	return output
}

// imageWidth caps the image column of the pretty format.
const imageWidth = 48

// FormatTokensPretty writes one token per line with its position.
func FormatTokensPretty(w io.Writer, toks []tokens.Token) error {
	for i, tok := range toks {
		if _, err := fmt.Fprintf(w, "%4d: %-14s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Kind != tokens.KindNL {
			if _, err := fmt.Fprintf(w, " %-*s", imageWidth, truncate(tokens.Format(tok), imageWidth)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d\n", tok.Line, tok.Column); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, toks []tokens.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(toks))
}

// FormatTokensMsgpack writes the tokens as one msgpack array.
func FormatTokensMsgpack(w io.Writer, toks []tokens.Token) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(toks))
}

// FormatTokensTurtle re-emits the tokens as source text.
func FormatTokensTurtle(w io.Writer, toks []tokens.Token) error {
	return tokens.WriteTokens(w, toks)
}

// FormatTokens dispatches on one of the config output formats.
func FormatTokens(w io.Writer, format string, toks []tokens.Token) error {
	switch format {
	case config.FormatPretty:
		return FormatTokensPretty(w, toks)
	case config.FormatJSON:
		return FormatTokensJSON(w, toks)
	case config.FormatMsgpack:
		return FormatTokensMsgpack(w, toks)
	case config.FormatTurtle:
		return FormatTokensTurtle(w, toks)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// FormatDiagnosticsJSON writes diagnostics as an indented JSON array.
func FormatDiagnosticsJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(diags)
}
