package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowSource prints the offending line with a caret under the column.
	ShowSource bool
}

var (
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	fatalColor   = color.New(color.FgMagenta, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty writes diagnostics in human-readable form:
//
//	<file>:<line>:<col>: <severity>: <message>
//	   12 | ex:s ex:p "unterminated
//	      |           ^
//
// src is the content of the file the diagnostics refer to; it may be nil.
func Pretty(w io.Writer, diags []Diagnostic, src []byte, opts PrettyOpts) error {
	lines := splitLines(src)
	for _, d := range diags {
		sev := paint(severityColor(d.Severity), opts.Color, d.Severity)
		var err error
		if d.Line == 0 {
			_, err = fmt.Fprintf(w, "%s: %s: %s\n", d.File, sev, d.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", d.File, d.Line, d.Column, sev, d.Message)
		}
		if err != nil {
			return err
		}

		if !opts.ShowSource || d.Line < 1 || int(d.Line) > len(lines) {
			continue
		}
		text := lines[d.Line-1]
		gutter := fmt.Sprintf("%5d | ", d.Line)
		if _, err := fmt.Fprintf(w, "%s%s\n", gutter, text); err != nil {
			return err
		}
		caret := caretPadding(text, d.Column) + paint(caretColor, opts.Color, "^")
		if _, err := fmt.Fprintf(w, "%s| %s\n", strings.Repeat(" ", len(gutter)-2), caret); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "warning":
		return warningColor
	case "fatal":
		return fatalColor
	default:
		return errorColor
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	// Copy so enabling here does not leak into other writers.
	painted := *c
	painted.EnableColor()
	return painted.Sprint(s)
}

// caretPadding returns the whitespace that puts a caret under the 1-based
// column col of text, counting display cells so wide characters line up.
// Tabs are kept as tabs.
func caretPadding(text string, col int64) string {
	var sb strings.Builder
	n := int64(1)
	for _, r := range text {
		if n >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		n++
	}
	return sb.String()
}

// splitLines splits src the way the tokenizer counts lines: CRLF is one
// line ending, a lone CR or LF is one each.
func splitLines(src []byte) []string {
	if len(src) == 0 {
		return nil
	}
	var lines []string
	s := string(src)
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// truncate shortens value to width display cells.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
