package components

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightStyle is the chroma style used for code samples.
const HighlightStyle = "github"

var (
	highlightFormatter = chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.TabWidth(2),
	)
	highlightStyle = styles.Get(HighlightStyle)
)

// lexerFor maps a code-sample language onto a chroma lexer.
func lexerFor(lang string) chroma.Lexer {
	lexer := lexers.Get(strings.ToLower(lang))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Highlight writes code as highlighted HTML using CSS classes. The stylesheet
// comes from WriteHighlightCSS.
func Highlight(w io.Writer, code, lang string) error {
	it, err := lexerFor(lang).Tokenise(nil, code)
	if err != nil {
		return fmt.Errorf("tokenise %s sample: %w", lang, err)
	}
	if err := highlightFormatter.Format(w, highlightStyle, it); err != nil {
		return fmt.Errorf("format %s sample: %w", lang, err)
	}
	return nil
}

// WriteHighlightCSS writes the stylesheet matching Highlight's classes.
func WriteHighlightCSS(w io.Writer) error {
	return highlightFormatter.WriteCSS(w, highlightStyle)
}
