package gui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter colours output snippets with chroma. Results are memoised
// because Layout runs on every keypress and the snippets rarely change.
type highlighter struct {
	style string
	cache map[string]string
}

func newHighlighter(style string) *highlighter {
	return &highlighter{style: style, cache: make(map[string]string)}
}

// setStyle switches the chroma style and drops memoised output
func (h *highlighter) setStyle(style string) {
	if style == h.style {
		return
	}
	h.style = style
	h.cache = make(map[string]string)
}

// Highlight returns source with ANSI colours for the given lexer name. On
// any chroma failure the source comes back untouched.
func (h *highlighter) Highlight(source, language string) string {
	key := language + "\x00" + source
	if out, ok := h.cache[key]; ok {
		return out
	}
	out := highlight(source, language, h.style)
	h.cache[key] = out
	return out
}

func highlight(source, language, style string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatter.Format(&b, styles.Get(style), iterator); err != nil {
		return source
	}
	return b.String()
}
