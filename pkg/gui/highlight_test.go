package gui

import (
	"strings"
	"testing"
)

func TestHighlightKeepsText(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		language string
	}{
		{
			name:     "markdown badge",
			source:   "[![My Skills](https://skillicons.dev/icons?i=go,rust)](https://skillicons.dev)",
			language: "markdown",
		},
		{
			name:     "html embed",
			source:   "<a href=\"https://skillicons.dev\">\n  <img src=\"https://skillicons.dev/icons?i=go\" />\n</a>",
			language: "html",
		},
		{
			name:     "unknown lexer falls back",
			source:   "plain text",
			language: "no-such-language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := highlight(tt.source, tt.language, "monokai")
			if got := plain(out); strings.TrimRight(got, "\n") != tt.source {
				t.Errorf("highlight changed the text:\n got %q\nwant %q", got, tt.source)
			}
		})
	}
}

func TestHighlightAddsColour(t *testing.T) {
	out := highlight(`<img src="x" />`, "html", "monokai")
	if !strings.Contains(out, "\033[") {
		t.Errorf("expected ANSI colour codes, got %q", out)
	}
}

func TestHighlighterCache(t *testing.T) {
	h := newHighlighter("monokai")
	first := h.Highlight("<p></p>", "html")
	if len(h.cache) != 1 {
		t.Fatalf("cache size = %d, expected 1", len(h.cache))
	}
	if second := h.Highlight("<p></p>", "html"); second != first {
		t.Error("cached result should be returned unchanged")
	}

	h.setStyle("monokai")
	if len(h.cache) != 1 {
		t.Error("same style should keep the cache")
	}
	h.setStyle("github")
	if len(h.cache) != 0 {
		t.Error("new style should drop the cache")
	}
}
