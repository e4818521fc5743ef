package skillicons

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		icons    []IconID
		theme    Theme
		perLine  int
		expected string
	}{
		{
			name:     "empty selection",
			icons:    nil,
			theme:    ThemeDark,
			perLine:  15,
			expected: "https://skillicons.dev/icons?i=",
		},
		{
			name:     "defaults omitted",
			icons:    ids("js", "ts"),
			theme:    ThemeDark,
			perLine:  15,
			expected: "https://skillicons.dev/icons?i=js,ts",
		},
		{
			name:     "light theme and perline",
			icons:    ids("js"),
			theme:    ThemeLight,
			perLine:  5,
			expected: "https://skillicons.dev/icons?i=js&theme=light&perline=5",
		},
		{
			name:     "perline only",
			icons:    ids("go", "rust", "zig"),
			theme:    ThemeDark,
			perLine:  1,
			expected: "https://skillicons.dev/icons?i=go,rust,zig&perline=1",
		},
		{
			name:     "upper bound perline",
			icons:    ids("go"),
			theme:    ThemeLight,
			perLine:  20,
			expected: "https://skillicons.dev/icons?i=go&theme=light&perline=20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildURL(tt.icons, tt.theme, tt.perLine))
		})
	}
}

func TestBuildBadgeMarkup(t *testing.T) {
	url := "https://skillicons.dev/icons?i=js,ts"

	left := BuildBadgeMarkup(url, AlignLeft)
	assert.Equal(t, "[![My Skills](https://skillicons.dev/icons?i=js,ts)](https://skillicons.dev)", left)
	assert.Contains(t, left, "[![")

	center := BuildBadgeMarkup(url, AlignCenter)
	assert.True(t, strings.HasPrefix(center, `<p align="center">`))
	assert.Contains(t, center, `<img src="`+url+`" />`)
	assert.True(t, strings.HasSuffix(center, "</p>"))
}

func TestBuildEmbedMarkup(t *testing.T) {
	url := "https://skillicons.dev/icons?i=go"

	left := BuildEmbedMarkup(url, AlignLeft)
	assert.Equal(t, "<a href=\"https://skillicons.dev\">\n  <img src=\"https://skillicons.dev/icons?i=go\" />\n</a>", left)
	assert.NotContains(t, left, "[![")
}

func TestCenterAlignmentCollapsesEmbedIntoBadge(t *testing.T) {
	for _, url := range []string{
		"",
		"https://skillicons.dev/icons?i=",
		"https://skillicons.dev/icons?i=js,ts&theme=light&perline=3",
	} {
		assert.Equal(t, BuildBadgeMarkup(url, AlignCenter), BuildEmbedMarkup(url, AlignCenter))
	}
}

func TestRender(t *testing.T) {
	out := Render(NewSelection(ids("js", "ts")...), Settings{Theme: ThemeLight, PerLine: 15, Alignment: AlignLeft})
	assert.Equal(t, "https://skillicons.dev/icons?i=js,ts&theme=light", out.URL)
	assert.Equal(t, BuildBadgeMarkup(out.URL, AlignLeft), out.Badge)
	assert.Equal(t, BuildEmbedMarkup(out.URL, AlignLeft), out.Embed)

	empty := Render(NewSelection(), DefaultSettings())
	assert.Equal(t, "https://skillicons.dev/icons?i=", empty.URL)
	assert.NotEmpty(t, empty.Badge)
	assert.NotEmpty(t, empty.Embed)
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "https://skillicons.dev/icons?i=docker", IconURL("docker"))
}
