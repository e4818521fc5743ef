package skillicons

import (
	"fmt"
	"strconv"
	"strings"
)

// ServiceURL is the icon service homepage that every badge links to.
const ServiceURL = "https://skillicons.dev"

const (
	iconsEndpoint = ServiceURL + "/icons"
	badgeAlt      = "My Skills"
)

// Output is the markup derived from a selection and its settings.
type Output struct {
	URL   string
	Badge string
	Embed string
}

// BuildURL returns the icon service URL for icons. The theme and perline
// parameters are left out when they equal the service defaults.
func BuildURL(icons []IconID, theme Theme, perLine int) string {
	var b strings.Builder
	b.WriteString(iconsEndpoint)
	b.WriteString("?i=")
	for i, id := range icons {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(id))
	}
	if theme != "" && theme != ThemeDark {
		b.WriteString("&theme=")
		b.WriteString(string(theme))
	}
	if perLine != 0 && perLine != DefaultPerLine {
		b.WriteString("&perline=")
		b.WriteString(strconv.Itoa(perLine))
	}
	return b.String()
}

// IconURL returns the preview URL of a single icon.
func IconURL(id IconID) string {
	return iconsEndpoint + "?i=" + string(id)
}

// BuildBadgeMarkup returns the link-wrapped markdown badge, or the centered
// HTML paragraph when alignment is center.
func BuildBadgeMarkup(url string, alignment Alignment) string {
	if alignment == AlignCenter {
		return centeredMarkup(url)
	}
	return fmt.Sprintf("[![%s](%s)](%s)", badgeAlt, url, ServiceURL)
}

// BuildEmbedMarkup returns a plain anchor wrapping the image. Centered output
// is the same paragraph BuildBadgeMarkup produces.
func BuildEmbedMarkup(url string, alignment Alignment) string {
	if alignment == AlignCenter {
		return centeredMarkup(url)
	}
	return fmt.Sprintf("<a href=\"%s\">\n  <img src=\"%s\" />\n</a>", ServiceURL, url)
}

func centeredMarkup(url string) string {
	return fmt.Sprintf("<p align=\"center\">\n  <a href=\"%s\">\n    <img src=\"%s\" />\n  </a>\n</p>", ServiceURL, url)
}

// Render derives the URL and both snippets. It never fails, an empty
// selection yields a URL with an empty i parameter.
func Render(selection *Selection, settings Settings) Output {
	url := BuildURL(selection.Items(), settings.Theme, settings.PerLine)
	return Output{
		URL:   url,
		Badge: BuildBadgeMarkup(url, settings.Alignment),
		Embed: BuildEmbedMarkup(url, settings.Alignment),
	}
}
