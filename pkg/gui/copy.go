package gui

import "fmt"

// copyOutput puts one rendering of the selection on the clipboard. The
// notifier owns the "Copied!" marker; a failed write leaves it as it was.
func (g *Gui) copyOutput(text, label string) error {
	if !g.state.HasOutput() {
		g.logCommand("copy", "No icons selected", "error")
		return g.redraw()
	}
	if err := g.notifier.Copy(text, label); err != nil {
		g.logCommand("copy", err.Error(), "error")
		return g.redraw()
	}
	g.logCommand("copy", fmt.Sprintf("Copied %s to clipboard", label), "success")
	return g.redraw()
}

// doCopyMarkdown copies the badge markup. Under center alignment the badge
// is the same paragraph as the HTML embed.
func (g *Gui) doCopyMarkdown() error {
	return g.copyOutput(g.state.Output().Badge, copyMarkdown)
}

func (g *Gui) doCopyHTML() error {
	return g.copyOutput(g.state.Output().Embed, copyHTML)
}

func (g *Gui) doCopyURL() error {
	return g.copyOutput(g.state.Output().URL, copyURL)
}
