package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown is the full recipe view used by "show".
func Markdown(c Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	if c.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Description)
	}
	fmt.Fprintf(&b, "*%s* · %s\n\n", c.ByText(), c.LikesText())
	fmt.Fprintf(&b, "![%s](%s)\n\n", c.Title, c.ImageURL)

	b.WriteString("## Ingredients\n\n")
	if len(c.Ingredients) == 0 {
		b.WriteString(NoIngredients + "\n")
	}
	for _, in := range c.Ingredients {
		fmt.Fprintf(&b, "- [ ] %s\n", in)
	}
	b.WriteString("\n## Instructions\n\n")
	b.WriteString(c.Instructions)
	b.WriteString("\n")
	return b.String()
}

// Details renders Markdown(c) for a terminal of the given width. style is a
// glamour style name; empty selects one from the terminal background.
func Details(c Card, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(Markdown(c))
}
