package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7f1d1d")).
			Padding(0, 1).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#991b1b")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#991b1b")).
			Padding(0, 1)

	pressedStyle = buttonStyle.Background(lipgloss.Color("#9ca3af"))

	selectedStyle = cardStyle.BorderForeground(lipgloss.Color("#f59e0b"))
)

// CardText draws one card. selected highlights the border.
func CardText(c Card, selected bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(c.Title), mutedStyle.Render(fmt.Sprintf("#%d", c.ID)))
	if c.Description != "" {
		b.WriteString(c.Description + "\n")
	}
	b.WriteString(mutedStyle.Render(c.ByText() + "   " + c.LikesText()))
	b.WriteString("\n")

	buttons := []string{buttonStyle.Render(c.DetailsLabel())}
	if c.ShowToggles {
		buttons = append(buttons, toggleButton(c.SaveLabel(), c.Saved), toggleButton(c.LikeLabel(), c.Liked))
	}
	if c.ShowOwnerControls {
		buttons = append(buttons, buttonStyle.Render("Edit"), buttonStyle.Render("Delete"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(buttons)...))

	if c.Expanded {
		b.WriteString("\n\n" + titleStyle.Render("Ingredients:") + "\n")
		if len(c.Ingredients) == 0 {
			b.WriteString("  " + NoIngredients + "\n")
		}
		for _, in := range c.Ingredients {
			b.WriteString("  [ ] " + in + "\n")
		}
		b.WriteString(titleStyle.Render("Instructions:") + "\n")
		b.WriteString(c.Instructions)
	}

	st := cardStyle
	if selected {
		st = selectedStyle
	}
	return st.Render(b.String())
}

func toggleButton(label string, pressed bool) string {
	if pressed {
		return pressedStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func spaced(items []string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, it)
	}
	return out
}

// Text writes cards to w, or empty when there are none.
func Text(w io.Writer, cards []Card, empty string) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render(empty))
		return err
	}
	for _, c := range cards {
		if _, err := fmt.Fprintln(w, CardText(c, false)); err != nil {
			return err
		}
	}
	return nil
}
