package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Banner BannerTheme
	Form   FormTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Faint    lipgloss.Style
	Selected lipgloss.Style
}

// BannerTheme styles the reminder banner shown over the current screen.
type BannerTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FormTheme styles the entry form.
type FormTheme struct {
	Label       lipgloss.Style
	ActiveLabel lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(14)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Body:     lipgloss.NewStyle(),
			Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Banner: BannerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("214")).
				Padding(0, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			Body:  lipgloss.NewStyle(),
		},
		Form: FormTheme{
			Label:       label,
			ActiveLabel: label.Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
