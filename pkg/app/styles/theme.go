package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#60A5FA")
	Secondary  = lipgloss.Color("#2563EB")
	Liked      = lipgloss.Color("#F97373")
	Error      = lipgloss.Color("#F87171")
	Muted      = lipgloss.Color("#9CA3AF")
	Foreground = lipgloss.Color("#E5E7EB")
	Heading    = lipgloss.Color("#F9FAFB")

	RoundedBorder = lipgloss.RoundedBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Heading).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			MarginTop(1)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	LikedStyle = lipgloss.NewStyle().
			Foreground(Liked)

	NotLikedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Secondary).
			Padding(0, 1).
			MarginRight(1)

	// Home screen buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0B1120")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	OutlineButtonStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#111827")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Muted).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// Heart renders the like marker.
func Heart(liked bool) string {
	if liked {
		return LikedStyle.Render("♥")
	}
	return NotLikedStyle.Render("♡")
}
