package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
)

type homeOption struct {
	label  string
	screen string
}

var homeOptions = []homeOption{
	{label: "View champions", screen: ScreenChampions},
	{label: "Liked champions", screen: ScreenLiked},
}

type HomeScreen struct {
	selected int
	width    int
	height   int
}

func NewHomeScreen() *HomeScreen {
	return &HomeScreen{}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "left", "h":
			s.selected--
			if s.selected < 0 {
				s.selected = len(homeOptions) - 1
			}
		case "down", "j", "right", "l":
			s.selected = (s.selected + 1) % len(homeOptions)
		case "enter":
			return s, switchTo(homeOptions[s.selected].screen, nil)
		case "c":
			return s, switchTo(ScreenChampions, nil)
		case "L":
			return s, switchTo(ScreenLiked, nil)
		}
	}

	return s, nil
}

func (s *HomeScreen) View() string {
	title := styles.TitleStyle.Render("LoL Champion Encyclopedia")
	blurb := styles.TextStyle.Render("Browse League of Legends champions, their stats, roles, and lore.")

	buttons := make([]string, len(homeOptions))
	for i, opt := range homeOptions {
		style := styles.OutlineButtonStyle
		if i == s.selected {
			style = styles.ButtonStyle
		}
		buttons[i] = style.Render(opt.label)
	}

	help := styles.HelpStyle.Render("↑/↓: choose • enter: open • c: champions • L: liked • q: quit")

	return strings.Join([]string{
		title,
		blurb,
		"",
		lipgloss.JoinVertical(lipgloss.Left, buttons...),
		"",
		help,
	}, "\n")
}
