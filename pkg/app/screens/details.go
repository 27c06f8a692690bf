package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/data"
)

type DetailsScreen struct {
	controller Controller
	championID int
	champion   *data.Champion
	spinner    spinner.Model
	loading    bool
	width      int
	height     int
}

func NewDetailsScreen(controller Controller, championID int) *DetailsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SelectedStyle

	return &DetailsScreen{
		controller: controller,
		championID: championID,
		spinner:    sp,
		loading:    true,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, s.loadDetails)
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !s.loading {
				return s, s.Init()
			}
		case "backspace":
			return s, switchTo(ScreenBack, nil)
		}

	case detailsLoadedMsg:
		if msg.id != s.championID {
			break
		}
		s.loading = false
		s.champion = msg.champion

	case spinner.TickMsg:
		if s.loading {
			s.spinner, cmd = s.spinner.Update(msg)
		}
	}

	return s, cmd
}

func (s *DetailsScreen) View() string {
	help := styles.HelpStyle.Render("r: refresh • esc: back • q: quit")

	if s.loading {
		return fmt.Sprintf("%s Loading champion...\n\n%s", s.spinner.View(), help)
	}
	if s.champion == nil {
		return fmt.Sprintf("%s\n\n%s", styles.ErrorStyle.Render("Champion not found."), help)
	}

	c := s.champion
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TitleStyle.Render(c.Name),
		styles.SubtitleStyle.Render(c.Title),
	)

	tags := make([]string, len(c.Tags))
	for i, tag := range c.Tags {
		tags[i] = styles.TagStyle.Render(tag)
	}

	sections := []string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, tags...),
		"",
		styles.SectionStyle.Render("Resource"),
		styles.TextStyle.Render(orDash(c.Partype)),
		"",
		styles.SectionStyle.Render("Summary"),
		s.renderBlurb(c.Blurb),
		"",
		styles.SectionStyle.Render("Base stats"),
		renderStats(c.Stats),
	}
	if c.Image.Loading != "" {
		sections = append(sections, "", styles.MutedStyle.Render("Art: "+c.Image.Loading))
	}
	sections = append(sections, "", help)

	return strings.Join(sections, "\n")
}

func (s *DetailsScreen) renderBlurb(blurb string) string {
	style := styles.TextStyle
	if s.width > 4 {
		style = style.Width(s.width - 4)
	}
	return style.Render(orDash(blurb))
}

func renderStats(stats data.Stats) string {
	var b strings.Builder
	for _, row := range stats.Rows() {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%-14s", row.Label)))
		b.WriteString(styles.TextStyle.Render(row.Value))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

type detailsLoadedMsg struct {
	id       int
	champion *data.Champion
}

// loadDetails treats any failure as not found; the controller logs the cause.
func (s *DetailsScreen) loadDetails() tea.Msg {
	champion, err := s.controller.GetChampion(context.Background(), s.championID)
	if err != nil {
		return detailsLoadedMsg{id: s.championID}
	}
	return detailsLoadedMsg{id: s.championID, champion: champion}
}
