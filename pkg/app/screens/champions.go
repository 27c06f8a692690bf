package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/champions/pkg/app/components"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/services"
)

type ChampionsScreen struct {
	controller Controller
	list       *components.ChampionList
	spinner    spinner.Model
	filter     textinput.Model
	loading    bool
	saveFailed bool
	width      int
	height     int
	err        error
}

func NewChampionsScreen(controller Controller) *ChampionsScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter by name..."
	ti.CharLimit = 40
	ti.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SelectedStyle

	list := components.NewChampionList()
	list.EmptyMessage = "No champions available."

	return &ChampionsScreen{
		controller: controller,
		list:       list,
		spinner:    sp,
		filter:     ti,
	}
}

func (s *ChampionsScreen) Init() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, s.loadChampions)
}

func (s *ChampionsScreen) CapturingInput() bool {
	return s.filter.Focused()
}

func (s *ChampionsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		if s.filter.Focused() {
			return s, s.updateFilter(msg)
		}
		if s.loading {
			return s, nil
		}

		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case " ":
			return s, s.toggleSelected()
		case "enter":
			if item := s.list.Selected(); item != nil {
				return s, switchTo(ScreenDetails, item.Champion.ID)
			}
		case "/":
			s.filter.Focus()
			return s, textinput.Blink
		case "r":
			return s, s.Init()
		}

	case championsLoadedMsg:
		s.loading = false
		s.err = msg.err
		items := make([]components.ChampionListItem, len(msg.champions))
		for i, champion := range msg.champions {
			items[i] = components.ChampionListItem{Champion: champion.Champion, Liked: champion.Liked}
		}
		s.list.SetItems(items)

	case likeToggledMsg:
		// The heart already shows the flip and results may arrive out of
		// order, so they never touch it. A failure is logged by the
		// controller and noted in the status line.
		s.saveFailed = msg.err != nil

	case spinner.TickMsg:
		if s.loading {
			s.spinner, cmd = s.spinner.Update(msg)
		}
	}

	return s, cmd
}

func (s *ChampionsScreen) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.filter.SetValue("")
		s.filter.Blur()
		s.list.SetFilter("")
		return nil
	case "enter", "tab":
		s.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.list.SetFilter(s.filter.Value())
	return cmd
}

// toggleSelected flips the heart immediately and persists in the background.
func (s *ChampionsScreen) toggleSelected() tea.Cmd {
	item := s.list.Selected()
	if item == nil {
		return nil
	}
	id := item.Champion.ID
	s.list.SetLiked(id, !item.Liked)
	return func() tea.Msg {
		_, err := s.controller.ToggleLike(context.Background(), id)
		return likeToggledMsg{id: id, err: err}
	}
}

func (s *ChampionsScreen) View() string {
	header := styles.TitleStyle.Render("Champions")

	if s.loading {
		return fmt.Sprintf("%s\n\n%s Loading champions...", header, s.spinner.View())
	}

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.ErrorStyle.Render("Could not load champions. Press r to retry.") + "\n\n"
	}
	if s.saveFailed {
		errorMsg += styles.ErrorStyle.Render("Could not save your likes. See the log file.") + "\n\n"
	}

	inputStyle := styles.InputStyle
	if s.filter.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	filterView := inputStyle.Render(s.filter.View())

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • space: like • enter: details • /: filter • r: refresh • tab: liked • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n%s",
		header,
		filterView,
		errorMsg,
		s.list.View(),
		help,
	)
}

type championsLoadedMsg struct {
	champions []services.ChampionView
	err       error
}

type likeToggledMsg struct {
	id  int
	err error
}

func (s *ChampionsScreen) loadChampions() tea.Msg {
	champions, err := s.controller.ListChampions(context.Background())
	return championsLoadedMsg{champions: champions, err: err}
}
