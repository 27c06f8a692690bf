package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/champions/pkg/app/components"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/data"
)

const likedEmptyMessage = "You haven't liked any champions yet. Go to the list and press space on the hearts."

type LikedScreen struct {
	controller Controller
	list       *components.ChampionList
	spinner    spinner.Model
	loading    bool
	err        error
	width      int
	height     int
}

func NewLikedScreen(controller Controller) *LikedScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.LikedStyle

	list := components.NewChampionList()
	list.ShowHearts = false
	list.EmptyMessage = likedEmptyMessage

	return &LikedScreen{
		controller: controller,
		list:       list,
		spinner:    sp,
	}
}

// Init reloads the liked list; the root calls it every time the screen is shown.
func (s *LikedScreen) Init() tea.Cmd {
	s.loading = true
	return tea.Batch(s.spinner.Tick, s.loadLiked)
}

func (s *LikedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width
		s.list.Height = msg.Height - 8

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "enter":
			if item := s.list.Selected(); item != nil {
				return s, switchTo(ScreenDetails, item.Champion.ID)
			}
		case "r":
			return s, s.Init()
		}

	case likedLoadedMsg:
		s.loading = false
		s.err = msg.err
		items := make([]components.ChampionListItem, len(msg.champions))
		for i, champion := range msg.champions {
			items[i] = components.ChampionListItem{Champion: champion, Liked: true}
		}
		s.list.SetItems(items)

	case spinner.TickMsg:
		if s.loading {
			s.spinner, cmd = s.spinner.Update(msg)
		}
	}

	return s, cmd
}

func (s *LikedScreen) View() string {
	header := styles.TitleStyle.Render(fmt.Sprintf("%s Liked champions", styles.Heart(true)))

	if s.loading {
		return fmt.Sprintf("%s\n\n%s Loading liked champions...", header, s.spinner.View())
	}

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.ErrorStyle.Render("Could not load liked champions. Press r to retry.") + "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • r: refresh • tab: champions • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, s.list.View(), help)
}

type likedLoadedMsg struct {
	champions []data.Champion
	err       error
}

func (s *LikedScreen) loadLiked() tea.Msg {
	champions, err := s.controller.LikedChampions(context.Background())
	return likedLoadedMsg{champions: champions, err: err}
}
