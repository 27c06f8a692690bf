package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
)

type screenType int

const (
	homeView screenType = iota
	championsView
	likedView
	detailsView
)

type RootScreen struct {
	controller Controller

	currentView  screenType
	previousView screenType
	home         *HomeScreen
	champions    *ChampionsScreen
	liked        *LikedScreen
	details      *DetailsScreen

	width  int
	height int
}

func NewRootScreen(controller Controller) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: homeView,
		home:        NewHomeScreen(),
		champions:   NewChampionsScreen(controller),
		liked:       NewLikedScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.home.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.resize(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if !r.capturingInput() {
			switch msg.String() {
			case "q":
				return r, tea.Quit
			case "tab":
				switch r.currentView {
				case championsView:
					return r, r.show(likedView)
				case likedView:
					return r, r.show(championsView)
				}
			case "esc":
				return r, r.back()
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case ScreenHome:
			return r, r.show(homeView)
		case ScreenChampions:
			return r, r.show(championsView)
		case ScreenLiked:
			return r, r.show(likedView)
		case ScreenBack:
			return r, r.back()
		case ScreenDetails:
			if id, ok := msg.Data.(int); ok {
				r.details = NewDetailsScreen(r.controller, id)
				if r.width > 0 {
					r.details.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
				}
				return r, r.show(detailsView)
			}
		}
		return r, nil
	}

	return r, r.forward(msg)
}

// show switches to view. The champions screen keeps its list across visits;
// the liked and details screens reload every time they are shown.
func (r *RootScreen) show(view screenType) tea.Cmd {
	if view != r.currentView {
		r.previousView = r.currentView
	}
	r.currentView = view

	switch view {
	case championsView:
		if r.champions.list.Len() == 0 && r.champions.list.Filter() == "" {
			return r.champions.Init()
		}
	case likedView:
		return r.liked.Init()
	case detailsView:
		if r.details != nil {
			return r.details.Init()
		}
	}
	return nil
}

func (r *RootScreen) back() tea.Cmd {
	switch r.currentView {
	case homeView:
		return nil
	case detailsView:
		target := r.previousView
		if target == detailsView {
			target = homeView
		}
		r.details = nil
		return r.show(target)
	default:
		return r.show(homeView)
	}
}

func (r *RootScreen) capturingInput() bool {
	if c, ok := r.active().(inputCapturer); ok {
		return c.CapturingInput()
	}
	return false
}

func (r *RootScreen) active() tea.Model {
	switch r.currentView {
	case championsView:
		return r.champions
	case likedView:
		return r.liked
	case detailsView:
		if r.details != nil {
			return r.details
		}
	}
	return r.home
}

// resize goes to every screen so hidden ones lay out correctly when shown.
func (r *RootScreen) resize(msg tea.WindowSizeMsg) tea.Cmd {
	r.home.Update(msg)
	r.champions.Update(msg)
	r.liked.Update(msg)
	if r.details != nil {
		r.details.Update(msg)
	}
	return nil
}

func (r *RootScreen) forward(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case championsLoadedMsg, likeToggledMsg:
		_, cmd := r.champions.Update(msg)
		return cmd
	case likedLoadedMsg:
		_, cmd := r.liked.Update(msg)
		return cmd
	case detailsLoadedMsg:
		if r.details != nil {
			_, cmd := r.details.Update(msg)
			return cmd
		}
		return nil
	}

	_, cmd := r.active().Update(msg)
	return cmd
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case homeView:
		content = r.home.View()
	case championsView:
		content = r.champions.View()
	case likedView:
		content = r.liked.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	tabs := r.renderTabs()
	if tabs == "" {
		return content
	}
	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView != championsView && r.currentView != likedView {
		return ""
	}

	championsTab := "Champions"
	likedTab := "Liked"

	if r.currentView == championsView {
		championsTab = styles.ActiveTabStyle.Render(championsTab)
		likedTab = styles.InactiveTabStyle.Render(likedTab)
	} else {
		championsTab = styles.InactiveTabStyle.Render(championsTab)
		likedTab = styles.ActiveTabStyle.Render(likedTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, championsTab, likedTab)
}
