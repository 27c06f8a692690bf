package screens

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/champions/pkg/data"
	"github.com/kerbaras/champions/pkg/services"
)

const (
	ScreenHome      = "home"
	ScreenChampions = "champions"
	ScreenLiked     = "liked"
	ScreenDetails   = "details"
	ScreenBack      = "back"
)

// Controller is what the screens need from services.ChampionController.
type Controller interface {
	ListChampions(ctx context.Context) ([]services.ChampionView, error)
	GetChampion(ctx context.Context, id int) (*data.Champion, error)
	ToggleLike(ctx context.Context, id int) (bool, error)
	LikedChampions(ctx context.Context) ([]data.Champion, error)
}

// SwitchScreenMsg asks the root screen to show another screen. Data carries
// the champion id for the details screen.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

func switchTo(screen string, payload interface{}) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: screen, Data: payload}
	}
}

// inputCapturer is implemented by screens that own the keyboard while a text
// input is focused, so the root must not treat keys as shortcuts.
type inputCapturer interface {
	CapturingInput() bool
}
