package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/champions/pkg/app/screens"
	"github.com/kerbaras/champions/pkg/logger"
)

type App struct {
	controller screens.Controller
	log        *logger.Logger
}

func NewApp(controller screens.Controller, log *logger.Logger) *App {
	if log == nil {
		log = logger.Discard()
	}
	return &App{controller: controller, log: log}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a.log.Infof("Starting TUI")
	_, err := p.Run()
	if err != nil {
		a.log.Errorf("TUI exited with error: %v", err)
	}
	return err
}
