package cmd

import (
	"os"

	"github.com/kerbaras/champions/pkg/app"
	"github.com/kerbaras/champions/pkg/config"
	"github.com/kerbaras/champions/pkg/logger"
	"github.com/kerbaras/champions/pkg/services"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "champions",
	Short: "A League of Legends champion encyclopedia",
	Long:  "Browse League of Legends champions, their stats, roles and lore, and keep a list of the ones you like",
	Run: func(cmd *cobra.Command, args []string) {
		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		// Launch TUI by default
		a := app.NewApp(env.controller, env.log)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(likedCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// environment is what every command needs: config, log file and controller.
type environment struct {
	cfg        *config.Config
	log        *logger.Logger
	controller *services.ChampionController
}

func setup() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	controller, err := services.NewChampionControllerWithConfig(cfg, log)
	if err != nil {
		log.Errorf("Error opening controller: %v", err)
		log.Close()
		return nil, err
	}

	return &environment{cfg: cfg, log: log, controller: controller}, nil
}

func (e *environment) Close() {
	if err := e.controller.Close(); err != nil {
		e.log.Errorf("Error closing storage: %v", err)
	}
	e.log.Close()
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
