package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/services"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all champions",
	Long:  "Display every champion from the configured source in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		onlyLiked, _ := cmd.Flags().GetBool("liked")

		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		champions, err := env.controller.ListChampions(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load champions: %w", err))
		}

		if onlyLiked {
			var liked []services.ChampionView
			for _, c := range champions {
				if c.Liked {
					liked = append(liked, c)
				}
			}
			champions = liked
		}

		if len(champions) == 0 {
			if onlyLiked {
				fmt.Println("You haven't liked any champions yet. Use 'champions like <id>' to add one.")
			} else {
				fmt.Println("No champions available.")
			}
			return
		}

		columns := []table.Column{
			{Title: "♥", Width: 2},
			{Title: "ID", Width: 5},
			{Title: "Name", Width: 16},
			{Title: "Title", Width: 32},
			{Title: "Tags", Width: 20},
		}

		rows := []table.Row{}
		for _, c := range champions {
			heart := "♡"
			if c.Liked {
				heart = "♥"
			}
			rows = append(rows, table.Row{
				heart,
				fmt.Sprintf("%d", c.ID),
				truncateString(c.Name, 16),
				truncateString(c.Title, 32),
				truncateString(strings.Join(c.Tags, ", "), 20),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(styles.Muted).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.NoColor{}).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nChampions (%d) from %s\n\n", len(champions), env.controller.Source().Name())
		fmt.Println(t.View())
	},
}

func init() {
	listCmd.Flags().Bool("liked", false, "Only show liked champions")
}
