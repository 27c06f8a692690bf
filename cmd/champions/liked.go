package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/spf13/cobra"
)

var likedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List your liked champions",
	Run: func(cmd *cobra.Command, args []string) {
		prune, _ := cmd.Flags().GetBool("prune")

		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		if prune {
			removed, err := env.controller.PruneLiked(cmd.Context())
			if err != nil {
				cobra.CheckErr(fmt.Errorf("failed to prune liked champions: %w", err))
			}
			if len(removed) > 0 {
				fmt.Printf("Removed %d stale champion ids: %v\n", len(removed), removed)
			}
		}

		champions, err := env.controller.LikedChampions(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load liked champions: %w", err))
		}

		if len(champions) == 0 {
			fmt.Println("You haven't liked any champions yet. Use 'champions like <id>' to add one.")
			return
		}

		var (
			headerStyle = lipgloss.NewStyle().Foreground(styles.Liked).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(styles.Liked)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("ID", "Name", "Title", "Tags")

		for _, c := range champions {
			t.Row(fmt.Sprintf("%d", c.ID), c.Name, truncateString(c.Title, 40), strings.Join(c.Tags, ", "))
		}

		fmt.Printf("%s Liked champions (%d)\n", styles.Heart(true), len(champions))
		fmt.Println(t)
	},
}

func init() {
	likedCmd.Flags().Bool("prune", false, "Remove liked ids that are no longer in the champion list")
}
