package cmd

import (
	"errors"
	"fmt"

	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/services"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like [champion-id]",
	Short: "Like or unlike a champion",
	Long:  "Toggle a champion in your liked list. Running it twice restores the list.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseChampionID(args[0])
		cobra.CheckErr(err)

		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		// Unknown ids are still toggled so stale entries can be removed.
		name := fmt.Sprintf("#%d", id)
		champion, err := env.controller.GetChampion(cmd.Context(), id)
		switch {
		case err == nil:
			name = champion.Name
		case errors.Is(err, services.ErrChampionNotFound):
			fmt.Println(styles.MutedStyle.Render(fmt.Sprintf("Champion %d is not in the current list.", id)))
		default:
			cobra.CheckErr(fmt.Errorf("failed to load champions: %w", err))
		}

		liked, err := env.controller.ToggleLike(cmd.Context(), id)
		cobra.CheckErr(err)

		if liked {
			fmt.Printf("%s Liked %s\n", styles.Heart(true), name)
		} else {
			fmt.Printf("%s Unliked %s\n", styles.Heart(false), name)
		}
	},
}
