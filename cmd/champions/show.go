package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/champions/pkg/app/styles"
	"github.com/kerbaras/champions/pkg/services"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [champion-id]",
	Short: "Show a champion's details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseChampionID(args[0])
		cobra.CheckErr(err)

		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		champion, err := env.controller.GetChampion(cmd.Context(), id)
		if errors.Is(err, services.ErrChampionNotFound) {
			fmt.Println(styles.ErrorStyle.Render("Champion not found."))
			return
		}
		cobra.CheckErr(err)

		liked, err := env.controller.LikedIDs(cmd.Context())
		cobra.CheckErr(err)

		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s %s", styles.Heart(liked.Contains(champion.ID)), champion.Name)))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(champion.Title))
		b.WriteString("\n")

		tags := make([]string, len(champion.Tags))
		for i, tag := range champion.Tags {
			tags[i] = styles.TagStyle.Render(tag)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tags...))
		b.WriteString("\n\n")

		b.WriteString(styles.SectionStyle.Render("Resource"))
		b.WriteString("\n" + champion.Partype + "\n\n")
		b.WriteString(styles.SectionStyle.Render("Summary"))
		b.WriteString("\n" + lipgloss.NewStyle().Width(80).Render(champion.Blurb) + "\n\n")
		b.WriteString(styles.SectionStyle.Render("Base stats"))
		b.WriteString("\n")
		for _, row := range champion.Stats.Rows() {
			b.WriteString(fmt.Sprintf("%-14s%s\n", row.Label, row.Value))
		}
		if champion.Image.Loading != "" {
			b.WriteString("\n" + styles.MutedStyle.Render("Art: "+champion.Image.Loading) + "\n")
		}

		fmt.Println(b.String())
	},
}

func parseChampionID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid champion id %q", arg)
	}
	return id, nil
}
