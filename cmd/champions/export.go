package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/champions/pkg/integrations"
	"github.com/kerbaras/champions/pkg/services"
	"github.com/kerbaras/champions/pkg/utils"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your liked champions as an EPUB codex",
	Long:  "Build an EPUB with one chapter per liked champion, including its loading-screen art",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")

		env, err := setup()
		cobra.CheckErr(err)
		defer env.Close()

		if output == "" {
			output = filepath.Join(env.cfg.ExportDir(), integrations.SanitizeFilename(title)+".epub")
		}

		champions, err := env.controller.LikedChampions(cmd.Context())
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to load liked champions: %w", err))
		}
		if len(champions) == 0 {
			fmt.Println("You haven't liked any champions yet. Nothing to export.")
			return
		}

		fmt.Printf("Exporting %d champions...\n", len(champions))

		exporter := services.NewExporter(utils.NewAPI("", env.cfg.HTTPTimeout), env.log)
		if err := exporter.Export(cmd.Context(), title, champions, output); err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("EPUB created: %s\n", output)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default <data dir>/exports/<title>.epub)")
	exportCmd.Flags().StringP("title", "t", "Liked Champions", "Book title")
}
