package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/claraval/serein/internal/cli/formatter"
)

func newCheckInCmd(app *App) *cobra.Command {
	var date string
	var done bool
	var note string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Enregistrer le point du jour",
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()
			if interactive && !cmd.Flags().Changed("done") {
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Avez-vous fait un pas de votre plan aujourd'hui ?").
						Affirmative("Oui").
						Negative("Pas aujourd'hui").
						Value(&done),
					huh.NewText().
						Title("Une note pour vous-même ? (optionnel)").
						Value(&note),
				)).WithTheme(sereinHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := app.CheckIns.Log(cmd.Context(), date, done, note); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Point du jour enregistré."))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date du point (YYYY-MM-DD, défaut: aujourd'hui)")
	cmd.Flags().BoolVar(&done, "done", false, "le pas du jour a été fait")
	cmd.Flags().StringVar(&note, "note", "", "note libre")
	return cmd
}
