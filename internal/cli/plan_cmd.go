package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claraval/serein/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Régénérer le plan sur 7 jours à partir du dernier bilan",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.Rebuild(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(*p))
			return nil
		},
	}
}
