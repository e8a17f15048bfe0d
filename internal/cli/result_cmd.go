package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claraval/serein/internal/cli/formatter"
	"github.com/claraval/serein/internal/domain"
)

func newResultCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "result",
		Short: "Afficher le dernier bilan enregistré",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				session *domain.Session
				err     error
			)
			if sessionID != "" {
				session, err = app.Sessions.GetByID(cmd.Context(), sessionID)
			} else {
				session, err = app.Sessions.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim("Session "+session.ID+" · "+session.CompletedAt.Format("2006-01-02 15:04")))
			fmt.Fprintln(out)
			for _, v := range domain.Variants {
				if text, ok := session.Scenarios[v]; ok {
					fmt.Fprintln(out, formatter.FormatScenario(v, text))
					fmt.Fprintln(out)
				}
			}
			fmt.Fprintln(out, formatter.FormatDiagnostic(session.Diagnostic))
			fmt.Fprintln(out, formatter.FormatPlan(session.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "identifiant de session (défaut: la plus récente)")
	return cmd
}

func newSessionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "Lister les bilans enregistrés",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, formatter.Dim("Aucun bilan enregistré pour l'instant."))
				return nil
			}
			for _, s := range sessions {
				fmt.Fprintf(out, "%s  %s  %s\n",
					formatter.Bold(s.ID),
					s.CompletedAt.Format("2006-01-02 15:04"),
					formatter.Dim(string(s.Profile.Root)),
				)
			}
			return nil
		},
	}
}
