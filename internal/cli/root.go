package cli

import (
	"github.com/spf13/cobra"

	"github.com/claraval/serein/internal/content"
	"github.com/claraval/serein/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Store    *content.Store
	Results  service.ResultService
	Sessions service.SessionService
	CheckIns service.CheckInService
	Plans    service.PlanService

	IsInteractive func() bool
}

// NewRootCmd creates the top-level "serein" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "serein",
		Short: "Bilan bien-être adaptatif et plan sur 7 jours",
	}

	root.AddCommand(
		newRunCmd(app),
		newCheckInCmd(app),
		newPlanCmd(app),
		newResultCmd(app),
		newSessionsCmd(app),
	)

	return root
}
