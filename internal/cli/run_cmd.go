package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/claraval/serein/internal/cli/formatter"
	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/flow"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Démarrer le bilan interactif",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionnaire(cmd, app)
		},
	}
}

func runQuestionnaire(cmd *cobra.Command, app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("le bilan interactif nécessite un terminal")
	}
	q := app.Store.Questionnaire
	out := cmd.OutOrStdout()

	answers := domain.AnswerSet{}
	var shown []string
	var energy domain.EnergyLevel

	// current is set directly after a back navigation so the previous block
	// re-renders without re-running transition logic.
	current := ""
	for {
		if current == "" {
			next, finished := flow.Next(q, answers, shown, energy)
			if finished {
				break
			}
			current = next
		}
		b := q.BlockByID(current)
		if b == nil {
			current = ""
			continue
		}

		fmt.Fprintln(out, formatter.ProgressBar(flow.Progress(q, shown), 24))

		raw := prefill(*b, answers)
		if err := blockForm(*b, &raw).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				// Esc goes back one block (answers preserved); at the first
				// block it discards the unsubmitted session.
				if len(shown) == 0 {
					fmt.Fprintln(out, formatter.Dim("Bilan interrompu. Rien n'a été enregistré."))
					return nil
				}
				current = shown[len(shown)-1]
				shown = shown[:len(shown)-1]
				continue
			}
			return err
		}

		a, err := toAnswer(*b, raw)
		if err != nil {
			// Validation failure: report and re-prompt, no state change.
			fmt.Fprintln(out, formatter.StyleRed.Render(err.Error()))
			continue
		}

		answers[b.ID] = a
		shown = appendIfMissing(shown, b.ID)
		if b.Role == domain.RoleEnergy {
			energy = domain.EnergyLevel(a.First())
		}
		current = ""
	}

	if len(answers) == 0 {
		fmt.Fprintln(out, formatter.Dim("Aucune réponse enregistrée."))
		return nil
	}

	result, err := app.Results.BuildResult(cmd.Context(), answers, shown)
	if err != nil {
		return fmt.Errorf("building result: %w", err)
	}

	fmt.Fprintln(out)
	for _, v := range domain.Variants {
		fmt.Fprintln(out, formatter.FormatScenario(v, result.Scenarios[v]))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, formatter.FormatDiagnostic(result.Diagnostic))
	fmt.Fprintln(out, formatter.FormatPlan(result.Plan))
	fmt.Fprintln(out, formatter.Dim("Session "+result.SessionID+" enregistrée."))
	return nil
}

// prefill restores previously given values when a block is re-rendered
// after back navigation.
func prefill(b domain.Block, answers domain.AnswerSet) blockAnswer {
	a, ok := answers[b.ID]
	if !ok {
		return blockAnswer{}
	}
	raw := blockAnswer{}
	switch b.Type {
	case domain.BlockSingleChoice:
		raw.single = a.First()
	case domain.BlockMultiChoice:
		raw.selected = append([]string(nil), a.OptionIDs...)
	case domain.BlockScale:
		if a.Number != nil {
			raw.text = strconv.FormatFloat(*a.Number, 'f', -1, 64)
		}
	default:
		raw.text = a.Text
	}
	return raw
}

func appendIfMissing(history []string, id string) []string {
	for _, h := range history {
		if h == id {
			return history
		}
	}
	return append(history, id)
}
