package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/claraval/serein/internal/cli/formatter"
	"github.com/claraval/serein/internal/domain"
	"github.com/claraval/serein/internal/flow"
)

// sereinHuhTheme returns a custom huh theme using the shared palette.
func sereinHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// blockAnswer collects the raw form values for one block before they are
// converted into a domain.Answer.
type blockAnswer struct {
	selected []string
	single   string
	text     string
}

// blockForm builds the huh form for one questionnaire block.
func blockForm(b domain.Block, out *blockAnswer) *huh.Form {
	var field huh.Field

	switch b.Type {
	case domain.BlockSingleChoice:
		opts := make([]huh.Option[string], len(b.Options))
		for i, o := range b.Options {
			opts[i] = huh.NewOption(o.Label, o.ID)
		}
		field = huh.NewSelect[string]().
			Title(b.Prompt).
			Description(b.Help).
			Options(opts...).
			Value(&out.single)

	case domain.BlockMultiChoice:
		opts := make([]huh.Option[string], len(b.Options))
		for i, o := range b.Options {
			opts[i] = huh.NewOption(o.Label, o.ID)
		}
		field = huh.NewMultiSelect[string]().
			Title(b.Prompt).
			Description(selectHint(b)).
			Options(opts...).
			Value(&out.selected)

	case domain.BlockScale:
		field = huh.NewInput().
			Title(b.Prompt).
			Description(b.Help).
			Placeholder(fmt.Sprintf("%d–%d", b.ScaleMin, b.ScaleMax)).
			Validate(validateScale(b)).
			Value(&out.text)

	default: // free text
		field = huh.NewText().
			Title(b.Prompt).
			Description(b.Help).
			Value(&out.text)
	}

	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(sereinHuhTheme()).
		WithShowHelp(false)
}

func selectHint(b domain.Block) string {
	switch {
	case b.MinSelect > 0 && b.MaxSelect > 0:
		return fmt.Sprintf("Entre %d et %d réponses", b.MinSelect, b.MaxSelect)
	case b.MinSelect > 0:
		return fmt.Sprintf("Au moins %d réponse(s)", b.MinSelect)
	case b.MaxSelect > 0:
		return fmt.Sprintf("Au plus %d réponse(s)", b.MaxSelect)
	}
	return b.Help
}

func validateScale(b domain.Block) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			if b.Required {
				return fmt.Errorf("une valeur est requise")
			}
			return nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("entrez un nombre")
		}
		if n < float64(b.ScaleMin) || n > float64(b.ScaleMax) {
			return fmt.Errorf("entre %d et %d", b.ScaleMin, b.ScaleMax)
		}
		return nil
	}
}

// toAnswer converts raw form values into a validated domain answer.
func toAnswer(b domain.Block, raw blockAnswer) (domain.Answer, error) {
	a := domain.Answer{BlockID: b.ID}

	switch b.Type {
	case domain.BlockSingleChoice:
		if raw.single != "" {
			a.OptionIDs = []string{raw.single}
			a.Labels = []string{b.OptionLabel(raw.single)}
		}
	case domain.BlockMultiChoice:
		a.OptionIDs = raw.selected
		for _, id := range raw.selected {
			a.Labels = append(a.Labels, b.OptionLabel(id))
		}
	case domain.BlockScale:
		if trimmed := strings.TrimSpace(raw.text); trimmed != "" {
			if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
				a.Number = &n
			}
		}
	default:
		a.Text = strings.TrimSpace(raw.text)
	}

	if err := flow.Validate(b, a); err != nil {
		return domain.Answer{}, err
	}
	return a, nil
}
