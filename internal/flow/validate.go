package flow

import (
	"fmt"

	"github.com/claraval/serein/internal/domain"
)

// ValidationError carries a user-facing message. A failed validation is
// reported and re-prompted; it never changes flow state.
type ValidationError struct {
	BlockID string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks an answer against its block's constraints before any
// forward transition.
func Validate(b domain.Block, a domain.Answer) error {
	if b.Required && a.IsEmpty() {
		return &ValidationError{BlockID: b.ID, Message: "Une réponse est requise pour continuer."}
	}
	if a.IsEmpty() {
		return nil
	}

	switch b.Type {
	case domain.BlockSingleChoice:
		if len(a.OptionIDs) > 1 {
			return &ValidationError{BlockID: b.ID, Message: "Une seule réponse est possible ici."}
		}
	case domain.BlockMultiChoice:
		if b.MinSelect > 0 && len(a.OptionIDs) < b.MinSelect {
			return &ValidationError{
				BlockID: b.ID,
				Message: fmt.Sprintf("Choisissez au moins %d réponse(s).", b.MinSelect),
			}
		}
		if b.MaxSelect > 0 && len(a.OptionIDs) > b.MaxSelect {
			return &ValidationError{
				BlockID: b.ID,
				Message: fmt.Sprintf("Choisissez au plus %d réponse(s).", b.MaxSelect),
			}
		}
	case domain.BlockScale:
		if a.Number == nil {
			return &ValidationError{BlockID: b.ID, Message: "Indiquez une valeur sur l'échelle."}
		}
		if *a.Number < float64(b.ScaleMin) || *a.Number > float64(b.ScaleMax) {
			return &ValidationError{
				BlockID: b.ID,
				Message: fmt.Sprintf("La valeur doit être entre %d et %d.", b.ScaleMin, b.ScaleMax),
			}
		}
	}
	return nil
}
