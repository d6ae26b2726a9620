// Package advice is the boundary around the AI nutrition assistant. The
// rest of the application only depends on the Provider interface; the model
// integration lives behind it and every failure surfaces as a single
// retryable error code.
package advice

import (
	"context"
	"strings"

	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
)

// FallbackNotice is shown to shoppers when no advice can be produced.
const FallbackNotice = "Desculpe, não foi possível obter a recomendação. Tente novamente."

// Request carries the shopper's free-text inputs. Both fields are required
// and validated upstream.
type Request struct {
	DietaryNeeds string `json:"dietary_needs" validate:"required,min=10"`
	Preferences  string `json:"preferences" validate:"required,min=10"`
}

// Provider produces nutrition advice for a shopper request.
type Provider interface {
	Recommend(ctx context.Context, req Request) (string, error)
}

// Disabled is the Provider used when no model is configured. Every call
// reports the advice service as unavailable.
type Disabled struct{}

func (Disabled) Recommend(ctx context.Context, req Request) (string, error) {
	return "", pkgerrors.New(pkgerrors.CodeAdviceUnavailable, "advice provider not configured")
}

func trimmedLen(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}

// ValidateRequest applies the minimum-length rule to both fields after
// trimming surrounding whitespace.
func ValidateRequest(req Request) error {
	if trimmedLen(req.DietaryNeeds) < 10 {
		return pkgerrors.New(pkgerrors.CodeValidation, "dietary_needs must be at least 10 characters")
	}
	if trimmedLen(req.Preferences) < 10 {
		return pkgerrors.New(pkgerrors.CodeValidation, "preferences must be at least 10 characters")
	}
	return nil
}
