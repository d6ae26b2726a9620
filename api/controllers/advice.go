package controllers

import (
	"net/http"

	"github.com/greenlyfe/greenlyfe-backend/api/responses"
	"github.com/greenlyfe/greenlyfe-backend/api/validators"
	"github.com/greenlyfe/greenlyfe-backend/internal/advice"
	pkgerrors "github.com/greenlyfe/greenlyfe-backend/pkg/errors"
	"github.com/greenlyfe/greenlyfe-backend/pkg/logger"
)

type adviceResponse struct {
	Advice string `json:"advice"`
}

// Advice runs the nutrition assistant. When no advice can be produced the
// error payload carries the shopper-facing fallback notice so the client can
// render it directly.
func Advice(provider advice.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload advice.Request
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := advice.ValidateRequest(payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		text, err := provider.Recommend(r.Context(), payload)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeAdviceUnavailable {
				err = typed.WithDetails(map[string]any{"notice": advice.FallbackNotice})
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, adviceResponse{Advice: text})
	}
}
