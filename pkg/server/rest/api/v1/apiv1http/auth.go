package apiv1http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"droscher.com/RecipeBox/pkg/auth"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const AuthServicePath = "/api/auth"

type AuthService interface {
	Login(ctx context.Context, request api.LoginRequest) (*api.Token, error)
}

// NewAuthServiceHandler serves token login and logout. Tokens are stateless, so logout only
// checks that the caller is authenticated.
func NewAuthServiceHandler(svc AuthService, opts ...HandlerOption) (string, http.Handler) {
	options := newHandlerOptions(opts)
	logger := options.logger

	router := chi.NewRouter()

	router.Post("/token/login/", func(w http.ResponseWriter, r *http.Request) {
		var request api.LoginRequest
		if err := decodeJSON(r, &request); err != nil {
			respondError(w, r, err, logger)

			return
		}

		token, err := svc.Login(r.Context(), request)
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		respondJSON(w, http.StatusOK, token, logger)
	})

	router.With(auth.RequireUser).Post("/token/logout/", func(w http.ResponseWriter, _ *http.Request) {
		respondNoContent(w)
	})

	return AuthServicePath, router
}
