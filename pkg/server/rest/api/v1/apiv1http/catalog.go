package apiv1http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const (
	TagServicePath        = "/api/tags"
	IngredientServicePath = "/api/ingredients"
)

type TagService interface {
	ListTags(ctx context.Context) ([]api.Tag, error)
	GetTag(ctx context.Context, tagID uint) (*api.Tag, error)
}

type IngredientService interface {
	ListIngredients(ctx context.Context, name string) ([]api.Ingredient, error)
	GetIngredient(ctx context.Context, ingredientID uint) (*api.Ingredient, error)
}

func NewTagServiceHandler(svc TagService, opts ...HandlerOption) (string, http.Handler) {
	logger := newHandlerOptions(opts).logger

	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tags, err := svc.ListTags(r.Context())
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		respondJSON(w, http.StatusOK, tags, logger)
	})

	router.Get("/{id}/", func(w http.ResponseWriter, r *http.Request) {
		tagID, err := pathID(r, "id")
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		tag, err := svc.GetTag(r.Context(), tagID)
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		respondJSON(w, http.StatusOK, tag, logger)
	})

	return TagServicePath, router
}

// NewIngredientServiceHandler serves the ingredient catalog. The list accepts a name query
// parameter that matches case-insensitively anywhere in the name.
func NewIngredientServiceHandler(svc IngredientService, opts ...HandlerOption) (string, http.Handler) {
	logger := newHandlerOptions(opts).logger

	router := chi.NewRouter()

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		ingredients, err := svc.ListIngredients(r.Context(), r.URL.Query().Get("name"))
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		respondJSON(w, http.StatusOK, ingredients, logger)
	})

	router.Get("/{id}/", func(w http.ResponseWriter, r *http.Request) {
		ingredientID, err := pathID(r, "id")
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		ingredient, err := svc.GetIngredient(r.Context(), ingredientID)
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		respondJSON(w, http.StatusOK, ingredient, logger)
	})

	return IngredientServicePath, router
}
