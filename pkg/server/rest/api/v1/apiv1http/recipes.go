package apiv1http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/auth"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
	"droscher.com/RecipeBox/pkg/shopping"
)

const (
	RecipeServicePath    = "/api/recipes"
	ShortLinkServicePath = "/s"
)

type RecipeService interface {
	ListRecipes(ctx context.Context, userID uint, query api.RecipeQuery) (*api.Page[api.Recipe], error)
	GetRecipe(ctx context.Context, userID uint, recipeID uint) (*api.Recipe, error)
	CreateRecipe(ctx context.Context, userID uint, request api.CreateRecipeRequest) (*api.Recipe, error)
	UpdateRecipe(ctx context.Context, userID uint, recipeID uint, request api.UpdateRecipeRequest) (*api.Recipe, error)
	DeleteRecipe(ctx context.Context, userID uint, recipeID uint) error
	GetShortLink(ctx context.Context, recipeID uint) (*api.ShortLink, error)
	ShoppingCartReport(ctx context.Context, userID uint) ([]byte, error)
	AddFavorite(ctx context.Context, userID uint, recipeID uint) (*api.RecipeShort, error)
	RemoveFavorite(ctx context.Context, userID uint, recipeID uint) error
	AddToShoppingCart(ctx context.Context, userID uint, recipeID uint) (*api.RecipeShort, error)
	RemoveFromShoppingCart(ctx context.Context, userID uint, recipeID uint) error
}

type ShortLinkResolver interface {
	ResolveShortLink(ctx context.Context, shortLink string) (string, error)
}

type recipeHandler struct {
	svc      RecipeService
	logger   *zap.Logger
	pageSize int
}

func NewRecipeServiceHandler(svc RecipeService, opts ...HandlerOption) (string, http.Handler) {
	options := newHandlerOptions(opts)
	h := &recipeHandler{svc: svc, logger: options.logger, pageSize: options.pageSize}

	router := chi.NewRouter()
	router.Get("/", h.listRecipes)
	router.Get("/{id}/", h.getRecipe)
	router.Get("/{id}/get-link/", h.getShortLink)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/", h.createRecipe)
		r.Patch("/{id}/", h.updateRecipe)
		r.Delete("/{id}/", h.deleteRecipe)
		r.Get("/download_shopping_cart/", h.downloadShoppingCart)
		r.Post("/{id}/favorite/", h.membership(svc.AddFavorite))
		r.Delete("/{id}/favorite/", h.removeMembership(svc.RemoveFavorite))
		r.Post("/{id}/shopping_cart/", h.membership(svc.AddToShoppingCart))
		r.Delete("/{id}/shopping_cart/", h.removeMembership(svc.RemoveFromShoppingCart))
	})

	return RecipeServicePath, router
}

// NewShortLinkHandler redirects /s/{short_link} to the recipe page it stands for.
func NewShortLinkHandler(svc ShortLinkResolver, opts ...HandlerOption) (string, http.Handler) {
	logger := newHandlerOptions(opts).logger

	router := chi.NewRouter()
	router.Get("/{short_link}", func(w http.ResponseWriter, r *http.Request) {
		target, err := svc.ResolveShortLink(r.Context(), chi.URLParam(r, "short_link"))
		if err != nil {
			respondError(w, r, err, logger)

			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	})

	return ShortLinkServicePath, router
}

func (h *recipeHandler) recipeQuery(r *http.Request) (api.RecipeQuery, error) {
	page, err := pageRequest(r, h.pageSize)
	if err != nil {
		return api.RecipeQuery{}, err
	}

	query := api.RecipeQuery{
		TagSlugs:         r.URL.Query()["tags"],
		IsFavorited:      queryFlag(r, "is_favorited"),
		IsInShoppingCart: queryFlag(r, "is_in_shopping_cart"),
		PageRequest:      page,
	}

	if raw := r.URL.Query().Get("author"); raw != "" {
		authorID, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			return api.RecipeQuery{}, &api.ValidationError{Fields: map[string]string{"author": "must be a user id"}}
		}

		author := uint(authorID)
		query.AuthorID = &author
	}

	return query, nil
}

func (h *recipeHandler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query, err := h.recipeQuery(r)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipes, err := h.svc.ListRecipes(r.Context(), auth.UserID(r.Context()), query)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, withPageLinks(r, query.PageRequest, recipes), h.logger)
}

func (h *recipeHandler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipe, err := h.svc.GetRecipe(r.Context(), auth.UserID(r.Context()), recipeID)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, recipe, h.logger)
}

func (h *recipeHandler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var request api.CreateRecipeRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipe, err := h.svc.CreateRecipe(r.Context(), auth.UserID(r.Context()), request)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusCreated, recipe, h.logger)
}

func (h *recipeHandler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	var request api.UpdateRecipeRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipe, err := h.svc.UpdateRecipe(r.Context(), auth.UserID(r.Context()), recipeID, request)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, recipe, h.logger)
}

func (h *recipeHandler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	if err := h.svc.DeleteRecipe(r.Context(), auth.UserID(r.Context()), recipeID); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondNoContent(w)
}

func (h *recipeHandler) getShortLink(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	link, err := h.svc.GetShortLink(r.Context(), recipeID)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, link, h.logger)
}

func (h *recipeHandler) downloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.ShoppingCartReport(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	w.Header().Set("Content-Type", shopping.ContentType)
	w.Header().Set("Content-Disposition", shopping.ContentDisposition())
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(report); err != nil {
		h.logger.Error("failed to write shopping cart", zap.Error(err))
	}
}

type addMembershipFunc func(ctx context.Context, userID uint, recipeID uint) (*api.RecipeShort, error)

type removeMembershipFunc func(ctx context.Context, userID uint, recipeID uint) error

func (h *recipeHandler) membership(add addMembershipFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, "id")
		if err != nil {
			respondError(w, r, err, h.logger)

			return
		}

		preview, err := add(r.Context(), auth.UserID(r.Context()), recipeID)
		if err != nil {
			respondError(w, r, err, h.logger)

			return
		}

		respondJSON(w, http.StatusCreated, preview, h.logger)
	}
}

func (h *recipeHandler) removeMembership(remove removeMembershipFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, "id")
		if err != nil {
			respondError(w, r, err, h.logger)

			return
		}

		if err := remove(r.Context(), auth.UserID(r.Context()), recipeID); err != nil {
			respondError(w, r, err, h.logger)

			return
		}

		respondNoContent(w)
	}
}
