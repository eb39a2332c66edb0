package apiv1http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/pkg/auth"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const UserServicePath = "/api/users"

type UserService interface {
	Register(ctx context.Context, request api.RegisterUserRequest) (*api.RegisteredUser, error)
	ListUsers(ctx context.Context, userID uint, page api.PageRequest) (*api.Page[api.User], error)
	GetUser(ctx context.Context, userID uint, targetID uint) (*api.User, error)
	Me(ctx context.Context, userID uint) (*api.User, error)
	SetPassword(ctx context.Context, userID uint, request api.SetPasswordRequest) error
	SetAvatar(ctx context.Context, userID uint, request api.Avatar) (*api.Avatar, error)
	DeleteAvatar(ctx context.Context, userID uint) error
	ListSubscriptions(ctx context.Context, userID uint, page api.PageRequest, recipesLimit int) (*api.Page[api.UserWithRecipes], error)
	Subscribe(ctx context.Context, userID uint, authorID uint, recipesLimit int) (*api.UserWithRecipes, error)
	Unsubscribe(ctx context.Context, userID uint, authorID uint) error
}

type userHandler struct {
	svc      UserService
	logger   *zap.Logger
	pageSize int
}

func NewUserServiceHandler(svc UserService, opts ...HandlerOption) (string, http.Handler) {
	options := newHandlerOptions(opts)
	h := &userHandler{svc: svc, logger: options.logger, pageSize: options.pageSize}

	router := chi.NewRouter()
	router.Get("/", h.listUsers)
	router.Post("/", h.register)
	router.Get("/{id}/", h.getUser)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Get("/me/", h.me)
		r.Post("/set_password/", h.setPassword)
		r.Put("/me/avatar/", h.setAvatar)
		r.Delete("/me/avatar/", h.deleteAvatar)
		r.Get("/subscriptions/", h.listSubscriptions)
		r.Post("/{id}/subscribe/", h.subscribe)
		r.Delete("/{id}/subscribe/", h.unsubscribe)
	})

	return UserServicePath, router
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var request api.RegisterUserRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	user, err := h.svc.Register(r.Context(), request)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusCreated, user, h.logger)
}

func (h *userHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r, h.pageSize)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	users, err := h.svc.ListUsers(r.Context(), auth.UserID(r.Context()), page)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, withPageLinks(r, page, users), h.logger)
}

func (h *userHandler) getUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	user, err := h.svc.GetUser(r.Context(), auth.UserID(r.Context()), targetID)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, user, h.logger)
}

func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, user, h.logger)
}

func (h *userHandler) setPassword(w http.ResponseWriter, r *http.Request) {
	var request api.SetPasswordRequest
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	if err := h.svc.SetPassword(r.Context(), auth.UserID(r.Context()), request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondNoContent(w)
}

func (h *userHandler) setAvatar(w http.ResponseWriter, r *http.Request) {
	var request api.Avatar
	if err := decodeJSON(r, &request); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	avatar, err := h.svc.SetAvatar(r.Context(), auth.UserID(r.Context()), request)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, avatar, h.logger)
}

func (h *userHandler) deleteAvatar(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAvatar(r.Context(), auth.UserID(r.Context())); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondNoContent(w)
}

func (h *userHandler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r, h.pageSize)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipesLimit, err := queryInt(r, "recipes_limit")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	authors, err := h.svc.ListSubscriptions(r.Context(), auth.UserID(r.Context()), page, recipesLimit)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusOK, withPageLinks(r, page, authors), h.logger)
}

func (h *userHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	recipesLimit, err := queryInt(r, "recipes_limit")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	author, err := h.svc.Subscribe(r.Context(), auth.UserID(r.Context()), authorID, recipesLimit)
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondJSON(w, http.StatusCreated, author, h.logger)
}

func (h *userHandler) unsubscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	if err := h.svc.Unsubscribe(r.Context(), auth.UserID(r.Context()), authorID); err != nil {
		respondError(w, r, err, h.logger)

		return
	}

	respondNoContent(w)
}
