package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/auth"
	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
	"droscher.com/RecipeBox/pkg/server/rest"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

const reservedUsername = "me"

var errBadCredentials = fmt.Errorf("%w: unable to log in with provided credentials", api.ErrInvalidInput)

type TokenIssuer interface {
	IssueToken(user *model.User) (string, error)
}

type UserServer struct {
	users         repository.UserRepository
	recipes       repository.RecipeRepository
	subscriptions membershipToggle
	tokens        TokenIssuer
	validator     *Validator
	config        *configs.Config
	logger        *zap.Logger
}

func NewUserServer(
	users repository.UserRepository,
	recipes repository.RecipeRepository,
	memberships repository.MembershipRepository,
	tokens TokenIssuer,
	config *configs.Config,
	logger *zap.Logger,
) *UserServer {
	return &UserServer{
		users:         users,
		recipes:       recipes,
		subscriptions: membershipToggle{repo: memberships, relation: model.Subscriptions},
		tokens:        tokens,
		validator:     NewValidator(),
		config:        config,
		logger:        logger,
	}
}

type registrationValFn func(ctx context.Context, request *api.RegisterUserRequest) error

func runRegistrationValFns(ctx context.Context, request *api.RegisterUserRequest, fns ...registrationValFn) error {
	for _, fn := range fns {
		if err := fn(ctx, request); err != nil {
			return err
		}
	}

	return nil
}

func (u *UserServer) Register(ctx context.Context, request api.RegisterUserRequest) (*api.RegisteredUser, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	err := runRegistrationValFns(ctx, &request,
		usernameNotReserved,
		usernameNotEmail,
		u.usernameFree,
		u.emailFree)
	if err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.users.AddUser(ctx, model.User{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, fmt.Errorf("%w: %w", api.ErrInvalidInput, err)
		}

		return nil, err
	}

	u.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))

	registered := rest.RegisteredUserFromModel(user)

	return &registered, nil
}

func usernameNotReserved(_ context.Context, request *api.RegisterUserRequest) error {
	if strings.EqualFold(request.Username, reservedUsername) {
		return fieldError("username", fmt.Sprintf("%q is not an allowed username", reservedUsername))
	}

	return nil
}

func usernameNotEmail(_ context.Context, request *api.RegisterUserRequest) error {
	if request.Username == request.Email {
		return fieldError("username", "must differ from the email address")
	}

	return nil
}

func (u *UserServer) usernameFree(ctx context.Context, request *api.RegisterUserRequest) error {
	_, err := u.users.GetUserByName(ctx, request.Username)

	switch {
	case err == nil:
		return fieldError("username", "is already taken")
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (u *UserServer) emailFree(ctx context.Context, request *api.RegisterUserRequest) error {
	_, err := u.users.GetUserFromEmail(ctx, request.Email)

	switch {
	case err == nil:
		return fieldError("email", "is already in use")
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return err
	}
}

func (u *UserServer) Login(ctx context.Context, request api.LoginRequest) (*api.Token, error) {
	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	user, err := u.users.GetUserFromEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errBadCredentials
		}

		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, request.Password); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			return nil, errBadCredentials
		}

		return nil, err
	}

	token, err := u.tokens.IssueToken(user)
	if err != nil {
		u.logger.Error("error issuing token", zap.Uint("user_id", user.ID), zap.Error(err))

		return nil, err
	}

	return &api.Token{AuthToken: token}, nil
}

func (u *UserServer) ListUsers(ctx context.Context, userID uint, page api.PageRequest) (*api.Page[api.User], error) {
	page = page.Normalize(u.config.Pagination.PageSize)

	users, total, err := u.users.ListUsers(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	subscribed, err := u.subscriptions.targets(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	results := make([]api.User, 0, len(users))
	for _, user := range users {
		results = append(results, rest.UserFromModel(user, subscribed[user.ID]))
	}

	return &api.Page[api.User]{Count: total, Results: results}, nil
}

func (u *UserServer) GetUser(ctx context.Context, userID uint, targetID uint) (*api.User, error) {
	user, err := u.getUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	subscribed, err := u.subscriptions.holds(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	apiUser := rest.UserFromModel(user, subscribed)

	return &apiUser, nil
}

func (u *UserServer) Me(ctx context.Context, userID uint) (*api.User, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	user, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	apiUser := rest.UserFromModel(user, false)

	return &apiUser, nil
}

func (u *UserServer) SetPassword(ctx context.Context, userID uint, request api.SetPasswordRequest) error {
	if userID == 0 {
		return api.ErrUnauthenticated
	}

	if err := u.validator.Validate(request); err != nil {
		return err
	}

	user, err := u.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(user.PasswordHash, request.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrWrongPassword) {
			return fieldError("current_password", "is incorrect")
		}

		return err
	}

	passwordHash, err := auth.HashPassword(request.NewPassword)
	if err != nil {
		return err
	}

	return u.users.UpdatePassword(ctx, userID, passwordHash)
}

func (u *UserServer) SetAvatar(ctx context.Context, userID uint, request api.Avatar) (*api.Avatar, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	if err := u.validator.Validate(request); err != nil {
		return nil, err
	}

	if err := u.users.UpdateAvatar(ctx, userID, request.Avatar); err != nil {
		return nil, err
	}

	return &api.Avatar{Avatar: request.Avatar}, nil
}

func (u *UserServer) DeleteAvatar(ctx context.Context, userID uint) error {
	if userID == 0 {
		return api.ErrUnauthenticated
	}

	return u.users.UpdateAvatar(ctx, userID, "")
}

// ListSubscriptions returns the authors userID follows, each with at most recipesLimit
// recipe previews (all of them when recipesLimit is 0).
func (u *UserServer) ListSubscriptions(ctx context.Context, userID uint, page api.PageRequest, recipesLimit int) (*api.Page[api.UserWithRecipes], error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	page = page.Normalize(u.config.Pagination.PageSize)

	authors, total, err := u.users.ListSubscribedAuthors(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}

	results := make([]api.UserWithRecipes, 0, len(authors))
	for _, author := range authors {
		withRecipes, err := u.withRecipes(ctx, author, recipesLimit)
		if err != nil {
			return nil, err
		}

		results = append(results, *withRecipes)
	}

	return &api.Page[api.UserWithRecipes]{Count: total, Results: results}, nil
}

func (u *UserServer) Subscribe(ctx context.Context, userID uint, authorID uint, recipesLimit int) (*api.UserWithRecipes, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	if err := u.subscriptions.add(ctx, userID, authorID); err != nil {
		return nil, err
	}

	author, err := u.getUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return u.withRecipes(ctx, author, recipesLimit)
}

func (u *UserServer) Unsubscribe(ctx context.Context, userID uint, authorID uint) error {
	if userID == 0 {
		return api.ErrUnauthenticated
	}

	return u.subscriptions.remove(ctx, userID, authorID)
}

func (u *UserServer) withRecipes(ctx context.Context, author *model.User, recipesLimit int) (*api.UserWithRecipes, error) {
	recipes, err := u.recipes.ListRecipesByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}

	count, err := u.recipes.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &api.UserWithRecipes{
		User:         rest.UserFromModel(author, true),
		Recipes:      rest.RecipeShortsFromModel(recipes),
		RecipesCount: count,
	}, nil
}

func (u *UserServer) getUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d", api.ErrNotFound, userID)
		}

		return nil, err
	}

	return user, nil
}
