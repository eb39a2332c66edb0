package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/model"
	"droscher.com/RecipeBox/pkg/repository"
	"droscher.com/RecipeBox/pkg/server/rest"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
	"droscher.com/RecipeBox/pkg/shopping"
)

// maxSmallInt is the largest cooking time or ingredient amount accepted.
const maxSmallInt = 32767

type ShortLinkAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

type RecipeServer struct {
	recipes       repository.RecipeRepository
	catalog       repository.CatalogRepository
	cart          repository.ShoppingCartRepository
	shortLinks    ShortLinkAllocator
	favorites     membershipToggle
	shoppingCarts membershipToggle
	subscriptions membershipToggle
	validator     *Validator
	config        *configs.Config
	logger        *zap.Logger
}

func NewRecipeServer(
	recipes repository.RecipeRepository,
	catalog repository.CatalogRepository,
	memberships repository.MembershipRepository,
	cart repository.ShoppingCartRepository,
	shortLinks ShortLinkAllocator,
	config *configs.Config,
	logger *zap.Logger,
) *RecipeServer {
	return &RecipeServer{
		recipes:       recipes,
		catalog:       catalog,
		cart:          cart,
		shortLinks:    shortLinks,
		favorites:     membershipToggle{repo: memberships, relation: model.Favorites},
		shoppingCarts: membershipToggle{repo: memberships, relation: model.ShoppingCarts},
		subscriptions: membershipToggle{repo: memberships, relation: model.Subscriptions},
		validator:     NewValidator(),
		config:        config,
		logger:        logger,
	}
}

func (r *RecipeServer) ListRecipes(ctx context.Context, userID uint, query api.RecipeQuery) (*api.Page[api.Recipe], error) {
	page := query.PageRequest.Normalize(r.config.Pagination.PageSize)
	filter := model.RecipeFilter{
		AuthorID: query.AuthorID,
		TagSlugs: query.TagSlugs,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	}

	if userID != 0 && query.IsFavorited {
		filter.FavoritedBy = &userID
	}

	if userID != 0 && query.IsInShoppingCart {
		filter.InShoppingCartOf = &userID
	}

	recipes, total, err := r.recipes.ListRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	results, err := r.recipesFromModel(ctx, userID, recipes)
	if err != nil {
		return nil, err
	}

	return &api.Page[api.Recipe]{Count: total, Results: results}, nil
}

func (r *RecipeServer) GetRecipe(ctx context.Context, userID uint, recipeID uint) (*api.Recipe, error) {
	recipe, err := r.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	results, err := r.recipesFromModel(ctx, userID, []*model.Recipe{recipe})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}

func (r *RecipeServer) CreateRecipe(ctx context.Context, userID uint, request api.CreateRecipeRequest) (*api.Recipe, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	if err := r.validator.Validate(request); err != nil {
		return nil, err
	}

	payload := recipePayload{Tags: request.Tags, Ingredients: request.Ingredients, CookingTime: request.CookingTime}
	if err := r.validatePayload(ctx, &payload); err != nil {
		return nil, err
	}

	recipe := model.Recipe{
		AuthorID:    userID,
		Name:        request.Name,
		Image:       request.Image,
		Text:        request.Text,
		CookingTime: uint16(request.CookingTime),
	}

	created, err := r.recipes.CreateRecipe(ctx, recipe, request.Tags, rest.IngredientsToModel(request.Ingredients), r.shortLinks.Allocate)
	if err != nil {
		return nil, translateRecipeWriteError(err)
	}

	r.logger.Info("recipe created", zap.Uint("recipe_id", created.ID), zap.String("short_link", created.ShortLink))

	return r.GetRecipe(ctx, userID, created.ID)
}

func (r *RecipeServer) UpdateRecipe(ctx context.Context, userID uint, recipeID uint, request api.UpdateRecipeRequest) (*api.Recipe, error) {
	existing, err := r.authoredRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	if err := r.validator.Validate(request); err != nil {
		return nil, err
	}

	recipe := model.Recipe{
		ID:          existing.ID,
		Name:        existing.Name,
		Image:       existing.Image,
		Text:        existing.Text,
		CookingTime: existing.CookingTime,
	}

	if request.Name != nil {
		recipe.Name = *request.Name
	}

	if request.Image != nil {
		recipe.Image = *request.Image
	}

	if request.Text != nil {
		recipe.Text = *request.Text
	}

	payload := recipePayload{Tags: request.Tags, Ingredients: request.Ingredients, CookingTime: int(recipe.CookingTime)}
	if request.CookingTime != nil {
		payload.CookingTime = *request.CookingTime
	}

	if err := r.validatePayload(ctx, &payload); err != nil {
		return nil, err
	}

	recipe.CookingTime = uint16(payload.CookingTime)

	updated, err := r.recipes.UpdateRecipe(ctx, recipe, request.Tags, rest.IngredientsToModel(request.Ingredients))
	if err != nil {
		return nil, translateRecipeWriteError(err)
	}

	results, err := r.recipesFromModel(ctx, userID, []*model.Recipe{updated})
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}

func (r *RecipeServer) DeleteRecipe(ctx context.Context, userID uint, recipeID uint) error {
	if _, err := r.authoredRecipe(ctx, userID, recipeID); err != nil {
		return err
	}

	if err := r.recipes.DeleteRecipe(ctx, recipeID); err != nil {
		return translateRecipeWriteError(err)
	}

	return nil
}

func (r *RecipeServer) GetShortLink(ctx context.Context, recipeID uint) (*api.ShortLink, error) {
	recipe, err := r.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &api.ShortLink{ShortLink: r.baseURL() + "/s/" + recipe.ShortLink}, nil
}

// ResolveShortLink returns the frontend URL of the recipe behind shortLink.
func (r *RecipeServer) ResolveShortLink(ctx context.Context, shortLink string) (string, error) {
	recipe, err := r.recipes.GetRecipeByShortLink(ctx, shortLink)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return "", fmt.Errorf("%w: short link %s", api.ErrNotFound, shortLink)
		}

		return "", err
	}

	return fmt.Sprintf("%s/recipes/%d/", r.baseURL(), recipe.ID), nil
}

func (r *RecipeServer) ShoppingCartReport(ctx context.Context, userID uint) ([]byte, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	lines, err := r.cart.GetShoppingCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var report bytes.Buffer
	if err := shopping.WriteReport(&report, lines); err != nil {
		return nil, err
	}

	return report.Bytes(), nil
}

func (r *RecipeServer) AddFavorite(ctx context.Context, userID uint, recipeID uint) (*api.RecipeShort, error) {
	return r.addMembership(ctx, r.favorites, userID, recipeID)
}

func (r *RecipeServer) RemoveFavorite(ctx context.Context, userID uint, recipeID uint) error {
	if userID == 0 {
		return api.ErrUnauthenticated
	}

	return r.favorites.remove(ctx, userID, recipeID)
}

func (r *RecipeServer) AddToShoppingCart(ctx context.Context, userID uint, recipeID uint) (*api.RecipeShort, error) {
	return r.addMembership(ctx, r.shoppingCarts, userID, recipeID)
}

func (r *RecipeServer) RemoveFromShoppingCart(ctx context.Context, userID uint, recipeID uint) error {
	if userID == 0 {
		return api.ErrUnauthenticated
	}

	return r.shoppingCarts.remove(ctx, userID, recipeID)
}

func (r *RecipeServer) addMembership(ctx context.Context, toggle membershipToggle, userID uint, recipeID uint) (*api.RecipeShort, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	if err := toggle.add(ctx, userID, recipeID); err != nil {
		return nil, err
	}

	recipe, err := r.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	preview := rest.RecipeShortFromModel(recipe)

	return &preview, nil
}

func (r *RecipeServer) getRecipe(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	recipe, err := r.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", api.ErrNotFound, recipeID)
		}

		return nil, err
	}

	return recipe, nil
}

// authoredRecipe loads the recipe and checks that userID wrote it.
func (r *RecipeServer) authoredRecipe(ctx context.Context, userID uint, recipeID uint) (*model.Recipe, error) {
	if userID == 0 {
		return nil, api.ErrUnauthenticated
	}

	recipe, err := r.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != userID {
		return nil, fmt.Errorf("%w: only the author may change recipe %d", api.ErrPermissionDenied, recipeID)
	}

	return recipe, nil
}

func (r *RecipeServer) recipesFromModel(ctx context.Context, userID uint, recipes []*model.Recipe) ([]api.Recipe, error) {
	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))

	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
		authorIDs = append(authorIDs, recipe.AuthorID)
	}

	favorited, err := r.favorites.targets(ctx, userID, recipeIDs)
	if err != nil {
		return nil, err
	}

	inCart, err := r.shoppingCarts.targets(ctx, userID, recipeIDs)
	if err != nil {
		return nil, err
	}

	subscribed, err := r.subscriptions.targets(ctx, userID, authorIDs)
	if err != nil {
		return nil, err
	}

	results := make([]api.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, rest.RecipeFromModel(recipe, rest.RecipeStatus{
			IsFavorited:      favorited[recipe.ID],
			IsInShoppingCart: inCart[recipe.ID],
			AuthorSubscribed: subscribed[recipe.AuthorID],
		}))
	}

	return results, nil
}

func (r *RecipeServer) baseURL() string {
	return strings.TrimSuffix(r.config.Server.BaseURL, "/")
}

func translateRecipeWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRecipeNotFound):
		return fmt.Errorf("%w: %w", api.ErrNotFound, err)
	case errors.Is(err, repository.ErrInvalidReference), errors.Is(err, repository.ErrDuplicateRelation):
		return fmt.Errorf("%w: %w", api.ErrInvalidInput, err)
	default:
		return err
	}
}

type recipePayload struct {
	Tags        []uint
	Ingredients []api.IngredientAmount
	CookingTime int
}

type recipeValFn func(ctx context.Context, payload *recipePayload) error

func runRecipeValFns(ctx context.Context, payload *recipePayload, fns ...recipeValFn) error {
	for _, fn := range fns {
		if err := fn(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}

func (r *RecipeServer) validatePayload(ctx context.Context, payload *recipePayload) error {
	return runRecipeValFns(ctx, payload,
		tagsNotEmpty,
		ingredientsNotEmpty,
		tagsUnique,
		ingredientsUnique,
		amountsInRange,
		cookingTimeInRange,
		r.ingredientsExist,
		r.tagsExist)
}

func tagsNotEmpty(_ context.Context, payload *recipePayload) error {
	if len(payload.Tags) == 0 {
		return fieldError("tags", "at least one tag is required")
	}

	return nil
}

func ingredientsNotEmpty(_ context.Context, payload *recipePayload) error {
	if len(payload.Ingredients) == 0 {
		return fieldError("ingredients", "at least one ingredient is required")
	}

	return nil
}

func tagsUnique(_ context.Context, payload *recipePayload) error {
	seen := make(map[uint]struct{}, len(payload.Tags))
	for _, tagID := range payload.Tags {
		if _, found := seen[tagID]; found {
			return fieldError("tags", fmt.Sprintf("tag %d is repeated", tagID))
		}

		seen[tagID] = struct{}{}
	}

	return nil
}

func ingredientsUnique(_ context.Context, payload *recipePayload) error {
	seen := make(map[uint]struct{}, len(payload.Ingredients))
	for _, ingredient := range payload.Ingredients {
		if _, found := seen[ingredient.ID]; found {
			return fieldError("ingredients", fmt.Sprintf("ingredient %d is repeated", ingredient.ID))
		}

		seen[ingredient.ID] = struct{}{}
	}

	return nil
}

func amountsInRange(_ context.Context, payload *recipePayload) error {
	for _, ingredient := range payload.Ingredients {
		if ingredient.Amount < 1 || ingredient.Amount > maxSmallInt {
			return fieldError("ingredients", fmt.Sprintf("amount of ingredient %d must be between 1 and %d", ingredient.ID, maxSmallInt))
		}
	}

	return nil
}

func cookingTimeInRange(_ context.Context, payload *recipePayload) error {
	if payload.CookingTime < 1 || payload.CookingTime > maxSmallInt {
		return fieldError("cooking_time", fmt.Sprintf("must be between 1 and %d", maxSmallInt))
	}

	return nil
}

func (r *RecipeServer) ingredientsExist(ctx context.Context, payload *recipePayload) error {
	ids := make([]uint, 0, len(payload.Ingredients))
	for _, ingredient := range payload.Ingredients {
		ids = append(ids, ingredient.ID)
	}

	found, err := r.catalog.FindIngredientsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	known := make(map[uint]struct{}, len(found))
	for _, ingredient := range found {
		known[ingredient.ID] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fieldError("ingredients", fmt.Sprintf("ingredient with id=%d does not exist", id))
		}
	}

	return nil
}

func (r *RecipeServer) tagsExist(ctx context.Context, payload *recipePayload) error {
	found, err := r.catalog.FindTagsByIDs(ctx, payload.Tags)
	if err != nil {
		return err
	}

	known := make(map[uint]struct{}, len(found))
	for _, tag := range found {
		known[tag.ID] = struct{}{}
	}

	for _, id := range payload.Tags {
		if _, ok := known[id]; !ok {
			return fieldError("tags", fmt.Sprintf("tag with id=%d does not exist", id))
		}
	}

	return nil
}
