package cmd

import (
	"context"
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/RecipeBox/configs"
	"droscher.com/RecipeBox/pkg/integrations"
	"droscher.com/RecipeBox/pkg/repository"
)

var errNothingToLoad = errors.New("no valid records to load")

type LoadIngredientsCmd struct {
	ConfigFile string `default:".RecipeBox.toml" help:"Path to config file" short:"c"`
	Source     string `arg:"" help:"JSON file path or http(s) URL"`
}

type LoadTagsCmd struct {
	ConfigFile string `default:".RecipeBox.toml" help:"Path to config file" short:"c"`
	Source     string `arg:"" help:"JSON file path or http(s) URL"`
}

func (l *LoadIngredientsCmd) Run(ctx *Context) error {
	return runLoad(ctx, l.ConfigFile, "ingredients", func(repo *repository.Repository, logger *zap.Logger) (int, int64, error) {
		ingredients, decodeErr := integrations.GetSource(l.Source, logger).Ingredients()
		if len(ingredients) == 0 {
			return 0, 0, multierr.Append(decodeErr, errNothingToLoad)
		}

		inserted, err := repo.AddIngredients(context.Background(), ingredients)

		return len(ingredients), inserted, multierr.Append(decodeErr, err)
	})
}

func (l *LoadTagsCmd) Run(ctx *Context) error {
	return runLoad(ctx, l.ConfigFile, "tags", func(repo *repository.Repository, logger *zap.Logger) (int, int64, error) {
		tags, decodeErr := integrations.GetSource(l.Source, logger).Tags()
		if len(tags) == 0 {
			return 0, 0, multierr.Append(decodeErr, errNothingToLoad)
		}

		inserted, err := repo.AddTags(context.Background(), tags)

		return len(tags), inserted, multierr.Append(decodeErr, err)
	})
}

type loadFunc func(repo *repository.Repository, logger *zap.Logger) (read int, inserted int64, err error)

// runLoad reports every failed record and fails only when nothing could be stored.
func runLoad(ctx *Context, configFile string, kind string, load loadFunc) error {
	logger := commandLogger(ctx).With(zap.String("kind", kind))
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	read, inserted, err := load(repo, logger)
	for _, recordErr := range multierr.Errors(err) {
		logger.Warn("record not loaded", zap.Error(recordErr))
	}

	logger.Info("fixtures loaded", zap.Int("read", read), zap.Int64("inserted", inserted), zap.Int64("skipped_existing", int64(read)-inserted))

	if inserted == 0 && err != nil {
		return err
	}

	return nil
}
