package cmd

import "go.uber.org/zap"

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve           ServeCmd           `cmd:"" default:"1"                                     help:"Run the server"`
	Migrate         MigrateCmd         `cmd:"" help:"Run database migrations"`
	LoadIngredients LoadIngredientsCmd `cmd:"" help:"Load ingredients from a JSON file or URL"`
	LoadTags        LoadTagsCmd        `cmd:"" help:"Load tags from a JSON file or URL"`
}

// commandLogger builds the logger for one-shot commands.
func commandLogger(ctx *Context) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if !ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}
