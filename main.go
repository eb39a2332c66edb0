package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/RecipeBox/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("RecipeBox"), kong.Description("RecipeBox is a recipe sharing service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
