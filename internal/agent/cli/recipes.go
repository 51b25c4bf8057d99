package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// NewRecipesCmd создаёт экран поиска рецептов.
//
// Примеры:
//
//	bytebite recipes search egg "green onion"
//	bytebite recipes search --from-fridge
//	bytebite recipes category soup
func NewRecipesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Поиск рецептов",
	}
	cmd.AddCommand(newRecipesSearchCmd(app))
	cmd.AddCommand(newRecipesCategoryCmd(app))
	return cmd
}

func newRecipesSearchCmd(app *App) *cobra.Command {
	var fromFridge bool

	cmd := &cobra.Command{
		Use:   "search [ingredients...]",
		Short: "Рецепты, в которых есть все указанные ингредиенты",
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredients := make([]string, 0, len(args))
			for _, a := range args {
				if a = strings.TrimSpace(a); a != "" {
					ingredients = append(ingredients, a)
				}
			}
			if fromFridge {
				ingredients = append(ingredients, app.fridge().Names()...)
			}
			if len(ingredients) == 0 {
				return fmt.Errorf("no ingredients (pass names or --from-fridge): %w", serr.ErrInvalidInput)
			}

			recipes, err := app.client().SearchRecipes(cmd.Context(), ingredients)
			if err != nil {
				return describe(err, "no recipes found")
			}
			return renderRecipes(cmd, recipes)
		},
	}

	cmd.Flags().BoolVar(&fromFridge, "from-fridge", false, "use ingredients from the local fridge")
	return cmd
}

func newRecipesCategoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Рецепты категории",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.client().RecipesByCategory(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return describe(err, "no recipes found")
			}
			return renderRecipes(cmd, recipes)
		},
	}
}

func renderRecipes(cmd *cobra.Command, recipes []api.Recipe) error {
	if len(recipes) == 0 {
		printInfo(cmd.OutOrStdout(), "no recipes found")
		return nil
	}
	data := pterm.TableData{{"id", "title", "category", "ingredients"}}
	for _, r := range recipes {
		data = append(data, []string{strconv.Itoa(r.ID), r.Title, r.Category, r.Ingredients})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render()
}
