package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/fridge"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// NewFridgeCmd создаёт экран холодильника с подкомандами add, remove, list,
// sync и clear.
//
// add/remove сначала выполняются на сервере, затем отражаются в локальном
// списке и файле ~/.bytebite/fridge.json. Результат показывается баннером
// экрана холодильника.
//
// Примеры:
//
//	bytebite fridge add egg
//	bytebite fridge add salt --seasoning
//	bytebite fridge list
//	bytebite fridge sync
func NewFridgeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fridge",
		Short: "Холодильник: ингредиенты пользователя",
	}

	cmd.AddCommand(newFridgeAddCmd(app))
	cmd.AddCommand(newFridgeRemoveCmd(app))
	cmd.AddCommand(newFridgeListCmd(app))
	cmd.AddCommand(newFridgeSyncCmd(app))
	cmd.AddCommand(newFridgeClearCmd(app))

	return cmd
}

func newFridgeAddCmd(app *App) *cobra.Command {
	var seasoning bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Добавить ингредиент",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.requireLogin()
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("ingredient name: %w", serr.ErrInvalidInput)
			}
			store := app.fridge()
			if store.Has(name, seasoning) {
				return fmt.Errorf("%s: %w", name, serr.ErrAlreadyExists)
			}

			if _, err := app.client().FridgeAdd(cmd.Context(), userID, name, seasoning); err != nil {
				return describe(err, "add failed")
			}
			if _, err := store.Add(name, seasoning); err != nil && !errors.Is(err, serr.ErrAlreadyExists) {
				return err
			}
			if err := SaveFridgeToFile(app.FridgePath, store); err != nil {
				return err
			}

			app.hub().Channel(screenFridge).Set(fmt.Sprintf("%s added", name))
			showBanner(cmd.OutOrStdout(), app, screenFridge).Release()
			return nil
		},
	}

	cmd.Flags().BoolVar(&seasoning, "seasoning", false, "the ingredient is a seasoning")
	return cmd
}

func newFridgeRemoveCmd(app *App) *cobra.Command {
	var seasoning bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Удалить ингредиент",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.requireLogin()
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[0])
			store := app.fridge()
			if !store.Has(name, seasoning) {
				return fmt.Errorf("%s: %w", name, serr.ErrNotFound)
			}

			if _, err := app.client().FridgeDelete(cmd.Context(), userID, name, seasoning); err != nil {
				return describe(err, "remove failed")
			}
			if err := store.Remove(name, seasoning); err != nil {
				return err
			}
			if err := SaveFridgeToFile(app.FridgePath, store); err != nil {
				return err
			}

			app.hub().Channel(screenFridge).Set(fmt.Sprintf("%s removed", name))
			showBanner(cmd.OutOrStdout(), app, screenFridge).Release()
			return nil
		},
	}

	cmd.Flags().BoolVar(&seasoning, "seasoning", false, "the ingredient is a seasoning")
	return cmd
}

func newFridgeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать локальный список ингредиентов",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.fridge().List()
			if len(items) == 0 {
				printInfo(cmd.OutOrStdout(), "fridge is empty")
				return nil
			}

			data := pterm.TableData{{"ingredient", "kind"}}
			for _, it := range items {
				kind := "ingredient"
				if it.Seasoning {
					kind = "seasoning"
				}
				data = append(data, []string{it.Name, kind})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render()
		},
	}
}

func newFridgeSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Загрузить ингредиенты с сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := app.requireLogin()
			if err != nil {
				return err
			}

			resp, err := app.client().FridgeList(cmd.Context(), userID)
			if err != nil {
				return describe(err, "sync failed")
			}

			items := make([]fridge.Item, 0, len(resp.Items))
			for i, it := range resp.Items {
				// пустое имя значит, что модель ответа не совпала с JSON
				if strings.TrimSpace(it.ItemName) == "" {
					return fmt.Errorf("sync: server returned item with empty name at index %d (model mismatch)", i)
				}
				items = append(items, fridge.Item{Name: it.ItemName, Seasoning: it.IsSeasoning != 0})
			}

			store := app.fridge()
			store.ReplaceAll(items)
			if err := SaveFridgeToFile(app.FridgePath, store); err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("synced %d ingredients", store.Len()))
			return nil
		},
	}
}

func newFridgeClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Очистить локальный список (на сервере данные остаются)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := app.fridge()
			store.Clear()
			if err := SaveFridgeToFile(app.FridgePath, store); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "local fridge cleared")
			return nil
		},
	}
}
