package api

import (
	"context"
	"net/url"
)

// Recipe — рецепт в формате набора данных сервера.
type Recipe struct {
	ID          int    `json:"RCP_SNO"`
	Title       string `json:"RCP_TTL"`
	Ingredients string `json:"CKG_MTRL_CN"`
	Category    string `json:"CKG_STA_ACTO_NM"`
}

// SearchRecipes ищет рецепты, содержащие все переданные ингредиенты.
//
// Выполняет запрос:
//
//	GET /recipes/search?ingredients=a&ingredients=b
//
// Если подходящих рецептов нет, сервер отвечает 404 (*APIError).
func (c *Client) SearchRecipes(ctx context.Context, ingredients []string) ([]Recipe, error) {
	q := url.Values{}
	for _, ing := range ingredients {
		q.Add("ingredients", ing)
	}
	var resp []Recipe
	err := c.GetJSON(ctx, "/recipes/search?"+q.Encode(), &resp)
	return resp, err
}

// RecipesByCategory возвращает рецепты категории (GET /recipes/category?category=x).
func (c *Client) RecipesByCategory(ctx context.Context, category string) ([]Recipe, error) {
	q := url.Values{}
	q.Set("category", category)
	var resp []Recipe
	err := c.GetJSON(ctx, "/recipes/category?"+q.Encode(), &resp)
	return resp, err
}
