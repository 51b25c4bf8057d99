package api

import (
	"context"
	"net/url"
)

// FridgeItemRequest описывает тело запросов добавления/удаления ингредиента.
//
// IsSeasoning передаётся числом 0/1, как того ждёт сервер.
type FridgeItemRequest struct {
	UserID      string `json:"user_id"`
	ItemName    string `json:"item_name"`
	IsSeasoning int    `json:"is_seasoning"`
}

// FridgeItem — ингредиент в ответе GET /fridge/list/{user_id}.
type FridgeItem struct {
	ItemName    string `json:"item_name"`
	IsSeasoning int    `json:"is_seasoning"`
}

// FridgeListResponse описывает ответ со списком ингредиентов.
type FridgeListResponse struct {
	Items []FridgeItem `json:"items"`
}

func seasoningFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FridgeAdd добавляет ингредиент на сервере (POST /fridge/add).
//
// Дубликат сервер возвращает как 409.
func (c *Client) FridgeAdd(ctx context.Context, userID, name string, seasoning bool) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON(ctx, "/fridge/add", FridgeItemRequest{
		UserID:      userID,
		ItemName:    name,
		IsSeasoning: seasoningFlag(seasoning),
	}, &resp)
	return resp, err
}

// FridgeDelete удаляет ингредиент на сервере (POST /fridge/delete).
func (c *Client) FridgeDelete(ctx context.Context, userID, name string, seasoning bool) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON(ctx, "/fridge/delete", FridgeItemRequest{
		UserID:      userID,
		ItemName:    name,
		IsSeasoning: seasoningFlag(seasoning),
	}, &resp)
	return resp, err
}

// FridgeList загружает все ингредиенты пользователя (GET /fridge/list/{user_id}).
func (c *Client) FridgeList(ctx context.Context, userID string) (FridgeListResponse, error) {
	var resp FridgeListResponse
	err := c.GetJSON(ctx, "/fridge/list/"+url.PathEscape(userID), &resp)
	return resp, err
}
