// В этом файле описаны методы клиента для работы с эндпоинтами аккаунта:
// регистрация, проверка занятости id/email, вход, поиск id и сброс пароля.
package api

import (
	"context"
	"net/url"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse — типичный успешный ответ сервера с текстом.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// Сервер возвращает профиль пользователя, который клиент сохраняет локально.
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// FindIDResponse описывает ответ поиска идентификатора по email.
type FindIDResponse struct {
	UserID string `json:"user_id"`
}

// ResetPasswordRequest описывает тело запроса сброса пароля.
//
// Сервер генерирует временный пароль и отправляет его на email.
type ResetPasswordRequest struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// Signup регистрирует пользователя (POST /signup).
func (c *Client) Signup(ctx context.Context, req SignupRequest) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON(ctx, "/signup", req, &resp)
	return resp, err
}

// CheckID проверяет, свободен ли идентификатор (GET /check-id/{id}).
//
// Занятый id сервер возвращает как 409, что приходит сюда как *APIError.
func (c *Client) CheckID(ctx context.Context, userID string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.GetJSON(ctx, "/check-id/"+url.PathEscape(userID), &resp)
	return resp, err
}

// CheckEmail проверяет, свободен ли email (GET /check-email/{email}).
func (c *Client) CheckEmail(ctx context.Context, email string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.GetJSON(ctx, "/check-email/"+url.PathEscape(email), &resp)
	return resp, err
}

// Login выполняет вход пользователя (POST /login).
func (c *Client) Login(ctx context.Context, userID, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON(ctx, "/login", LoginRequest{UserID: userID, Password: password}, &resp)
	return resp, err
}

// FindID ищет идентификатор пользователя по email (GET /find-id/{email}).
func (c *Client) FindID(ctx context.Context, email string) (FindIDResponse, error) {
	var resp FindIDResponse
	err := c.GetJSON(ctx, "/find-id/"+url.PathEscape(email), &resp)
	return resp, err
}

// ResetPassword запрашивает отправку временного пароля (POST /reset-password).
func (c *Client) ResetPassword(ctx context.Context, email, userID string) (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON(ctx, "/reset-password", ResetPasswordRequest{Email: email, UserID: userID}, &resp)
	return resp, err
}
