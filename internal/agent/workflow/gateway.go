package workflow

//go:generate mockgen -source=gateway.go -destination=mocks/gateway_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// Сообщения по умолчанию, если сервер не объяснил отказ.
const (
	FallbackVerifyReason = "verification failed"
	FallbackSubmitReason = "update failed"
)

// VerificationResult — итог проверки текущего секрета.
//
// Reason заполняется только при Verified=false.
type VerificationResult struct {
	Verified bool
	Reason   string
}

// SubmitResult — итог отправки нового значения.
type SubmitResult struct {
	OK    bool
	Error string
}

// Gateway отправляет секреты удалённой стороне.
//
// Отказ сервера возвращается в результате (Verified=false / OK=false) с nil
// ошибкой. Ошибка возвращается только когда ответа нет (serr.ErrUnreachable):
// так вызывающий код отличает «неверный пароль» от «сервер недоступен».
// Повторов нет: одна попытка на одно действие пользователя.
type Gateway interface {
	VerifyCurrent(ctx context.Context, identity, currentSecret string) (VerificationResult, error)
	SubmitChange(ctx context.Context, identity, newSecret string) (SubmitResult, error)
}

// IdentitySource отдаёт идентификатор пользователя из локального хранилища.
type IdentitySource interface {
	Identity() (string, error)
}

// HTTPGateway реализует Gateway поверх api.Client по путям и полям профиля.
type HTTPGateway struct {
	client  *api.Client
	profile Profile
}

// NewHTTPGateway создаёт шлюз для профиля.
func NewHTTPGateway(client *api.Client, profile Profile) *HTTPGateway {
	return &HTTPGateway{client: client, profile: profile}
}

// VerifyCurrent отправляет {identity_field, secret_field} на VerifyPath профиля.
func (g *HTTPGateway) VerifyCurrent(ctx context.Context, identity, currentSecret string) (VerificationResult, error) {
	body := map[string]string{
		g.profile.IdentityField: identity,
		g.profile.SecretField:   currentSecret,
	}
	err := g.client.PostJSON(ctx, g.profile.VerifyPath, body, nil)
	if err == nil {
		return VerificationResult{Verified: true}, nil
	}
	reason, rejected := rejection(err, FallbackVerifyReason)
	if !rejected {
		return VerificationResult{}, transportErr(err)
	}
	return VerificationResult{Verified: false, Reason: reason}, nil
}

// SubmitChange отправляет {identity_field, new_value_field} на SubmitPath профиля.
func (g *HTTPGateway) SubmitChange(ctx context.Context, identity, newSecret string) (SubmitResult, error) {
	body := map[string]string{
		g.profile.IdentityField: identity,
		g.profile.NewValueField: newSecret,
	}
	err := g.client.PostJSON(ctx, g.profile.SubmitPath, body, nil)
	if err == nil {
		return SubmitResult{OK: true}, nil
	}
	reason, rejected := rejection(err, FallbackSubmitReason)
	if !rejected {
		return SubmitResult{}, transportErr(err)
	}
	return SubmitResult{OK: false, Error: reason}, nil
}

// rejection отделяет отказ сервера от прочих ошибок.
func rejection(err error, fallback string) (string, bool) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return "", false
	}
	if apiErr.Message == "" {
		return fallback, true
	}
	return apiErr.Message, true
}

// transportErr гарантирует, что любая ошибка без ответа сервера
// сравнивается с serr.ErrUnreachable.
func transportErr(err error) error {
	if errors.Is(err, serr.ErrUnreachable) {
		return err
	}
	return fmt.Errorf("%w: %v", serr.ErrUnreachable, err)
}
