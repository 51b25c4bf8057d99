// Package api содержит HTTP-клиент для взаимодействия с сервером ByteBite.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя методы для отправки JSON-запросов (POST/GET) с контекстом.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Каждый запрос получает заголовок X-Request-ID (uuid) и пишется в лог.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - Ответ не 2xx возвращается как *APIError (errors.Is(err, ErrRejected)).
//   - Отсутствие ответа, таймаут и невалидный JSON в 2xx ответе возвращаются
//     как ошибка, обёрнутая в ErrUnreachable.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
	"github.com/IvanChernomyrdin/bytebite/internal/shared/logger"
)

// DefaultTimeout — таймаут на один запрос, если не задан в настройках.
const DefaultTimeout = 10 * time.Second

// RequestIDHeader — заголовок, по которому запрос можно найти в логах сервера.
const RequestIDHeader = "X-Request-ID"

// APIError описывает отказ сервера (ответ со статусом не 2xx).
//
// Message берётся из JSON-тела {"error": "..."}, иначе из текста тела.
// Если сервер не прислал причину, Message пустой.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// Is позволяет сравнивать отказ сервера с serr.ErrRejected.
func (e *APIError) Is(target error) bool {
	return target == serr.ErrRejected
}

// Client реализует HTTP-клиент для общения с сервером ByteBite.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *logger.HTTPLogger
}

// Option настраивает Client.
type Option func(*Client)

// WithTimeout задаёт таймаут одного запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
			c.http.Timeout = d
		}
	}
}

// WithLogger задаёт логгер исходящих запросов.
func WithLogger(l *logger.HTTPLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithInsecureTLS отключает проверку TLS-сертификата сервера.
//
// ВНИМАНИЕ: только для локальной разработки, делает TLS уязвимым для MITM.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.http.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
		}
	}
}

// WithHTTPClient подменяет http.Client (например, клиент httptest-сервера).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://localhost:5000").
//
// По умолчанию таймаут запроса 10 секунд, логгер ничего не пишет.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		timeout: DefaultTimeout,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL возвращает нормализованный адрес сервера.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// readAPIError читает тело ответа сервера и возвращает *APIError.
//
// Поведение:
//   - если тело — JSON с полем "error", берётся оно;
//   - иначе берётся текст тела (trim пробелов);
//   - если тело пустое — Message остаётся пустым.
func readAPIError(res *http.Response) *APIError {
	raw, _ := io.ReadAll(res.Body)
	apiErr := &APIError{Status: res.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Error)
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Пустое тело (io.EOF) не считается ошибкой.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/verify-password").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется.
//   - resp: указатель для декодирования JSON-ответа. Если resp == nil, тело не декодируется.
//
// Обработка ответа:
//   - 2xx: успех (204 — без декодирования тела);
//   - не 2xx: *APIError;
//   - нет ответа / таймаут / битый JSON: ошибка, обёрнутая в ErrUnreachable.
func (c *Client) PostJSON(ctx context.Context, path string, req any, resp any) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}
	return c.do(ctx, http.MethodPost, path, body, resp)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Правила обработки ответа те же, что и у PostJSON.
func (c *Client) GetJSON(ctx context.Context, path string, resp any) error {
	return c.do(ctx, http.MethodGet, path, nil, resp)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, resp any) error {
	// таймаут и через контекст: у запроса не должно быть бесконечного ожидания
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	r.Header.Set("Accept", "application/json")
	r.Header.Set(RequestIDHeader, reqID)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(r)
	if err != nil {
		c.log.LogRequest(method, path, 0, 0, sinceMs(start), reqID)
		return fmt.Errorf("%s %s: %w: %v", method, path, serr.ErrUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := readAPIError(res)
		c.log.LogRequest(method, path, res.StatusCode, len(apiErr.Message), sinceMs(start), reqID)
		return apiErr
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		c.log.LogRequest(method, path, res.StatusCode, 0, sinceMs(start), reqID)
		return nil
	}

	raw, err := io.ReadAll(res.Body)
	c.log.LogRequest(method, path, res.StatusCode, len(raw), sinceMs(start), reqID)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w: %v", method, path, serr.ErrUnreachable, err)
	}
	if err := decodeJSONOrOK(bytes.NewReader(raw), resp); err != nil {
		return fmt.Errorf("%s %s: malformed response: %w: %v", method, path, serr.ErrUnreachable, err)
	}
	return nil
}

func sinceMs(start time.Time) float64 {
	return time.Since(start).Seconds() * 1000
}
