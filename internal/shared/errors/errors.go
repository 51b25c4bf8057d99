// Package errors содержит общие доменные ошибки клиента ByteBite.
//
// Ошибки используются в api, workflow, fridge и cli слоях и сравниваются
// через errors.Is. Ответ сервера с кодом не 2xx маппится на ErrRejected,
// отсутствие ответа — на ErrUnreachable.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Ресурс уже существует (например ингредиент уже в холодильнике)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
)

// ошибки взаимодействия с удалённым сервером
var (
	// сервер ответил, но отклонил запрос (неверный пароль, дубликат и т.п.)
	ErrRejected = errors.New("rejected by server")
	// сервер недоступен: нет ответа, таймаут или битый ответ
	ErrUnreachable = errors.New("service unreachable")
)

// ошибки процесса подтверждения (workflow)
var (
	// в локальном хранилище нет идентификатора пользователя
	ErrIdentityMissing = errors.New("identity missing, log in again")
	// по этому действию уже выполняется запрос
	ErrBusy = errors.New("request already in flight")
	// действие недоступно в текущем состоянии
	ErrInvalidState = errors.New("action not allowed in current state")
	// поле нового значения недоступно до подтверждения текущего секрета
	ErrFieldLocked = errors.New("field locked until current secret is verified")
	// процесс закрыт, результат отброшен
	ErrDisposed = errors.New("workflow disposed")
	// текущий секрет изменился во время проверки, результат отброшен
	ErrStaleResult = errors.New("stale verification result discarded")
)
