// errors стандартизирует ответы об ошибках HTTP-слоя classifieds-api.
// На вход принимается ошибка сервисного слоя, на выход:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей (SQL, адреса БД и т.п.).
//
// Источник истинности по маппингу: сентинелы пакета service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-classifieds/internal/query"
	"github.com/pribylovaa/go-classifieds/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// RetryAfterSeconds — подсказка клиенту при таймауте хранилища.
const RetryAfterSeconds = 1

// ErrorResponse — единый формат ответа об ошибке.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — идентификатор запроса (для трассировки).
type ErrorResponse struct {
	Code      string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// clientMessages — сообщения для 400, которые безопасно показать клиенту как есть.
// Порядок важен: более конкретные ошибки раньше.
var clientMessages = []struct {
	err error
	msg string
}{
	{query.ErrInvalidDate, "date must be DD/MM/YYYY"},
	{query.ErrInvalidCursor, "last_post_time must be an RFC 3339 timestamp"},
	{service.ErrInvalidID, "identifier must be a positive integer"},
}

// ToHTTP конвертирует ошибку сервисного слоя в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не маскировать баг;
//   - ErrInvalidArgument -> 400;
//   - ErrUnavailable -> 503;
//   - ErrTimeout и context.DeadlineExceeded -> 503/timeout (retryable);
//   - context.Canceled -> 499;
//   - прочее -> 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorResponse{Code: "internal", Message: "internal error"}
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, query.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{Code: "invalid_argument", Message: clientMessage(err)}
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Code: "unavailable", Message: "database unavailable"}
	case errors.Is(err, service.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrorResponse{Code: "timeout", Message: "request timed out, retry later"}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{Code: "canceled", Message: "canceled"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: "internal", Message: "internal error"}
	}
}

func clientMessage(err error) string {
	for _, m := range clientMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	return "invalid argument"
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет статус/тело, добавляет request_id из заголовка X-Request-Id (его выставляет middleware.RequestID).
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	resp.RequestID = r.Header.Get("X-Request-Id")

	if resp.Code == "timeout" {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}

	write(w, status, resp)
}

func write(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
