// middleware — net/http мидлвары публичного REST API.
package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	return h
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер ответа.
// Обёрток может быть несколько (Logging, Metrics): каждая видит один и тот же статус.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}

// Unwrap нужен http.ResponseController (Flush и т.п. сквозь обёртку).
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// code — итоговый статус; хендлер, ничего не записавший, отдал 200.
func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}

	return w.status
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
