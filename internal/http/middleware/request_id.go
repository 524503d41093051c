package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderRequestID — заголовок сквозного идентификатора запроса.
const HeaderRequestID = "X-Request-Id"

// maxRequestIDLen — входящие id длиннее считаются мусором и заменяются.
const maxRequestIDLen = 128

// RequestID обеспечивает наличие X-Request-Id:
//  1. читает заголовок X-Request-Id, если он есть и разумной длины;
//  2. иначе генерирует UUIDv4;
//  3. кладёт id в Response Header и Request Header (его читают Logging и errors.WriteError).
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}

			r.Header.Set(HeaderRequestID, id)
			w.Header().Set(HeaderRequestID, id)

			next.ServeHTTP(w, r)
		})
	}
}
