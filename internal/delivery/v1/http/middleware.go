package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type ctxKey struct{}

var sessionCtxKey = ctxKey{}

// SessionMiddleware привязывает запрос к сессии. ID берётся из cookie, затем из заголовка X-Session-ID;
// отсутствующий или некорректный ID заменяется новым UUID. Cookie продлевается на каждый ответ.
func SessionMiddleware(sessionCfg *cfg.SessionCfg) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionIDFromRequest(r, sessionCfg.CookieName)
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCfg.CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionCfg.TTL / time.Second),
				HttpOnly: true,
				Secure:   sessionCfg.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey, id)))
		})
	}
}

func sessionIDFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil {
		if id, ok := normalizeSessionID(c.Value); ok {
			return id
		}
	}

	if id, ok := normalizeSessionID(r.Header.Get(SessionHeader)); ok {
		return id
	}

	return ""
}

func normalizeSessionID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// SessionID возвращает ID сессии, установленный SessionMiddleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey).(string)
	return id
}

// RequestLogger пишет access-лог запроса через logger.Logger.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Infof("%s %s -> %d (%d bytes) in %s request_id=%s",
					r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), time.Since(start), middleware.GetReqID(r.Context()))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
