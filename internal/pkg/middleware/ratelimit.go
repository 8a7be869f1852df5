package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"goinventory/internal/api/response"
	"goinventory/internal/domain"
	"goinventory/internal/pkg/cache"
	"goinventory/internal/pkg/logger"
)

// RateLimiter limita cada IP a limit requisições por janela duration.
// Se o cache falhar a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				// Primeira requisição da janela
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir expiração do rate limit.", map[string]interface{}{"error": err.Error()})
				}
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				response.JSON(w, log, http.StatusTooManyRequests, domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
