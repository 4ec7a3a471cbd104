package rate_limiter

import (
	"net/http"
	"strconv"

	"feecalc/internal/pkg/middlewares/metrics"
	"feecalc/pkg/logger"
)

const tooManyRequestsBody = `{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`

// Middleware отклоняет запросы с 429, когда в limiter закончились токены.
// limitQPS попадает только в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				AllowedTotal.Inc()
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RejectedTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(tooManyRequestsBody))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
