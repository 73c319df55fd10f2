package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"turnero/config"
	"turnero/infras/otel"
	"turnero/shared"
	"turnero/shared/cache"
	"turnero/shared/constant"
	"turnero/transport/http/response"
)

const (
	otelHTTPScopeName = "http"

	cacheKeyRateLimit = "limiter"
)

type AppMiddleware interface {
	Tracing(http.Handler) http.Handler
	RateLimit(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     clientIP(request),
		})

		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.status,
		})
	})
}

// RateLimit caps requests per client IP inside a fixed window backed by
// redis. A cache outage fails open.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(request))

		var count int

		err := a.cache.Get(ctx, cacheKey, &count)
		if err != nil {
			if !errors.Is(err, cache.Nil) {
				next.ServeHTTP(writer, request)

				return
			}

			count = 1
		} else {
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(writer)

			return
		}

		if err = a.cache.Save(ctx, cacheKey, count, windowSecs); err != nil {
			next.ServeHTTP(writer, request)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func clientIP(request *http.Request) string {
	if forwarded := request.Header.Get(constant.RequestHeaderForwardedFor); forwarded != constant.Empty {
		return forwarded
	}

	if realIP := request.Header.Get(constant.RequestHeaderRealIP); realIP != constant.Empty {
		return realIP
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}
