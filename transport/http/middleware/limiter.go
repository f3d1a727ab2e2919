package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/shared"
	"hotelbooking/shared/constant"
	"hotelbooking/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit counts requests per client address and user agent in fixed
// windows aligned to the clock. The client address is taken from RemoteAddr,
// so chi's RealIP must run first behind a proxy. Cache failures let the
// request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limits.Enable {
				next.ServeHTTP(w, r)

				return
			}

			window, resetIn := limits.WindowAt(time.Now())
			key := shared.BuildCacheKey(cacheKeyRateLimit, clientHost(r), userAgent(r), strconv.FormatInt(window, 10))

			count, err := a.cache.Increment(r.Context(), key, resetIn)
			if err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				next.ServeHTTP(w, r)

				return
			}

			resetSecs := strconv.Itoa(int(math.Ceil(resetIn.Seconds())))

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(limits.MaxRequests)-count), 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(int(limits.Window().Seconds())))
			header.Set(constant.RequestHeaderRateLimitReset, resetSecs)

			if count > int64(limits.MaxRequests) {
				header.Set(constant.RequestHeaderRetryAfter, resetSecs)
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != constant.Empty {
		return ua
	}

	return unknownAgent
}

func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
