package httpadapter

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func requestLogger(log *logrus.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		log.WithFields(logrus.Fields{
			"method":   string(ctx.Method()),
			"path":     string(ctx.Path()),
			"status":   ctx.Response.StatusCode(),
			"duration": time.Since(start).String(),
			"client":   ctx.ClientIP(),
		}).Info("request")
	}
}

// atomic INCR plus expiry on first hit in the window
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// NewRateLimiter returns a fixed-window limiter keyed by client IP and
// path. Limiting fails open: a Redis error lets the request through.
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log *logrus.Logger) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		key := "ratelimit:" + ctx.ClientIP() + ":" + string(ctx.Path())
		countI, err := incrExpireScript.Run(c, rdb, []string{key}, window.Milliseconds()).Result()
		if err != nil {
			log.WithError(err).Warn("rate limiter unavailable")
			ctx.Next(c)
			return
		}
		count, _ := countI.(int64)
		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		ctx.Response.Header.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		ctx.Response.Header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if int(count) > limit {
			writeErrorBody(ctx, consts.StatusTooManyRequests, "rate_limited", "too many requests")
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}
