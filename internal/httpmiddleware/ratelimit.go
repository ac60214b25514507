package httpmiddleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Haedeel-Basel/My-Tutor/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter ограничивает число запросов с одного IP в минуту.
// Счётчики живут в redis (fixed window), поэтому лимит общий
// для всех инстансов API.
type RateLimiter struct {
	redis     *store.Redis
	perMinute int
	logger    *zap.Logger
}

func NewRateLimiter(redis *store.Redis, perMinute int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		redis:     redis,
		perMinute: perMinute,
		logger:    logger,
	}
}

// GinMiddleware возвращает gin-обработчик с per-IP лимитом.
// Если redis недоступен, запросы пропускаются: лимитер не должен
// ронять API вместе с собой.
func (l *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		allowed, err := l.allow(c, ip)
		if err != nil {
			l.logger.Warn("Rate limiter unavailable, letting request through", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit"})
			return
		}
		c.Next()
	}
}

func (l *RateLimiter) allow(c *gin.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, time.Now().Format("2006-01-02T15:04"))

	count, err := l.redis.Client.Incr(c.Request.Context(), key).Result()
	if err != nil {
		return false, fmt.Errorf("incr rate key: %w", err)
	}

	if count == 1 {
		// Окно минутное, ключ живёт чуть дольше на случай рассинхрона часов
		if err := l.redis.Client.Expire(c.Request.Context(), key, 90*time.Second).Err(); err != nil {
			return false, fmt.Errorf("expire rate key: %w", err)
		}
	}

	return count <= int64(l.perMinute), nil
}
