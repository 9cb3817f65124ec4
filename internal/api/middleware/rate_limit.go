package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/pkg/redis"
	"github.com/clareleo/Huaixu/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口的速率限制中间件，用于导入导出等重操作
// limit: 窗口内允许的最大请求数
// window: 滑动窗口时长
// rdb 为 nil 时放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		// 已认证请求按用户计数，否则按 IP
		subject := c.ClientIP()
		if uid, ok := c.Get("user_id"); ok {
			subject = fmt.Sprintf("user:%v", uid)
		}
		key := fmt.Sprintf("rate_limit:%s:%s", subject, c.FullPath())

		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis 出错时降级放行
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, response.CodeRateLimited, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
