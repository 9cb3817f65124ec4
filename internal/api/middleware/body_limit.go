package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clareleo/Huaixu/pkg/response"
)

// BodyLimit 请求体大小限制中间件
// maxMB 取自 server.max_body_mb，同时约束 JSON 请求与 Excel 上传
func BodyLimit(maxMB int64) gin.HandlerFunc {
	maxBytes := maxMB << 20
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}
