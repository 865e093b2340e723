package middleware

import (
	"github.com/gin-gonic/gin"
)

// 日志上下文字段名。
const (
	KeyRequestID = "requestID"
	KeyUsername  = "username"
)

// Context 把请求 ID 和用户名提升为统一的日志上下文键，
// 供 handler 通过 log.WithValues 带出。
func Context() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(KeyRequestID, c.GetString(XRequestIDKey))
		c.Set(KeyUsername, c.GetString(UsernameKey))
		c.Next()
	}
}
