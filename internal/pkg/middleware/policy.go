package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

// Authenticated 要求请求已经通过认证策略。匿名请求只能走只读路由。
func Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied,
				"authentication required"), nil)
			c.Abort()

			return
		}
		c.Next()
	}
}

// AdminOnly 要求令牌携带管理员标记。餐厅录入和菜单发布属于管理操作。
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(UsernameKey) == "" {
			core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied,
				"authentication required"), nil)
			c.Abort()

			return
		}
		if !c.GetBool(IsAdminKey) {
			core.WriteResponse(c, errors.WithCode(code.ErrPermissionDenied,
				"administrator privileges required"), nil)
			c.Abort()

			return
		}
		c.Next()
	}
}
