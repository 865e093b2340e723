package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// UsernameKey 是 gin 上下文中保存已认证雇员标识的键。
	UsernameKey = "username"
	// IsAdminKey 是 gin 上下文中保存管理员标记的键。
	IsAdminKey = "isAdmin"
)

// AuthStrategy 定义资源认证策略。不同的令牌来源实现各自的 AuthFunc。
type AuthStrategy interface {
	AuthFunc() gin.HandlerFunc
}

// AuthOperator 用于在策略间切换。
type AuthOperator struct {
	strategy AuthStrategy
}

// SetStrategy 设置当前认证策略。
func (operator *AuthOperator) SetStrategy(strategy AuthStrategy) {
	operator.strategy = strategy
}

// AuthFunc 执行当前策略的认证逻辑。
func (operator *AuthOperator) AuthFunc() gin.HandlerFunc {
	return operator.strategy.AuthFunc()
}
