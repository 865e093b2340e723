package apiserver

import (
	"github.com/AndriiHamasa/lunchify/internal/apiserver/config"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware/auth"
)

// newJWTAuth 构建令牌校验策略。签发在外部身份系统完成，这里只认共享密钥。
func newJWTAuth(cfg *config.Config) middleware.AuthStrategy {
	return auth.NewJWTStrategy(cfg.JwtOptions.Key, cfg.JwtOptions.Timeout)
}
