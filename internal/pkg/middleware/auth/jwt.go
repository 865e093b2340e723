// Package auth 实现基于 JWT 的认证策略。令牌由外部身份系统签发，
// 这里只做验签和声明提取。
package auth

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// JWTStrategy 校验 Authorization: Bearer 令牌。
type JWTStrategy struct {
	key     []byte
	maxAge  time.Duration
	nowFunc func() time.Time
}

var _ middleware.AuthStrategy = &JWTStrategy{}

// Claims 是本服务关心的令牌声明。Subject 即雇员标识。
type Claims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

func NewJWTStrategy(key string, maxAge time.Duration) *JWTStrategy {
	return &JWTStrategy{
		key:     []byte(key),
		maxAge:  maxAge,
		nowFunc: time.Now,
	}
}

// AuthFunc 返回认证中间件。校验通过后把雇员标识和管理员标记写入上下文。
func (j *JWTStrategy) AuthFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := j.parse(c.Request.Header.Get("Authorization"))
		if err != nil {
			log.Infow("token rejected", "requestID", c.GetString(middleware.XRequestIDKey), "err", err)
			core.WriteResponse(c, err, nil)
			c.Abort()

			return
		}

		c.Set(middleware.UsernameKey, claims.Subject)
		c.Set(middleware.IsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

func (j *JWTStrategy) parse(header string) (*Claims, error) {
	if header == "" {
		return nil, errors.WithCode(code.ErrMissingHeader, "the `Authorization` header was empty")
	}

	rawToken, err := parseBearer(header)
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.WithCode(code.ErrTokenInvalid, "unexpected signing method %v", t.Header["alg"])
		}

		return j.key, nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithCode(code.ErrExpired, "token has expired")
		}
		if stderrors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.WithCode(code.ErrSignatureInvalid, "token signature is invalid")
		}

		return nil, errors.WithCode(code.ErrTokenInvalid, "token is invalid: %v", err)
	}
	if !token.Valid {
		return nil, errors.WithCode(code.ErrTokenInvalid, "token is invalid")
	}
	if claims.Subject == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "token has no subject")
	}
	if claims.IssuedAt != nil && j.maxAge > 0 {
		if j.nowFunc().Sub(claims.IssuedAt.Time) > j.maxAge {
			return nil, errors.WithCode(code.ErrExpired, "token is older than the accepted age")
		}
	}

	return claims, nil
}

func parseBearer(header string) (string, error) {
	fields := strings.SplitN(header, " ", 2)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.WithCode(code.ErrInvalidAuthHeader, "the `Authorization` header format is wrong")
	}
	token := strings.TrimSpace(fields[1])
	if token == "" {
		return "", errors.WithCode(code.ErrInvalidAuthHeader, "the `Authorization` header carries no token")
	}

	return token, nil
}
