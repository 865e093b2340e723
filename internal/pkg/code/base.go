package code

// 通用基本错误（1000xx）：服务10 + 模块00 + 序号
const (
	// ErrSuccess - 200: 成功
	ErrSuccess int = iota + 100001

	// ErrUnknown - 500: 内部服务器错误
	ErrUnknown

	// ErrBind - 400: 请求体绑定结构体失败
	ErrBind

	// ErrValidation - 422: 数据验证失败
	ErrValidation

	// ErrPageNotFound - 404: 页面不存在
	ErrPageNotFound
)

// 通用数据库错误（1001xx）：服务10 + 模块01 + 序号
const (
	// ErrDatabase - 500: 数据库操作错误
	ErrDatabase int = iota + 100101
)

// 通用授权认证错误（1002xx）：服务10 + 模块02 + 序号
const (
	// ErrSignatureInvalid - 401: 签名无效
	ErrSignatureInvalid int = iota + 100201

	// ErrExpired - 401: 令牌已过期
	ErrExpired

	// ErrInvalidAuthHeader - 401: 无效的授权头
	ErrInvalidAuthHeader

	// ErrMissingHeader - 401: Authorization头为空
	ErrMissingHeader

	// ErrTokenInvalid - 401: 令牌无效
	ErrTokenInvalid

	// ErrPermissionDenied - 403: 权限不足
	ErrPermissionDenied
)

func init() {
	register(ErrSuccess, 200, "OK")
	register(ErrUnknown, 500, "Internal server error")
	register(ErrBind, 400, "Error occurred while binding the request body to the struct")
	register(ErrValidation, 422, "Validation failed")
	register(ErrPageNotFound, 404, "Page not found")

	register(ErrDatabase, 500, "Database error")

	register(ErrSignatureInvalid, 401, "Signature is invalid")
	register(ErrExpired, 401, "Token expired")
	register(ErrInvalidAuthHeader, 401, "Invalid authorization header")
	register(ErrMissingHeader, 401, "The `Authorization` header was empty")
	register(ErrTokenInvalid, 401, "Token invalid")
	register(ErrPermissionDenied, 403, "Permission denied")
}
