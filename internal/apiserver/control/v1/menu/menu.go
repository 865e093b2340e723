// Package menu 处理菜单发布、查询和每日计票的 HTTP 请求。
package menu

import (
	srvv1 "github.com/AndriiHamasa/lunchify/internal/apiserver/service/v1"
)

// MenuController 把菜单相关请求转给业务层。
type MenuController struct {
	srv srvv1.Service
}

// NewMenuController creates a menu handler.
func NewMenuController(srv srvv1.Service) *MenuController {
	return &MenuController{srv: srv}
}
