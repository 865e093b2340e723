// Package restaurant 处理餐厅资源的 HTTP 请求。
package restaurant

import (
	srvv1 "github.com/AndriiHamasa/lunchify/internal/apiserver/service/v1"
)

// RestaurantController 把餐厅相关请求转给业务层。
type RestaurantController struct {
	srv srvv1.Service
}

// NewRestaurantController creates a restaurant handler.
func NewRestaurantController(srv srvv1.Service) *RestaurantController {
	return &RestaurantController{srv: srv}
}
