package restaurant

import (
	"strconv"

	"github.com/gin-gonic/gin"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// Create 录入一家餐厅。仅管理员可用。
func (r *RestaurantController) Create(ctx *gin.Context) {
	l := log.WithValues(
		"controller", "restaurant",
		"action", "create",
		"requestID", ctx.GetString(middleware.XRequestIDKey),
	)

	var restaurant v1.Restaurant
	if err := ctx.ShouldBindJSON(&restaurant); err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrBind, "bind request failed: %v", err), nil)

		return
	}

	if err := r.srv.Restaurants().Create(ctx.Request.Context(), &restaurant, metav1.CreateOptions{}); err != nil {
		l.Errorf("create restaurant failed: %v", err)
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, restaurant)
}

// Update 修改餐厅的名称或地址。仅管理员可用。
func (r *RestaurantController) Update(ctx *gin.Context) {
	l := log.WithValues(
		"controller", "restaurant",
		"action", "update",
		"requestID", ctx.GetString(middleware.XRequestIDKey),
	)

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrValidation, "invalid restaurant id %q", ctx.Param("id")), nil)

		return
	}

	var restaurant v1.Restaurant
	if err := ctx.ShouldBindJSON(&restaurant); err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrBind, "bind request failed: %v", err), nil)

		return
	}
	restaurant.ID = id

	if err := r.srv.Restaurants().Update(ctx.Request.Context(), &restaurant, metav1.UpdateOptions{}); err != nil {
		l.Errorf("update restaurant failed: %v", err)
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, restaurant)
}
