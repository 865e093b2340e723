package restaurant

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

// List 返回全部餐厅。
func (r *RestaurantController) List(ctx *gin.Context) {
	restaurants, err := r.srv.Restaurants().List(ctx.Request.Context(), metav1.ListOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, restaurants)
}

// Get 返回单家餐厅。
func (r *RestaurantController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrValidation, "invalid restaurant id %q", ctx.Param("id")), nil)

		return
	}

	restaurant, err := r.srv.Restaurants().Get(ctx.Request.Context(), id, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, restaurant)
}

// Delete 删除餐厅及其菜单。仅管理员可用。
func (r *RestaurantController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrValidation, "invalid restaurant id %q", ctx.Param("id")), nil)

		return
	}

	if err := r.srv.Restaurants().Delete(ctx.Request.Context(), id, metav1.DeleteOptions{}); err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, nil)
}
