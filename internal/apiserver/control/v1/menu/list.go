package menu

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

// Current 返回今天的全部菜单，任何已认证的雇员可读。
func (m *MenuController) Current(ctx *gin.Context) {
	menus, err := m.srv.Menus().Current(ctx.Request.Context(), metav1.ListOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, menus)
}

// List 返回全部菜单（含历史）。
func (m *MenuController) List(ctx *gin.Context) {
	menus, err := m.srv.Menus().List(ctx.Request.Context(), metav1.ListOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, menus)
}

// Get 返回单份菜单及其菜品。
func (m *MenuController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrValidation, "invalid menu id %q", ctx.Param("id")), nil)

		return
	}

	menu, err := m.srv.Menus().Get(ctx.Request.Context(), id, metav1.GetOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, menu)
}

// Delete 删除菜单及其菜品和选票。仅管理员可用。
func (m *MenuController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrValidation, "invalid menu id %q", ctx.Param("id")), nil)

		return
	}

	if err := m.srv.Menus().Delete(ctx.Request.Context(), id, metav1.DeleteOptions{}); err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, nil)
}
