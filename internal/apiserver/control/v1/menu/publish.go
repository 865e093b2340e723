package menu

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// Publish 为餐厅发布今天的菜单。仅管理员可用。
func (m *MenuController) Publish(ctx *gin.Context) {
	l := log.WithValues(
		"controller", "menu",
		"action", "publish",
		"requestID", ctx.GetString(middleware.XRequestIDKey),
	)

	var req v1.PublishMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrBind, "bind request failed: %v", err), nil)

		return
	}

	menu, err := m.srv.Menus().Publish(ctx.Request.Context(), &req, metav1.CreateOptions{})
	if err != nil {
		l.Errorf("publish menu failed: %v", err)
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, menu)
}
