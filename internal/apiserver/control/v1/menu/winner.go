package menu

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
)

// Winner 返回今天得票最高的菜单。没有选票时返回 404。
func (m *MenuController) Winner(ctx *gin.Context) {
	result, err := m.srv.Tally().Winner(ctx.Request.Context())
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, result)
}
