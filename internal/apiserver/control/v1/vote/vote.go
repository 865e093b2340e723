// Package vote 处理投票的 HTTP 请求。
package vote

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	srvv1 "github.com/AndriiHamasa/lunchify/internal/apiserver/service/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/middleware"
	"github.com/maxiaolu1981/cretem/nexuscore/component-base/core"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// VoteController 把投票请求转给业务层。
type VoteController struct {
	srv srvv1.Service
}

// NewVoteController creates a vote handler.
func NewVoteController(srv srvv1.Service) *VoteController {
	return &VoteController{srv: srv}
}

// Cast 以令牌中的雇员身份投一票。每人每天一票。
func (v *VoteController) Cast(ctx *gin.Context) {
	l := log.WithValues(
		"controller", "vote",
		"action", "cast",
		"requestID", ctx.GetString(middleware.XRequestIDKey),
	)

	var req v1.CastVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		core.WriteResponse(ctx, errors.WithCode(code.ErrBind, "bind request failed: %v", err), nil)

		return
	}

	employeeID := ctx.GetString(middleware.UsernameKey)
	vote, err := v.srv.Votes().Cast(ctx.Request.Context(), employeeID, &req, metav1.CreateOptions{})
	if err != nil {
		l.Errorf("cast vote failed: %v", err)
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, vote)
}

// ListToday 返回今天的全部选票。仅管理员可用。
func (v *VoteController) ListToday(ctx *gin.Context) {
	votes, err := v.srv.Votes().ListToday(ctx.Request.Context(), metav1.ListOptions{})
	if err != nil {
		core.WriteResponse(ctx, err, nil)

		return
	}

	core.WriteResponse(ctx, nil, votes)
}
