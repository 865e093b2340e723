package v1

import (
	"context"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/metrics"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

// VoteSrv 定义投票业务。
type VoteSrv interface {
	// Cast 以 employeeID 的身份给菜单投一票。每名雇员每天一票，
	// 重复提交返回冲突错误且不落新行。
	Cast(ctx context.Context, employeeID string, req *v1.CastVoteRequest, opts metav1.CreateOptions) (*v1.Vote, error)
	ListToday(ctx context.Context, opts metav1.ListOptions) (*v1.VoteList, error)
}

type voteService struct {
	srv *service
}

var _ VoteSrv = &voteService{}

func newVotes(srv *service) *voteService {
	return &voteService{srv: srv}
}

func (v *voteService) Cast(ctx context.Context, employeeID string, req *v1.CastVoteRequest, opts metav1.CreateOptions) (*v1.Vote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, errors.WithCode(code.ErrTokenInvalid, "vote without an employee identity")
	}

	// 先确认菜单存在，给出 404 而不是外键错误。
	menu, err := v.srv.store.Menus().Get(ctx, req.MenuID, metav1.GetOptions{})
	if err != nil {
		return nil, err
	}

	vote := &v1.Vote{
		EmployeeID: employeeID,
		MenuID:     menu.ID,
		VoteDate:   v1.DateOf(v.srv.nowFunc()),
	}

	if err := v.srv.store.Votes().Create(ctx, vote, opts); err != nil {
		if errors.IsCode(err, code.ErrAlreadyVoted) {
			metrics.VoteConflicts.Inc()
		}

		return nil, err
	}

	metrics.VotesCast.Inc()
	log.Infow("vote cast",
		"employee", employeeID,
		"menu", menu.ID,
		"date", vote.VoteDate.Format("2006-01-02"))
	v.srv.invalidateMenuCaches(ctx)

	if err := v.srv.producer.PublishVote(ctx, vote); err != nil {
		// 事件丢失不影响投票本身，记日志即可。
		log.Warnw("publish vote event failed", "err", err)
	}

	return vote, nil
}

func (v *voteService) ListToday(ctx context.Context, opts metav1.ListOptions) (*v1.VoteList, error) {
	return v.srv.store.Votes().ListByDate(ctx, v1.DateOf(v.srv.nowFunc()), opts)
}
