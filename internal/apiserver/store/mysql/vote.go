package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/pkg/code"
	"github.com/AndriiHamasa/lunchify/internal/pkg/metrics"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

type votes struct {
	db *gorm.DB
}

func newVotes(ds *datastore) *votes {
	return &votes{ds.db}
}

// Create 依赖 (employee_id, vote_date) 唯一索引挡住同日重复投票，
// 并发下两笔同雇员写入恰好一笔成功。插入和 instanceID 回填在同一事务内，
// 不同雇员的并发写不会在半成品行上互相冲突。
func (v *votes) Create(ctx context.Context, vote *v1.Vote, opts metav1.CreateOptions) error {
	start := time.Now()
	defer func() { metrics.RecordOperation("create", "vote", time.Since(start)) }()

	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return translateDuplicate(err, voteEmployeeDateIndex, code.ErrAlreadyVoted,
				"employee %s already voted on %s", vote.EmployeeID, vote.VoteDate.Format("2006-01-02"))
		}

		return nil
	})
}

func (v *votes) ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.VoteList, error) {
	ret := &v1.VoteList{}
	d := v.db.WithContext(ctx).
		Where("vote_date = ?", v1.DateOf(date)).
		Order("id asc").
		Find(&ret.Items)
	if d.Error != nil {
		return nil, errors.WithCode(code.ErrDatabase, "%v", d.Error)
	}
	ret.TotalCount = int64(len(ret.Items))

	return ret, nil
}

// TopMenu 选出得票最多的菜单。scopeDaily 为真时只统计给定日期的菜单和选票，
// 否则跨全部历史累计。并列时取菜单 ID 较小者，保证结果可复现。
func (v *votes) TopMenu(ctx context.Context, date time.Time, scopeDaily bool) (uint64, int64, error) {
	var row struct {
		MenuID uint64
		Total  int64
	}

	query := v.db.WithContext(ctx).
		Table("vote").
		Select("vote.menu_id as menu_id, count(*) as total").
		Joins("JOIN menu ON menu.id = vote.menu_id")
	if scopeDaily {
		query = query.
			Where("menu.date = ?", v1.DateOf(date)).
			Where("vote.vote_date = ?", v1.DateOf(date))
	}

	d := query.
		Group("vote.menu_id").
		Order("total desc, menu_id asc").
		Limit(1).
		Scan(&row)
	if d.Error != nil {
		return 0, 0, errors.WithCode(code.ErrDatabase, "%v", d.Error)
	}
	if d.RowsAffected == 0 {
		return 0, 0, nil
	}

	return row.MenuID, row.Total, nil
}
