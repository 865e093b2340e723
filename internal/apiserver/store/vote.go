package store

import (
	"context"
	"time"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	metav1 "github.com/maxiaolu1981/cretem/nexuscore/component-base/meta/v1"
)

// VoteStore 定义选票存储接口。
// 一名雇员每天只有一票，由 (employee_id, vote_date) 唯一索引保证。
type VoteStore interface {
	Create(ctx context.Context, vote *v1.Vote, opts metav1.CreateOptions) error
	ListByDate(ctx context.Context, date time.Time, opts metav1.ListOptions) (*v1.VoteList, error)

	// TopMenu 返回得票最多的菜单及票数。scopeDaily 为真时只统计给定日期
	// 发布的菜单和当日选票，否则跨全部历史累计。并列时取菜单 ID 较小者。
	// 没有任何可计的选票时返回的 menuID 为 0。
	TopMenu(ctx context.Context, date time.Time, scopeDaily bool) (menuID uint64, votes int64, err error)
}
